// Package db introspects live PostgreSQL, MySQL and SQLite databases into the
// schema model consumed by the generator.
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/tordrt/schemats/internal/schema"
)

// ErrTableNotFound is returned when a requested table does not exist.
var ErrTableNotFound = errors.New("table not found")

// Extractor reads a schema from a database.
type Extractor interface {
	// ExtractSchema extracts the given tables, or every base table when
	// tables is empty. Tables are returned in name order.
	ExtractSchema(ctx context.Context, tables []string) (*schema.Schema, error)
}

// checkRequested reports the requested tables that were not found.
func checkRequested(requested, found []string) error {
	if len(requested) == 0 {
		return nil
	}
	present := make(map[string]struct{}, len(found))
	for _, name := range found {
		present[name] = struct{}{}
	}
	var missing []string
	for _, name := range requested {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrTableNotFound, strings.Join(missing, ", "))
	}
	return nil
}

// ParseDatabaseName returns the database named in a MySQL DSN.
func ParseDatabaseName(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("failed to parse MySQL DSN: %w", err)
	}
	if cfg.DBName == "" {
		return "", fmt.Errorf("MySQL DSN does not name a database")
	}
	return cfg.DBName, nil
}
