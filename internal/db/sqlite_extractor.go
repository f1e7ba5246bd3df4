package db

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"

	"github.com/tordrt/schemats/internal/schema"
)

// SQLiteExtractor handles schema extraction from SQLite
type SQLiteExtractor struct {
	client *SQLClient
}

// NewSQLiteExtractor creates a new SQLite schema extractor
func NewSQLiteExtractor(client *SQLClient) *SQLiteExtractor {
	return &SQLiteExtractor{client: client}
}

// ExtractSchema extracts the complete schema for specified tables
// If tables is empty, extracts all tables in the database
func (e *SQLiteExtractor) ExtractSchema(ctx context.Context, tables []string) (*schema.Schema, error) {
	tableNames, err := listTables(ctx, e.client.GetDB(), schema.DialectSQLite, "", tables)
	if err != nil {
		return nil, fmt.Errorf("failed to get table names: %w", err)
	}

	extractedTables := make([]schema.Table, 0, len(tableNames))
	for _, tableName := range tableNames {
		table, err := e.extractTable(ctx, tableName)
		if err != nil {
			return nil, fmt.Errorf("failed to extract table %s: %w", tableName, err)
		}
		extractedTables = append(extractedTables, *table)
	}

	return &schema.Schema{
		Dialect: schema.DialectSQLite,
		Tables:  extractedTables,
	}, nil
}

// pragma builds a table-valued PRAGMA statement for tableName.
func pragma(name, tableName string) string {
	return fmt.Sprintf("PRAGMA %s(%s)", name, pq.QuoteIdentifier(tableName))
}

func (e *SQLiteExtractor) extractTable(ctx context.Context, tableName string) (*schema.Table, error) {
	table := &schema.Table{Name: tableName}

	columns, pk, err := e.extractColumns(ctx, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract columns: %w", err)
	}
	table.Columns = columns
	table.PrimaryKey = pk

	if err := e.attachForeignKeys(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to extract foreign keys: %w", err)
	}

	return table, nil
}

// extractColumns reads PRAGMA table_info. A single INTEGER PRIMARY KEY column
// aliases the rowid: it is never null and always has a value on insert.
func (e *SQLiteExtractor) extractColumns(ctx context.Context, tableName string) ([]schema.Column, []string, error) {
	rows, err := e.client.GetDB().QueryContext(ctx, pragma("table_info", tableName))
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = rows.Close() }()

	type pkColumn struct {
		name  string
		order int
	}
	var columns []schema.Column
	var pkColumns []pkColumn
	rowidAlias := -1

	for rows.Next() {
		var cid, notNull, pkOrder int
		var name, colType string
		var defaultValue sql.NullString

		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultValue, &pkOrder); err != nil {
			return nil, nil, err
		}

		if pkOrder > 0 {
			pkColumns = append(pkColumns, pkColumn{name: name, order: pkOrder})
			if strings.EqualFold(colType, "INTEGER") {
				rowidAlias = len(columns)
			}
		}
		columns = append(columns, schema.Column{
			Name:       name,
			UDTName:    colType,
			Nullable:   notNull == 0,
			HasDefault: defaultValue.Valid,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	if len(pkColumns) == 1 && rowidAlias >= 0 {
		columns[rowidAlias].Nullable = false
		columns[rowidAlias].HasDefault = true
	}

	sort.Slice(pkColumns, func(i, j int) bool { return pkColumns[i].order < pkColumns[j].order })
	var pk []string
	for _, c := range pkColumns {
		pk = append(pk, c.name)
	}

	return columns, pk, nil
}

func (e *SQLiteExtractor) attachForeignKeys(ctx context.Context, table *schema.Table) error {
	rows, err := e.client.GetDB().QueryContext(ctx, pragma("foreign_key_list", table.Name))
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id, seq int
		var targetTable, fromCol, onUpdate, onDelete, match string
		var toCol sql.NullString

		if err := rows.Scan(&id, &seq, &targetTable, &fromCol, &toCol, &onUpdate, &onDelete, &match); err != nil {
			return err
		}

		// A NULL target column references the target's primary key.
		setForeignKey(table, fromCol, schema.ForeignKey{Table: targetTable, Column: toCol.String})
	}

	return rows.Err()
}
