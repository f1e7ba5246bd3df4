package db

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/tordrt/schemats/internal/schema"
)

// tableListQuery builds the query listing the base tables of a schema, in name
// order. A non-empty only restricts the listing to those names.
func tableListQuery(dialect schema.Dialect, schemaName string, only []string) (string, []any, error) {
	if dialect == schema.DialectSQLite {
		builder := sq.Select("name").
			From("sqlite_master").
			Where(sq.Eq{"type": "table"}).
			Where(sq.NotLike{"name": "sqlite_%"}).
			OrderBy("name")
		if len(only) > 0 {
			builder = builder.Where(sq.Eq{"name": only})
		}
		return builder.PlaceholderFormat(sq.Question).ToSql()
	}

	builder := sq.Select("table_name").
		From("information_schema.tables").
		Where(sq.Eq{"table_schema": schemaName, "table_type": "BASE TABLE"}).
		OrderBy("table_name")
	if len(only) > 0 {
		builder = builder.Where(sq.Eq{"table_name": only})
	}

	var format sq.PlaceholderFormat = sq.Dollar
	if dialect == schema.DialectMySQL {
		format = sq.Question
	}
	return builder.PlaceholderFormat(format).ToSql()
}

// listTables runs the table listing on a database/sql connection.
func listTables(ctx context.Context, db *sql.DB, dialect schema.Dialect, schemaName string, requested []string) ([]string, error) {
	query, args, err := tableListQuery(dialect, schemaName, requested)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tables, checkRequested(requested, tables)
}
