package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tordrt/schemats/internal/schema"
	"github.com/tordrt/schemats/internal/typemap"
)

// MySQLExtractor handles schema extraction from MySQL
type MySQLExtractor struct {
	client     *SQLClient
	schemaName string
}

// NewMySQLExtractor creates a new MySQL schema extractor
func NewMySQLExtractor(client *SQLClient, schemaName string) *MySQLExtractor {
	return &MySQLExtractor{
		client:     client,
		schemaName: schemaName,
	}
}

// ExtractSchema extracts the complete schema for specified tables.
//
// MySQL has no named enum types. Every enum column becomes an enum named
// <table>_<column> and the column's UDTName refers to it.
func (e *MySQLExtractor) ExtractSchema(ctx context.Context, tables []string) (*schema.Schema, error) {
	tableNames, err := listTables(ctx, e.client.GetDB(), schema.DialectMySQL, e.schemaName, tables)
	if err != nil {
		return nil, fmt.Errorf("failed to get table names: %w", err)
	}

	s := &schema.Schema{
		Name:    e.schemaName,
		Dialect: schema.DialectMySQL,
		Tables:  make([]schema.Table, 0, len(tableNames)),
	}
	for _, tableName := range tableNames {
		table, enums, err := e.extractTable(ctx, tableName)
		if err != nil {
			return nil, fmt.Errorf("failed to extract table %s: %w", tableName, err)
		}
		s.Tables = append(s.Tables, *table)
		s.Enums = append(s.Enums, enums...)
	}

	return s, nil
}

func (e *MySQLExtractor) extractTable(ctx context.Context, tableName string) (*schema.Table, []schema.Enum, error) {
	table := &schema.Table{Name: tableName}

	columns, enums, err := e.extractColumns(ctx, tableName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to extract columns: %w", err)
	}
	table.Columns = columns

	pk, err := e.extractPrimaryKey(ctx, tableName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to extract primary key: %w", err)
	}
	table.PrimaryKey = pk

	if err := e.attachForeignKeys(ctx, table); err != nil {
		return nil, nil, fmt.Errorf("failed to extract foreign keys: %w", err)
	}

	return table, enums, nil
}

func (e *MySQLExtractor) extractColumns(ctx context.Context, tableName string) ([]schema.Column, []schema.Enum, error) {
	query := `
		SELECT
			c.column_name,
			c.column_type,
			c.data_type,
			c.is_nullable,
			c.column_default,
			c.extra,
			c.column_comment
		FROM information_schema.columns c
		WHERE c.table_schema = ? AND c.table_name = ?
		ORDER BY c.ordinal_position
	`

	rows, err := e.client.GetDB().QueryContext(ctx, query, e.schemaName, tableName)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = rows.Close() }()

	var columns []schema.Column
	var enums []schema.Enum
	for rows.Next() {
		var col schema.Column
		var dataType, nullable, extra string
		var defaultVal sql.NullString

		if err := rows.Scan(&col.Name, &col.UDTName, &dataType, &nullable, &defaultVal, &extra, &col.Comment); err != nil {
			return nil, nil, err
		}

		col.Nullable = nullable == "YES"
		col.HasDefault = defaultVal.Valid || hasGeneratedValue(extra)

		if strings.EqualFold(dataType, "enum") {
			values, err := typemap.ParseEnumValues(col.UDTName)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to parse enum column %s: %w", col.Name, err)
			}
			enum := schema.Enum{Name: tableName + "_" + col.Name, Values: values}
			enums = append(enums, enum)
			col.UDTName = enum.Name
		}

		columns = append(columns, col)
	}

	return columns, enums, rows.Err()
}

// hasGeneratedValue reports whether the EXTRA column marks a value the server
// fills in on insert.
func hasGeneratedValue(extra string) bool {
	extra = strings.ToLower(extra)
	return strings.Contains(extra, "auto_increment") || strings.Contains(extra, "generated")
}

// extractPrimaryKey extracts primary key columns
func (e *MySQLExtractor) extractPrimaryKey(ctx context.Context, tableName string) ([]string, error) {
	query := `
		SELECT column_name
		FROM information_schema.key_column_usage
		WHERE table_schema = ?
			AND table_name = ?
			AND constraint_name = 'PRIMARY'
		ORDER BY ordinal_position
	`

	rows, err := e.client.GetDB().QueryContext(ctx, query, e.schemaName, tableName)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var pk []string
	for rows.Next() {
		var colName string
		if err := rows.Scan(&colName); err != nil {
			return nil, err
		}
		pk = append(pk, colName)
	}

	return pk, rows.Err()
}

func (e *MySQLExtractor) attachForeignKeys(ctx context.Context, table *schema.Table) error {
	query := `
		SELECT
			kcu.column_name,
			kcu.referenced_table_name,
			kcu.referenced_column_name
		FROM information_schema.key_column_usage kcu
		WHERE kcu.table_schema = ?
			AND kcu.table_name = ?
			AND kcu.referenced_table_name IS NOT NULL
		ORDER BY kcu.constraint_name, kcu.ordinal_position
	`

	rows, err := e.client.GetDB().QueryContext(ctx, query, e.schemaName, table.Name)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var column string
		var fk schema.ForeignKey
		if err := rows.Scan(&column, &fk.Table, &fk.Column); err != nil {
			return err
		}
		setForeignKey(table, column, fk)
	}

	return rows.Err()
}
