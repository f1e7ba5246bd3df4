package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tordrt/schemats/internal/schema"
)

// DefaultPostgresSchema is introspected when no schema name is given.
const DefaultPostgresSchema = "public"

// PostgresExtractor handles schema extraction from PostgreSQL
type PostgresExtractor struct {
	client *PostgresClient
	schema string
}

// NewPostgresExtractor creates a new PostgreSQL schema extractor
func NewPostgresExtractor(client *PostgresClient, schemaName string) *PostgresExtractor {
	if schemaName == "" {
		schemaName = DefaultPostgresSchema
	}
	return &PostgresExtractor{
		client: client,
		schema: schemaName,
	}
}

// ExtractSchema extracts the complete schema for specified tables
// If tables is empty, extracts all tables in the schema
func (e *PostgresExtractor) ExtractSchema(ctx context.Context, tables []string) (*schema.Schema, error) {
	tableNames, err := e.getTableNames(ctx, tables)
	if err != nil {
		return nil, fmt.Errorf("failed to get table names: %w", err)
	}

	enums, err := e.extractEnums(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract enums: %w", err)
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
		Name:    e.schema,
		Dialect: schema.DialectPostgres,
		Tables:  extractedTables,
		Enums:   enums,
	}, nil
}

func (e *PostgresExtractor) getTableNames(ctx context.Context, requestedTables []string) ([]string, error) {
	query, args, err := tableListQuery(schema.DialectPostgres, e.schema, requestedTables)
	if err != nil {
		return nil, err
	}

	rows, err := e.client.GetConnection().Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	return tables, checkRequested(requestedTables, tables)
}

// extractTable extracts all information for a single table
func (e *PostgresExtractor) extractTable(ctx context.Context, tableName string) (*schema.Table, error) {
	table := &schema.Table{Name: tableName}

	columns, err := e.extractColumns(ctx, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract columns: %w", err)
	}
	table.Columns = columns

	pk, err := e.extractPrimaryKey(ctx, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract primary key: %w", err)
	}
	table.PrimaryKey = pk

	if err := e.attachForeignKeys(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to extract foreign keys: %w", err)
	}

	return table, nil
}

// extractColumns reads columns in ordinal order. Identity and generated
// columns count as having a default.
func (e *PostgresExtractor) extractColumns(ctx context.Context, tableName string) ([]schema.Column, error) {
	query := `
		SELECT
			c.column_name,
			c.udt_name,
			c.is_nullable = 'YES' AS nullable,
			(c.column_default IS NOT NULL
				OR c.is_identity = 'YES'
				OR c.is_generated <> 'NEVER') AS has_default,
			COALESCE(col_description(format('%I.%I', c.table_schema, c.table_name)::regclass, c.ordinal_position), '') AS comment
		FROM information_schema.columns c
		WHERE c.table_schema = $1 AND c.table_name = $2
		ORDER BY c.ordinal_position
	`

	rows, err := e.client.GetConnection().Query(ctx, query, e.schema, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []schema.Column
	for rows.Next() {
		var col schema.Column
		if err := rows.Scan(&col.Name, &col.UDTName, &col.Nullable, &col.HasDefault, &col.Comment); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// extractEnums reads every enum type of the schema with its labels in sort order.
func (e *PostgresExtractor) extractEnums(ctx context.Context) ([]schema.Enum, error) {
	query := `
		SELECT t.typname, e.enumlabel
		FROM pg_type t
		JOIN pg_enum e ON t.oid = e.enumtypid
		JOIN pg_namespace n ON t.typnamespace = n.oid
		WHERE n.nspname = $1
		ORDER BY t.typname, e.enumsortorder
	`

	rows, err := e.client.GetConnection().Query(ctx, query, e.schema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enums []schema.Enum
	for rows.Next() {
		var typName, label string
		if err := rows.Scan(&typName, &label); err != nil {
			return nil, err
		}
		if n := len(enums); n == 0 || enums[n-1].Name != typName {
			enums = append(enums, schema.Enum{Name: typName})
		}
		last := &enums[len(enums)-1]
		last.Values = append(last.Values, label)
	}

	return enums, rows.Err()
}

// extractPrimaryKey extracts primary key columns
func (e *PostgresExtractor) extractPrimaryKey(ctx context.Context, tableName string) ([]string, error) {
	query := `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
			AND tc.table_name = kcu.table_name
		WHERE tc.table_schema = $1
			AND tc.table_name = $2
			AND tc.constraint_type = 'PRIMARY KEY'
		ORDER BY kcu.ordinal_position
	`

	rows, err := e.client.GetConnection().Query(ctx, query, e.schema, tableName)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// attachForeignKeys sets ForeignKey on every column that references another
// table. Only the first constraint on a column is kept.
func (e *PostgresExtractor) attachForeignKeys(ctx context.Context, table *schema.Table) error {
	query := `
		SELECT
			kcu.column_name,
			ccu.table_name AS foreign_table_name,
			ccu.column_name AS foreign_column_name
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage AS ccu
			ON ccu.constraint_name = tc.constraint_name
			AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = $1
			AND tc.table_name = $2
		ORDER BY tc.constraint_name, kcu.ordinal_position
	`

	rows, err := e.client.GetConnection().Query(ctx, query, e.schema, table.Name)
	if err != nil {
		return err
	}
	defer rows.Close()

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

func setForeignKey(table *schema.Table, column string, fk schema.ForeignKey) {
	for i := range table.Columns {
		if table.Columns[i].Name == column && table.Columns[i].ForeignKey == nil {
			table.Columns[i].ForeignKey = &fk
			return
		}
	}
}
