package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	_ "github.com/mattn/go-sqlite3"
)

// Driver names registered with database/sql.
const (
	driverMySQL  = "mysql"
	driverSQLite = "sqlite3"
)

// PostgresClient manages the connection to PostgreSQL
type PostgresClient struct {
	conn *pgx.Conn
}

// NewPostgresClient connects to PostgreSQL and verifies the connection.
func NewPostgresClient(ctx context.Context, connString string) (*PostgresClient, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresClient{conn: conn}, nil
}

// Close closes the database connection
func (c *PostgresClient) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}

// GetConnection returns the underlying connection
func (c *PostgresClient) GetConnection() *pgx.Conn {
	return c.conn
}

// SQLClient wraps a database/sql handle for MySQL or SQLite.
type SQLClient struct {
	db *sql.DB
}

// NewMySQLClient opens a MySQL connection from a go-sql-driver DSN.
func NewMySQLClient(ctx context.Context, dsn string) (*SQLClient, error) {
	return openSQL(ctx, driverMySQL, dsn)
}

// NewSQLiteClient opens the SQLite database file at path.
func NewSQLiteClient(ctx context.Context, path string) (*SQLClient, error) {
	return openSQL(ctx, driverSQLite, path)
}

// NewSQLClient wraps an already open handle.
func NewSQLClient(db *sql.DB) *SQLClient {
	return &SQLClient{db: db}
}

func openSQL(ctx context.Context, driver, dsn string) (*SQLClient, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &SQLClient{db: db}, nil
}

// Close closes the database connection
func (c *SQLClient) Close() error {
	return c.db.Close()
}

// GetDB returns the underlying database connection
func (c *SQLClient) GetDB() *sql.DB {
	return c.db
}
