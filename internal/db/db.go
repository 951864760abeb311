package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"
)

// DB wraps the sql.DB pool for connection management. All request handlers
// share one DB; the underlying pool queues callers when every connection is
// busy.
type DB struct {
	conn   *sql.DB
	logger *slog.Logger
}

// New opens a database handle and verifies connectivity. maxConns bounds the
// number of concurrent connections; values <= 0 fall back to 10.
func New(ctx context.Context, dsn string, maxConns int, logger *slog.Logger) (*DB, error) {
	if maxConns <= 0 {
		maxConns = 10
	}
	if logger == nil {
		logger = slog.Default()
	}

	// Referential integrity is off by default in sqlite and pragmas are
	// per-connection, so they go into the DSN to cover the whole pool.
	if !strings.Contains(dsn, "_pragma=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	conn.SetMaxOpenConns(maxConns)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return &DB{conn: conn, logger: logger}, nil
}

// Close closes the DB connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Exec executes a statement with bound parameters.
func (db *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.conn.ExecContext(ctx, query, args...)
}

// QueryRow executes a query that is expected to return at most one row.
func (db *DB) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.conn.QueryRowContext(ctx, query, args...)
}

// QueryRows executes a query that returns any number of rows.
func (db *DB) QueryRows(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.conn.QueryContext(ctx, query, args...)
}

// BeginTx starts a transaction on a pooled connection.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.conn.BeginTx(ctx, nil)
}

// GetConn returns the underlying sql.DB.
func (db *DB) GetConn() *sql.DB {
	return db.conn
}
