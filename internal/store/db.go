package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the read side of database/sql. It is satisfied by *sql.DB,
// *sql.Conn and *sql.Tx, so a store can run against a pool or inside a
// caller-managed transaction.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Pinger is implemented by handles that can verify connectivity (*sql.DB, *sql.Conn).
type Pinger interface {
	PingContext(ctx context.Context) error
}
