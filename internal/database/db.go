package database

import (
	"context"
	"database/sql"
	"errors"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrUniqueViolation is returned by drivers when a statement breaks a UNIQUE or
// PRIMARY KEY constraint.
var ErrUniqueViolation = errors.New("unique constraint violation")

// ErrNoRows is returned by Row.Scan when the query matched nothing. Both
// drivers translate their native sentinel into it.
var ErrNoRows = sql.ErrNoRows

type DB interface {
	Ping(ctx context.Context) error
	Close() error

	// Driver reports DriverPostgres or DriverSQLite.
	Driver() string

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Begin(ctx context.Context) (Tx, error)
}

type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
