// Package sqlite adapts an embedded modernc.org/sqlite database to database.DB.
//
// Queries are written with PostgreSQL placeholders ($1, $2, ...) and rebound to
// SQLite's numbered form (?1, ?2, ...). Timestamps are stored as UTC unix
// microseconds so that ordering by them is numeric.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"portfolio/internal/database"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

type DB struct {
	sqlDB *sql.DB
}

var _ database.DB = (*DB)(nil)

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// Open opens (creating if needed) the database file at path.
func Open(ctx context.Context, path string) (database.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path)
	}
	dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection serializes writers and keeps :memory: databases alive.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &DB{sqlDB: sqlDB}, nil
}

func (d *DB) Driver() string { return database.DriverSQLite }

func (d *DB) Ping(ctx context.Context) error {
	if d == nil || d.sqlDB == nil {
		return fmt.Errorf("nil db")
	}
	return d.sqlDB.PingContext(ctx)
}

func (d *DB) Close() error {
	if d == nil || d.sqlDB == nil {
		return nil
	}
	return d.sqlDB.Close()
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if d == nil || d.sqlDB == nil {
		return 0, fmt.Errorf("nil db")
	}
	return execOn(ctx, d.sqlDB, query, args)
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if d == nil || d.sqlDB == nil {
		return nil, fmt.Errorf("nil db")
	}
	return queryOn(ctx, d.sqlDB, query, args)
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if d == nil || d.sqlDB == nil {
		return errRow{err: fmt.Errorf("nil db")}
	}
	return queryRowOn(ctx, d.sqlDB, query, args)
}

func (d *DB) Begin(ctx context.Context) (database.Tx, error) {
	if d == nil || d.sqlDB == nil {
		return nil, fmt.Errorf("nil db")
	}
	tx, err := d.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{tx: tx}, nil
}

type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func execOn(ctx context.Context, q queryer, query string, args []any) (int64, error) {
	res, err := q.ExecContext(ctx, rebind(query), bindArgs(args)...)
	if err != nil {
		return 0, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

func queryOn(ctx context.Context, q queryer, query string, args []any) (database.Rows, error) {
	rows, err := q.QueryContext(ctx, rebind(query), bindArgs(args)...)
	if err != nil {
		return nil, translateErr(err)
	}
	return sqlRows{rows: rows}, nil
}

// queryRowOn goes through QueryContext rather than QueryRowContext so that
// constraint errors from INSERT ... RETURNING surface at Scan like they do on pgx.
func queryRowOn(ctx context.Context, q queryer, query string, args []any) database.Row {
	rows, err := q.QueryContext(ctx, rebind(query), bindArgs(args)...)
	if err != nil {
		return errRow{err: translateErr(err)}
	}
	return sqlRow{rows: rows}
}

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return execOn(ctx, t.tx, query, args)
}

func (t sqlTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return queryOn(ctx, t.tx, query, args)
}

func (t sqlTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return queryRowOn(ctx, t.tx, query, args)
}

func (t sqlTx) Commit(_ context.Context) error {
	return t.tx.Commit()
}

func (t sqlTx) Rollback(_ context.Context) error {
	err := t.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}

type sqlRows struct {
	rows *sql.Rows
}

func (r sqlRows) Close() {
	_ = r.rows.Close()
}

func (r sqlRows) Next() bool {
	return r.rows.Next()
}

func (r sqlRows) Scan(dest ...any) error {
	return scanInto(r.rows.Scan, dest)
}

func (r sqlRows) Err() error {
	return translateErr(r.rows.Err())
}

type sqlRow struct {
	rows *sql.Rows
}

func (r sqlRow) Scan(dest ...any) error {
	defer r.rows.Close()
	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			return translateErr(err)
		}
		return database.ErrNoRows
	}
	if err := scanInto(r.rows.Scan, dest); err != nil {
		return err
	}
	return translateErr(r.rows.Close())
}

type errRow struct {
	err error
}

func (r errRow) Scan(_ ...any) error {
	return r.err
}

// scanInto swaps *time.Time destinations for microsecond holders.
func scanInto(scan func(dest ...any) error, dest []any) error {
	type pending struct {
		target *time.Time
		holder *int64
	}
	var conv []pending

	actual := make([]any, len(dest))
	for i, d := range dest {
		if t, ok := d.(*time.Time); ok {
			h := new(int64)
			conv = append(conv, pending{target: t, holder: h})
			actual[i] = h
			continue
		}
		actual[i] = d
	}

	if err := scan(actual...); err != nil {
		return translateErr(err)
	}
	for _, c := range conv {
		*c.target = time.UnixMicro(*c.holder).UTC()
	}
	return nil
}

func rebind(query string) string {
	return placeholderRe.ReplaceAllString(query, "?$1")
}

func bindArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case time.Time:
			out[i] = v.UTC().UnixMicro()
		case *time.Time:
			if v == nil {
				out[i] = nil
			} else {
				out[i] = v.UTC().UnixMicro()
			}
		default:
			out[i] = a
		}
	}
	return out
}

func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return database.ErrNoRows
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%w: %s", database.ErrUniqueViolation, sqliteErr.Error())
		}
	}
	return err
}
