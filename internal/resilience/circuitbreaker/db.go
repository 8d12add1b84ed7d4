package circuitbreaker

import (
	"context"
	"database/sql"
)

var errNoRows = sql.ErrNoRows

// DB runs statements on a *sql.DB through a breaker. Single-row reads scan
// inside the guarded call so their errors count too.
type DB struct {
	cb *CircuitBreaker
	db *sql.DB
}

// NewDB wraps db with the DBConfig breaker.
func NewDB(db *sql.DB) *DB {
	return NewDBWithConfig(db, DBConfig())
}

func NewDBWithConfig(db *sql.DB, cfg Config) *DB {
	return &DB{cb: New(cfg, IgnoreCallerErrors), db: db}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var res sql.Result
	err := d.cb.Do(func() error {
		var err error
		res, err = d.db.ExecContext(ctx, query, args...)
		return err
	})
	return res, err
}

// QueryRowScan runs a single-row query and scans it into dest. It returns
// sql.ErrNoRows when the query matches nothing.
func (d *DB) QueryRowScan(ctx context.Context, query string, args []any, dest ...any) error {
	return d.cb.Do(func() error {
		return d.db.QueryRowContext(ctx, query, args...).Scan(dest...)
	})
}

func (d *DB) PingContext(ctx context.Context) error {
	return d.cb.Do(func() error { return d.db.PingContext(ctx) })
}

func (d *DB) Breaker() *CircuitBreaker { return d.cb }

// Unwrap returns the unguarded pool.
func (d *DB) Unwrap() *sql.DB { return d.db }
