// Package db opens and migrates the snapshot store database.
package db

import (
	"context"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose"
	_ "modernc.org/sqlite"
)

// Driver names registered by this package.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Opt defines a function type that applies a configuration to sqlx.DB.
type Opt func(*sqlx.DB)

// New connects to the database, verifying it with a ping, and applies opts.
func New(ctx context.Context, driver string, dsn string, opts ...Opt) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(db)
	}
	return db, nil
}

// Migrate applies the goose migrations in dir.
func Migrate(db *sqlx.DB, dir string) error {
	dialect := "postgres"
	if db.DriverName() == DriverSQLite {
		dialect = "sqlite3"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.Up(db.DB, dir)
}

// WithMaxOpenConns sets the maximum number of open connections.
func WithMaxOpenConns(opts ...int) Opt {
	return func(db *sqlx.DB) {
		for _, opt := range opts {
			if opt > 0 {
				db.SetMaxOpenConns(opt)
				break
			}
		}
	}
}

// WithMaxIdleConns sets the maximum number of idle connections.
func WithMaxIdleConns(opts ...int) Opt {
	return func(db *sqlx.DB) {
		for _, opt := range opts {
			if opt > 0 {
				db.SetMaxIdleConns(opt)
				break
			}
		}
	}
}

// WithConnMaxLifetime sets the maximum connection lifetime.
func WithConnMaxLifetime(opts ...time.Duration) Opt {
	return func(db *sqlx.DB) {
		for _, opt := range opts {
			if opt > 0 {
				db.SetConnMaxLifetime(opt)
				break
			}
		}
	}
}
