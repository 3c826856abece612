// Package sqlite implements the checkpoint repository on an embedded SQLite database.
package sqlite

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

type (
	// Metrics records repository operation outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository stores scan positions and records in SQLite.
type Repository struct {
	db      *sql.DB
	metrics Metrics
}

// NewRepository wraps an open database handle.
func NewRepository(db *sql.DB, metrics Metrics) *Repository {
	return &Repository{db: db, metrics: metrics}
}

// OpenDB opens the database at dsn, which may be a file path or ":memory:".
// The pool is limited to one connection so an in-memory database stays shared.
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("sqlite dsn is required")
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect sqlite db: %w", markUnavailable(err))
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return db, nil
}

// Ping checks that the database is usable.
func (r *Repository) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("ping", err, start)
	}()

	if err = r.db.PingContext(ctx); err != nil {
		return markUnavailable(err)
	}
	return nil
}
