// Package postgres implements the checkpoint repository on PostgreSQL.
package postgres

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/lib/pq"
)

const driverName = "postgres"

type (
	// Metrics records repository operation outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository stores scan positions and records in PostgreSQL.
type Repository struct {
	db      *sql.DB
	metrics Metrics
}

// NewRepository wraps an open database handle.
func NewRepository(db *sql.DB, metrics Metrics) *Repository {
	return &Repository{db: db, metrics: metrics}
}

// OpenDB opens a connection with the database and verifies it.
// With autoCreate set, a missing database named in a URL-style DSN is created.
func OpenDB(ctx context.Context, dsn string, autoCreate bool) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres db: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := connectDB(pingCtx, db, dsn, autoCreate); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect postgres db: %w", markUnavailable(err))
	}
	return db, nil
}

// DSN assembles a URL-style connection string from discrete settings.
func DSN(host string, port int, name, user, password string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     fmt.Sprintf("%s:%d", host, port),
		Path:     "/" + name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func connectDB(ctx context.Context, db *sql.DB, dsn string, autoCreate bool) error {
	err := db.PingContext(ctx)
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	// 3D000: invalid_catalog_name.
	if autoCreate && errors.As(err, &pqErr) && pqErr.Code == "3D000" {
		if err := createDB(ctx, dsn); err != nil {
			return fmt.Errorf("create database: %w", err)
		}
		return connectDB(ctx, db, dsn, false)
	}
	return err
}

func createDB(ctx context.Context, dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return errors.New("cannot auto-create database unless the dsn uses url format")
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}
	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" {
		return errors.New("cannot auto-create database with an empty name")
	}
	parsed.Path = ""

	root, err := sql.Open(driverName, parsed.String())
	if err != nil {
		return err
	}
	defer root.Close()

	_, err = root.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name))
	return err
}

// Ping checks that the database is reachable.
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
