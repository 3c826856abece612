// Package repository opens the checkpoint repository backend selected by driver name.
package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/checkpoint"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/repository/clickhouse"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/repository/postgres"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/repository/sqlite"
)

// Supported driver names.
const (
	DriverPostgres   = "postgres"
	DriverSQLite     = "sqlite"
	DriverClickhouse = "clickhouse"
)

type (
	// Metrics records repository operation outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config selects and locates a backend.
type Config struct {
	Driver     string
	DSN        string
	AutoCreate bool
}

// Handle is an open repository together with its resources.
type Handle struct {
	checkpoint.Repository
	close func() error
}

// Close releases the backend connection.
func (h *Handle) Close() error {
	if h.close == nil {
		return nil
	}
	return h.close()
}

type opener func(ctx context.Context, cfg Config, metrics Metrics) (*Handle, error)

type migrator func(ctx context.Context, cfg Config, down bool) error

var openers = map[string]opener{
	DriverPostgres:   openPostgres,
	DriverSQLite:     openSQLite,
	DriverClickhouse: openClickhouse,
}

var migrators = map[string]migrator{
	DriverPostgres:   migratePostgres,
	DriverSQLite:     migrateSQLite,
	DriverClickhouse: migrateClickhouse,
}

// Drivers lists the supported driver names.
func Drivers() []string {
	names := make([]string, 0, len(openers))
	for name := range openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open connects to the backend named by cfg.Driver.
func Open(ctx context.Context, cfg Config, metrics Metrics) (*Handle, error) {
	open, ok := openers[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("unknown store driver %q, supported: %v", cfg.Driver, Drivers())
	}
	return open(ctx, cfg, metrics)
}

// Migrate applies (or with down set, reverts) the embedded schema of the backend.
func Migrate(ctx context.Context, cfg Config, down bool) error {
	run, ok := migrators[cfg.Driver]
	if !ok {
		return fmt.Errorf("unknown store driver %q, supported: %v", cfg.Driver, Drivers())
	}
	return run(ctx, cfg, down)
}

func openPostgres(ctx context.Context, cfg Config, metrics Metrics) (*Handle, error) {
	db, err := postgres.OpenDB(ctx, cfg.DSN, cfg.AutoCreate)
	if err != nil {
		return nil, err
	}
	return &Handle{Repository: postgres.NewRepository(db, metrics), close: db.Close}, nil
}

func openSQLite(ctx context.Context, cfg Config, metrics Metrics) (*Handle, error) {
	db, err := sqlite.OpenDB(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}
	return &Handle{Repository: sqlite.NewRepository(db, metrics), close: db.Close}, nil
}

func openClickhouse(_ context.Context, cfg Config, metrics Metrics) (*Handle, error) {
	repo, err := clickhouse.NewRepository(cfg.DSN, metrics)
	if err != nil {
		return nil, err
	}
	return &Handle{Repository: repo, close: repo.Close}, nil
}

func migratePostgres(ctx context.Context, cfg Config, down bool) error {
	db, err := postgres.OpenDB(ctx, cfg.DSN, cfg.AutoCreate)
	if err != nil {
		return err
	}
	defer db.Close()
	if down {
		return postgres.MigrateDown(db)
	}
	return postgres.Migrate(db)
}

func migrateSQLite(ctx context.Context, cfg Config, down bool) error {
	db, err := sqlite.OpenDB(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer db.Close()
	if down {
		return sqlite.MigrateDown(db)
	}
	return sqlite.Migrate(db)
}

func migrateClickhouse(_ context.Context, cfg Config, down bool) error {
	db, err := clickhouse.OpenDB(cfg.DSN)
	if err != nil {
		return err
	}
	defer db.Close()
	if down {
		return clickhouse.MigrateDown(db)
	}
	return clickhouse.Migrate(db)
}
