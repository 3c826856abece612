package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/repository/postgres"
)

// Options are the store settings shared by every binary, parsed with go-flags.
// Postgres may be configured by discrete settings; the other drivers need a DSN.
type Options struct {
	Driver       string `long:"store-driver" env:"STORE_DRIVER" description:"checkpoint store backend" choice:"postgres" choice:"sqlite" choice:"clickhouse" default:"postgres"`
	DSN          string `long:"dsn" env:"DSN" description:"store DSN; overrides the discrete postgres settings"`
	DBHost       string `long:"db-host" env:"DB_HOST" description:"postgres host"`
	DBPort       int    `long:"db-port" env:"DB_PORT" description:"postgres port" default:"5432"`
	DBName       string `long:"db-name" env:"DB_NAME" description:"postgres database name"`
	DBUser       string `long:"db-user" env:"DB_USER" description:"postgres user"`
	DBPassword   string `long:"db-password" env:"DB_PASSWORD" description:"postgres password"`
	DBAutoCreate bool   `long:"db-auto-create" env:"DB_AUTO_CREATE" description:"create the postgres database when it does not exist"`
}

// Config validates the options and resolves the DSN.
func (o Options) Config() (Config, error) {
	cfg := Config{Driver: o.Driver, DSN: o.DSN, AutoCreate: o.DBAutoCreate}
	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	if _, ok := openers[cfg.Driver]; !ok {
		return Config{}, fmt.Errorf("unknown store driver %q, supported: %v", cfg.Driver, Drivers())
	}
	if cfg.DSN != "" {
		return cfg, nil
	}
	if cfg.Driver != DriverPostgres {
		return Config{}, fmt.Errorf("--dsn is required for store driver %s", cfg.Driver)
	}

	var missing []string
	if o.DBHost == "" {
		missing = append(missing, "--db-host")
	}
	if o.DBPort <= 0 {
		missing = append(missing, "--db-port")
	}
	if o.DBName == "" {
		missing = append(missing, "--db-name")
	}
	if o.DBUser == "" {
		missing = append(missing, "--db-user")
	}
	if o.DBPassword == "" {
		missing = append(missing, "--db-password")
	}
	if len(missing) > 0 {
		return Config{}, errors.New("missing store settings: " + strings.Join(missing, ", "))
	}

	cfg.DSN = postgres.DSN(o.DBHost, o.DBPort, o.DBName, o.DBUser, o.DBPassword)
	return cfg, nil
}
