// Package clickhouse implements the checkpoint repository on ClickHouse.
package clickhouse

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/google/uuid"
)

// Repository stores scan positions and records in ClickHouse.
// Position versions come from version, which only moves forward within a process
// and is raised past every version SelectPosition reads.
type Repository struct {
	conn    Conn
	metrics Metrics
	newID   func() int64
	version atomic.Uint64
}

// NewRepository opens a native connection for dsn.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	options, err := parseDSN(dsn)
	if err != nil {
		return nil, err
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics, newID: newPositionID}, nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// OpenDB opens a database/sql handle for dsn, as required by the migration driver.
func OpenDB(dsn string) (*sql.DB, error) {
	options, err := parseDSN(dsn)
	if err != nil {
		return nil, err
	}
	return clickhouse.OpenDB(options), nil
}

func parseDSN(dsn string) (*clickhouse.Options, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}
	return options, nil
}

// newPositionID derives a positive identity from a random UUID.
func newPositionID() int64 {
	id := uuid.New()
	return int64(binary.BigEndian.Uint64(id[:8]) &^ (1 << 63))
}
