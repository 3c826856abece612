package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
)

func selectPositionQuery() string {
	return `
SELECT pk, blocknumber, voindex, txindex, version
FROM lastblock FINAL
ORDER BY pk
LIMIT 1`
}

func writePositionQuery() string {
	return `
INSERT INTO lastblock (pk, blocknumber, voindex, txindex, version)
VALUES (?, ?, ?, ?, ?)`
}

// SelectPosition returns the latest version of the scan position row, if any.
func (r *Repository) SelectPosition(ctx context.Context) (row model.PositionRow, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("select_position", err, start)
	}()

	rows, err := r.conn.Query(ctx, selectPositionQuery())
	if err != nil {
		return model.PositionRow{}, false, fmt.Errorf("query scan position: %w", markUnavailable(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.PositionRow{}, false, fmt.Errorf("iterate scan position: %w", markUnavailable(err))
		}
		return model.PositionRow{}, false, nil
	}
	var version uint64
	if err = rows.Scan(&row.ID, &row.Position.BlockNumber, &row.Position.OutputIndex, &row.Position.TransactionIndex, &version); err != nil {
		return model.PositionRow{}, false, fmt.Errorf("scan scan position: %w", err)
	}
	r.observeVersion(version)
	return row, true, nil
}

// InsertPosition creates the scan position row under a client generated identity.
func (r *Repository) InsertPosition(ctx context.Context, position model.ScanPosition) (id int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_position", err, start)
	}()

	id = r.newID()
	if err = r.writePosition(ctx, id, position); err != nil {
		return 0, fmt.Errorf("insert scan position: %w", err)
	}
	return id, nil
}

// UpdatePosition writes a newer version of the row identified by id.
func (r *Repository) UpdatePosition(ctx context.Context, id int64, position model.ScanPosition) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("update_position", err, start)
	}()

	if err = r.writePosition(ctx, id, position); err != nil {
		return fmt.Errorf("update scan position: %w", err)
	}
	return nil
}

func (r *Repository) writePosition(ctx context.Context, id int64, position model.ScanPosition) error {
	err := r.conn.Exec(ctx, writePositionQuery(),
		id,
		position.BlockNumber,
		position.OutputIndex,
		position.TransactionIndex,
		r.version.Add(1),
	)
	return markUnavailable(err)
}

// observeVersion makes later writes outrank a version already stored.
func (r *Repository) observeVersion(seen uint64) {
	for {
		current := r.version.Load()
		if seen <= current || r.version.CompareAndSwap(current, seen) {
			return
		}
	}
}
