package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
	"github.com/goodnatureofminers/opreturn-indexer/pkg/safe"
)

// SelectPosition returns the persisted scan position row, if any.
func (r *Repository) SelectPosition(ctx context.Context) (row model.PositionRow, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("select_position", err, start)
	}()

	const query = `
SELECT pk, blocknumber, voindex, txindex
FROM lastblock
ORDER BY pk
LIMIT 1`

	var (
		block int64
		tx    int64
	)
	err = r.db.QueryRowContext(ctx, query).Scan(&row.ID, &block, &row.Position.OutputIndex, &tx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PositionRow{}, false, nil
	}
	if err != nil {
		return model.PositionRow{}, false, fmt.Errorf("query scan position: %w", markUnavailable(err))
	}

	if row.Position.BlockNumber, err = safe.Uint64(block); err != nil {
		return model.PositionRow{}, false, fmt.Errorf("scan position block: %w", err)
	}
	if row.Position.TransactionIndex, err = safe.Uint32(tx); err != nil {
		return model.PositionRow{}, false, fmt.Errorf("scan position transaction: %w", err)
	}
	return row, true, nil
}

// InsertPosition creates the scan position row and returns its identity.
func (r *Repository) InsertPosition(ctx context.Context, position model.ScanPosition) (id int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_position", err, start)
	}()

	block, err := safe.Int64(position.BlockNumber)
	if err != nil {
		return 0, fmt.Errorf("scan position block: %w", err)
	}

	const query = `
INSERT INTO lastblock (blocknumber, voindex, txindex)
VALUES ($1, $2, $3)
RETURNING pk`

	if err = r.db.QueryRowContext(ctx, query, block, position.OutputIndex, int64(position.TransactionIndex)).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert scan position: %w", markUnavailable(err))
	}
	return id, nil
}

// UpdatePosition overwrites the scan position row identified by id.
func (r *Repository) UpdatePosition(ctx context.Context, id int64, position model.ScanPosition) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("update_position", err, start)
	}()

	block, err := safe.Int64(position.BlockNumber)
	if err != nil {
		return fmt.Errorf("scan position block: %w", err)
	}

	const query = `
UPDATE lastblock
SET blocknumber = $1, voindex = $2, txindex = $3
WHERE pk = $4`

	res, err := r.db.ExecContext(ctx, query, block, position.OutputIndex, int64(position.TransactionIndex), id)
	if err != nil {
		return fmt.Errorf("update scan position: %w", markUnavailable(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update scan position rows affected: %w", err)
	}
	if affected != 1 {
		err = fmt.Errorf("update scan position: row %d not found", id)
		return err
	}
	return nil
}
