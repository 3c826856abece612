package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
)

// InsertRecord appends a discovered record.
func (r *Repository) InsertRecord(ctx context.Context, record model.DiscoveredRecord) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_record", err, start)
	}()

	const query = `
INSERT INTO blocktransactions (opreturn, txid, txhash, blockhash)
VALUES (?, ?, ?, ?)`

	if _, err = r.db.ExecContext(ctx, query, record.MarkerPayload, record.TransactionID, record.TransactionHash, record.BlockHash); err != nil {
		return fmt.Errorf("insert record: %w", markUnavailable(err))
	}
	return nil
}

// RecordsByPayload returns records whose payload equals payload, oldest first.
func (r *Repository) RecordsByPayload(ctx context.Context, payload string) (records []model.DiscoveredRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("records_by_payload", err, start)
	}()

	const query = `
SELECT opreturn, txid, txhash, blockhash
FROM blocktransactions
WHERE opreturn = ?
ORDER BY pk`

	rows, err := r.db.QueryContext(ctx, query, payload)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", markUnavailable(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	records = make([]model.DiscoveredRecord, 0)
	for rows.Next() {
		var rec model.DiscoveredRecord
		if err = rows.Scan(&rec.MarkerPayload, &rec.TransactionID, &rec.TransactionHash, &rec.BlockHash); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", markUnavailable(err))
	}
	return records, nil
}
