package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
)

func insertRecordQuery() string {
	return `
INSERT INTO blocktransactions (opreturn, txid, txhash, blockhash)
VALUES (?, ?, ?, ?)`
}

func recordsByPayloadQuery() string {
	return `
SELECT opreturn, txid, txhash, blockhash
FROM blocktransactions
WHERE opreturn = ?
ORDER BY created_at, pk`
}

// InsertRecord appends a discovered record.
func (r *Repository) InsertRecord(ctx context.Context, record model.DiscoveredRecord) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_record", err, start)
	}()

	err = r.conn.Exec(ctx, insertRecordQuery(), record.MarkerPayload, record.TransactionID, record.TransactionHash, record.BlockHash)
	if err != nil {
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

	rows, err := r.conn.Query(ctx, recordsByPayloadQuery(), payload)
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

// Ping checks that the server is reachable.
func (r *Repository) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("ping", err, start)
	}()

	if err = r.conn.Ping(ctx); err != nil {
		return markUnavailable(err)
	}
	return nil
}
