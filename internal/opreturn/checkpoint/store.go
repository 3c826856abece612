// Package checkpoint persists the scan position and discovered records.
package checkpoint

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
	"go.uber.org/zap"
)

// positionState tracks whether the persisted position row is known.
type positionState interface {
	isPositionState()
}

// uninitializedPosition means the position table has not been consulted yet.
type uninitializedPosition struct{}

// trackedPosition holds the identity of the row every save updates.
type trackedPosition struct {
	id int64
}

func (uninitializedPosition) isPositionState() {}
func (trackedPosition) isPositionState()       {}

// Store saves scan progress and discovered records through a Repository.
type Store struct {
	repo   Repository
	logger *zap.Logger

	mu    sync.Mutex
	state positionState
}

// NewStore constructs a Store that has not looked at the position table yet.
func NewStore(repo Repository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		repo:   repo,
		logger: logger.Named("checkpoint"),
		state:  uninitializedPosition{},
	}
}

// SaveScanPosition durably records the last examined output.
func (s *Store) SaveScanPosition(ctx context.Context, blockNumber uint64, outputIndex int64, transactionIndex uint32) error {
	position := model.ScanPosition{
		BlockNumber:      blockNumber,
		TransactionIndex: transactionIndex,
		OutputIndex:      outputIndex,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch state := s.state.(type) {
	case trackedPosition:
		return wrapError("update scan position", s.repo.UpdatePosition(ctx, state.id, position))
	case uninitializedPosition:
		return s.initialize(ctx, position)
	default:
		panic("checkpoint: unknown position state")
	}
}

func (s *Store) initialize(ctx context.Context, position model.ScanPosition) error {
	row, found, err := s.repo.SelectPosition(ctx)
	if err != nil {
		return wrapError("select scan position", err)
	}

	if !found {
		id, err := s.repo.InsertPosition(ctx, position)
		if err != nil {
			return wrapError("insert scan position", err)
		}
		s.state = trackedPosition{id: id}
		s.logger.Info("scan position created", zap.Int64("id", id), zap.Stringer("position", position))
		return nil
	}

	s.state = trackedPosition{id: row.ID}
	s.logger.Debug("tracking existing scan position", zap.Int64("id", row.ID), zap.Stringer("previous", row.Position))
	return wrapError("update scan position", s.repo.UpdatePosition(ctx, row.ID, position))
}

// LoadScanPosition returns the persisted position, or false when none exists yet.
func (s *Store) LoadScanPosition(ctx context.Context) (model.ScanPosition, bool, error) {
	row, found, err := s.repo.SelectPosition(ctx)
	if err != nil {
		return model.ScanPosition{}, false, wrapError("load scan position", err)
	}
	if !found {
		return model.ScanPosition{}, false, nil
	}
	return row.Position, true, nil
}

// AppendRecord durably stores a discovered marker output.
func (s *Store) AppendRecord(ctx context.Context, markerPayload, txID, txHash, blockHash string) error {
	record := model.DiscoveredRecord{
		MarkerPayload:   markerPayload,
		TransactionID:   txID,
		TransactionHash: txHash,
		BlockHash:       blockHash,
	}
	return wrapError("append record", s.repo.InsertRecord(ctx, record))
}

// FindRecords returns every record whose payload equals markerPayload.
func (s *Store) FindRecords(ctx context.Context, markerPayload string) ([]model.DiscoveredRecord, error) {
	records, err := s.repo.RecordsByPayload(ctx, markerPayload)
	if err != nil {
		return nil, wrapError("find records", err)
	}
	return records, nil
}

// Ping reports whether the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return wrapError("ping", s.repo.Ping(ctx))
}
