// Package scanner walks the chain block by block and records marker outputs.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/clock"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
	"github.com/goodnatureofminers/opreturn-indexer/pkg/safe"
	"go.uber.org/zap"
)

// Config tunes a Scanner. Zero values fall back to the defaults.
type Config struct {
	Marker          string
	BlockRetryDelay time.Duration
}

// Scanner scans blocks sequentially, checkpointing after every output.
type Scanner struct {
	chain           ChainClient
	store           CheckpointStore
	metrics         Metrics
	logger          *zap.Logger
	marker          string
	blockRetryDelay time.Duration
	sleep           clock.SleepFunc
}

// NewScanner builds a Scanner with dependencies.
func NewScanner(chain ChainClient, store CheckpointStore, metrics Metrics, cfg Config, logger *zap.Logger) (*Scanner, error) {
	if chain == nil {
		return nil, errors.New("chain client is required")
	}
	if store == nil {
		return nil, errors.New("checkpoint store is required")
	}
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}
	if cfg.BlockRetryDelay <= 0 {
		cfg.BlockRetryDelay = DefaultBlockRetryDelay
	}

	return &Scanner{
		chain:           chain,
		store:           store,
		metrics:         metrics,
		logger:          logger.Named("scanner"),
		marker:          cfg.Marker,
		blockRetryDelay: cfg.BlockRetryDelay,
		sleep:           clock.SleepWithContext,
	}, nil
}

// ScanToTip scans from start, or from the persisted position when it is
// further ahead, up to the tip observed at the beginning of the pass.
// It returns the height of the last fully scanned block.
func (s *Scanner) ScanToTip(ctx context.Context, start uint64) (uint64, error) {
	info, err := s.chain.ChainInfo(ctx)
	if err != nil {
		return 0, fmt.Errorf("chain info: %w", err)
	}
	if start < info.PrunedHeight {
		return 0, &UnavailableError{Requested: start, PrunedHeight: info.PrunedHeight}
	}

	persisted, found, err := s.store.LoadScanPosition(ctx)
	if err != nil {
		return 0, fmt.Errorf("load scan position: %w", err)
	}

	cur := newCursor(start, persisted, found)
	if cur.pending {
		s.logger.Info("resuming from persisted position", zap.Stringer("position", persisted))
	}
	s.logger.Debug("scan pass started",
		zap.Uint64("from", cur.block),
		zap.Uint64("tip", info.TipHeight),
		zap.Uint64("pruned_height", info.PrunedHeight),
	)

	for cur.block <= info.TipHeight {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := s.scanBlock(ctx, &cur); err != nil {
			return 0, err
		}
		cur.advance()
	}

	if cur.block == 0 {
		return 0, nil
	}
	return cur.block - 1, nil
}

func (s *Scanner) scanBlock(ctx context.Context, cur *cursor) error {
	height := cur.block
	started := time.Now()

	block, err := s.fetchBlock(ctx, height)
	if err != nil {
		return err
	}

	txCount, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return fmt.Errorf("block %d transaction count: %w", height, err)
	}

	found := 0
	for txIndex := cur.firstTransaction(height); txIndex < txCount; txIndex++ {
		n, err := s.scanTransaction(ctx, cur, block, height, txIndex)
		if err != nil {
			return err
		}
		found += n
	}

	s.metrics.ObserveBlock(height, started)
	s.logger.Debug("block scanned",
		zap.Uint64("height", height),
		zap.String("hash", block.Hash),
		zap.Int("transactions", len(block.Transactions)),
		zap.Int("records", found),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

func (s *Scanner) scanTransaction(ctx context.Context, cur *cursor, block *model.Block, height uint64, txIndex uint32) (int, error) {
	tx := block.Transactions[txIndex]
	outStart, resumed := cur.firstOutput(height, txIndex)
	outputs := int64(len(tx.Outputs))

	if resumed && outStart >= outputs {
		return 0, nil
	}
	if len(tx.Outputs) == 0 {
		return 0, s.checkpoint(ctx, height, txIndex, model.NoOutput)
	}

	found := 0
	for vout := outStart; vout < outputs; vout++ {
		output := tx.Outputs[vout]
		payload, matched := extractPayload(output.ScriptAsm, s.marker)
		s.metrics.ObserveOutput(matched)
		if matched {
			if err := s.store.AppendRecord(ctx, payload, tx.ID, tx.Hash, block.Hash); err != nil {
				return found, fmt.Errorf("block %d tx %d vout %d: append record: %w", height, txIndex, vout, err)
			}
			found++
			s.logger.Info("marker output found",
				zap.Uint64("height", height),
				zap.Uint32("tx_index", txIndex),
				zap.Int64("vout", vout),
				zap.String("txid", tx.ID),
				zap.String("payload", payload),
			)
		}
		if err := s.checkpoint(ctx, height, txIndex, vout); err != nil {
			return found, err
		}
	}
	return found, nil
}

func (s *Scanner) checkpoint(ctx context.Context, height uint64, txIndex uint32, vout int64) error {
	if err := s.store.SaveScanPosition(ctx, height, vout, txIndex); err != nil {
		return fmt.Errorf("block %d tx %d vout %d: save scan position: %w", height, txIndex, vout, err)
	}
	s.metrics.ObserveCheckpoint(model.ScanPosition{BlockNumber: height, TransactionIndex: txIndex, OutputIndex: vout})
	return nil
}

// fetchBlock resolves and downloads the block at height, retrying in place until it succeeds.
func (s *Scanner) fetchBlock(ctx context.Context, height uint64) (*model.Block, error) {
	for {
		block, err := s.tryFetchBlock(ctx, height)
		if err == nil {
			return block, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		s.metrics.ObserveFetchRetry(height)
		s.logger.Warn("fetch block failed, retrying",
			zap.Uint64("height", height),
			zap.Error(err),
			zap.Duration("sleep", s.blockRetryDelay),
		)
		if err := s.sleep(ctx, s.blockRetryDelay); err != nil {
			return nil, err
		}
	}
}

func (s *Scanner) tryFetchBlock(ctx context.Context, height uint64) (*model.Block, error) {
	hash, err := s.chain.BlockHash(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("block hash %d: %w", height, err)
	}
	block, err := s.chain.Block(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", hash, err)
	}
	return block, nil
}
