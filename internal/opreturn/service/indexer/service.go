// Package indexer keeps the scanner running against a growing chain.
package indexer

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/clock"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/checkpoint"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/service/scanner"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval = time.Second
	DefaultRetryDelay   = time.Second
)

// ErrNoStartingPoint is returned when no start block is configured and nothing has been scanned yet.
var ErrNoStartingPoint = errors.New("no starting block given and no persisted scan position")

// Config tunes the service loop.
type Config struct {
	// StartBlock overrides the persisted position when set.
	StartBlock    *uint64
	PollInterval  time.Duration
	RetryDelay    time.Duration
	RetryMaxDelay time.Duration
}

// Service drives scan passes to the tip and waits for new blocks in between.
type Service struct {
	scanner      Scanner
	chain        ChainInfoSource
	positions    PositionLoader
	metrics      Metrics
	logger       *zap.Logger
	startBlock   *uint64
	pollInterval time.Duration
	backoff      *clock.Backoff
	sleep        clock.SleepFunc
	blockSignal  <-chan struct{}
}

// NewService builds a Service with dependencies. blockSignal may be nil.
func NewService(
	scan Scanner,
	chain ChainInfoSource,
	positions PositionLoader,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Service, error) {
	if scan == nil {
		return nil, errors.New("scanner is required")
	}
	if chain == nil {
		return nil, errors.New("chain info source is required")
	}
	if positions == nil {
		return nil, errors.New("position loader is required")
	}
	if metrics == nil {
		return nil, errors.New("indexer metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	return &Service{
		scanner:      scan,
		chain:        chain,
		positions:    positions,
		metrics:      metrics,
		logger:       logger.Named("indexer"),
		startBlock:   cfg.StartBlock,
		pollInterval: cfg.PollInterval,
		backoff:      clock.NewBackoff(cfg.RetryDelay, cfg.RetryMaxDelay),
		sleep:        clock.SleepWithContext,
		blockSignal:  blockSignal,
	}, nil
}

// Run scans until the context is canceled. It returns early only for
// ErrNoStartingPoint, a *scanner.UnavailableError or a non-transient
// failure while reading the persisted position.
func (s *Service) Run(ctx context.Context) error {
	start, err := s.resolveStart(ctx)
	if err != nil {
		return err
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		started := time.Now()
		last, err := s.scanner.ScanToTip(ctx, start)
		s.metrics.ObservePass(err, last, started)
		if err != nil {
			var unavailable *scanner.UnavailableError
			if errors.As(err, &unavailable) {
				s.logger.Error("start block is below the pruned height",
					zap.Uint64("start", unavailable.Requested),
					zap.Uint64("pruned_height", unavailable.PrunedHeight),
				)
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}

			delay := s.backoff.Next()
			s.logger.Warn("scan pass failed, backing off", zap.Error(err), zap.Duration("sleep", delay))
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		s.backoff.Reset()

		s.logger.Info("caught up with chain tip", zap.Uint64("last_scanned", last))
		tip, err := s.waitForNewHeight(ctx, last)
		if err != nil {
			return err
		}
		s.logger.Info("new block height observed", zap.Uint64("tip", tip))
		start = last + 1
	}
}

func (s *Service) resolveStart(ctx context.Context) (uint64, error) {
	if s.startBlock != nil {
		s.logger.Info("starting from configured block", zap.Uint64("start", *s.startBlock))
		return *s.startBlock, nil
	}

	for {
		position, found, err := s.positions.LoadScanPosition(ctx)
		if err == nil {
			s.backoff.Reset()
			if !found {
				return 0, ErrNoStartingPoint
			}
			s.logger.Info("starting from persisted position", zap.Stringer("position", position))
			return position.BlockNumber, nil
		}

		var connErr *checkpoint.ConnectionError
		if !errors.As(err, &connErr) {
			return 0, err
		}
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}

		delay := s.backoff.Next()
		s.logger.Warn("load scan position failed, retrying", zap.Error(err), zap.Duration("sleep", delay))
		if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
			return 0, sleepErr
		}
	}
}

// waitForNewHeight polls the chain until its tip is above height and returns the tip.
// Poll failures are retried until the context ends.
func (s *Service) waitForNewHeight(ctx context.Context, height uint64) (uint64, error) {
	for {
		info, err := s.chain.ChainInfo(ctx)
		s.metrics.ObserveTipPoll(err)
		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			delay := s.backoff.Next()
			s.logger.Warn("chain tip poll failed, retrying", zap.Error(err), zap.Duration("sleep", delay))
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return 0, sleepErr
			}
			continue
		}
		s.backoff.Reset()

		if info.TipHeight > height {
			return info.TipHeight, nil
		}
		s.logger.Debug("no new blocks", zap.Uint64("tip", info.TipHeight), zap.Duration("sleep", s.pollInterval))
		if err := s.wait(ctx, s.pollInterval); err != nil {
			return 0, err
		}
	}
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if s.blockSignal == nil {
		return s.sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.blockSignal:
		return nil
	case <-timer.C:
		return nil
	}
}
