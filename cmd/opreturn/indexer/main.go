// Package main runs the OP_RETURN indexer.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/opreturn-indexer/internal/metrics"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/bitcoin"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/checkpoint"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/repository"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/service/indexer"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/service/scanner"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	exitFailure     = 1
	exitUnavailable = 2
	exitConfig      = 255
)

type config struct {
	RPCHost         string        `long:"rpc-host" env:"OPRETURN_INDEXER_RPC_HOST" description:"chain daemon RPC host"`
	RPCPort         int           `long:"rpc-port" env:"OPRETURN_INDEXER_RPC_PORT" description:"chain daemon RPC port" default:"8332"`
	RPCUser         string        `long:"rpc-user" env:"OPRETURN_INDEXER_RPC_USER" description:"chain daemon RPC username"`
	RPCPassword     string        `long:"rpc-password" env:"OPRETURN_INDEXER_RPC_PASSWORD" description:"chain daemon RPC password"`
	RPCRPS          int           `long:"rpc-rps" env:"OPRETURN_INDEXER_RPC_RPS" description:"max RPC requests per second, 0 for unlimited" default:"0"`
	Network         string        `long:"network" env:"OPRETURN_INDEXER_NETWORK" description:"network label for metrics" default:"main"`
	Marker          string        `long:"marker" env:"OPRETURN_INDEXER_MARKER" description:"script asm prefix that marks a data output" default:"OP_RETURN"`
	PollInterval    time.Duration `long:"poll-interval" env:"OPRETURN_INDEXER_POLL_INTERVAL" description:"chain tip poll interval" default:"1s"`
	RetryDelay      time.Duration `long:"retry-delay" env:"OPRETURN_INDEXER_RETRY_DELAY" description:"delay before retrying a failed pass or poll" default:"1s"`
	RetryMaxDelay   time.Duration `long:"retry-max-delay" env:"OPRETURN_INDEXER_RETRY_MAX_DELAY" description:"cap for exponential retry delay, 0 keeps the delay constant" default:"0s"`
	BlockRetryDelay time.Duration `long:"block-retry-delay" env:"OPRETURN_INDEXER_BLOCK_RETRY_DELAY" description:"delay before refetching a block" default:"1s"`
	ZMQAddr         string        `long:"zmq-addr" env:"OPRETURN_INDEXER_ZMQ_ADDR" description:"zmq hashblock endpoint used to wake the tip poll"`
	MetricsAddr     string        `long:"metrics-addr" env:"OPRETURN_INDEXER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	Migrate         bool          `long:"migrate" env:"OPRETURN_INDEXER_MIGRATE" description:"apply store migrations before indexing"`
	LogJSON         bool          `long:"log-json" env:"OPRETURN_INDEXER_LOG_JSON" description:"log in production JSON format"`

	Store repository.Options `group:"Store" env-namespace:"OPRETURN_INDEXER"`

	Args struct {
		StartBlock string `positional-arg-name:"START_BLOCK" description:"block to start from; defaults to the persisted position"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(execute())
}

func execute() int {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return 0
		}
		return exitConfig
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, "can't initialize zap logger:", err)
		return exitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	start, storeCfg, err := cfg.validate()
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return exitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return exitCode(run(ctx, cfg, start, storeCfg, logger), logger)
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// validate reports missing settings and parses the optional start block.
func (c config) validate() (*uint64, repository.Config, error) {
	var missing []string
	if c.RPCHost == "" {
		missing = append(missing, "--rpc-host")
	}
	if c.RPCPort <= 0 {
		missing = append(missing, "--rpc-port")
	}
	if c.RPCUser == "" {
		missing = append(missing, "--rpc-user")
	}
	if c.RPCPassword == "" {
		missing = append(missing, "--rpc-password")
	}
	if len(missing) > 0 {
		return nil, repository.Config{}, errors.New("missing chain settings: " + strings.Join(missing, ", "))
	}

	storeCfg, err := c.Store.Config()
	if err != nil {
		return nil, repository.Config{}, err
	}

	if c.Args.StartBlock == "" {
		return nil, storeCfg, nil
	}
	start, err := strconv.ParseUint(c.Args.StartBlock, 10, 64)
	if err != nil {
		return nil, repository.Config{}, fmt.Errorf("invalid START_BLOCK %q: %w", c.Args.StartBlock, err)
	}
	return &start, storeCfg, nil
}

func exitCode(err error, logger *zap.Logger) int {
	var unavailable *scanner.UnavailableError
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		logger.Info("indexer stopped")
		return 0
	case errors.Is(err, indexer.ErrNoStartingPoint):
		logger.Error("cannot start indexing", zap.Error(err))
		return exitConfig
	case errors.As(err, &unavailable):
		logger.Error("block data unavailable", zap.Error(err))
		return exitUnavailable
	default:
		logger.Error("indexer failed", zap.Error(err))
		return exitFailure
	}
}

func run(ctx context.Context, cfg config, start *uint64, storeCfg repository.Config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	if cfg.Migrate {
		if err := repository.Migrate(ctx, storeCfg, false); err != nil {
			return fmt.Errorf("migrate store: %w", err)
		}
	}

	repo, err := repository.Open(ctx, storeCfg, metrics.NewRepository(storeCfg.Driver))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()
	store := checkpoint.NewStore(repo, logger)

	rpcClient, err := rpcclient.New(bitcoin.ConnConfig(net.JoinHostPort(cfg.RPCHost, strconv.Itoa(cfg.RPCPort)), cfg.RPCUser, cfg.RPCPassword), nil)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()

	network := model.Network(cfg.Network)
	chain := bitcoin.NewClient(rpcClient, metrics.NewRPCClient(network), bitcoin.NewLimiter(cfg.RPCRPS))

	scan, err := scanner.NewScanner(chain, store, metrics.NewScanner(network), scanner.Config{
		Marker:          cfg.Marker,
		BlockRetryDelay: cfg.BlockRetryDelay,
	}, logger)
	if err != nil {
		return err
	}

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return fmt.Errorf("start block signal: %w", err)
	}

	svc, err := indexer.NewService(scan, chain, store, metrics.NewIndexer(network), indexer.Config{
		StartBlock:    start,
		PollInterval:  cfg.PollInterval,
		RetryDelay:    cfg.RetryDelay,
		RetryMaxDelay: cfg.RetryMaxDelay,
	}, logger, blockSignal)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
