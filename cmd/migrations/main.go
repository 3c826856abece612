// Package main applies the embedded store schema of the selected backend.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/repository"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Down  bool               `long:"down" env:"MIGRATIONS_DOWN" description:"revert every migration instead of applying them"`
	Store repository.Options `group:"Store" env-namespace:"MIGRATIONS"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(255)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(ctx, cfg, logger); err != nil {
		logger.Fatal("migration run failed", zap.Error(err))
	}
}

func runMigrations(ctx context.Context, cfg config, logger *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	storeCfg, err := cfg.Store.Config()
	if err != nil {
		return err
	}
	if err := repository.Migrate(ctx, storeCfg, cfg.Down); err != nil {
		return err
	}

	if cfg.Down {
		logger.Info("migrations reverted", zap.String("driver", storeCfg.Driver))
	} else {
		logger.Info("migrations applied", zap.String("driver", storeCfg.Driver))
	}
	return nil
}
