package indexer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Scanner interface {
		ScanToTip(ctx context.Context, start uint64) (uint64, error)
	}
	ChainInfoSource interface {
		ChainInfo(ctx context.Context) (model.ChainInfo, error)
	}
	PositionLoader interface {
		LoadScanPosition(ctx context.Context) (model.ScanPosition, bool, error)
	}
	Metrics interface {
		ObservePass(err error, lastScanned uint64, started time.Time)
		ObserveTipPoll(err error)
	}
)
