package scanner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainClient interface {
		ChainInfo(ctx context.Context) (model.ChainInfo, error)
		BlockHash(ctx context.Context, height uint64) (string, error)
		Block(ctx context.Context, hash string) (*model.Block, error)
	}
	CheckpointStore interface {
		SaveScanPosition(ctx context.Context, blockNumber uint64, outputIndex int64, transactionIndex uint32) error
		LoadScanPosition(ctx context.Context) (model.ScanPosition, bool, error)
		AppendRecord(ctx context.Context, markerPayload, txID, txHash, blockHash string) error
	}
	Metrics interface {
		ObserveBlock(height uint64, started time.Time)
		ObserveFetchRetry(height uint64)
		ObserveOutput(matched bool)
		ObserveCheckpoint(position model.ScanPosition)
	}
)
