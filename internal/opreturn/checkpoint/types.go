package checkpoint

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
)

type (
	// Repository is a storage backend for scan positions and discovered records.
	Repository interface {
		SelectPosition(ctx context.Context) (model.PositionRow, bool, error)
		InsertPosition(ctx context.Context, position model.ScanPosition) (int64, error)
		UpdatePosition(ctx context.Context, id int64, position model.ScanPosition) error
		InsertRecord(ctx context.Context, record model.DiscoveredRecord) error
		RecordsByPayload(ctx context.Context, payload string) ([]model.DiscoveredRecord, error)
		Ping(ctx context.Context) error
	}
)
