package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RecordFinder interface {
		FindRecords(ctx context.Context, markerPayload string) ([]model.DiscoveredRecord, error)
	}
	LookupMetrics interface {
		ObserveLookup(err error, results int, started time.Time)
	}
	Pinger interface {
		Ping(ctx context.Context) error
	}
	StatusSetter interface {
		SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
	}
)
