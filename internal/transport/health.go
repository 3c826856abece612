package transport

import (
	"context"
	"time"

	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall status.
const ServiceName = "opreturn.v1.Records"

// HealthUpdater mirrors store reachability into a gRPC health server.
type HealthUpdater struct {
	pinger   Pinger
	status   StatusSetter
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	serving  *bool
}

// NewHealthUpdater returns a HealthUpdater that pings every interval.
func NewHealthUpdater(pinger Pinger, status StatusSetter, interval time.Duration, logger *zap.Logger) *HealthUpdater {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &HealthUpdater{
		pinger:   pinger,
		status:   status,
		interval: interval,
		timeout:  interval,
		logger:   logger.Named("health"),
	}
}

// Run checks the store immediately and then on every tick until ctx is done.
func (u *HealthUpdater) Run(ctx context.Context) {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		u.Check(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Check pings the store once and publishes the result.
func (u *HealthUpdater) Check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	err := u.pinger.Ping(pingCtx)
	serving := err == nil

	status := healthpb.HealthCheckResponse_SERVING
	if !serving {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	u.status.SetServingStatus("", status)
	u.status.SetServingStatus(ServiceName, status)

	if u.serving != nil && *u.serving == serving {
		return
	}
	u.serving = &serving
	if serving {
		u.logger.Info("store reachable")
	} else {
		u.logger.Warn("store unreachable", zap.Error(err))
	}
}
