package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of checkpoint store operations.",
	}, []string{"operation", "driver", "status"})
	repositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of checkpoint store operations.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "driver", "status"})
)

// Repository tracks metrics for checkpoint store backends.
type Repository struct {
	driver string
}

// NewRepository creates a Repository metrics collector for a storage driver.
func NewRepository(driver string) *Repository {
	if driver == "" {
		driver = "unknown"
	}
	return &Repository{driver: driver}
}

// Observe records duration and status of a repository operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	repositoryRequestsTotal.WithLabelValues(operation, m.driver, status).Inc()
	repositoryRequestDuration.WithLabelValues(operation, m.driver, status).Observe(time.Since(started).Seconds())
}
