package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiLookupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "lookup_total",
		Help:      "Count of record lookups served by the read API.",
	}, []string{"status"})

	apiLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "lookup_duration_seconds",
		Help:      "Duration of record lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	apiLookupResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "lookup_results",
		Help:      "Number of records returned per lookup.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})
)

// API tracks metrics for the read API.
type API struct{}

// NewAPI creates an API collector.
func NewAPI() *API {
	return &API{}
}

// ObserveLookup records a lookup outcome.
func (m API) ObserveLookup(err error, results int, started time.Time) {
	status := statusOf(err)
	apiLookupTotal.WithLabelValues(status).Inc()
	apiLookupDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		apiLookupResults.Observe(float64(results))
	}
}
