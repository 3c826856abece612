package metrics

import (
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerPassTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "scan_pass_total",
		Help:      "Count of scan passes to the chain tip.",
	}, []string{"network", "status"})

	indexerPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "scan_pass_duration_seconds",
		Help:      "Duration of a scan pass to the chain tip.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14),
	}, []string{"network", "status"})

	indexerTipPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "tip_poll_total",
		Help:      "Count of chain tip polls while waiting for new blocks.",
	}, []string{"network", "status"})

	indexerLastScanned = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "last_scanned_height",
		Help:      "Last fully scanned block height.",
	}, []string{"network"})
)

// Indexer tracks metrics for the service loop.
type Indexer struct {
	network model.Network
}

// NewIndexer constructs an Indexer collector.
func NewIndexer(network model.Network) *Indexer {
	if network == "" {
		network = "unknown"
	}
	return &Indexer{network: network}
}

// ObservePass records a scan pass outcome, duration and reached height.
func (m Indexer) ObservePass(err error, lastScanned uint64, started time.Time) {
	status := statusOf(err)
	indexerPassTotal.WithLabelValues(string(m.network), status).Inc()
	indexerPassDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		indexerLastScanned.WithLabelValues(string(m.network)).Set(float64(lastScanned))
	}
}

// ObserveTipPoll records a chain tip poll.
func (m Indexer) ObserveTipPoll(err error) {
	indexerTipPollTotal.WithLabelValues(string(m.network), statusOf(err)).Inc()
}
