package metrics

import (
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "blocks_total",
		Help:      "Count of fully scanned blocks.",
	}, []string{"network"})

	scannerBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "block_duration_seconds",
		Help:      "Duration of scanning a single block, fetch included.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
	}, []string{"network"})

	scannerBlockFetchRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "block_fetch_retries_total",
		Help:      "Count of block fetch failures retried in place.",
	}, []string{"network"})

	scannerOutputsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "outputs_total",
		Help:      "Count of examined transaction outputs.",
	}, []string{"network", "marker"})

	scannerCheckpointsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "checkpoints_total",
		Help:      "Count of scan position writes.",
	}, []string{"network", "granularity"})

	scannerHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "scanner",
		Name:      "height",
		Help:      "Height of the block currently being scanned.",
	}, []string{"network"})
)

// Scanner tracks metrics for the scan engine.
type Scanner struct {
	network model.Network
}

// NewScanner constructs a Scanner collector.
func NewScanner(network model.Network) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

// ObserveBlock records a fully scanned block.
func (m Scanner) ObserveBlock(height uint64, started time.Time) {
	scannerBlocksTotal.WithLabelValues(string(m.network)).Inc()
	scannerBlockDuration.WithLabelValues(string(m.network)).Observe(time.Since(started).Seconds())
	scannerHeight.WithLabelValues(string(m.network)).Set(float64(height))
}

// ObserveFetchRetry records a block fetch failure that will be retried.
func (m Scanner) ObserveFetchRetry(_ uint64) {
	scannerBlockFetchRetries.WithLabelValues(string(m.network)).Inc()
}

// ObserveOutput records an examined output.
func (m Scanner) ObserveOutput(matched bool) {
	label := "miss"
	if matched {
		label = "match"
	}
	scannerOutputsTotal.WithLabelValues(string(m.network), label).Inc()
}

// ObserveCheckpoint records a scan position write.
func (m Scanner) ObserveCheckpoint(position model.ScanPosition) {
	granularity := "output"
	if position.OutputIndex == model.NoOutput {
		granularity = "transaction"
	}
	scannerCheckpointsTotal.WithLabelValues(string(m.network), granularity).Inc()
}
