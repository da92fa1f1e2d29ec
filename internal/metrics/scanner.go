package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

var (
	scannerHeightsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinjoinscan",
		Subsystem: "scanner",
		Name:      "heights_total",
		Help:      "Count of processed block heights.",
	}, []string{"network", "status"})

	scannerHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinjoinscan",
		Subsystem: "scanner",
		Name:      "height_duration_seconds",
		Help:      "Duration of processing a single block height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scannerFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinjoinscan",
		Subsystem: "scanner",
		Name:      "flushes_total",
		Help:      "Count of detection batch flushes.",
	}, []string{"network", "status"})

	scannerFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinjoinscan",
		Subsystem: "scanner",
		Name:      "flush_duration_seconds",
		Help:      "Duration of detection batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scannerFlushRows = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinjoinscan",
		Subsystem: "scanner",
		Name:      "flush_rows",
		Help:      "Number of detections flushed per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	scannerDetectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinjoinscan",
		Subsystem: "scanner",
		Name:      "detections_total",
		Help:      "Count of first-pass CoinJoin detections.",
	}, []string{"network", "protocol"})
)

// Scanner tracks metrics for the first-pass block scanner.
type Scanner struct {
	network model.Network
}

// NewScanner constructs a metrics collector for the scanner.
func NewScanner(network model.Network) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

// ObserveHeight records outcome and duration of processing a block height.
func (m Scanner) ObserveHeight(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerHeightsTotal.WithLabelValues(string(m.network), status).Inc()
	scannerHeightDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveFlush records outcome, size and duration of a detection flush.
func (m Scanner) ObserveFlush(err error, rows int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerFlushTotal.WithLabelValues(string(m.network), status).Inc()
	scannerFlushDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	scannerFlushRows.WithLabelValues(string(m.network)).Observe(float64(rows))
}

// ObserveDetection counts a first-pass detection per protocol.
func (m Scanner) ObserveDetection(protocol string) {
	scannerDetectionsTotal.WithLabelValues(string(m.network), protocol).Inc()
}
