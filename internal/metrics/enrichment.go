package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

var (
	enrichmentBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinjoinscan",
		Subsystem: "enrichment",
		Name:      "batches_total",
		Help:      "Count of processed enrichment batches.",
	}, []string{"network"})

	enrichmentBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinjoinscan",
		Subsystem: "enrichment",
		Name:      "batch_size",
		Help:      "Number of transactions per enrichment batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	enrichmentBatchFailures = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinjoinscan",
		Subsystem: "enrichment",
		Name:      "batch_failed_lookups",
		Help:      "Number of failed lookups per enrichment batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})

	enrichmentBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinjoinscan",
		Subsystem: "enrichment",
		Name:      "batch_duration_seconds",
		Help:      "Duration of enrichment batches.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"network"})

	enrichmentLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinjoinscan",
		Subsystem: "enrichment",
		Name:      "lookups_total",
		Help:      "Count of single-transaction enrichment lookups.",
	}, []string{"network", "status"})

	enrichmentLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinjoinscan",
		Subsystem: "enrichment",
		Name:      "lookup_duration_seconds",
		Help:      "Duration of single-transaction enrichment lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// EnrichmentGateway tracks metrics for input-value enrichment.
type EnrichmentGateway struct {
	network model.Network
}

// NewEnrichmentGateway constructs a metrics collector for the gateway.
func NewEnrichmentGateway(network model.Network) *EnrichmentGateway {
	if network == "" {
		network = "unknown"
	}
	return &EnrichmentGateway{network: network}
}

// ObserveBatch records size, failures and duration of one enrichment batch.
func (m EnrichmentGateway) ObserveBatch(failed, size int, started time.Time) {
	enrichmentBatchesTotal.WithLabelValues(string(m.network)).Inc()
	enrichmentBatchSize.WithLabelValues(string(m.network)).Observe(float64(size))
	enrichmentBatchFailures.WithLabelValues(string(m.network)).Observe(float64(failed))
	enrichmentBatchDuration.WithLabelValues(string(m.network)).
		Observe(time.Since(started).Seconds())
}

// ObserveLookup records a single enrichment lookup outcome and duration.
func (m EnrichmentGateway) ObserveLookup(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	enrichmentLookupsTotal.WithLabelValues(string(m.network), status).Inc()
	enrichmentLookupDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}
