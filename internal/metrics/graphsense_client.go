package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

var (
	graphsenseRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinjoinscan",
		Subsystem: "graphsense_client",
		Name:      "operations_total",
		Help:      "Count of GraphSense API operations.",
	}, []string{"operation", "network", "status"})
	graphsenseRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinjoinscan",
		Subsystem: "graphsense_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of GraphSense API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// GraphsenseClient tracks metrics for GraphSense API calls.
type GraphsenseClient struct {
	network model.Network
}

// NewGraphsenseClient constructs a metrics collector for GraphSense calls.
func NewGraphsenseClient(network model.Network) *GraphsenseClient {
	if network == "" {
		network = "unknown"
	}
	return &GraphsenseClient{network: network}
}

// Observe records a single API call outcome and duration.
func (m GraphsenseClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	graphsenseRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	graphsenseRequestDuration.WithLabelValues(operation, string(m.network), status).
		Observe(time.Since(started).Seconds())
}
