package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

var (
	refinerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinjoinscan",
		Subsystem: "refiner",
		Name:      "runs_total",
		Help:      "Count of per-protocol refinement runs.",
	}, []string{"network", "protocol", "status"})

	refinerRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coinjoinscan",
		Subsystem: "refiner",
		Name:      "run_duration_seconds",
		Help:      "Duration of per-protocol refinement runs.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"network", "protocol", "status"})

	refinerVerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coinjoinscan",
		Subsystem: "refiner",
		Name:      "verdicts_total",
		Help:      "Count of second-pass verdicts by outcome.",
	}, []string{"network", "protocol", "outcome"})
)

// Refiner tracks metrics for the second-pass refinement service.
type Refiner struct {
	network model.Network
}

// NewRefiner constructs a metrics collector for the refiner.
func NewRefiner(network model.Network) *Refiner {
	if network == "" {
		network = "unknown"
	}
	return &Refiner{network: network}
}

// ObserveRun records outcome and duration of one protocol refinement run.
func (m Refiner) ObserveRun(protocol string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	refinerRunsTotal.WithLabelValues(string(m.network), protocol, status).Inc()
	refinerRunDuration.WithLabelValues(string(m.network), protocol, status).
		Observe(time.Since(started).Seconds())
}

// ObserveVerdict counts a single refinement verdict by outcome.
func (m Refiner) ObserveVerdict(protocol, outcome string) {
	refinerVerdictsTotal.WithLabelValues(string(m.network), protocol, outcome).Inc()
}
