// Package metrics holds the Prometheus instrumentation for the solve
// server. Collectors register on the default registry; the HTTP adapter
// treats a nil *Metrics as "instrumentation off".
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aretw0/pips/pkg/ports"
)

// Solve outcome label values.
const (
	OutcomeSolved     = "solved"
	OutcomeNoSolution = "no_solution"
	OutcomeInvalid    = "invalid"
	OutcomeCanceled   = "canceled"
	OutcomeError      = "error"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SolveRequests *prometheus.CounterVec
	SolveDuration prometheus.Histogram
	SearchNodes   prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SolveRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pips_solve_requests_total",
			Help: "Solve requests processed, labeled by outcome.",
		}, []string{"outcome"}),
		SolveDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pips_solve_duration_seconds",
			Help:    "Wall-clock time spent searching per request.",
			Buckets: prometheus.DefBuckets,
		}),
		SearchNodes: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pips_search_nodes",
			Help:    "Candidate placements examined per solve.",
			Buckets: prometheus.ExponentialBuckets(1, 10, 7),
		}),
	}
}

// ObserveSolve records one finished solve request.
func (m *Metrics) ObserveSolve(outcome string, stats ports.Stats) {
	if m == nil {
		return
	}
	m.SolveRequests.WithLabelValues(outcome).Inc()
	m.SolveDuration.Observe(stats.Duration.Seconds())
	m.SearchNodes.Observe(float64(stats.Nodes))
}
