package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search pipeline Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "harfsearch",
			Name:      "searches_total",
			Help:      "Total number of searches by scope and outcome",
		},
		[]string{"scope", "outcome"}, // outcome: "ok" / "empty" / "error"
	)

	SearchPatterns = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "harfsearch",
			Name:      "search_patterns",
			Help:      "Number of patterns generated per search",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128, 256},
		},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "harfsearch",
			Name:      "search_results",
			Help:      "Number of merged results per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	SourceErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "harfsearch",
			Name:      "source_errors_total",
			Help:      "Failed per-pattern source queries, skipped by the executor",
		},
		[]string{"source"},
	)

	SourceQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "harfsearch",
			Name:      "source_query_duration_seconds",
			Help:      "Time spent querying one source for all patterns of a search",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"source"},
	)
)

var registerSearchOnce sync.Once

// RegisterSearchMetrics registers Prometheus search metrics on the default
// registry. Safe to call more than once and from several goroutines.
func RegisterSearchMetrics() {
	registerSearchOnce.Do(func() {
		prometheus.MustRegister(SearchRequestsTotal)
		prometheus.MustRegister(SearchPatterns)
		prometheus.MustRegister(SearchResults)
		prometheus.MustRegister(SourceErrorsTotal)
		prometheus.MustRegister(SourceQueryDuration)
	})
}
