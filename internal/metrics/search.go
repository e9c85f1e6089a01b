package metrics

import "github.com/prometheus/client_golang/prometheus"

// Cascade search Prometheus metrics.
var (
	SearchTierQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "discovery",
			Name:      "search_tier_queries_total",
			Help:      "Total number of tier lookups issued by the search cascade",
		},
		[]string{"tier"},
	)

	SearchTierServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "discovery",
			Name:      "search_tier_served_total",
			Help:      "Total number of searches answered by each tier",
		},
		[]string{"tier"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchTierQueriesTotal)
	prometheus.MustRegister(SearchTierServedTotal)
	searchMetricsRegistered = true
}
