package metrics

import "github.com/prometheus/client_golang/prometheus"

// Universal-search Prometheus metrics.
var (
	providerSearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "teamhub",
			Name:      "search_provider_duration_seconds",
			Help:      "Per-provider search duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"entity_type"},
	)

	providerErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "teamhub",
			Name:      "search_provider_errors_total",
			Help:      "Total entity provider failures",
		},
		[]string{"entity_type"},
	)

	searchResultCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "teamhub",
			Name:      "search_result_count",
			Help:      "Eligible candidate count per search before pagination",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100, 250, 500},
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(providerSearchDuration)
	prometheus.MustRegister(providerErrorsTotal)
	prometheus.MustRegister(searchResultCount)
	searchMetricsRegistered = true
}

// ObserveProvider records one provider round-trip.
func ObserveProvider(entityType string, seconds float64) {
	providerSearchDuration.WithLabelValues(entityType).Observe(seconds)
}

// IncProviderError counts one provider failure.
func IncProviderError(entityType string) {
	providerErrorsTotal.WithLabelValues(entityType).Inc()
}

// ObserveResultCount records the fused candidate count of one search.
func ObserveResultCount(n int) {
	searchResultCount.Observe(float64(n))
}
