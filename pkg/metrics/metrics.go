// Package metrics defines the Prometheus collectors for the search
// engine's own operations (documents added/removed, queries executed,
// duplicates found) and exposes an HTTP handler for scraping. This is an
// observability concern, not the networked search API the engine's spec
// excludes — nothing here participates in answering a query.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	DocumentsAdded    prometheus.Counter
	DocumentsRemoved  prometheus.Counter
	DuplicatesRemoved prometheus.Counter
	QueriesExecuted   prometheus.Counter
	QueryDuration     prometheus.Histogram
}

// New creates and registers the engine's metrics against the default
// Prometheus registry.
func New() *Metrics {
	m := build()
	prometheus.MustRegister(
		m.DocumentsAdded,
		m.DocumentsRemoved,
		m.DuplicatesRemoved,
		m.QueriesExecuted,
		m.QueryDuration,
	)
	return m
}

// NewNoop creates unregistered metrics, safe to construct repeatedly
// (e.g. once per test) without tripping Prometheus's duplicate-collector
// panic.
func NewNoop() *Metrics {
	return build()
}

func build() *Metrics {
	return &Metrics{
		DocumentsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "search_engine_documents_added_total",
			Help: "Total documents successfully added to the index.",
		}),
		DocumentsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "search_engine_documents_removed_total",
			Help: "Total documents removed from the index.",
		}),
		DuplicatesRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "search_engine_duplicates_removed_total",
			Help: "Total documents removed by duplicate detection.",
		}),
		QueriesExecuted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "search_engine_queries_executed_total",
			Help: "Total queries executed (find-top, find-top-parallel, and match calls).",
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "search_engine_query_duration_seconds",
			Help:    "Query execution latency in seconds.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
