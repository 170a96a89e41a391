package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// StartServer serves /metrics on addr (e.g. ":9090") in the background,
// plus a landing page rendering m's own counters, and returns a shutdown
// function for graceful teardown.
func StartServer(addr string, m *Metrics) (shutdown func(context.Context) error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body><h1>Search Engine Metrics</h1><ul>`+
			`<li>documents added: %.0f</li>`+
			`<li>documents removed: %.0f</li>`+
			`<li>duplicates removed: %.0f</li>`+
			`<li>queries executed: %.0f</li>`+
			`</ul><p><a href="/metrics">/metrics</a> for the full Prometheus exposition.</p></body></html>`,
			counterValue(m.DocumentsAdded), counterValue(m.DocumentsRemoved),
			counterValue(m.DuplicatesRemoved), counterValue(m.QueriesExecuted))
	})

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("metrics server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server error", "error", err)
		}
	}()

	return server.Shutdown
}

// counterValue reads a counter's current value directly off its wire
// representation, the same mechanism prometheus/testutil uses, so the
// landing page can render a live snapshot without a scrape round-trip.
func counterValue(c prometheus.Counter) float64 {
	var pb dto.Metric
	if err := c.Write(&pb); err != nil {
		return 0
	}
	return pb.GetCounter().GetValue()
}
