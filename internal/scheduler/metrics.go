package scheduler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/courtwatch/internal/ingest"
)

var (
	cyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courtwatch_cycles_total",
		Help: "Completed extraction cycles",
	})
	cycleFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courtwatch_cycle_failures_total",
		Help: "Extraction cycles that aborted before completion",
	})
	intervalsProduced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courtwatch_intervals_produced_total",
		Help: "Consolidated intervals persisted across all cycles",
	})
	intervalsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courtwatch_intervals_failed_total",
		Help: "Interval rows dropped after per-record retry",
	})
	venueErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "courtwatch_venue_errors_total",
		Help: "Venues skipped within otherwise successful cycles",
	})
	lastCycleVenues = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "courtwatch_last_cycle_venues_covered",
		Help: "Venues covered by the most recent cycle",
	})
)

func observeCycle(res ingest.Result) {
	cyclesTotal.Inc()
	intervalsProduced.Add(float64(res.IntervalsProduced))
	intervalsFailed.Add(float64(res.IntervalsFailed))
	venueErrors.Add(float64(res.VenueErrors))
	lastCycleVenues.Set(float64(res.VenuesCovered))
}

// ServeMetrics exposes /metrics and /health on addr; it blocks.
func ServeMetrics(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return http.ListenAndServe(addr, mux)
}
