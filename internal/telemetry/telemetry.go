// Package telemetry exposes Prometheus collectors for the ingestion
// pipeline: feeds and articles processed, gate wait durations, and active
// worker gauges.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	feedsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsaggregator_feeds_total",
			Help: "Total number of feeds processed, labeled by outcome.",
		},
		[]string{"outcome"},
	)

	articlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsaggregator_articles_total",
			Help: "Total number of articles processed, labeled by outcome.",
		},
		[]string{"outcome"},
	)

	gateWaitSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsaggregator_gate_wait_seconds",
			Help:    "Time spent blocked acquiring a gate slot, labeled by gate.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"gate"},
	)

	activeWorkers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "newsaggregator_active_workers",
			Help: "Number of workers currently holding a gate slot, labeled by gate.",
		},
		[]string{"gate"},
	)
)

// ObserveFeed records the outcome ("ok" or "error") of one feed parse.
func ObserveFeed(outcome string) {
	feedsTotal.WithLabelValues(outcome).Inc()
}

// ObserveArticle records the outcome ("ok" or "error") of one article fetch.
func ObserveArticle(outcome string) {
	articlesTotal.WithLabelValues(outcome).Inc()
}

// ObserveGateWait records how long a caller blocked acquiring a gate.
func ObserveGateWait(gate string, d time.Duration) {
	gateWaitSeconds.WithLabelValues(gate).Observe(d.Seconds())
}

// IncActiveWorkers increments the active-worker gauge for the named gate.
func IncActiveWorkers(gate string) {
	activeWorkers.WithLabelValues(gate).Inc()
}

// DecActiveWorkers decrements the active-worker gauge for the named gate.
func DecActiveWorkers(gate string) {
	activeWorkers.WithLabelValues(gate).Dec()
}

// Server wraps an optional HTTP listener exposing /metrics.
type Server struct {
	httpServer *http.Server
	wg         sync.WaitGroup
}

// Handler returns the Prometheus scrape handler, exposed separately so
// callers (and tests) can mount it without starting a listener.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartServer starts a background HTTP listener serving /metrics on addr.
// The returned Server must be stopped with Stop.
func StartServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	s := &Server{httpServer: &http.Server{Addr: addr, Handler: mux}}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = err // best-effort background listener; a listen error is discarded
		}
	}()
	return s
}

// Stop gracefully shuts down the metrics listener.
func (s *Server) Stop(ctx context.Context) error {
	if s == nil || s.httpServer == nil {
		return nil
	}
	err := s.httpServer.Shutdown(ctx)
	s.wg.Wait()
	return err
}
