// Package api serves the assembled report over HTTP: the gallery page,
// individual figures, JSON endpoints for the sweep and the critical
// quantities, and Prometheus metrics. The served report can be swapped
// at runtime, which is how scenario watching propagates edits to an
// already-running server.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	lqg "github.com/arnavk23/LQG-Analysis"
	"github.com/arnavk23/LQG-Analysis/internal/report"
)

// Server holds the current report and the HTTP plumbing around it.
type Server struct {
	Addr string
	Log  *slog.Logger

	mu  sync.RWMutex
	rep *report.Report

	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	rebuilds     prometheus.Counter
	buildSeconds prometheus.Histogram
}

// New wires a server around an already-built report.
func New(addr string, log *slog.Logger, rep *report.Report) *Server {
	reg := prometheus.NewRegistry()
	return &Server{
		Addr:     addr,
		Log:      log,
		rep:      rep,
		registry: reg,
		requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "lqg_http_requests_total",
			Help: "HTTP requests served, by route.",
		}, []string{"route"}),
		rebuilds: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "lqg_report_rebuilds_total",
			Help: "Report swaps accepted since start.",
		}),
		buildSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "lqg_report_build_seconds",
			Help:    "Wall time of the report builds handed to the server.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ReplaceReport swaps the served report for a fresh build.
func (s *Server) ReplaceReport(rep *report.Report, buildTime time.Duration) {
	s.mu.Lock()
	s.rep = rep
	s.mu.Unlock()

	s.rebuilds.Inc()
	s.buildSeconds.Observe(buildTime.Seconds())
	s.Log.Info("report replaced",
		"figures", len(rep.Figures),
		"samples", len(rep.Samples),
		"build", buildTime.Round(time.Millisecond))
}

func (s *Server) current() *report.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rep
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/figures/", s.handleFigure)
	mux.HandleFunc("/api/samples", s.handleSamples)
	mux.HandleFunc("/api/critical", s.handleCritical)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

// Run serves until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.Log.Info("serving", "addr", s.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.requests.WithLabelValues("index").Inc()

	html, err := s.current().RenderHTML()
	if err != nil {
		s.Log.Error("render gallery", "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/figures/")
	id := strings.TrimSuffix(name, ".svg")
	if id == "" || id == name {
		http.NotFound(w, r)
		return
	}
	f, ok := s.current().Figure(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.requests.WithLabelValues("figure").Inc()
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(f.SVG))
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	s.requests.WithLabelValues("samples").Inc()
	s.writeJSON(w, s.current())
}

func (s *Server) handleCritical(w http.ResponseWriter, r *http.Request) {
	s.requests.WithLabelValues("critical").Inc()
	rep := s.current()
	s.writeJSON(w, struct {
		Params         lqg.Parameters    `json:"params"`
		Critical       lqg.CriticalPoint `json:"critical"`
		PublishedRatio float64           `json:"published_ratio"`
		ClassicalRatio float64           `json:"classical_ratio"`
	}{
		Params:         rep.Params,
		Critical:       rep.Critical,
		PublishedRatio: lqg.QuantumCriticalRatio,
		ClassicalRatio: lqg.ClassicalCriticalRatio,
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.Log.Error("encode response", "err", err)
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
