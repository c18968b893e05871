// Package http exposes machine execution over a JSON HTTP API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/spindle"
	"github.com/aretw0/spindle/internal/runtime"
	"github.com/aretw0/spindle/pkg/codec"
	"github.com/aretw0/spindle/pkg/machine"
	"github.com/aretw0/spindle/pkg/ports"
	"github.com/aretw0/spindle/pkg/registry"
)

// RunRequest is the body of POST /run.
type RunRequest struct {
	Machine  codec.Document `json:"machine"`
	Input    string         `json:"input"`
	MaxSteps int            `json:"max_steps,omitempty"`
}

// ExampleRunRequest is the body of POST /examples/{name}/run.
type ExampleRunRequest struct {
	Input    string `json:"input"`
	MaxSteps int    `json:"max_steps,omitempty"`
}

// ExampleInfo describes one registered machine in GET /examples.
type ExampleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Server resolves machines and runs them on behalf of HTTP clients.
type Server struct {
	registry *registry.Registry
	store    ports.OutcomeStore
	logger   *slog.Logger
	metrics  *metrics
}

// Option configures the server.
type Option func(*Server)

// WithOutcomeStore enables outcome memoization. Runs are looked up by
// (fingerprint, input, step budget) before simulating.
func WithOutcomeStore(store ports.OutcomeStore) Option {
	return func(s *Server) { s.store = store }
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

type metrics struct {
	registry  *prometheus.Registry
	runsTotal *prometheus.CounterVec
	steps     prometheus.Histogram
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	return &metrics{
		registry: reg,
		runsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "spindle_runs_total",
			Help: "Total number of machine runs by verdict",
		}, []string{"verdict"}),
		steps: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "spindle_run_steps",
			Help:    "Steps consumed per machine run",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
		}),
	}
}

// NewHandler creates the HTTP handler serving the run API.
func NewHandler(reg *registry.Registry, opts ...Option) http.Handler {
	server := &Server{
		registry: reg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:  newMetrics(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Post("/run", server.Run)
	r.Get("/examples", server.ListExamples)
	r.Post("/examples/{name}/run", server.RunExample)
	r.Get("/healthz", server.GetHealth)
	r.Get("/version", server.GetVersion)
	r.Handle("/metrics", promhttp.HandlerFor(server.metrics.registry, promhttp.HandlerOpts{}))
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Run handles the POST /run request.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Run: Invalid request body", "err", err)
		return
	}

	def, err := body.Machine.Definition()
	if err != nil {
		var defErr *machine.DefinitionError
		status := http.StatusBadRequest
		if errors.As(err, &defErr) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, fmt.Sprintf("Invalid machine: %v", err), status)
		s.logger.Warn("Run: Invalid machine", "err", err)
		return
	}

	s.execute(w, r, def, body.Input, body.MaxSteps)
}

// ListExamples handles the GET /examples request.
func (s *Server) ListExamples(w http.ResponseWriter, r *http.Request) {
	entries := s.registry.List()
	infos := make([]ExampleInfo, len(entries))
	for i, e := range entries {
		infos[i] = ExampleInfo{Name: e.Name, Description: e.Description}
	}
	writeJSON(w, s.logger, infos)
}

// RunExample handles the POST /examples/{name}/run request.
func (s *Server) RunExample(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	entry, err := s.registry.Lookup(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var body ExampleRunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("RunExample: Invalid request body", "err", err, "machine", name)
		return
	}

	s.execute(w, r, entry.Definition, body.Input, body.MaxSteps)
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request, def *machine.Definition, input string, maxSteps int) {
	engine := runtime.NewEngine()
	if maxSteps <= 0 {
		maxSteps = engine.MaxSteps()
	}

	key := ports.CacheKey(def.Fingerprint(), input, maxSteps)
	if s.store != nil {
		if cached, err := s.store.Load(r.Context(), key); err == nil {
			s.logger.Debug("Run: Serving cached outcome", "key", key)
			s.observe(*cached)
			writeJSON(w, s.logger, cached)
			return
		}
	}

	out, err := engine.RunWithLimit(def, input, maxSteps)
	if err != nil {
		var inputErr *machine.InputError
		if errors.As(err, &inputErr) {
			http.Error(w, fmt.Sprintf("Invalid input: %v", err), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Run error: %v", err), http.StatusInternalServerError)
		s.logger.Error("Run failed", "err", err)
		return
	}

	if s.store != nil {
		if err := s.store.Save(r.Context(), key, &out); err != nil {
			// A cache failure never fails the run.
			s.logger.Warn("Run: Outcome save failed", "err", err, "key", key)
		}
	}

	s.observe(out)
	writeJSON(w, s.logger, out)
}

func (s *Server) observe(out machine.Outcome) {
	s.metrics.runsTotal.WithLabelValues(string(out.Verdict)).Inc()
	s.metrics.steps.Observe(float64(out.Steps))
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

// GetVersion handles the GET /version request.
func (s *Server) GetVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{
		"app":     "spindle-http",
		"version": spindle.Version,
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Response encode failed", "err", err)
	}
}
