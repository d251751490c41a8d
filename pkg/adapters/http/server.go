package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/rivercross"
	"github.com/aretw0/rivercross/internal/presentation/graph"
	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/aretw0/rivercross/pkg/ports"
)

// Server exposes the finished search tree over HTTP. It never mutates the tree.
type Server struct {
	Solver      ports.Solver
	Metrics     http.Handler
	MetricsPath string
}

// Option configures the handler.
type Option func(*Server)

// WithMetricsHandler mounts h (typically promhttp) on the metrics path.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithMetricsPath overrides the route of the metrics handler. Defaults to /metrics.
func WithMetricsPath(path string) Option {
	return func(s *Server) {
		if path != "" {
			s.MetricsPath = path
		}
	}
}

// NewHandler creates a new HTTP handler for the solver.
func NewHandler(solver ports.Solver, opts ...Option) http.Handler {
	server := &Server{Solver: solver, MetricsPath: "/metrics"}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/graph", server.GetGraph)
	r.Get("/graph/mermaid", server.GetMermaid)
	r.Get("/solutions", server.GetSolutions)
	r.Get("/nodes/{id}", server.GetNode)
	if server.Metrics != nil {
		r.Handle(server.MetricsPath, server.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) result(w http.ResponseWriter, r *http.Request) (*domain.Result, bool) {
	res, err := s.Solver.Solve(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Solve error: %v", err), http.StatusInternalServerError)
		slog.Error("Solve failed", "error", err)
		return nil, false
	}
	return res, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"app":     "rivercross-http",
		"version": strings.TrimSpace(rivercross.Version),
	})
}

// GetGraph handles the GET /graph request: every node in breadth-first order.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	res, ok := s.result(w, r)
	if !ok {
		return
	}
	writeJSON(w, res.View())
}

// GetMermaid handles the GET /graph/mermaid request.
// Pass ?overlay=solutions to highlight the solution paths.
func (s *Server) GetMermaid(w http.ResponseWriter, r *http.Request) {
	res, ok := s.result(w, r)
	if !ok {
		return
	}
	var overlay *graph.GraphOverlay
	if r.URL.Query().Get("overlay") == "solutions" {
		overlay = graph.SolutionOverlay(res)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(res, overlay))
}

// GetSolutions handles the GET /solutions request.
func (s *Server) GetSolutions(w http.ResponseWriter, r *http.Request) {
	res, ok := s.result(w, r)
	if !ok {
		return
	}
	solutions := make([]domain.SolutionView, 0, len(res.Solutions))
	for _, n := range res.Solutions {
		solutions = append(solutions, domain.SolutionOf(n))
	}
	writeJSON(w, solutions)
}

// GetNode handles the GET /nodes/{id} request.
func (s *Server) GetNode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid node id", http.StatusBadRequest)
		slog.Warn("GetNode: Invalid node id", "error", err)
		return
	}
	res, ok := s.result(w, r)
	if !ok {
		return
	}
	n, err := res.Find(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, n.View())
}
