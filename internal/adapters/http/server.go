// Package http exposes the solver over a JSON API plus the embedded
// browser UI, the health probe, and the Prometheus scrape endpoint.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/pips/internal/logging"
	"github.com/aretw0/pips/internal/metrics"
	"github.com/aretw0/pips/internal/presentation/grid"
	"github.com/aretw0/pips/pkg/domain"
	"github.com/aretw0/pips/pkg/ports"
	"github.com/aretw0/pips/web"
)

// apiVersion is reported by GET /info.
const apiVersion = "1.0"

// Server handles solve requests against a solver and a parser.
type Server struct {
	solver  ports.Solver
	parser  ports.PuzzleParser
	logger  *slog.Logger
	metrics *metrics.Metrics
	timeout time.Duration
	version string
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request and solve logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics enables Prometheus instrumentation of solve requests.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithSolveTimeout bounds the search time of a single request. Zero means
// no bound beyond the client disconnecting.
func WithSolveTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// WithVersion sets the version string reported by GET /info.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// NewHandler wires the routes: the solve API, the embedded UI, health,
// info, and metrics.
func NewHandler(solver ports.Solver, parser ports.PuzzleParser, opts ...Option) http.Handler {
	s := &Server{
		solver:  solver,
		parser:  parser,
		logger:  logging.NewNop(),
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)
	r.Get("/info", s.handleInfo)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Post("/api/solve", s.handleSolve)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	r.Get("/", s.handleIndex)

	return r
}

// solveResponse is the wire shape of every /api/solve reply. Solution is
// the rendered text grid plus placement list; Placements carries the same
// data structurally for programmatic callers.
type solveResponse struct {
	Success    bool               `json:"success"`
	Solution   string             `json:"solution,omitempty"`
	Placements []domain.Placement `json:"placements,omitempty"`
	Error      string             `json:"error,omitempty"`
	DurationMs int64              `json:"durationMs"`
	Nodes      int64              `json:"nodes"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResponse{Success: false, Error: "request body unreadable: " + err.Error()})
		return
	}
	if len(body) == 0 {
		writeJSON(w, http.StatusBadRequest, solveResponse{Success: false, Error: "No puzzle data provided"})
		return
	}

	puzzle, err := s.parser.Parse(body)
	if err != nil {
		s.metrics.ObserveSolve(metrics.OutcomeInvalid, ports.Stats{})
		writeJSON(w, http.StatusBadRequest, solveResponse{Success: false, Error: "Invalid puzzle data: " + err.Error()})
		return
	}

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	sol, stats, err := s.solver.Solve(ctx, puzzle)
	resp := solveResponse{DurationMs: stats.Duration.Milliseconds(), Nodes: stats.Nodes}
	switch {
	case err == nil:
		s.metrics.ObserveSolve(metrics.OutcomeSolved, stats)
		resp.Success = true
		resp.Solution = grid.Report(puzzle.Board, sol)
		resp.Placements = sol.Placements
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, domain.ErrNoSolution):
		s.metrics.ObserveSolve(metrics.OutcomeNoSolution, stats)
		resp.Error = "No solution found for this puzzle"
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		s.metrics.ObserveSolve(metrics.OutcomeCanceled, stats)
		resp.Error = "solve canceled before completion"
		writeJSON(w, http.StatusGatewayTimeout, resp)
	default:
		s.metrics.ObserveSolve(metrics.OutcomeError, stats)
		s.logger.Error("solve failed", "request_id", requestID(r.Context()), "error", err)
		resp.Error = "Error solving puzzle: " + err.Error()
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "pips-server",
		"version":     s.version,
		"api_version": apiVersion,
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page, err := web.IndexHTML()
	if err != nil {
		http.Error(w, "UI assets missing", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

type ctxKey int

const requestIDKey ctxKey = iota

// requestID returns the id the logging middleware assigned to the request,
// so handler log lines correlate with the access log.
func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestLogger tags each request with an id, stores it in the request
// context, and logs method, path, status, bytes, and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey, id))
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		s.logger.Info("http",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}
