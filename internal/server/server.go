package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"WikiAnalyzer/internal/domain"
	"WikiAnalyzer/internal/ports"
	"WikiAnalyzer/internal/presenter"
)

const serviceName = "wikianalyzer"

// Options tunes the HTTP surface.
type Options struct {
	Tracing bool
	Report  presenter.Options
}

// Server exposes the analysis pipeline over HTTP.
type Server struct {
	pipeline ports.Pipeline
	opts     Options
	logger   *slog.Logger
}

type analyzeResponse struct {
	Article domain.Article    `json:"article"`
	Metrics domain.Metrics    `json:"metrics"`
	Labels  map[string]string `json:"labels"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// New builds a server around pipeline.
func New(pipeline ports.Pipeline, opts Options, logger *slog.Logger) *Server {
	return &Server{pipeline: pipeline, opts: opts, logger: logger}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/analyze", s.handleAnalyze)
	r.Get("/api/analyze/export", s.handleExport)
	r.Get("/report", s.handleReport)

	if s.opts.Tracing {
		return otelhttp.NewHandler(r, serviceName)
	}
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	result, ok := s.run(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{
		Article: result.Article,
		Metrics: result.Metrics,
		Labels: map[string]string{
			"sentiment":   result.Metrics.SentimentLabel(),
			"readability": result.Metrics.ReadingEaseLabel(),
		},
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	result, ok := s.run(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := presenter.WriteJSONLines(&buf, result.Metrics); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Content-Disposition", `attachment; filename="metrics.jsonl"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	result, ok := s.run(w, r)
	if !ok {
		return
	}
	body, err := presenter.HTML(result, s.opts.Report)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>%s</title></head><body>\n%s</body></html>\n",
		html.EscapeString(result.Article.Title), body)
}

func (s *Server) run(w http.ResponseWriter, r *http.Request) (domain.AnalysisResult, bool) {
	if s.pipeline == nil {
		s.writeError(w, r, errors.New("pipeline is not configured"))
		return domain.AnalysisResult{}, false
	}
	result, err := s.pipeline.Run(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		s.writeError(w, r, err)
		return domain.AnalysisResult{}, false
	}
	return result, true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
	}
	writeJSON(w, status, errorResponse{Error: presenter.Describe(err), Kind: domain.KindOf(err)})
}

// StatusFor maps a pipeline error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoContent):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
