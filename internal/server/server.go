// Package server implements the champagne HTTP API.
//
// # Routes
//
//	GET  /healthz              liveness and build information
//	GET  /v1/params            the parameter schema
//	POST /v1/panels            generate a panel, respond with the drawing
//	POST /v1/panels/{format}   generate a panel, respond with one artifact
//
// Request bodies are JSON [pipeline.Options]; omitted fields take their
// defaults, so an empty body yields the default panel. Errors are JSON
// objects carrying the error code:
//
//	{"error": {"code": "INVALID_DIMENSION", "message": "width must be positive, got 0"}}
//
// Caller mistakes map to 400, oversized bodies to 413 and everything else to 500.
//
// [pipeline.Options]: github.com/matzehuels/champagne/pkg/pipeline.Options
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/champagne/pkg/buildinfo"
	"github.com/matzehuels/champagne/pkg/drawing"
	perrors "github.com/matzehuels/champagne/pkg/errors"
	"github.com/matzehuels/champagne/pkg/observability"
	"github.com/matzehuels/champagne/pkg/pipeline"
)

const (
	// MaxBodyBytes bounds request bodies.
	MaxBodyBytes = 1 << 20

	// HeaderCache reports whether a response came from the cache.
	HeaderCache = "X-Champagne-Cache"

	shutdownTimeout = 10 * time.Second
)

// Server serves the HTTP API on top of a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server. A nil logger discards output.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	s := &Server{runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/params", s.handleParams)
		r.Post("/panels", s.handleCreatePanel)
		r.Post("/panels/{format}", s.handleRenderPanel)
	})
	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// =============================================================================
// Handlers
// =============================================================================

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Current()})
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pipeline.Schema())
}

// PanelResponse is the body of POST /v1/panels.
type PanelResponse struct {
	ID       string          `json:"id"`
	Cached   bool            `json:"cached"`
	Warnings []string        `json:"warnings,omitempty"`
	Drawing  drawing.Drawing `json:"drawing"`
}

func (s *Server) handleCreatePanel(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	d, cached, err := s.runner.GenerateWithCacheInfo(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set(HeaderCache, cacheStatus(cached))
	writeJSON(w, http.StatusOK, PanelResponse{
		ID:       uuid.NewString(),
		Cached:   cached,
		Warnings: opts.Warnings(),
		Drawing:  d,
	})
}

func (s *Server) handleRenderPanel(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := decodeOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set(HeaderCache, cacheStatus(result.CacheInfo.DrawingHit && result.CacheInfo.RenderHit))
	if format == pipeline.FormatXLSX {
		w.Header().Set("Content-Disposition", `attachment; filename="panel.xlsx"`)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Artifacts[format]); err != nil {
		s.logger.Debug("write response", "err", err)
	}
}

// =============================================================================
// Helpers
// =============================================================================

func decodeOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.DecodeOptions(data)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      perrors.Code `json:"code"`
	Message   string       `json:"message"`
	RequestID string       `json:"request_id,omitempty"`
}

// writeError maps err to a status code and writes it as JSON.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := perrors.GetCode(err)
	message := perrors.UserMessage(err)

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		status = http.StatusRequestEntityTooLarge
		code = perrors.ErrCodeInvalidInput
		message = "request body too large"
	case perrors.IsValidation(err):
		status = http.StatusBadRequest
	default:
		if code == "" {
			code = perrors.ErrCodeInternal
		}
		message = "internal error"
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}

	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:      code,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// observe reports each request to the HTTP hooks and the debug log.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		duration := time.Since(start)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, duration)
		s.logger.Debug("request", "method", r.Method, "route", route, "status", status, "duration", duration)
	})
}
