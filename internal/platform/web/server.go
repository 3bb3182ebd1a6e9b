// Package web serves seeded grids over HTTP so external presentation layers
// can draw the sprites this module only computes.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/panelpop/internal/config"
	"github.com/vovakirdan/panelpop/internal/export"
)

// Handler serves grid documents built from one config.
type Handler struct {
	cfg    config.PanelsConfig
	logger *log.Logger
}

// NewHandler creates a handler; a nil logger uses the default one.
func NewHandler(cfg config.PanelsConfig, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{cfg: cfg, logger: logger}
}

// Routes configures all routes and returns the router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Get("/grid", h.GetGrid)
	r.Get("/grid/{seed}", h.GetGrid)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

// GetGrid handles GET /grid?seed=N and GET /grid/{seed}.
// A missing seed picks a time-based one, echoed in the response.
func (h *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "seed")
	if raw == "" {
		raw = r.URL.Query().Get("seed")
	}

	seed := time.Now().UnixNano()
	if raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid seed")
			return
		}
		seed = parsed
	}

	h.respondJSON(w, http.StatusOK, export.Build(seed, h.cfg))
}

// requestLogger logs each request at debug level.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// respondJSON writes a JSON response.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("could not encode response", "error", err)
	}
}

// respondError writes an error JSON response.
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// ListenAndServe serves the routes on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, h *Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		h.logger.Info("serving grids", "address", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
