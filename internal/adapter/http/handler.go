package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"tribe-pulse-ads/internal/core/port"
)

// Options configures optional parts of the router.
type Options struct {
	// JWTSecret verifies bearer tokens. Empty means every viewer is
	// anonymous.
	JWTSecret string
	// PreferPremium is used when a request does not state a preference.
	PreferPremium bool
	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the use case to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc           port.AdUseCase
	logger        *slog.Logger
	auth          *Authenticator
	preferPremium bool
	router        chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.AdUseCase, logger *slog.Logger, opts Options) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{
		svc:           svc,
		logger:        logger,
		auth:          NewAuthenticator(opts.JWTSecret),
		preferPremium: opts.PreferPremium,
	}
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", h.handleHealth)
	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, opts.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.auth.Middleware(logger))

		r.Get("/ads/select", h.handleSelect)
		r.Get("/ads/{id}/stats", h.handleStats)

		r.Post("/reel/sessions", h.handleOpenReel)
		r.Post("/reel/sessions/{id}/advance", h.handleAdvanceReel)
		r.Post("/reel/sessions/{id}/tap", h.handleTapReel)
		r.Delete("/reel/sessions/{id}", h.handleCloseReel)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}
