// Package http assembles the public HTTP surface of the service.
package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"nhl-stats-service/internal/http/handlers"
	"nhl-stats-service/internal/http/middleware"
	"nhl-stats-service/internal/metrics"
)

// RouterConfig tunes the shared middleware on the router.
type RouterConfig struct {
	Logger   *slog.Logger
	Recorder *metrics.Recorder
	// RateLimitRequests caps requests per client per RateLimitWindow.
	// Zero or negative disables throttling.
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// NewRouter registers routes and the middleware chain.
func NewRouter(handler *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging(cfg.Logger, cfg.Recorder))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	if cfg.RateLimitRequests > 0 {
		window := cfg.RateLimitWindow
		if window <= 0 {
			window = time.Minute
		}
		r.Use(httprate.LimitByIP(cfg.RateLimitRequests, window))
	}

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/players", handler.Players)

	return r
}
