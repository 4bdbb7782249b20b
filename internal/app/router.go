package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/cms-blame/internal/config"
	"github.com/heartmarshall/cms-blame/internal/transport/middleware"
	"github.com/heartmarshall/cms-blame/internal/transport/rest"
)

// NewRouter wires HTTP routes to handlers. The returned limiter guards the
// refresh endpoint and must be stopped on shutdown.
func NewRouter(cfg *config.Config, engine *Engine, logger *slog.Logger) (http.Handler, *middleware.RateLimiter) {
	health := rest.NewHealthHandler(engine.CMS, engine.Tracker, BuildVersion())
	activityHandler := rest.NewActivityHandler(engine.Tracker, logger)
	limiter := middleware.NewRateLimiter(rateLimitCleanupInterval)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /activity", activityHandler.Overview)
	mux.Handle("POST /activity/refresh",
		limiter.Limit(cfg.Server.RefreshPerMinute)(http.HandlerFunc(activityHandler.Refresh)))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger, "/live", "/ready", "/metrics"),
		middleware.CORS(cfg.CORS),
	)(mux)

	return handler, limiter
}
