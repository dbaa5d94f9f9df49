// Package http assembles the engine's HTTP surface: the analysis API,
// health probes, and the metrics endpoint.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/ExitReady-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/ExitReady-Intelligence/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies for the
// route tree.
type RouterConfig struct {
	AnalysisHandler *handlers.AnalysisHandler
	HealthHandler   *handlers.HealthHandler

	AllowedOrigins []string
	// MaxBodySize caps request bodies in bytes; zero disables the limit.
	MaxBodySize int64

	Logger  logging.Logger
	Metrics *prometheus.AppMetrics
}

// NewRouter builds the gin engine with the global middleware stack, the
// public probe endpoints, and the versioned API group.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.MaxBodySize > 0 {
		r.Use(middleware.BodyLimit(cfg.MaxBodySize))
	}

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.POST("/analyses", cfg.AnalysisHandler.Analyze)
	}

	return r
}
