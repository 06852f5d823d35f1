// Package http assembles the gin router and the API server lifecycle.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/takweol/casematch/internal/config"
	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
	appprom "github.com/takweol/casematch/internal/infrastructure/monitoring/prometheus"
	"github.com/takweol/casematch/internal/interfaces/http/handlers"
	"github.com/takweol/casematch/internal/interfaces/http/middleware"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	Service interface {
		handlers.AnalysisService
		handlers.CatalogService
		handlers.LeadService
	}
	Metrics *appprom.Metrics
	Logger  logging.Logger
	Checks  map[string]handlers.HealthCheck
}

// NewRouter builds the full route table.
func NewRouter(cfg config.ServerConfig, deps RouterDeps) *gin.Engine {
	gin.SetMode(ginMode(cfg.Mode))
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging(deps.Logger, "/healthz", "/readyz", "/metrics"))
	r.Use(middleware.CORS(cfg.CORSAllowOrigins))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	health := handlers.NewHealthHandler(deps.Checks)
	r.GET("/healthz", health.Live)
	r.GET("/readyz", health.Ready)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	analysisHandler := handlers.NewAnalysisHandler(deps.Service)
	api.POST("/analysis", analysisHandler.Analyze)

	catalogHandler := handlers.NewCatalogHandler(deps.Service)
	api.GET("/categories", catalogHandler.List)
	api.GET("/categories/:id", catalogHandler.Get)

	leadHandler := handlers.NewLeadHandler(deps.Service)
	api.POST("/leads", leadHandler.Create)
	api.GET("/leads", leadHandler.List)
	api.GET("/leads/:id", leadHandler.Get)
	api.PATCH("/leads/:id/status", leadHandler.UpdateStatus)

	return r
}

func ginMode(mode string) string {
	switch mode {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
