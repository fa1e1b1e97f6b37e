package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"walletpay/internal/interfaces/http/handlers"
)

// SystemRouteConfig holds dependencies for operational routes.
type SystemRouteConfig struct {
	HealthHandler  *handlers.HealthHandler
	Gatherer       prometheus.Gatherer // nil disables /metrics
	SwaggerEnabled bool
}

// SetupSystemRoutes configures health, metrics and API documentation routes.
func SetupSystemRoutes(engine *gin.Engine, cfg *SystemRouteConfig) {
	engine.GET("/health", cfg.HealthHandler.HealthCheck)

	if cfg.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	if cfg.SwaggerEnabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
