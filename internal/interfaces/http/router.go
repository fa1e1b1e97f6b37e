package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"walletpay/internal/interfaces/http/handlers"
	"walletpay/internal/interfaces/http/middleware"
	"walletpay/internal/interfaces/http/routes"
	sharedConfig "walletpay/internal/shared/config"
	"walletpay/internal/shared/logger"

	_ "walletpay/docs"
)

const serviceName = "walletpay"

// RouterConfig holds what the router needs beyond the dispatcher.
type RouterConfig struct {
	Webhook        sharedConfig.WebhookConfig
	SwaggerEnabled bool
	Gatherer       prometheus.Gatherer // Optional
}

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	webhookHandler *handlers.WebhookHandler
	healthHandler  *handlers.HealthHandler
	cfg            RouterConfig
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(dispatcher handlers.WebhookDispatcher, cfg RouterConfig, log logger.Interface) *Router {
	engine := gin.New()

	return &Router{
		engine:         engine,
		webhookHandler: handlers.NewWebhookHandler(dispatcher, cfg.Webhook.MaxBodyBytes, log.Named("webhook")),
		healthHandler:  handlers.NewHealthHandler(serviceName),
		cfg:            cfg,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger.Named("http")))
	r.engine.Use(middleware.Recovery(r.logger.Named("http")))
	r.engine.Use(middleware.SecurityHeaders())

	routes.SetupSystemRoutes(r.engine, &routes.SystemRouteConfig{
		HealthHandler:  r.healthHandler,
		Gatherer:       r.cfg.Gatherer,
		SwaggerEnabled: r.cfg.SwaggerEnabled,
	})

	routes.SetupWebhookRoutes(r.engine, &routes.WebhookRouteConfig{
		WebhookHandler: r.webhookHandler,
		Path:           r.cfg.Webhook.NormalizedPath(),
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
