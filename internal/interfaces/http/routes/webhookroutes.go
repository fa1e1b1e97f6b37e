package routes

import (
	"github.com/gin-gonic/gin"

	"walletpay/internal/interfaces/http/handlers"
)

// WebhookRouteConfig holds dependencies for webhook routes.
type WebhookRouteConfig struct {
	WebhookHandler *handlers.WebhookHandler
	Path           string
}

// SetupWebhookRoutes configures the WalletPay delivery endpoint.
func SetupWebhookRoutes(engine *gin.Engine, cfg *WebhookRouteConfig) {
	engine.POST(cfg.Path, cfg.WebhookHandler.HandleWebhook)
}
