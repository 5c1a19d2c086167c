package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/interfaces/http/handlers"
	"github.com/inkpress-io/inkpress/internal/interfaces/http/middleware"
)

// CheckoutRouteConfig holds dependencies for checkout and webhook routes.
type CheckoutRouteConfig struct {
	CheckoutHandler *handlers.CheckoutHandler
	WebhookHandler  *handlers.WebhookHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupCheckoutRoutes configures checkout session creation and the payment
// provider webhook endpoint. The webhook is authenticated by its signature,
// not by a bearer token.
func SetupCheckoutRoutes(engine *gin.Engine, cfg *CheckoutRouteConfig) {
	checkout := engine.Group("/checkout")
	checkout.Use(cfg.AuthMiddleware.OptionalAuth())
	{
		checkout.POST("/session", cfg.CheckoutHandler.CreateSession)
	}

	engine.POST("/webhooks/payment", cfg.WebhookHandler.HandleProviderEvent)
}
