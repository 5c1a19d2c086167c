package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/interfaces/http/handlers"
	"github.com/inkpress-io/inkpress/internal/interfaces/http/middleware"
)

// EntitlementRouteConfig holds dependencies for entitlement routes.
type EntitlementRouteConfig struct {
	EntitlementHandler *handlers.EntitlementHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// SetupEntitlementRoutes configures content access routes.
func SetupEntitlementRoutes(engine *gin.Engine, cfg *EntitlementRouteConfig) {
	entitlements := engine.Group("/entitlements")
	entitlements.Use(cfg.AuthMiddleware.RequireAuth())
	{
		entitlements.GET("", cfg.EntitlementHandler.ListMyEntitlements)
		entitlements.GET("/check/:scope", cfg.EntitlementHandler.CheckScope)
	}
}
