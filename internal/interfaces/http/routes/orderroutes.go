package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/interfaces/http/handlers"
	"github.com/inkpress-io/inkpress/internal/interfaces/http/middleware"
)

// OrderRouteConfig holds dependencies for order routes.
type OrderRouteConfig struct {
	OrderHandler   *handlers.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupOrderRoutes configures order history routes.
func SetupOrderRoutes(engine *gin.Engine, cfg *OrderRouteConfig) {
	orders := engine.Group("/orders")
	orders.Use(cfg.AuthMiddleware.RequireAuth())
	{
		orders.GET("", cfg.OrderHandler.ListOrders)
		orders.GET("/:id", cfg.OrderHandler.GetOrder)
	}
}
