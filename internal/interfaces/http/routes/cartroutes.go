package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/interfaces/http/handlers"
	"github.com/inkpress-io/inkpress/internal/interfaces/http/middleware"
)

// CartRouteConfig holds dependencies for cart routes.
type CartRouteConfig struct {
	CartHandler    *handlers.CartHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCartRoutes configures cart routes. All of them accept guests, keyed
// by the cart session header.
func SetupCartRoutes(engine *gin.Engine, cfg *CartRouteConfig) {
	cart := engine.Group("/cart")
	cart.Use(cfg.AuthMiddleware.OptionalAuth())
	{
		cart.GET("", cfg.CartHandler.GetCart)
		cart.POST("/items", cfg.CartHandler.AddItem)
		cart.PUT("/items/:id", cfg.CartHandler.UpdateItem)
		cart.DELETE("/items/:id", cfg.CartHandler.RemoveItem)
		cart.DELETE("", cfg.CartHandler.ClearCart)
	}
}
