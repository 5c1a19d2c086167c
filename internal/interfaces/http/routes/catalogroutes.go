package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/interfaces/http/handlers"
	"github.com/inkpress-io/inkpress/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for catalog routes.
type CatalogRouteConfig struct {
	ProductHandler *handlers.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures the storefront catalog and its admin surface.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	products := engine.Group("/products")
	{
		// Public storefront endpoints
		products.GET("", cfg.ProductHandler.ListProducts)
		products.GET("/:id", cfg.ProductHandler.GetProduct)

		// Admin-only catalog management
		admin := products.Group("")
		admin.Use(cfg.AuthMiddleware.RequireAuth())
		admin.Use(cfg.AuthMiddleware.RequireAdmin())
		{
			admin.POST("", cfg.ProductHandler.CreateProduct)
			admin.PUT("/:id", cfg.ProductHandler.UpdateProduct)
			admin.POST("/:id/variants", cfg.ProductHandler.CreateVariant)
			admin.POST("/:id/sync", cfg.ProductHandler.SyncProduct)
		}
	}

	variants := engine.Group("/variants")
	variants.Use(cfg.AuthMiddleware.RequireAuth())
	variants.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		variants.PUT("/:id", cfg.ProductHandler.UpdateVariant)
	}
}
