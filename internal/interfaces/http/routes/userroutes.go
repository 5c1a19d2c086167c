package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/interfaces/http/handlers"
	"github.com/inkpress-io/inkpress/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for profile and beta program routes.
type UserRouteConfig struct {
	ProfileHandler *handlers.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures profile, role management, and beta reader
// program routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	profile := engine.Group("/profile")
	profile.Use(cfg.AuthMiddleware.RequireAuth())
	{
		profile.GET("/me", cfg.ProfileHandler.GetMe)
		profile.PUT("/me", cfg.ProfileHandler.UpdateMe)
	}

	beta := engine.Group("/beta/applications")
	beta.Use(cfg.AuthMiddleware.RequireAuth())
	{
		beta.POST("", cfg.ProfileHandler.SubmitBetaApplication)

		betaAdmin := beta.Group("")
		betaAdmin.Use(cfg.AuthMiddleware.RequireAdmin())
		{
			betaAdmin.GET("", cfg.ProfileHandler.ListBetaApplications)
			betaAdmin.POST("/:id/review", cfg.ProfileHandler.ReviewBetaApplication)
		}
	}

	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	users.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		users.PUT("/:id/role", cfg.ProfileHandler.ChangeRole)
		users.POST("/:id/deactivate", cfg.ProfileHandler.DeactivateUser)
	}
}
