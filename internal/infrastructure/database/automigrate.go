package database

import (
	"fmt"

	"github.com/inkpress-io/inkpress/internal/infrastructure/persistence/models"
	appLogger "github.com/inkpress-io/inkpress/internal/shared/logger"
)

// AutoMigrate runs schema migrations for all persistence models.
func AutoMigrate() error {
	database := Get()
	if database == nil {
		return fmt.Errorf("database connection not initialized")
	}

	err := database.AutoMigrate(
		&models.ProductModel{},
		&models.ProductVariantModel{},
		&models.ShoppingCartModel{},
		&models.CartItemModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.SubscriptionModel{},
		&models.EntitlementModel{},
		&models.ProfileModel{},
		&models.BetaApplicationModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to run auto migration: %w", err)
	}

	appLogger.Info("database migration completed")
	return nil
}
