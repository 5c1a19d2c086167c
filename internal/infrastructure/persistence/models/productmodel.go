package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/inkpress-io/inkpress/internal/shared/constants"
)

// ProductModel represents the database persistence model for catalog products
// This is the anti-corruption layer between domain and database
type ProductModel struct {
	ID                uint   `gorm:"primarykey"`
	Name              string `gorm:"not null;size:255"`
	Description       string `gorm:"type:text"`
	ProductType       string `gorm:"not null;size:30;index:idx_product_type"`
	WorkRef           string `gorm:"size:100;index:idx_work_ref"`
	ContentGrants     datatypes.JSON
	ImageURLs         datatypes.JSON
	Active            bool    `gorm:"not null;default:true;index:idx_product_active"`
	ProviderProductID *string `gorm:"size:100;uniqueIndex:uk_provider_product"`
	Metadata          datatypes.JSON
	Version           int `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}

// ProductVariantModel represents the database persistence model for variants
type ProductVariantModel struct {
	ID                uint    `gorm:"primarykey"`
	ProductID         uint    `gorm:"not null;index:idx_variant_product"`
	Name              string  `gorm:"not null;size:255"`
	SKU               string  `gorm:"size:100;uniqueIndex:uk_variant_sku"`
	PriceAmount       int64   `gorm:"not null"`
	Currency          string  `gorm:"not null;size:3"`
	BillingInterval   *string `gorm:"size:10"`
	InventoryQuantity int     `gorm:"not null;default:0"`
	TrackInventory    bool    `gorm:"not null;default:false"`
	Active            bool    `gorm:"not null;default:true"`
	ProviderPriceID   *string `gorm:"size:100"`
	Version           int     `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Note: No foreign key constraints.
	// All relationships are managed by application business logic.
}

// TableName specifies the table name for GORM
func (ProductVariantModel) TableName() string {
	return constants.TableProductVariants
}
