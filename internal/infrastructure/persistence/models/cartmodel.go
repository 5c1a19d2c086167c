package models

import (
	"time"

	"github.com/inkpress-io/inkpress/internal/shared/constants"
)

// ShoppingCartModel represents the database persistence model for carts.
// Exactly one of UserID and SessionID is set: signed-in carts belong to a
// user, guest carts to a browser session.
type ShoppingCartModel struct {
	ID        uint    `gorm:"primarykey"`
	UserID    *uint   `gorm:"uniqueIndex:uk_cart_user"`
	SessionID *string `gorm:"size:100;uniqueIndex:uk_cart_session"`
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ShoppingCartModel) TableName() string {
	return constants.TableShoppingCarts
}

// CartItemModel represents the database persistence model for cart lines
type CartItemModel struct {
	ID        uint `gorm:"primarykey"`
	CartID    uint `gorm:"not null;index:idx_cart_item_cart;uniqueIndex:uk_cart_line,priority:1"`
	ProductID uint `gorm:"not null;uniqueIndex:uk_cart_line,priority:2"`
	VariantID uint `gorm:"not null;uniqueIndex:uk_cart_line,priority:3"`
	Quantity  int  `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Note: No foreign key constraints.
	// All relationships are managed by application business logic.
}

// TableName specifies the table name for GORM
func (CartItemModel) TableName() string {
	return constants.TableCartItems
}
