package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/inkpress-io/inkpress/internal/shared/constants"
)

// OrderModel represents the database persistence model for orders
type OrderModel struct {
	ID                 uint   `gorm:"primarykey"`
	OrderNumber        string `gorm:"not null;size:30;uniqueIndex:uk_order_number"`
	UserID             *uint  `gorm:"index:idx_order_user"`
	Email              string `gorm:"size:255"`
	Status             string `gorm:"not null;size:20;index:idx_order_status"`
	PaymentStatus      string `gorm:"not null;size:20;index:idx_order_payment_status"`
	Currency           string `gorm:"not null;size:3"`
	Subtotal           int64  `gorm:"not null"`
	TotalAmount        int64  `gorm:"not null"`
	BillingAddress     datatypes.JSON
	ShippingAddress    datatypes.JSON
	CheckoutSessionID  *string `gorm:"size:255;index:idx_order_checkout_session"`
	PaymentIntentID    *string `gorm:"size:255"`
	ProviderCustomerID *string `gorm:"size:255"`
	ConfirmedAt        *time.Time
	Version            int `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return constants.TableOrders
}

// OrderItemModel represents the database persistence model for order lines.
// Product and variant names are snapshots taken at checkout time.
type OrderItemModel struct {
	ID              uint   `gorm:"primarykey"`
	OrderID         uint   `gorm:"not null;index:idx_order_item_order"`
	ProductID       uint   `gorm:"not null"`
	VariantID       uint   `gorm:"not null"`
	ProductName     string `gorm:"not null;size:255"`
	VariantName     string `gorm:"size:255"`
	SKU             string `gorm:"size:100"`
	Quantity        int    `gorm:"not null"`
	UnitAmount      int64  `gorm:"not null"`
	TotalAmount     int64  `gorm:"not null"`
	AccessGranted   bool   `gorm:"not null;default:false"`
	AccessGrantedAt *time.Time
	CreatedAt       time.Time

	// Note: No foreign key constraints.
	// All relationships are managed by application business logic.
}

// TableName specifies the table name for GORM
func (OrderItemModel) TableName() string {
	return constants.TableOrderItems
}
