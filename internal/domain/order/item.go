package order

import (
	"fmt"
	"time"
)

// Item is an order line holding a snapshot of the product and price at
// checkout time.
type Item struct {
	id              uint
	orderID         uint
	productID       uint
	variantID       uint
	productName     string
	variantName     string
	sku             string
	quantity        int
	unitAmount      int64
	totalAmount     int64
	accessGranted   bool
	accessGrantedAt *time.Time
	createdAt       time.Time
}

// NewItem snapshots a cart line into an order line.
func NewItem(productID, variantID uint, productName, variantName, sku string, quantity int, unitAmount int64) (*Item, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if variantID == 0 {
		return nil, fmt.Errorf("variant ID is required")
	}
	if productName == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if unitAmount < 0 {
		return nil, fmt.Errorf("unit amount cannot be negative")
	}

	return &Item{
		productID:   productID,
		variantID:   variantID,
		productName: productName,
		variantName: variantName,
		sku:         sku,
		quantity:    quantity,
		unitAmount:  unitAmount,
		totalAmount: unitAmount * int64(quantity),
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructItem reconstructs an order line from persistence
func ReconstructItem(
	id, orderID, productID, variantID uint,
	productName, variantName, sku string,
	quantity int,
	unitAmount, totalAmount int64,
	accessGranted bool,
	accessGrantedAt *time.Time,
	createdAt time.Time,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("order item ID cannot be zero")
	}
	if orderID == 0 {
		return nil, fmt.Errorf("order ID is required")
	}

	return &Item{
		id:              id,
		orderID:         orderID,
		productID:       productID,
		variantID:       variantID,
		productName:     productName,
		variantName:     variantName,
		sku:             sku,
		quantity:        quantity,
		unitAmount:      unitAmount,
		totalAmount:     totalAmount,
		accessGranted:   accessGranted,
		accessGrantedAt: accessGrantedAt,
		createdAt:       createdAt,
	}, nil
}

func (i *Item) ID() uint                    { return i.id }
func (i *Item) OrderID() uint               { return i.orderID }
func (i *Item) ProductID() uint             { return i.productID }
func (i *Item) VariantID() uint             { return i.variantID }
func (i *Item) ProductName() string         { return i.productName }
func (i *Item) VariantName() string         { return i.variantName }
func (i *Item) SKU() string                 { return i.sku }
func (i *Item) Quantity() int               { return i.quantity }
func (i *Item) UnitAmount() int64           { return i.unitAmount }
func (i *Item) TotalAmount() int64          { return i.totalAmount }
func (i *Item) AccessGranted() bool         { return i.accessGranted }
func (i *Item) AccessGrantedAt() *time.Time { return i.accessGrantedAt }
func (i *Item) CreatedAt() time.Time        { return i.createdAt }

// GrantAccess marks the purchased content as unlocked.
func (i *Item) GrantAccess(at time.Time) {
	if i.accessGranted {
		return
	}
	i.accessGranted = true
	i.accessGrantedAt = &at
}
