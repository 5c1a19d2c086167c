package cart

import (
	"fmt"
	"time"
)

// ItemDetails carries the current catalog state for a cart line, filled in
// by the repository when the cart is loaded. Prices here are live, not
// snapshots.
type ItemDetails struct {
	ProductName       string
	ProductActive     bool
	VariantName       string
	SKU               string
	UnitAmount        int64
	Currency          string
	TrackInventory    bool
	InventoryQuantity int
}

// Item is a single cart line.
type Item struct {
	id        uint
	cartID    uint
	productID uint
	variantID uint
	quantity  int
	details   *ItemDetails
	createdAt time.Time
	updatedAt time.Time
}

// NewItem creates a cart line.
func NewItem(cartID, productID, variantID uint, quantity int) (*Item, error) {
	if cartID == 0 {
		return nil, fmt.Errorf("cart ID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if variantID == 0 {
		return nil, fmt.Errorf("variant ID is required")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	now := time.Now().UTC()
	return &Item{
		cartID:    cartID,
		productID: productID,
		variantID: variantID,
		quantity:  quantity,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructItem reconstructs a cart line from persistence
func ReconstructItem(
	id, cartID, productID, variantID uint,
	quantity int,
	details *ItemDetails,
	createdAt, updatedAt time.Time,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("cart item ID cannot be zero")
	}
	if cartID == 0 {
		return nil, fmt.Errorf("cart ID is required")
	}

	return &Item{
		id:        id,
		cartID:    cartID,
		productID: productID,
		variantID: variantID,
		quantity:  quantity,
		details:   details,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (i *Item) ID() uint              { return i.id }
func (i *Item) CartID() uint          { return i.cartID }
func (i *Item) ProductID() uint       { return i.productID }
func (i *Item) VariantID() uint       { return i.variantID }
func (i *Item) Quantity() int         { return i.quantity }
func (i *Item) Details() *ItemDetails { return i.details }
func (i *Item) CreatedAt() time.Time  { return i.createdAt }
func (i *Item) UpdatedAt() time.Time  { return i.updatedAt }

// SetID sets the item ID (only for persistence layer use)
func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("cart item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("cart item ID cannot be zero")
	}
	i.id = id
	return nil
}

// ChangeQuantity replaces the line quantity.
func (i *Item) ChangeQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}

	i.quantity = quantity
	i.updatedAt = time.Now().UTC()
	return nil
}

// LineTotal returns quantity times the current unit price, or zero when the
// catalog details are not hydrated.
func (i *Item) LineTotal() int64 {
	if i.details == nil {
		return 0
	}
	return i.details.UnitAmount * int64(i.quantity)
}

// IsAvailable reports whether the line can currently be purchased at its
// full quantity.
func (i *Item) IsAvailable() bool {
	if i.details == nil {
		return false
	}
	if !i.details.ProductActive {
		return false
	}
	if !i.details.TrackInventory {
		return true
	}
	return i.details.InventoryQuantity >= i.quantity
}
