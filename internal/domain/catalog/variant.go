package catalog

import (
	"fmt"
	"time"
)

// Variant is a purchasable form of a product: a format, an edition, or a
// billing interval. The price and inventory live here.
type Variant struct {
	id                uint
	productID         uint
	name              string
	sku               string
	priceAmount       int64
	currency          string
	billingInterval   *string
	inventoryQuantity int
	trackInventory    bool
	active            bool
	providerPriceID   *string
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

// NewVariant creates a new active variant for a product. priceAmount is in
// the minor currency unit.
func NewVariant(productID uint, name, sku string, priceAmount int64, currency string) (*Variant, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("variant name is required")
	}
	if priceAmount <= 0 {
		return nil, fmt.Errorf("price amount must be positive")
	}
	if len(currency) != 3 {
		return nil, fmt.Errorf("invalid currency code: %s", currency)
	}

	now := time.Now().UTC()
	return &Variant{
		productID:   productID,
		name:        name,
		sku:         sku,
		priceAmount: priceAmount,
		currency:    currency,
		active:      true,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructVariant reconstructs a variant from persistence
func ReconstructVariant(
	id, productID uint,
	name, sku string,
	priceAmount int64,
	currency string,
	billingInterval *string,
	inventoryQuantity int,
	trackInventory bool,
	active bool,
	providerPriceID *string,
	version int,
	createdAt, updatedAt time.Time,
) (*Variant, error) {
	if id == 0 {
		return nil, fmt.Errorf("variant ID cannot be zero")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}

	return &Variant{
		id:                id,
		productID:         productID,
		name:              name,
		sku:               sku,
		priceAmount:       priceAmount,
		currency:          currency,
		billingInterval:   billingInterval,
		inventoryQuantity: inventoryQuantity,
		trackInventory:    trackInventory,
		active:            active,
		providerPriceID:   providerPriceID,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (v *Variant) ID() uint                 { return v.id }
func (v *Variant) ProductID() uint          { return v.productID }
func (v *Variant) Name() string             { return v.name }
func (v *Variant) SKU() string              { return v.sku }
func (v *Variant) PriceAmount() int64       { return v.priceAmount }
func (v *Variant) Currency() string         { return v.currency }
func (v *Variant) BillingInterval() *string { return v.billingInterval }
func (v *Variant) InventoryQuantity() int   { return v.inventoryQuantity }
func (v *Variant) TrackInventory() bool     { return v.trackInventory }
func (v *Variant) IsActive() bool           { return v.active }
func (v *Variant) ProviderPriceID() *string { return v.providerPriceID }
func (v *Variant) Version() int             { return v.version }
func (v *Variant) CreatedAt() time.Time     { return v.createdAt }
func (v *Variant) UpdatedAt() time.Time     { return v.updatedAt }

// SetID sets the variant ID (only for persistence layer use)
func (v *Variant) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("variant ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("variant ID cannot be zero")
	}
	v.id = id
	return nil
}

// ChangePrice updates the variant price. The provider price link is cleared
// because the old price object no longer matches.
func (v *Variant) ChangePrice(amount int64, currency string) error {
	if amount <= 0 {
		return fmt.Errorf("price amount must be positive")
	}
	if len(currency) != 3 {
		return fmt.Errorf("invalid currency code: %s", currency)
	}

	v.priceAmount = amount
	v.currency = currency
	v.providerPriceID = nil
	v.updatedAt = time.Now().UTC()
	v.version++
	return nil
}

// SetBillingInterval marks the variant as recurring with the given interval.
func (v *Variant) SetBillingInterval(interval string) error {
	if interval != "month" && interval != "year" {
		return fmt.Errorf("invalid billing interval: %s", interval)
	}

	v.billingInterval = &interval
	v.updatedAt = time.Now().UTC()
	v.version++
	return nil
}

// SetInventory enables inventory tracking with the given stock level.
func (v *Variant) SetInventory(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("inventory quantity cannot be negative")
	}

	v.inventoryQuantity = quantity
	v.trackInventory = true
	v.updatedAt = time.Now().UTC()
	v.version++
	return nil
}

// SetProviderPriceID links the variant to the payment provider's price.
func (v *Variant) SetProviderPriceID(providerID string) error {
	if providerID == "" {
		return fmt.Errorf("provider price ID is required")
	}

	v.providerPriceID = &providerID
	v.updatedAt = time.Now().UTC()
	v.version++
	return nil
}

// Deactivate removes the variant from sale.
func (v *Variant) Deactivate() {
	if !v.active {
		return
	}
	v.active = false
	v.updatedAt = time.Now().UTC()
	v.version++
}

// HasStock reports whether the requested quantity can be fulfilled.
// Variants without inventory tracking always have stock.
func (v *Variant) HasStock(quantity int) bool {
	if !v.trackInventory {
		return true
	}
	return v.inventoryQuantity >= quantity
}
