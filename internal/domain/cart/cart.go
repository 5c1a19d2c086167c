package cart

import (
	"fmt"
	"time"
)

// OwnerKey identifies who a cart belongs to: a signed-in user or an
// anonymous browser session. Exactly one side is set.
type OwnerKey struct {
	userID    *uint
	sessionID *string
}

// NewUserOwner builds an owner key for a signed-in user.
func NewUserOwner(userID uint) (OwnerKey, error) {
	if userID == 0 {
		return OwnerKey{}, fmt.Errorf("user ID is required")
	}
	return OwnerKey{userID: &userID}, nil
}

// NewSessionOwner builds an owner key for an anonymous session.
func NewSessionOwner(sessionID string) (OwnerKey, error) {
	if sessionID == "" {
		return OwnerKey{}, fmt.Errorf("session ID is required")
	}
	return OwnerKey{sessionID: &sessionID}, nil
}

func (o OwnerKey) UserID() *uint      { return o.userID }
func (o OwnerKey) SessionID() *string { return o.sessionID }

// Matches reports whether a cart owned by (userID, sessionID) belongs to
// this key.
func (o OwnerKey) Matches(userID *uint, sessionID *string) bool {
	if o.userID != nil {
		return userID != nil && *userID == *o.userID
	}
	return sessionID != nil && o.sessionID != nil && *sessionID == *o.sessionID
}

// Cart is the shopping cart aggregate. Items are hydrated with current
// variant pricing and availability when loaded.
type Cart struct {
	id        uint
	owner     OwnerKey
	expiresAt time.Time
	items     []*Item
	createdAt time.Time
	updatedAt time.Time
}

// NewCart creates a cart for the owner with the given expiry.
func NewCart(owner OwnerKey, expiresAt time.Time) (*Cart, error) {
	if owner.userID == nil && owner.sessionID == nil {
		return nil, fmt.Errorf("cart owner is required")
	}

	now := time.Now().UTC()
	return &Cart{
		owner:     owner,
		expiresAt: expiresAt,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCart reconstructs a cart from persistence
func ReconstructCart(
	id uint,
	userID *uint,
	sessionID *string,
	expiresAt time.Time,
	items []*Item,
	createdAt, updatedAt time.Time,
) (*Cart, error) {
	if id == 0 {
		return nil, fmt.Errorf("cart ID cannot be zero")
	}
	if userID == nil && sessionID == nil {
		return nil, fmt.Errorf("cart owner is required")
	}

	return &Cart{
		id:        id,
		owner:     OwnerKey{userID: userID, sessionID: sessionID},
		expiresAt: expiresAt,
		items:     items,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Cart) ID() uint             { return c.id }
func (c *Cart) Owner() OwnerKey      { return c.owner }
func (c *Cart) ExpiresAt() time.Time { return c.expiresAt }
func (c *Cart) Items() []*Item       { return c.items }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

// SetID sets the cart ID (only for persistence layer use)
func (c *Cart) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("cart ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("cart ID cannot be zero")
	}
	c.id = id
	return nil
}

// IsExpired reports whether the cart has passed its expiry.
func (c *Cart) IsExpired(now time.Time) bool {
	return now.After(c.expiresAt)
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ItemCount returns the total quantity across all items.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity()
	}
	return count
}

// Subtotal returns the cart total in the minor currency unit, computed from
// current variant prices.
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, item := range c.items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

// FindItem returns the cart line for the (product, variant) pair, or nil.
func (c *Cart) FindItem(productID, variantID uint) *Item {
	for _, item := range c.items {
		if item.ProductID() == productID && item.VariantID() == variantID {
			return item
		}
	}
	return nil
}
