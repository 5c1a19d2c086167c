package cart

import "context"

type Repository interface {
	// GetOrCreate returns the owner's most recent non-expired cart, creating
	// one when none exists.
	GetOrCreate(ctx context.Context, owner OwnerKey) (*Cart, error)

	// GetActiveWithItems returns the owner's most recent non-expired cart
	// with items hydrated, or nil when the owner has no live cart.
	GetActiveWithItems(ctx context.Context, owner OwnerKey) (*Cart, error)

	GetByID(ctx context.Context, id uint) (*Cart, error)

	// FindItem returns the line for (cartID, productID, variantID), or nil.
	FindItem(ctx context.Context, cartID, productID, variantID uint) (*Item, error)
	GetItemByID(ctx context.Context, itemID uint) (*Item, error)

	AddItem(ctx context.Context, item *Item) error
	UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error
	DeleteItem(ctx context.Context, itemID uint) error
	DeleteItemsByCartID(ctx context.Context, cartID uint) error

	// Touch bumps the cart's updated_at so activity keeps it current.
	Touch(ctx context.Context, cartID uint) error
}
