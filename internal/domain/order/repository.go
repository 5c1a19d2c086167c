package order

import "context"

type Repository interface {
	// Create persists the order and its items in one transaction.
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetByCheckoutSessionID(ctx context.Context, sessionID string) (*Order, error)
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id uint) error

	// MarkItemsAccessGranted flags every line on the order as unlocked.
	MarkItemsAccessGranted(ctx context.Context, orderID uint) error

	List(ctx context.Context, filter Filter) ([]*Order, int64, error)
}

type Filter struct {
	UserID        *uint
	Status        *Status
	PaymentStatus *PaymentStatus
	Page          int
	PageSize      int
	SortBy        string
	SortDesc      bool
}
