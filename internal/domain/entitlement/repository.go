package entitlement

import "context"

type Repository interface {
	Create(ctx context.Context, entitlement *Entitlement) error
	GetByID(ctx context.Context, id uint) (*Entitlement, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Entitlement, error)
	ListActiveByUserID(ctx context.Context, userID uint) ([]*Entitlement, error)

	// Update persists a changed grant window.
	Update(ctx context.Context, entitlement *Entitlement) error

	// DeleteByUserAndSource removes every grant the source produced for the
	// user. Removing grants that do not exist is not an error.
	DeleteByUserAndSource(ctx context.Context, userID uint, source string) error

	// HasActiveScope reports whether the user holds a live grant for the
	// scope.
	HasActiveScope(ctx context.Context, userID uint, scope string) (bool, error)
}
