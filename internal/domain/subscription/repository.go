package subscription

import (
	"context"

	vo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetByProviderSubscriptionID(ctx context.Context, providerID string) (*Subscription, error)
	GetByUserID(ctx context.Context, userID uint) ([]*Subscription, error)
	GetActiveByUserAndPlan(ctx context.Context, userID, planID uint) (*Subscription, error)
	CountActiveByUserID(ctx context.Context, userID uint) (int64, error)
	Update(ctx context.Context, subscription *Subscription) error
	List(ctx context.Context, filter Filter) ([]*Subscription, int64, error)
}

type Filter struct {
	UserID    *uint
	ProductID *uint
	Status    *vo.Status
	Page      int
	PageSize  int
	SortBy    string
	SortDesc  bool
}
