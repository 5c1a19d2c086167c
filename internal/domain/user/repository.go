package user

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/rules"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id uint) (*Profile, error)
	GetByUsername(ctx context.Context, username string) (*Profile, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, profile *Profile) error
	List(ctx context.Context, filter ProfileFilter) ([]*Profile, int64, error)
}

type ProfileFilter struct {
	Role     *string
	Page     int
	PageSize int
}

type BetaApplicationRepository interface {
	Create(ctx context.Context, application *BetaApplication) error
	GetByID(ctx context.Context, id uint) (*BetaApplication, error)
	GetLatestByUserID(ctx context.Context, userID uint) (*BetaApplication, error)
	Update(ctx context.Context, application *BetaApplication) error
	List(ctx context.Context, filter BetaApplicationFilter) ([]*BetaApplication, int64, error)
}

type BetaApplicationFilter struct {
	Status   *rules.BetaApplicationStatus
	Page     int
	PageSize int
}
