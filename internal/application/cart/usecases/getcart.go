package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/cart"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type GetCartCommand struct {
	UserID    *uint
	SessionID *string
}

// GetCartResult carries the hydrated cart. Cart is nil when the owner has no
// live cart, which callers render as an empty cart.
type GetCartResult struct {
	Cart      *cart.Cart
	Subtotal  int64
	ItemCount int
}

type GetCartUseCase struct {
	cartRepo cart.Repository
	logger   logger.Interface
}

func NewGetCartUseCase(cartRepo cart.Repository, logger logger.Interface) *GetCartUseCase {
	return &GetCartUseCase{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

func (uc *GetCartUseCase) Execute(ctx context.Context, cmd GetCartCommand) (*GetCartResult, error) {
	owner, err := resolveOwner(cmd.UserID, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	activeCart, err := uc.cartRepo.GetActiveWithItems(ctx, owner)
	if err != nil {
		uc.logger.Errorw("failed to get cart", "error", err)
		return nil, apperrors.NewDatabaseError("failed to get cart", err)
	}

	if activeCart == nil {
		return &GetCartResult{}, nil
	}

	return &GetCartResult{
		Cart:      activeCart,
		Subtotal:  activeCart.Subtotal(),
		ItemCount: activeCart.ItemCount(),
	}, nil
}
