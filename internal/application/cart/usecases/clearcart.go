package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/cart"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type ClearCartCommand struct {
	UserID    *uint
	SessionID *string
}

type ClearCartUseCase struct {
	cartRepo cart.Repository
	logger   logger.Interface
}

func NewClearCartUseCase(cartRepo cart.Repository, logger logger.Interface) *ClearCartUseCase {
	return &ClearCartUseCase{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// Execute empties the owner's cart. Clearing a missing or already empty cart
// succeeds.
func (uc *ClearCartUseCase) Execute(ctx context.Context, cmd ClearCartCommand) error {
	owner, err := resolveOwner(cmd.UserID, cmd.SessionID)
	if err != nil {
		return err
	}

	activeCart, err := uc.cartRepo.GetActiveWithItems(ctx, owner)
	if err != nil {
		uc.logger.Errorw("failed to get cart", "error", err)
		return apperrors.NewDatabaseError("failed to get cart", err)
	}
	if activeCart == nil {
		return nil
	}

	if err := uc.cartRepo.DeleteItemsByCartID(ctx, activeCart.ID()); err != nil {
		uc.logger.Errorw("failed to clear cart", "error", err, "cart_id", activeCart.ID())
		return apperrors.NewDatabaseError("failed to clear cart", err)
	}

	uc.logger.Infow("cart cleared", "cart_id", activeCart.ID())
	return nil
}
