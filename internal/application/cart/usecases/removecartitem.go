package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/cart"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type RemoveCartItemCommand struct {
	UserID    *uint
	SessionID *string
	ItemID    uint
}

type RemoveCartItemUseCase struct {
	updateItem *UpdateCartItemUseCase
	logger     logger.Interface
}

func NewRemoveCartItemUseCase(
	cartRepo cart.Repository,
	variantRepo catalog.VariantRepository,
	logger logger.Interface,
) *RemoveCartItemUseCase {
	return &RemoveCartItemUseCase{
		updateItem: NewUpdateCartItemUseCase(cartRepo, variantRepo, logger),
		logger:     logger,
	}
}

// Execute removes the line from the cart. Removing a line that is already
// gone succeeds.
func (uc *RemoveCartItemUseCase) Execute(ctx context.Context, cmd RemoveCartItemCommand) error {
	_, err := uc.updateItem.Execute(ctx, UpdateCartItemCommand{
		UserID:    cmd.UserID,
		SessionID: cmd.SessionID,
		ItemID:    cmd.ItemID,
		Quantity:  0,
	})
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil
		}
		return err
	}
	return nil
}
