package usecases

import (
	"context"
	"fmt"

	"github.com/inkpress-io/inkpress/internal/domain/cart"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type UpdateCartItemCommand struct {
	UserID    *uint
	SessionID *string
	ItemID    uint
	Quantity  int
}

type UpdateCartItemResult struct {
	Item    *cart.Item
	Removed bool
}

type UpdateCartItemUseCase struct {
	cartRepo    cart.Repository
	variantRepo catalog.VariantRepository
	logger      logger.Interface
}

func NewUpdateCartItemUseCase(
	cartRepo cart.Repository,
	variantRepo catalog.VariantRepository,
	logger logger.Interface,
) *UpdateCartItemUseCase {
	return &UpdateCartItemUseCase{
		cartRepo:    cartRepo,
		variantRepo: variantRepo,
		logger:      logger,
	}
}

func (uc *UpdateCartItemUseCase) Execute(ctx context.Context, cmd UpdateCartItemCommand) (*UpdateCartItemResult, error) {
	owner, err := resolveOwner(cmd.UserID, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	item, err := uc.loadOwnedItem(ctx, owner, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	// Zero or negative quantity means remove the line.
	if cmd.Quantity <= 0 {
		if err := uc.cartRepo.DeleteItem(ctx, item.ID()); err != nil {
			uc.logger.Errorw("failed to delete cart item", "error", err, "item_id", item.ID())
			return nil, apperrors.NewDatabaseError("failed to delete cart item", err)
		}
		return &UpdateCartItemResult{Removed: true}, nil
	}

	variant, err := uc.variantRepo.GetByID(ctx, item.VariantID())
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Product variant")
		}
		uc.logger.Errorw("failed to get variant", "error", err, "variant_id", item.VariantID())
		return nil, apperrors.NewDatabaseError("failed to get variant", err)
	}
	if !variant.HasStock(cmd.Quantity) {
		return nil, apperrors.NewBusinessRuleError(
			fmt.Sprintf("Insufficient inventory. Available: %d, Requested: %d", variant.InventoryQuantity(), cmd.Quantity))
	}

	if err := uc.cartRepo.UpdateItemQuantity(ctx, item.ID(), cmd.Quantity); err != nil {
		uc.logger.Errorw("failed to update cart item quantity", "error", err, "item_id", item.ID())
		return nil, apperrors.NewDatabaseError("failed to update cart item", err)
	}
	if err := item.ChangeQuantity(cmd.Quantity); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.cartRepo.Touch(ctx, item.CartID()); err != nil {
		uc.logger.Warnw("failed to touch cart", "error", err, "cart_id", item.CartID())
	}

	return &UpdateCartItemResult{Item: item}, nil
}

// loadOwnedItem fetches the line and verifies the caller owns the cart it
// belongs to.
func (uc *UpdateCartItemUseCase) loadOwnedItem(ctx context.Context, owner cart.OwnerKey, itemID uint) (*cart.Item, error) {
	item, err := uc.cartRepo.GetItemByID(ctx, itemID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Cart item")
		}
		uc.logger.Errorw("failed to get cart item", "error", err, "item_id", itemID)
		return nil, apperrors.NewDatabaseError("failed to get cart item", err)
	}

	owningCart, err := uc.cartRepo.GetByID(ctx, item.CartID())
	if err != nil {
		uc.logger.Errorw("failed to get cart", "error", err, "cart_id", item.CartID())
		return nil, apperrors.NewDatabaseError("failed to get cart", err)
	}
	if !owner.Matches(owningCart.Owner().UserID(), owningCart.Owner().SessionID()) {
		uc.logger.Warnw("cart item access denied", "item_id", itemID, "cart_id", item.CartID())
		return nil, apperrors.NewForbiddenError("You do not have access to this cart item")
	}

	return item, nil
}
