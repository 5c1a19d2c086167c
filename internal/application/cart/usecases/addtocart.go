package usecases

import (
	"context"
	"fmt"

	"github.com/inkpress-io/inkpress/internal/domain/cart"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type AddToCartCommand struct {
	UserID    *uint
	SessionID *string
	ProductID uint
	VariantID uint
	Quantity  int
}

type AddToCartResult struct {
	Item *cart.Item
}

type AddToCartUseCase struct {
	cartRepo    cart.Repository
	productRepo catalog.ProductRepository
	variantRepo catalog.VariantRepository
	logger      logger.Interface
}

func NewAddToCartUseCase(
	cartRepo cart.Repository,
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	logger logger.Interface,
) *AddToCartUseCase {
	return &AddToCartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		variantRepo: variantRepo,
		logger:      logger,
	}
}

func (uc *AddToCartUseCase) Execute(ctx context.Context, cmd AddToCartCommand) (*AddToCartResult, error) {
	if cmd.Quantity <= 0 {
		return nil, apperrors.NewValidationError("Quantity must be positive")
	}

	owner, err := resolveOwner(cmd.UserID, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	variant, err := uc.variantRepo.GetByID(ctx, cmd.VariantID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Product variant")
		}
		uc.logger.Errorw("failed to get variant", "error", err, "variant_id", cmd.VariantID)
		return nil, apperrors.NewDatabaseError("failed to get variant", err)
	}
	if variant.ProductID() != cmd.ProductID {
		return nil, apperrors.NewValidationError("Variant does not belong to the given product")
	}
	if !variant.IsActive() {
		return nil, apperrors.NewBusinessRuleError("This item is no longer available")
	}

	product, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Product")
		}
		uc.logger.Errorw("failed to get product", "error", err, "product_id", cmd.ProductID)
		return nil, apperrors.NewDatabaseError("failed to get product", err)
	}
	if !product.IsActive() {
		return nil, apperrors.NewBusinessRuleError("This item is no longer available")
	}

	activeCart, err := uc.cartRepo.GetOrCreate(ctx, owner)
	if err != nil {
		uc.logger.Errorw("failed to get or create cart", "error", err)
		return nil, apperrors.NewDatabaseError("failed to get or create cart", err)
	}

	existing, err := uc.cartRepo.FindItem(ctx, activeCart.ID(), cmd.ProductID, cmd.VariantID)
	if err != nil {
		uc.logger.Errorw("failed to look up cart item", "error", err, "cart_id", activeCart.ID())
		return nil, apperrors.NewDatabaseError("failed to look up cart item", err)
	}

	// An existing line is topped up, so the stock check covers the combined
	// quantity.
	newQuantity := cmd.Quantity
	if existing != nil {
		newQuantity += existing.Quantity()
	}
	if !variant.HasStock(newQuantity) {
		return nil, apperrors.NewBusinessRuleError(
			fmt.Sprintf("Insufficient inventory. Available: %d, Requested: %d", variant.InventoryQuantity(), newQuantity))
	}

	var item *cart.Item
	if existing != nil {
		if err := uc.cartRepo.UpdateItemQuantity(ctx, existing.ID(), newQuantity); err != nil {
			uc.logger.Errorw("failed to update cart item quantity", "error", err, "item_id", existing.ID())
			return nil, apperrors.NewDatabaseError("failed to update cart item", err)
		}
		if err := existing.ChangeQuantity(newQuantity); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		item = existing
	} else {
		item, err = cart.NewItem(activeCart.ID(), cmd.ProductID, cmd.VariantID, cmd.Quantity)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.cartRepo.AddItem(ctx, item); err != nil {
			uc.logger.Errorw("failed to add cart item", "error", err, "cart_id", activeCart.ID())
			return nil, apperrors.NewDatabaseError("failed to add cart item", err)
		}
	}

	if err := uc.cartRepo.Touch(ctx, activeCart.ID()); err != nil {
		uc.logger.Warnw("failed to touch cart", "error", err, "cart_id", activeCart.ID())
	}

	uc.logger.Infow("item added to cart",
		"cart_id", activeCart.ID(),
		"product_id", cmd.ProductID,
		"variant_id", cmd.VariantID,
		"quantity", newQuantity)

	return &AddToCartResult{Item: item}, nil
}
