package usecases

import (
	"context"
	"fmt"

	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/domain/rules"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type UpdateVariantCommand struct {
	VariantID    uint
	PriceAmount  *int64
	Currency     string
	Region       string
	InventoryQty *int
	Active       *bool
}

type UpdateVariantResult struct {
	Variant *catalog.Variant
}

type UpdateVariantUseCase struct {
	productRepo catalog.ProductRepository
	variantRepo catalog.VariantRepository
	logger      logger.Interface
}

func NewUpdateVariantUseCase(
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	logger logger.Interface,
) *UpdateVariantUseCase {
	return &UpdateVariantUseCase{
		productRepo: productRepo,
		variantRepo: variantRepo,
		logger:      logger,
	}
}

func (uc *UpdateVariantUseCase) Execute(ctx context.Context, cmd UpdateVariantCommand) (*UpdateVariantResult, error) {
	variant, err := uc.variantRepo.GetByID(ctx, cmd.VariantID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Variant")
		}
		uc.logger.Errorw("failed to get variant", "error", err, "variant_id", cmd.VariantID)
		return nil, apperrors.NewDatabaseError("failed to get variant", err)
	}

	if cmd.PriceAmount != nil {
		product, err := uc.productRepo.GetByID(ctx, variant.ProductID())
		if err != nil {
			uc.logger.Errorw("failed to get product", "error", err, "product_id", variant.ProductID())
			return nil, apperrors.NewDatabaseError("failed to get product", err)
		}

		currency := cmd.Currency
		if currency == "" {
			currency = variant.Currency()
		}
		region := cmd.Region
		if region == "" {
			region = "default"
		}
		if !rules.IsValidCurrency(region, currency) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("Currency %s is not accepted in region %s", currency, region))
		}
		if !rules.PriceWithinBounds(product.Type(), *cmd.PriceAmount) {
			bounds := rules.PriceBounds(product.Type())
			return nil, apperrors.NewBusinessRuleError(fmt.Sprintf("Price is outside the allowed range for %s (min %d)", product.Type(), bounds.Min))
		}
		if err := variant.ChangePrice(*cmd.PriceAmount, currency); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.InventoryQty != nil {
		if err := variant.SetInventory(*cmd.InventoryQty); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Active != nil && !*cmd.Active {
		variant.Deactivate()
	}

	if err := uc.variantRepo.Update(ctx, variant); err != nil {
		uc.logger.Errorw("failed to update variant", "error", err, "variant_id", variant.ID())
		return nil, apperrors.NewDatabaseError("failed to update variant", err)
	}

	uc.logger.Infow("variant updated", "variant_id", variant.ID(), "price", variant.PriceAmount())

	return &UpdateVariantResult{Variant: variant}, nil
}
