package usecases

import (
	"context"
	"fmt"

	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/domain/rules"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type CreateVariantCommand struct {
	ProductID       uint
	Name            string
	SKU             string
	PriceAmount     int64
	Currency        string
	Region          string
	BillingInterval *string
	InventoryQty    *int
}

type CreateVariantResult struct {
	Variant *catalog.Variant
}

type CreateVariantUseCase struct {
	productRepo catalog.ProductRepository
	variantRepo catalog.VariantRepository
	logger      logger.Interface
}

func NewCreateVariantUseCase(
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	logger logger.Interface,
) *CreateVariantUseCase {
	return &CreateVariantUseCase{
		productRepo: productRepo,
		variantRepo: variantRepo,
		logger:      logger,
	}
}

func (uc *CreateVariantUseCase) Execute(ctx context.Context, cmd CreateVariantCommand) (*CreateVariantResult, error) {
	product, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Product")
		}
		uc.logger.Errorw("failed to get product", "error", err, "product_id", cmd.ProductID)
		return nil, apperrors.NewDatabaseError("failed to get product", err)
	}

	region := cmd.Region
	if region == "" {
		region = "default"
	}
	if !rules.IsValidCurrency(region, cmd.Currency) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Currency %s is not accepted in region %s", cmd.Currency, region))
	}
	if !rules.PriceWithinBounds(product.Type(), cmd.PriceAmount) {
		bounds := rules.PriceBounds(product.Type())
		return nil, apperrors.NewBusinessRuleError(fmt.Sprintf("Price is outside the allowed range for %s (min %d)", product.Type(), bounds.Min))
	}
	if product.Type().IsRecurring() && cmd.BillingInterval == nil {
		return nil, apperrors.NewValidationError("A billing interval is required for recurring products")
	}

	variant, err := catalog.NewVariant(cmd.ProductID, cmd.Name, cmd.SKU, cmd.PriceAmount, cmd.Currency)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.BillingInterval != nil {
		if err := variant.SetBillingInterval(*cmd.BillingInterval); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.InventoryQty != nil {
		if err := variant.SetInventory(*cmd.InventoryQty); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.variantRepo.Create(ctx, variant); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("A variant with this SKU already exists")
		}
		uc.logger.Errorw("failed to create variant", "error", err, "product_id", cmd.ProductID)
		return nil, apperrors.NewDatabaseError("failed to create variant", err)
	}

	uc.logger.Infow("variant created",
		"variant_id", variant.ID(),
		"product_id", cmd.ProductID,
		"sku", variant.SKU())

	return &CreateVariantResult{Variant: variant}, nil
}
