package usecases

import (
	"context"
	"strconv"

	"github.com/inkpress-io/inkpress/internal/application/payment/paymentgateway"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type SyncProductCommand struct {
	ProductID uint
}

type SyncProductResult struct {
	ProviderProductID string
	SyncedPriceIDs    map[uint]string
}

// SyncProductUseCase mirrors a product and its variant prices at the payment
// provider so checkout can reference provider price IDs instead of inline
// price data. Variants that already carry a provider price are skipped.
type SyncProductUseCase struct {
	productRepo catalog.ProductRepository
	variantRepo catalog.VariantRepository
	gateway     paymentgateway.Gateway
	logger      logger.Interface
}

func NewSyncProductUseCase(
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	gateway paymentgateway.Gateway,
	logger logger.Interface,
) *SyncProductUseCase {
	return &SyncProductUseCase{
		productRepo: productRepo,
		variantRepo: variantRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

func (uc *SyncProductUseCase) Execute(ctx context.Context, cmd SyncProductCommand) (*SyncProductResult, error) {
	product, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Product")
		}
		uc.logger.Errorw("failed to get product", "error", err, "product_id", cmd.ProductID)
		return nil, apperrors.NewDatabaseError("failed to get product", err)
	}

	providerProductID, err := uc.ensureProviderProduct(ctx, product)
	if err != nil {
		return nil, err
	}

	variants, err := uc.variantRepo.GetByProductID(ctx, product.ID())
	if err != nil {
		uc.logger.Errorw("failed to list variants", "error", err, "product_id", product.ID())
		return nil, apperrors.NewDatabaseError("failed to list variants", err)
	}

	synced := make(map[uint]string)
	for _, variant := range variants {
		if !variant.IsActive() || variant.ProviderPriceID() != nil {
			continue
		}

		interval := ""
		if variant.BillingInterval() != nil {
			interval = *variant.BillingInterval()
		}
		priceID, err := uc.gateway.SyncPrice(ctx, paymentgateway.SyncPriceRequest{
			ProviderProductID: providerProductID,
			Currency:          variant.Currency(),
			UnitAmount:        variant.PriceAmount(),
			BillingInterval:   interval,
			Metadata: map[string]string{
				"variant_id": strconv.FormatUint(uint64(variant.ID()), 10),
				"sku":        variant.SKU(),
			},
		})
		if err != nil {
			uc.logger.Errorw("failed to sync price", "error", err, "variant_id", variant.ID())
			return nil, apperrors.NewPaymentError("Failed to sync price with payment provider")
		}

		if err := variant.SetProviderPriceID(priceID); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.variantRepo.Update(ctx, variant); err != nil {
			uc.logger.Errorw("failed to store provider price ID", "error", err, "variant_id", variant.ID())
			return nil, apperrors.NewDatabaseError("failed to store provider price ID", err)
		}
		synced[variant.ID()] = priceID
	}

	uc.logger.Infow("product synced with payment provider",
		"product_id", product.ID(),
		"provider_product_id", providerProductID,
		"prices_synced", len(synced))

	return &SyncProductResult{ProviderProductID: providerProductID, SyncedPriceIDs: synced}, nil
}

func (uc *SyncProductUseCase) ensureProviderProduct(ctx context.Context, product *catalog.Product) (string, error) {
	if product.ProviderProductID() != nil {
		return *product.ProviderProductID(), nil
	}

	providerProductID, err := uc.gateway.SyncProduct(ctx, paymentgateway.SyncProductRequest{
		Name:        product.Name(),
		Description: product.Description(),
		Images:      product.ImageURLs(),
		Metadata: map[string]string{
			"product_id": strconv.FormatUint(uint64(product.ID()), 10),
			"work_ref":   product.WorkRef(),
		},
	})
	if err != nil {
		uc.logger.Errorw("failed to sync product", "error", err, "product_id", product.ID())
		return "", apperrors.NewPaymentError("Failed to sync product with payment provider")
	}

	if err := product.SetProviderProductID(providerProductID); err != nil {
		return "", apperrors.NewValidationError(err.Error())
	}
	if err := uc.productRepo.Update(ctx, product); err != nil {
		uc.logger.Errorw("failed to store provider product ID", "error", err, "product_id", product.ID())
		return "", apperrors.NewDatabaseError("failed to store provider product ID", err)
	}
	return providerProductID, nil
}
