package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/infrastructure/persistence/models"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

// VariantRepositoryImpl implements the catalog.VariantRepository interface
type VariantRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewVariantRepository creates a new variant repository instance
func NewVariantRepository(db *gorm.DB, logger logger.Interface) catalog.VariantRepository {
	return &VariantRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *VariantRepositoryImpl) Create(ctx context.Context, variant *catalog.Variant) error {
	model := toVariantModel(variant)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("variant SKU already exists")
		}
		r.logger.Errorw("failed to create variant",
			"product_id", variant.ProductID(),
			"sku", variant.SKU(),
			"error", err)
		return fmt.Errorf("failed to create variant: %w", err)
	}

	if err := variant.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set variant ID", "error", err)
		return fmt.Errorf("failed to set variant ID: %w", err)
	}

	r.logger.Infow("variant created", "id", model.ID, "product_id", model.ProductID, "sku", model.SKU)
	return nil
}

func (r *VariantRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Variant, error) {
	var model models.ProductVariantModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("variant not found")
		}
		r.logger.Errorw("failed to get variant", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get variant: %w", err)
	}

	return toVariantDomain(&model)
}

func (r *VariantRepositoryImpl) GetByProductID(ctx context.Context, productID uint) ([]*catalog.Variant, error) {
	var variantModels []models.ProductVariantModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&variantModels).Error; err != nil {
		r.logger.Errorw("failed to get variants", "product_id", productID, "error", err)
		return nil, fmt.Errorf("failed to get variants: %w", err)
	}

	variants := make([]*catalog.Variant, len(variantModels))
	for i := range variantModels {
		variant, err := toVariantDomain(&variantModels[i])
		if err != nil {
			return nil, err
		}
		variants[i] = variant
	}

	return variants, nil
}

func (r *VariantRepositoryImpl) Update(ctx context.Context, variant *catalog.Variant) error {
	model := toVariantModel(variant)

	result := r.db.WithContext(ctx).
		Model(&models.ProductVariantModel{}).
		Where("id = ?", variant.ID()).
		Updates(map[string]interface{}{
			"name":               model.Name,
			"sku":                model.SKU,
			"price_amount":       model.PriceAmount,
			"currency":           model.Currency,
			"billing_interval":   model.BillingInterval,
			"inventory_quantity": model.InventoryQuantity,
			"track_inventory":    model.TrackInventory,
			"active":             model.Active,
			"provider_price_id":  model.ProviderPriceID,
			"version":            model.Version,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("variant SKU already exists")
		}
		r.logger.Errorw("failed to update variant", "id", variant.ID(), "error", result.Error)
		return fmt.Errorf("failed to update variant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("variant not found")
	}

	return nil
}

// DecrementInventory atomically reduces stock with a conditional update so
// concurrent checkouts cannot oversell. Untracked variants are a no-op.
func (r *VariantRepositoryImpl) DecrementInventory(ctx context.Context, variantID uint, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}

	var model models.ProductVariantModel
	if err := r.db.WithContext(ctx).
		Select("track_inventory").
		First(&model, variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("variant not found")
		}
		r.logger.Errorw("failed to check variant inventory tracking", "id", variantID, "error", err)
		return fmt.Errorf("failed to check variant: %w", err)
	}
	if !model.TrackInventory {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.ProductVariantModel{}).
		Where("id = ? AND inventory_quantity >= ?", variantID, quantity).
		Update("inventory_quantity", gorm.Expr("inventory_quantity - ?", quantity))
	if result.Error != nil {
		r.logger.Errorw("failed to decrement inventory", "id", variantID, "error", result.Error)
		return fmt.Errorf("failed to decrement inventory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewBusinessRuleError("insufficient inventory")
	}

	return nil
}

func toVariantModel(variant *catalog.Variant) *models.ProductVariantModel {
	return &models.ProductVariantModel{
		ProductID:         variant.ProductID(),
		Name:              variant.Name(),
		SKU:               variant.SKU(),
		PriceAmount:       variant.PriceAmount(),
		Currency:          variant.Currency(),
		BillingInterval:   variant.BillingInterval(),
		InventoryQuantity: variant.InventoryQuantity(),
		TrackInventory:    variant.TrackInventory(),
		Active:            variant.IsActive(),
		ProviderPriceID:   variant.ProviderPriceID(),
		Version:           variant.Version(),
		CreatedAt:         variant.CreatedAt(),
		UpdatedAt:         variant.UpdatedAt(),
	}
}

func toVariantDomain(model *models.ProductVariantModel) (*catalog.Variant, error) {
	variant, err := catalog.ReconstructVariant(
		model.ID,
		model.ProductID,
		model.Name,
		model.SKU,
		model.PriceAmount,
		model.Currency,
		model.BillingInterval,
		model.InventoryQuantity,
		model.TrackInventory,
		model.Active,
		model.ProviderPriceID,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct variant: %w", err)
	}

	return variant, nil
}
