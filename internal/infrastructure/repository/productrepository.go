package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/infrastructure/persistence/models"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

// ProductRepositoryImpl implements the catalog.ProductRepository interface
type ProductRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB, logger logger.Interface) catalog.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *catalog.Product) error {
	model, err := toProductModel(product)
	if err != nil {
		return fmt.Errorf("failed to map product: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("product already exists")
		}
		r.logger.Errorw("failed to create product", "name", product.Name(), "error", err)
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := product.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set product ID", "error", err)
		return fmt.Errorf("failed to set product ID: %w", err)
	}

	r.logger.Infow("product created", "id", model.ID, "name", model.Name, "type", model.ProductType)
	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		r.logger.Errorw("failed to get product", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return toProductDomain(&model)
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *catalog.Product) error {
	model, err := toProductModel(product)
	if err != nil {
		return fmt.Errorf("failed to map product: %w", err)
	}
	model.ID = product.ID()

	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", product.ID()).
		Updates(map[string]interface{}{
			"name":                model.Name,
			"description":         model.Description,
			"product_type":        model.ProductType,
			"work_ref":            model.WorkRef,
			"content_grants":      model.ContentGrants,
			"image_urls":          model.ImageURLs,
			"active":              model.Active,
			"provider_product_id": model.ProviderProductID,
			"metadata":            model.Metadata,
			"version":             model.Version,
			"updated_at":          model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update product", "id", product.ID(), "error", result.Error)
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product not found")
	}

	return nil
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ProductModel{})

	if filter.Type != nil {
		query = query.Where("product_type = ?", string(*filter.Type))
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.WorkRef != nil {
		query = query.Where("work_ref = ?", *filter.WorkRef)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count products", "error", err)
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query = applySort(query, filter.SortBy, filter.SortDesc)
	query = applyPaging(query, filter.Page, filter.PageSize)

	var productModels []models.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*catalog.Product, len(productModels))
	for i := range productModels {
		product, err := toProductDomain(&productModels[i])
		if err != nil {
			return nil, 0, err
		}
		products[i] = product
	}

	return products, total, nil
}

func toProductModel(product *catalog.Product) (*models.ProductModel, error) {
	grants, err := json.Marshal(product.ContentGrants())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content grants: %w", err)
	}
	images, err := json.Marshal(product.ImageURLs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal image URLs: %w", err)
	}
	metadata, err := json.Marshal(product.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	return &models.ProductModel{
		Name:              product.Name(),
		Description:       product.Description(),
		ProductType:       string(product.Type()),
		WorkRef:           product.WorkRef(),
		ContentGrants:     grants,
		ImageURLs:         images,
		Active:            product.IsActive(),
		ProviderProductID: product.ProviderProductID(),
		Metadata:          metadata,
		Version:           product.Version(),
		CreatedAt:         product.CreatedAt(),
		UpdatedAt:         product.UpdatedAt(),
	}, nil
}

func toProductDomain(model *models.ProductModel) (*catalog.Product, error) {
	var grants catalog.ContentGrants
	if len(model.ContentGrants) > 0 {
		if err := json.Unmarshal(model.ContentGrants, &grants); err != nil {
			return nil, fmt.Errorf("failed to unmarshal content grants: %w", err)
		}
	}

	var images []string
	if len(model.ImageURLs) > 0 {
		if err := json.Unmarshal(model.ImageURLs, &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal image URLs: %w", err)
		}
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	product, err := catalog.ReconstructProduct(
		model.ID,
		model.Name,
		model.Description,
		catalog.ProductType(model.ProductType),
		model.WorkRef,
		grants,
		images,
		model.Active,
		model.ProviderProductID,
		metadata,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct product: %w", err)
	}

	return product, nil
}
