package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/services/markdown"
)

type UpdateProductCommand struct {
	ProductID   uint
	Name        *string
	Description *string
	Grants      []catalog.ContentGrant
	ImageURLs   []string
	Active      *bool
}

type UpdateProductResult struct {
	Product *catalog.Product
}

type UpdateProductUseCase struct {
	productRepo catalog.ProductRepository
	markdownSvc markdown.Service
	logger      logger.Interface
}

func NewUpdateProductUseCase(
	productRepo catalog.ProductRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*UpdateProductResult, error) {
	product, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Product")
		}
		uc.logger.Errorw("failed to get product", "error", err, "product_id", cmd.ProductID)
		return nil, apperrors.NewDatabaseError("failed to get product", err)
	}

	if cmd.Name != nil || cmd.Description != nil {
		name := product.Name()
		description := product.Description()
		if cmd.Name != nil {
			name = *cmd.Name
		}
		if cmd.Description != nil {
			description = *cmd.Description
			if description != "" {
				if _, err := uc.markdownSvc.ToHTMLSanitized(description); err != nil {
					return nil, apperrors.NewValidationError("Description is not valid markdown")
				}
			}
		}
		if err := product.UpdateDetails(name, description); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.Grants != nil {
		product.SetContentGrants(catalog.ContentGrants{Grants: cmd.Grants})
	}
	if cmd.ImageURLs != nil {
		product.SetImageURLs(cmd.ImageURLs)
	}
	if cmd.Active != nil {
		if *cmd.Active {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		uc.logger.Errorw("failed to update product", "error", err, "product_id", product.ID())
		return nil, apperrors.NewDatabaseError("failed to update product", err)
	}

	uc.logger.Infow("product updated", "product_id", product.ID(), "active", product.IsActive())

	return &UpdateProductResult{Product: product}, nil
}
