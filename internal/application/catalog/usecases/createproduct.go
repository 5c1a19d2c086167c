package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/services/markdown"
)

type CreateProductCommand struct {
	Name        string
	Description string
	ProductType catalog.ProductType
	WorkRef     string
	Grants      []catalog.ContentGrant
	ImageURLs   []string
}

type CreateProductResult struct {
	Product *catalog.Product
}

type CreateProductUseCase struct {
	productRepo catalog.ProductRepository
	markdownSvc markdown.Service
	logger      logger.Interface
}

func NewCreateProductUseCase(
	productRepo catalog.ProductRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*CreateProductResult, error) {
	// Descriptions are author-supplied markdown. Rendering up front rejects
	// input the storefront would not be able to display.
	if cmd.Description != "" {
		if _, err := uc.markdownSvc.ToHTMLSanitized(cmd.Description); err != nil {
			return nil, apperrors.NewValidationError("Description is not valid markdown")
		}
	}

	product, err := catalog.NewProduct(cmd.Name, cmd.Description, cmd.ProductType, cmd.WorkRef)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if len(cmd.Grants) > 0 {
		product.SetContentGrants(catalog.ContentGrants{Grants: cmd.Grants})
	}
	if len(cmd.ImageURLs) > 0 {
		product.SetImageURLs(cmd.ImageURLs)
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		uc.logger.Errorw("failed to create product", "error", err, "name", cmd.Name)
		return nil, apperrors.NewDatabaseError("failed to create product", err)
	}

	uc.logger.Infow("product created",
		"product_id", product.ID(),
		"type", string(product.Type()),
		"work_ref", product.WorkRef())

	return &CreateProductResult{Product: product}, nil
}
