package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/services/markdown"
)

type GetProductCommand struct {
	ProductID uint
}

type GetProductResult struct {
	Product         *catalog.Product
	Variants        []*catalog.Variant
	DescriptionHTML string
}

type GetProductUseCase struct {
	productRepo catalog.ProductRepository
	variantRepo catalog.VariantRepository
	markdownSvc markdown.Service
	logger      logger.Interface
}

func NewGetProductUseCase(
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		variantRepo: variantRepo,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, cmd GetProductCommand) (*GetProductResult, error) {
	product, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Product")
		}
		uc.logger.Errorw("failed to get product", "error", err, "product_id", cmd.ProductID)
		return nil, apperrors.NewDatabaseError("failed to get product", err)
	}

	variants, err := uc.variantRepo.GetByProductID(ctx, product.ID())
	if err != nil {
		uc.logger.Errorw("failed to list variants", "error", err, "product_id", product.ID())
		return nil, apperrors.NewDatabaseError("failed to list variants", err)
	}

	descriptionHTML := ""
	if product.Description() != "" {
		rendered, err := uc.markdownSvc.ToHTMLSanitized(product.Description())
		if err != nil {
			uc.logger.Warnw("failed to render product description", "error", err, "product_id", product.ID())
		} else {
			descriptionHTML = rendered
		}
	}

	return &GetProductResult{
		Product:         product,
		Variants:        variants,
		DescriptionHTML: descriptionHTML,
	}, nil
}
