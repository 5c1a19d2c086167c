package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type ListProductsCommand struct {
	Type     *catalog.ProductType
	Active   *bool
	WorkRef  *string
	Page     int
	PageSize int
}

type ListProductsResult struct {
	Products []*catalog.Product
	Total    int64
	Page     int
	PageSize int
}

type ListProductsUseCase struct {
	productRepo catalog.ProductRepository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo catalog.ProductRepository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, cmd ListProductsCommand) (*ListProductsResult, error) {
	page := cmd.Page
	if page < 1 {
		page = 1
	}
	pageSize := cmd.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	products, total, err := uc.productRepo.List(ctx, catalog.ProductFilter{
		Type:     cmd.Type,
		Active:   cmd.Active,
		WorkRef:  cmd.WorkRef,
		Page:     page,
		PageSize: pageSize,
		SortBy:   "created_at",
		SortDesc: true,
	})
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, apperrors.NewDatabaseError("failed to list products", err)
	}

	return &ListProductsResult{
		Products: products,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
