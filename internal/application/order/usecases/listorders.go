package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/order"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type ListOrdersCommand struct {
	UserID        *uint
	Status        *order.Status
	PaymentStatus *order.PaymentStatus
	Page          int
	PageSize      int
}

type ListOrdersResult struct {
	Orders   []*order.Order
	Total    int64
	Page     int
	PageSize int
}

type ListOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, cmd ListOrdersCommand) (*ListOrdersResult, error) {
	page := cmd.Page
	if page < 1 {
		page = 1
	}
	pageSize := cmd.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	orders, total, err := uc.orderRepo.List(ctx, order.Filter{
		UserID:        cmd.UserID,
		Status:        cmd.Status,
		PaymentStatus: cmd.PaymentStatus,
		Page:          page,
		PageSize:      pageSize,
		SortBy:        "created_at",
		SortDesc:      true,
	})
	if err != nil {
		uc.logger.Errorw("failed to list orders", "error", err)
		return nil, apperrors.NewDatabaseError("failed to list orders", err)
	}

	return &ListOrdersResult{
		Orders:   orders,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
