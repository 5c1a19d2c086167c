package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/order"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type GetOrderCommand struct {
	OrderID uint
	UserID  uint
	// Admin bypasses the ownership check for back-office views.
	Admin bool
}

type GetOrderResult struct {
	Order *order.Order
}

type GetOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderUseCase(orderRepo order.Repository, logger logger.Interface) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, cmd GetOrderCommand) (*GetOrderResult, error) {
	o, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Order")
		}
		uc.logger.Errorw("failed to get order", "error", err, "order_id", cmd.OrderID)
		return nil, apperrors.NewDatabaseError("failed to get order", err)
	}

	if !cmd.Admin {
		// Guest orders have no user and are only reachable by admins.
		if o.UserID() == nil || *o.UserID() != cmd.UserID {
			return nil, apperrors.NewForbiddenError("You do not own this order")
		}
	}

	return &GetOrderResult{Order: o}, nil
}
