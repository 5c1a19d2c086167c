package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/order"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type HandlePaymentFailureCommand struct {
	SessionID string
}

// HandlePaymentFailureUseCase cancels an order whose checkout session failed
// or expired. An unknown session is logged and ignored because the provider
// may deliver events for sessions this service never created.
type HandlePaymentFailureUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewHandlePaymentFailureUseCase(orderRepo order.Repository, logger logger.Interface) *HandlePaymentFailureUseCase {
	return &HandlePaymentFailureUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *HandlePaymentFailureUseCase) Execute(ctx context.Context, cmd HandlePaymentFailureCommand) error {
	if cmd.SessionID == "" {
		return apperrors.NewValidationError("Session ID is required")
	}

	failedOrder, err := uc.orderRepo.GetByCheckoutSessionID(ctx, cmd.SessionID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			uc.logger.Warnw("payment failure for unknown session", "session_id", cmd.SessionID)
			return nil
		}
		uc.logger.Errorw("failed to get order by session", "error", err, "session_id", cmd.SessionID)
		return apperrors.NewDatabaseError("failed to get order", err)
	}

	if err := failedOrder.MarkPaymentFailed(); err != nil {
		uc.logger.Warnw("order cannot be failed", "error", err, "order_id", failedOrder.ID())
		return nil
	}
	if err := uc.orderRepo.Update(ctx, failedOrder); err != nil {
		uc.logger.Errorw("failed to update order", "error", err, "order_id", failedOrder.ID())
		return apperrors.NewDatabaseError("failed to update order", err)
	}

	uc.logger.Infow("order cancelled after payment failure",
		"order_id", failedOrder.ID(),
		"order_number", failedOrder.OrderNumber())
	return nil
}
