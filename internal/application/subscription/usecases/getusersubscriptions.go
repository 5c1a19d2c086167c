package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type GetUserSubscriptionsCommand struct {
	UserID uint
}

type GetUserSubscriptionsResult struct {
	Subscriptions []*subscription.Subscription
}

type GetUserSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetUserSubscriptionsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *GetUserSubscriptionsUseCase {
	return &GetUserSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetUserSubscriptionsUseCase) Execute(ctx context.Context, cmd GetUserSubscriptionsCommand) (*GetUserSubscriptionsResult, error) {
	subs, err := uc.subscriptionRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewDatabaseError("failed to list subscriptions", err)
	}
	return &GetUserSubscriptionsResult{Subscriptions: subs}, nil
}
