package usecases

import (
	"context"
	"time"

	"github.com/inkpress-io/inkpress/internal/application/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	vo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type UpdateSubscriptionCommand struct {
	SubscriptionID         uint
	Status                 *vo.Status
	PeriodStart            *time.Time
	PeriodEnd              *time.Time
	CancelAtPeriodEnd      *bool
	ProviderSubscriptionID *string
}

type UpdateSubscriptionResult struct {
	Subscription *subscription.Subscription
}

// UpdateSubscriptionUseCase applies provider-driven changes to a
// subscription: status moves, billing period rollovers, and scheduled
// cancellation flags.
type UpdateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	statusChange     *statusChangeHandler
	logger           logger.Interface
}

func NewUpdateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	profileRepo user.ProfileRepository,
	entitlementSvc *entitlement.Service,
	notifier Notifier,
	logger logger.Interface,
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		statusChange: &statusChangeHandler{
			entitlementSvc: entitlementSvc,
			profileRepo:    profileRepo,
			notifier:       notifier,
			logger:         logger,
		},
		logger: logger,
	}
}

func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionCommand) (*UpdateSubscriptionResult, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Subscription")
		}
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, apperrors.NewDatabaseError("failed to get subscription", err)
	}

	oldStatus := sub.Status()

	if cmd.PeriodStart != nil && cmd.PeriodEnd != nil {
		if err := sub.UpdatePeriod(*cmd.PeriodStart, *cmd.PeriodEnd); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.ProviderSubscriptionID != nil {
		if err := sub.SetProviderSubscriptionID(*cmd.ProviderSubscriptionID); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.CancelAtPeriodEnd != nil {
		if *cmd.CancelAtPeriodEnd {
			if err := sub.ScheduleCancellation(""); err != nil {
				return nil, apperrors.NewBusinessRuleError(err.Error())
			}
		} else if sub.CancelAtPeriodEnd() {
			if err := sub.Reactivate(time.Now().UTC()); err != nil {
				return nil, apperrors.NewBusinessRuleError(err.Error())
			}
		}
	}
	if cmd.Status != nil {
		if err := sub.ChangeStatus(*cmd.Status); err != nil {
			return nil, apperrors.NewBusinessRuleError(err.Error())
		}
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", sub.ID())
		return nil, apperrors.NewDatabaseError("failed to update subscription", err)
	}

	uc.statusChange.handle(ctx, sub, oldStatus)

	uc.logger.Infow("subscription updated",
		"subscription_id", sub.ID(),
		"old_status", oldStatus.String(),
		"new_status", sub.Status().String())

	return &UpdateSubscriptionResult{Subscription: sub}, nil
}
