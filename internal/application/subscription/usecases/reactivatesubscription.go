package usecases

import (
	"context"
	"time"

	"github.com/inkpress-io/inkpress/internal/application/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type ReactivateSubscriptionCommand struct {
	SubscriptionID uint
	UserID         uint
}

type ReactivateSubscriptionResult struct {
	Subscription *subscription.Subscription
}

// ReactivateSubscriptionUseCase undoes a cancellation while the paid period
// is still running and restores the subscriber's access.
type ReactivateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	entitlementSvc   *entitlement.Service
	logger           logger.Interface
}

func NewReactivateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	entitlementSvc *entitlement.Service,
	logger logger.Interface,
) *ReactivateSubscriptionUseCase {
	return &ReactivateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		entitlementSvc:   entitlementSvc,
		logger:           logger,
	}
}

func (uc *ReactivateSubscriptionUseCase) Execute(ctx context.Context, cmd ReactivateSubscriptionCommand) (*ReactivateSubscriptionResult, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Subscription")
		}
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, apperrors.NewDatabaseError("failed to get subscription", err)
	}
	if sub.UserID() != cmd.UserID {
		return nil, apperrors.NewForbiddenError("You do not own this subscription")
	}

	wasGrantingAccess := sub.GrantsAccess()

	if err := sub.Reactivate(time.Now().UTC()); err != nil {
		return nil, apperrors.NewBusinessRuleError(err.Error())
	}
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", sub.ID())
		return nil, apperrors.NewDatabaseError("failed to update subscription", err)
	}

	// Re-grant only when access was actually lost; clearing a scheduled
	// cancellation never revoked anything.
	if !wasGrantingAccess && sub.GrantsAccess() {
		if err := uc.entitlementSvc.GrantForSubscription(ctx, sub.UserID(), sub.ProductID(), sub.ID()); err != nil {
			uc.logger.Errorw("failed to re-grant subscription entitlements",
				"error", err, "subscription_id", sub.ID(), "user_id", sub.UserID())
		}
	}

	uc.logger.Infow("subscription reactivated",
		"subscription_id", sub.ID(),
		"user_id", sub.UserID(),
		"status", sub.Status().String())

	return &ReactivateSubscriptionResult{Subscription: sub}, nil
}
