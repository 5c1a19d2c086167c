package usecases

import (
	"context"
	"time"

	"github.com/inkpress-io/inkpress/internal/application/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	vo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	SubscriptionID uint
	UserID         uint
	Reason         string
	Immediate      bool
}

type CancelSubscriptionResult struct {
	Subscription *subscription.Subscription
	Immediate    bool
}

type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	profileRepo      user.ProfileRepository
	entitlementSvc   *entitlement.Service
	notifier         Notifier
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	profileRepo user.ProfileRepository,
	entitlementSvc *entitlement.Service,
	notifier Notifier,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		entitlementSvc:   entitlementSvc,
		notifier:         notifier,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*CancelSubscriptionResult, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Subscription")
		}
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, apperrors.NewDatabaseError("failed to get subscription", err)
	}
	if sub.UserID() != cmd.UserID {
		uc.logger.Warnw("cancel attempt on foreign subscription",
			"subscription_id", cmd.SubscriptionID, "user_id", cmd.UserID, "owner_id", sub.UserID())
		return nil, apperrors.NewForbiddenError("You do not own this subscription")
	}

	switch sub.Status() {
	case vo.StatusCanceled:
		return nil, apperrors.NewBusinessRuleError("Subscription is already canceled")
	case vo.StatusIncomplete, vo.StatusIncompleteExpired:
		return nil, apperrors.NewBusinessRuleError("Subscription cannot be canceled in its current state")
	}

	now := time.Now().UTC()
	immediate := cmd.Immediate
	if immediate && !rules.CanCancelImmediately(sub.Status(), sub.DaysSinceStart(now)) {
		return nil, apperrors.NewBusinessRuleError("Subscription can no longer be canceled immediately; it will end at the period close instead")
	}

	if immediate {
		if err := sub.CancelImmediately(cmd.Reason); err != nil {
			return nil, apperrors.NewBusinessRuleError(err.Error())
		}
	} else {
		if err := sub.ScheduleCancellation(cmd.Reason); err != nil {
			return nil, apperrors.NewBusinessRuleError(err.Error())
		}
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", sub.ID())
		return nil, apperrors.NewDatabaseError("failed to update subscription", err)
	}

	// Immediate cancellation revokes access right away; a deferred one keeps
	// the entitlements until the provider reports the period close.
	if immediate {
		if err := uc.entitlementSvc.RevokeForSubscription(ctx, sub.UserID(), sub.ID()); err != nil {
			uc.logger.Errorw("failed to revoke subscription entitlements",
				"error", err, "subscription_id", sub.ID(), "user_id", sub.UserID())
		}
	}

	uc.notifyCancellation(ctx, sub, immediate)

	uc.logger.Infow("subscription canceled",
		"subscription_id", sub.ID(),
		"user_id", sub.UserID(),
		"immediate", immediate)

	return &CancelSubscriptionResult{Subscription: sub, Immediate: immediate}, nil
}

func (uc *CancelSubscriptionUseCase) notifyCancellation(ctx context.Context, sub *subscription.Subscription, immediate bool) {
	if uc.notifier == nil {
		return
	}
	profile, err := uc.profileRepo.GetByID(ctx, sub.UserID())
	if err != nil {
		uc.logger.Warnw("failed to load profile for notification", "error", err, "user_id", sub.UserID())
		return
	}
	if err := uc.notifier.NotifySubscriptionCancelled(ctx, profile.Email(), immediate); err != nil {
		uc.logger.Warnw("failed to send cancellation notification",
			"error", err, "subscription_id", sub.ID())
	}
}
