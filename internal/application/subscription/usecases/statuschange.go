package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/application/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	vo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

// statusChangeHandler applies the entitlement and notification side effects
// of a subscription status change. Side effect failures are logged, never
// escalated: the status change itself has already been persisted.
type statusChangeHandler struct {
	entitlementSvc *entitlement.Service
	profileRepo    user.ProfileRepository
	notifier       Notifier
	logger         logger.Interface
}

func (h *statusChangeHandler) handle(ctx context.Context, sub *subscription.Subscription, oldStatus vo.Status) {
	newStatus := sub.Status()
	if oldStatus == newStatus {
		return
	}

	// Entitlements follow the provider's settled state: access is granted
	// when the subscription becomes active and revoked when it leaves
	// active for anything other than a trial.
	if newStatus == vo.StatusActive {
		if err := h.entitlementSvc.GrantForSubscription(ctx, sub.UserID(), sub.ProductID(), sub.ID()); err != nil {
			h.logger.Errorw("failed to grant subscription entitlements",
				"error", err, "subscription_id", sub.ID(), "user_id", sub.UserID())
		}
	} else if oldStatus == vo.StatusActive && newStatus != vo.StatusTrialing {
		if err := h.entitlementSvc.RevokeForSubscription(ctx, sub.UserID(), sub.ID()); err != nil {
			h.logger.Errorw("failed to revoke subscription entitlements",
				"error", err, "subscription_id", sub.ID(), "user_id", sub.UserID())
		}
	}

	h.notifyStatusChange(ctx, sub, oldStatus, newStatus)
}

func (h *statusChangeHandler) notifyStatusChange(ctx context.Context, sub *subscription.Subscription, oldStatus, newStatus vo.Status) {
	if h.notifier == nil {
		return
	}

	profile, err := h.profileRepo.GetByID(ctx, sub.UserID())
	if err != nil {
		h.logger.Warnw("failed to load profile for notification",
			"error", err, "user_id", sub.UserID())
		return
	}
	if err := h.notifier.NotifySubscriptionStatusChange(ctx, profile.Email(), oldStatus.String(), newStatus.String()); err != nil {
		h.logger.Warnw("failed to send status change notification",
			"error", err, "subscription_id", sub.ID(), "user_id", sub.UserID())
	}
}
