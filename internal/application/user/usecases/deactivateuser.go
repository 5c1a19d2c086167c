package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/application/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type DeactivateUserCommand struct {
	ActorID      uint
	TargetUserID uint
	Reason       string
}

type DeactivateUserResult struct {
	CanceledSubscriptions int
}

// DeactivateUserUseCase shuts down a reader account: every active subscription
// is canceled immediately and every open entitlement is closed as of now.
// Entitlement rows stay in place so past access remains auditable. Super admin
// accounts cannot be deactivated, and nobody can deactivate themselves.
type DeactivateUserUseCase struct {
	profileRepo    user.ProfileRepository
	subRepo        subscription.Repository
	entitlementSvc *entitlement.Service
	logger         logger.Interface
}

func NewDeactivateUserUseCase(
	profileRepo user.ProfileRepository,
	subRepo subscription.Repository,
	entitlementSvc *entitlement.Service,
	logger logger.Interface,
) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{
		profileRepo:    profileRepo,
		subRepo:        subRepo,
		entitlementSvc: entitlementSvc,
		logger:         logger,
	}
}

func (uc *DeactivateUserUseCase) Execute(ctx context.Context, cmd DeactivateUserCommand) (*DeactivateUserResult, error) {
	actor, err := uc.profileRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Profile")
		}
		uc.logger.Errorw("failed to get actor profile", "error", err, "user_id", cmd.ActorID)
		return nil, apperrors.NewDatabaseError("failed to get actor profile", err)
	}

	target, err := uc.profileRepo.GetByID(ctx, cmd.TargetUserID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Profile")
		}
		uc.logger.Errorw("failed to get target profile", "error", err, "user_id", cmd.TargetUserID)
		return nil, apperrors.NewDatabaseError("failed to get target profile", err)
	}

	if target.Role() == authorization.RoleSuperAdmin {
		return nil, apperrors.NewBusinessRuleError("Super admin accounts cannot be deactivated")
	}
	if cmd.ActorID == cmd.TargetUserID {
		return nil, apperrors.NewBusinessRuleError("You cannot deactivate your own account")
	}
	if !rules.CanPerformAction(actor.Role(), rules.ActionManageUsers, target.Role()) {
		return nil, apperrors.NewForbiddenError("You cannot manage this user")
	}

	subs, err := uc.subRepo.GetByUserID(ctx, cmd.TargetUserID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err, "user_id", cmd.TargetUserID)
		return nil, apperrors.NewDatabaseError("failed to list subscriptions", err)
	}

	reason := cmd.Reason
	if reason == "" {
		reason = "account deactivated"
	}

	canceled := 0
	for _, sub := range subs {
		if !sub.Status().CountsAsActive() {
			continue
		}
		if err := sub.CancelImmediately(reason); err != nil {
			uc.logger.Errorw("failed to cancel subscription",
				"error", err, "subscription_id", sub.ID(), "user_id", cmd.TargetUserID)
			return nil, apperrors.NewBusinessRuleError("Failed to cancel an active subscription")
		}
		if err := uc.subRepo.Update(ctx, sub); err != nil {
			uc.logger.Errorw("failed to update subscription",
				"error", err, "subscription_id", sub.ID(), "user_id", cmd.TargetUserID)
			return nil, apperrors.NewDatabaseError("failed to update subscription", err)
		}
		canceled++
	}

	if err := uc.entitlementSvc.EndAllForUser(ctx, cmd.TargetUserID); err != nil {
		uc.logger.Errorw("failed to end entitlements", "error", err, "user_id", cmd.TargetUserID)
		return nil, apperrors.NewDatabaseError("failed to end entitlements", err)
	}

	uc.logger.Infow("user deactivated",
		"actor_id", cmd.ActorID,
		"user_id", cmd.TargetUserID,
		"canceled_subscriptions", canceled)

	return &DeactivateUserResult{CanceledSubscriptions: canceled}, nil
}
