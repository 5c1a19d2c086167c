package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type ChangeRoleCommand struct {
	ActorID      uint
	TargetUserID uint
	NewRole      authorization.UserRole
}

type ChangeRoleResult struct {
	Profile *user.Profile
}

// ChangeRoleUseCase assigns a new role to a profile. The actor must be able
// to manage the target's current role and must outrank the role being
// assigned, so an admin can neither touch peers nor mint new admins.
type ChangeRoleUseCase struct {
	profileRepo user.ProfileRepository
	logger      logger.Interface
}

func NewChangeRoleUseCase(profileRepo user.ProfileRepository, logger logger.Interface) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) (*ChangeRoleResult, error) {
	if !cmd.NewRole.IsValid() {
		return nil, apperrors.NewValidationError("Invalid role")
	}
	if cmd.ActorID == cmd.TargetUserID {
		return nil, apperrors.NewBusinessRuleError("You cannot change your own role")
	}

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

	if !rules.CanPerformAction(actor.Role(), rules.ActionManageUsers, target.Role()) {
		return nil, apperrors.NewForbiddenError("You cannot manage this user")
	}
	if !actor.Role().Outranks(cmd.NewRole) {
		return nil, apperrors.NewForbiddenError("You cannot assign a role equal to or above your own")
	}

	if err := target.ChangeRole(cmd.NewRole); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.profileRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to update profile", "error", err, "user_id", target.ID())
		return nil, apperrors.NewDatabaseError("failed to update profile", err)
	}

	uc.logger.Infow("role changed",
		"actor_id", cmd.ActorID,
		"user_id", target.ID(),
		"new_role", string(cmd.NewRole))

	return &ChangeRoleResult{Profile: target}, nil
}
