package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/user"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID      uint
	Username    *string
	DisplayName *string
}

type UpdateProfileResult struct {
	Profile *user.Profile
}

type UpdateProfileUseCase struct {
	profileRepo user.ProfileRepository
	logger      logger.Interface
}

func NewUpdateProfileUseCase(profileRepo user.ProfileRepository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	profile, err := uc.profileRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Profile")
		}
		uc.logger.Errorw("failed to get profile", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewDatabaseError("failed to get profile", err)
	}

	if cmd.Username != nil && *cmd.Username != profile.Username() {
		taken, err := uc.profileRepo.ExistsByUsername(ctx, *cmd.Username)
		if err != nil {
			uc.logger.Errorw("failed to check username", "error", err, "username", *cmd.Username)
			return nil, apperrors.NewDatabaseError("failed to check username", err)
		}
		if taken {
			return nil, apperrors.NewConflictError("Username is already taken")
		}
		if err := profile.ChangeUsername(*cmd.Username); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}
	if cmd.DisplayName != nil {
		profile.SetDisplayName(*cmd.DisplayName)
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("Username is already taken")
		}
		uc.logger.Errorw("failed to update profile", "error", err, "user_id", profile.ID())
		return nil, apperrors.NewDatabaseError("failed to update profile", err)
	}

	uc.logger.Infow("profile updated", "user_id", profile.ID(), "username", profile.Username())

	return &UpdateProfileResult{Profile: profile}, nil
}
