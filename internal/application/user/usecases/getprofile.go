package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/user"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type GetProfileCommand struct {
	UserID uint
}

type GetProfileResult struct {
	Profile           *user.Profile
	LatestApplication *user.BetaApplication
}

type GetProfileUseCase struct {
	profileRepo     user.ProfileRepository
	applicationRepo user.BetaApplicationRepository
	logger          logger.Interface
}

func NewGetProfileUseCase(
	profileRepo user.ProfileRepository,
	applicationRepo user.BetaApplicationRepository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo:     profileRepo,
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, cmd GetProfileCommand) (*GetProfileResult, error) {
	profile, err := uc.profileRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Profile")
		}
		uc.logger.Errorw("failed to get profile", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewDatabaseError("failed to get profile", err)
	}

	application, err := uc.applicationRepo.GetLatestByUserID(ctx, cmd.UserID)
	if err != nil && !apperrors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to get latest beta application", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewDatabaseError("failed to get latest beta application", err)
	}

	return &GetProfileResult{
		Profile:           profile,
		LatestApplication: application,
	}, nil
}
