package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type SubmitBetaApplicationCommand struct {
	UserID             uint
	InterestStatement  string
	FeedbackPhilosophy string
	HoursPerWeek       int
	Communication      string
	PriorExperience    string
}

type SubmitBetaApplicationResult struct {
	Application *user.BetaApplication
}

type SubmitBetaApplicationUseCase struct {
	profileRepo     user.ProfileRepository
	applicationRepo user.BetaApplicationRepository
	logger          logger.Interface
}

func NewSubmitBetaApplicationUseCase(
	profileRepo user.ProfileRepository,
	applicationRepo user.BetaApplicationRepository,
	logger logger.Interface,
) *SubmitBetaApplicationUseCase {
	return &SubmitBetaApplicationUseCase{
		profileRepo:     profileRepo,
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

func (uc *SubmitBetaApplicationUseCase) Execute(ctx context.Context, cmd SubmitBetaApplicationCommand) (*SubmitBetaApplicationResult, error) {
	profile, err := uc.profileRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Profile")
		}
		uc.logger.Errorw("failed to get profile", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewDatabaseError("failed to get profile", err)
	}

	if !rules.CanApplyForBeta(profile.Role(), profile.BetaStatus()) {
		return nil, apperrors.NewBusinessRuleError("You cannot apply for the beta program")
	}

	application, err := user.NewBetaApplication(cmd.UserID, rules.BetaApplicationInput{
		InterestStatement:  cmd.InterestStatement,
		FeedbackPhilosophy: cmd.FeedbackPhilosophy,
		HoursPerWeek:       cmd.HoursPerWeek,
		Communication:      cmd.Communication,
		PriorExperience:    cmd.PriorExperience,
	})
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.applicationRepo.Create(ctx, application); err != nil {
		uc.logger.Errorw("failed to create beta application", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewDatabaseError("failed to create beta application", err)
	}

	profile.SetBetaStatus(rules.BetaStatusPending)
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		uc.logger.Errorw("failed to update profile beta status", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewDatabaseError("failed to update profile", err)
	}

	uc.logger.Infow("beta application submitted",
		"application_id", application.ID(),
		"user_id", cmd.UserID,
		"score", application.Score())

	return &SubmitBetaApplicationResult{Application: application}, nil
}
