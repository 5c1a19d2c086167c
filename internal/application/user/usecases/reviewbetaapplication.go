package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type ReviewBetaApplicationCommand struct {
	ApplicationID uint
	ReviewerID    uint
	Approve       bool
	Notes         string
}

type ReviewBetaApplicationResult struct {
	Application *user.BetaApplication
}

// ReviewBetaApplicationUseCase records a reviewer's decision. Approval
// promotes the applicant to the beta reader role.
type ReviewBetaApplicationUseCase struct {
	profileRepo     user.ProfileRepository
	applicationRepo user.BetaApplicationRepository
	logger          logger.Interface
}

func NewReviewBetaApplicationUseCase(
	profileRepo user.ProfileRepository,
	applicationRepo user.BetaApplicationRepository,
	logger logger.Interface,
) *ReviewBetaApplicationUseCase {
	return &ReviewBetaApplicationUseCase{
		profileRepo:     profileRepo,
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

func (uc *ReviewBetaApplicationUseCase) Execute(ctx context.Context, cmd ReviewBetaApplicationCommand) (*ReviewBetaApplicationResult, error) {
	reviewer, err := uc.profileRepo.GetByID(ctx, cmd.ReviewerID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Profile")
		}
		uc.logger.Errorw("failed to get reviewer profile", "error", err, "user_id", cmd.ReviewerID)
		return nil, apperrors.NewDatabaseError("failed to get reviewer profile", err)
	}
	if !rules.CanPerformAction(reviewer.Role(), rules.ActionReviewApplications) {
		return nil, apperrors.NewForbiddenError("You cannot review beta applications")
	}

	application, err := uc.applicationRepo.GetByID(ctx, cmd.ApplicationID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Beta application")
		}
		uc.logger.Errorw("failed to get beta application", "error", err, "application_id", cmd.ApplicationID)
		return nil, apperrors.NewDatabaseError("failed to get beta application", err)
	}

	if cmd.Approve {
		err = application.Approve(cmd.ReviewerID, cmd.Notes)
	} else {
		err = application.Reject(cmd.ReviewerID, cmd.Notes)
	}
	if err != nil {
		return nil, apperrors.NewBusinessRuleError(err.Error())
	}

	if err := uc.applicationRepo.Update(ctx, application); err != nil {
		uc.logger.Errorw("failed to update beta application", "error", err, "application_id", application.ID())
		return nil, apperrors.NewDatabaseError("failed to update beta application", err)
	}

	uc.applyDecisionToProfile(ctx, application, cmd.Approve)

	uc.logger.Infow("beta application reviewed",
		"application_id", application.ID(),
		"reviewer_id", cmd.ReviewerID,
		"approved", cmd.Approve)

	return &ReviewBetaApplicationResult{Application: application}, nil
}

// applyDecisionToProfile mirrors the decision onto the applicant's profile.
// Failures are logged rather than escalated: the review itself is already
// recorded and support can reconcile the profile.
func (uc *ReviewBetaApplicationUseCase) applyDecisionToProfile(ctx context.Context, application *user.BetaApplication, approved bool) {
	profile, err := uc.profileRepo.GetByID(ctx, application.UserID())
	if err != nil {
		uc.logger.Errorw("failed to load applicant profile", "error", err, "user_id", application.UserID())
		return
	}

	if approved {
		profile.SetBetaStatus(rules.BetaStatusApproved)
		// Staff roles keep their rank; only basic readers are promoted.
		if profile.Role() == authorization.RoleUser {
			if err := profile.ChangeRole(authorization.RoleBetaReader); err != nil {
				uc.logger.Errorw("failed to promote applicant", "error", err, "user_id", profile.ID())
			}
		}
	} else {
		profile.SetBetaStatus(rules.BetaStatusRejected)
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		uc.logger.Errorw("failed to update applicant profile", "error", err, "user_id", profile.ID())
	}
}
