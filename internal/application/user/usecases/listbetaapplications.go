package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type ListBetaApplicationsCommand struct {
	Status   *rules.BetaApplicationStatus
	Page     int
	PageSize int
}

type ListBetaApplicationsResult struct {
	Applications []*user.BetaApplication
	Total        int64
	Page         int
	PageSize     int
}

type ListBetaApplicationsUseCase struct {
	applicationRepo user.BetaApplicationRepository
	logger          logger.Interface
}

func NewListBetaApplicationsUseCase(applicationRepo user.BetaApplicationRepository, logger logger.Interface) *ListBetaApplicationsUseCase {
	return &ListBetaApplicationsUseCase{
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

func (uc *ListBetaApplicationsUseCase) Execute(ctx context.Context, cmd ListBetaApplicationsCommand) (*ListBetaApplicationsResult, error) {
	page := cmd.Page
	if page < 1 {
		page = 1
	}
	pageSize := cmd.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	applications, total, err := uc.applicationRepo.List(ctx, user.BetaApplicationFilter{
		Status:   cmd.Status,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list beta applications", "error", err)
		return nil, apperrors.NewDatabaseError("failed to list beta applications", err)
	}

	return &ListBetaApplicationsResult{
		Applications: applications,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}
