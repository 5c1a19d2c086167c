package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	"github.com/inkpress-io/inkpress/internal/infrastructure/persistence/models"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

// BetaApplicationRepositoryImpl implements the user.BetaApplicationRepository interface
type BetaApplicationRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewBetaApplicationRepository creates a new beta application repository instance
func NewBetaApplicationRepository(db *gorm.DB, logger logger.Interface) user.BetaApplicationRepository {
	return &BetaApplicationRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *BetaApplicationRepositoryImpl) Create(ctx context.Context, application *user.BetaApplication) error {
	model := toBetaApplicationModel(application)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create beta application", "user_id", application.UserID(), "error", err)
		return fmt.Errorf("failed to create beta application: %w", err)
	}

	if err := application.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set beta application ID", "error", err)
		return fmt.Errorf("failed to set beta application ID: %w", err)
	}

	r.logger.Infow("beta application created",
		"id", model.ID,
		"user_id", model.UserID,
		"score", model.Score)
	return nil
}

func (r *BetaApplicationRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.BetaApplication, error) {
	var model models.BetaApplicationModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("beta application not found")
		}
		r.logger.Errorw("failed to get beta application", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get beta application: %w", err)
	}

	return toBetaApplicationDomain(&model)
}

func (r *BetaApplicationRepositoryImpl) GetLatestByUserID(ctx context.Context, userID uint) (*user.BetaApplication, error) {
	var model models.BetaApplicationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("beta application not found")
		}
		r.logger.Errorw("failed to get latest beta application", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get latest beta application: %w", err)
	}

	return toBetaApplicationDomain(&model)
}

func (r *BetaApplicationRepositoryImpl) Update(ctx context.Context, application *user.BetaApplication) error {
	model := toBetaApplicationModel(application)

	result := r.db.WithContext(ctx).
		Model(&models.BetaApplicationModel{}).
		Where("id = ?", application.ID()).
		Updates(map[string]interface{}{
			"status":       model.Status,
			"reviewed_by":  model.ReviewedBy,
			"review_notes": model.ReviewNotes,
			"reviewed_at":  model.ReviewedAt,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update beta application", "id", application.ID(), "error", result.Error)
		return fmt.Errorf("failed to update beta application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("beta application not found")
	}

	return nil
}

func (r *BetaApplicationRepositoryImpl) List(ctx context.Context, filter user.BetaApplicationFilter) ([]*user.BetaApplication, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.BetaApplicationModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count beta applications", "error", err)
		return nil, 0, fmt.Errorf("failed to count beta applications: %w", err)
	}

	query = applySort(query, "created_at", true)
	query = applyPaging(query, filter.Page, filter.PageSize)

	var applicationModels []models.BetaApplicationModel
	if err := query.Find(&applicationModels).Error; err != nil {
		r.logger.Errorw("failed to list beta applications", "error", err)
		return nil, 0, fmt.Errorf("failed to list beta applications: %w", err)
	}

	applications := make([]*user.BetaApplication, len(applicationModels))
	for i := range applicationModels {
		application, err := toBetaApplicationDomain(&applicationModels[i])
		if err != nil {
			return nil, 0, err
		}
		applications[i] = application
	}

	return applications, total, nil
}

func toBetaApplicationModel(application *user.BetaApplication) *models.BetaApplicationModel {
	return &models.BetaApplicationModel{
		UserID:             application.UserID(),
		InterestStatement:  application.InterestStatement(),
		FeedbackPhilosophy: application.FeedbackPhilosophy(),
		HoursPerWeek:       application.HoursPerWeek(),
		Communication:      application.Communication(),
		PriorExperience:    application.PriorExperience(),
		Score:              application.Score(),
		Status:             string(application.Status()),
		ReviewedBy:         application.ReviewedBy(),
		ReviewNotes:        application.ReviewNotes(),
		ReviewedAt:         application.ReviewedAt(),
		CreatedAt:          application.CreatedAt(),
		UpdatedAt:          application.UpdatedAt(),
	}
}

func toBetaApplicationDomain(model *models.BetaApplicationModel) (*user.BetaApplication, error) {
	application, err := user.ReconstructBetaApplication(
		model.ID,
		model.UserID,
		model.InterestStatement,
		model.FeedbackPhilosophy,
		model.HoursPerWeek,
		model.Communication,
		model.PriorExperience,
		model.Score,
		rules.BetaApplicationStatus(model.Status),
		model.ReviewedBy,
		model.ReviewNotes,
		model.ReviewedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct beta application: %w", err)
	}

	return application, nil
}
