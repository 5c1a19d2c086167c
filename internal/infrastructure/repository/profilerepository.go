package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	"github.com/inkpress-io/inkpress/internal/infrastructure/persistence/models"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

// ProfileRepositoryImpl implements the user.ProfileRepository interface
type ProfileRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewProfileRepository creates a new profile repository instance
func NewProfileRepository(db *gorm.DB, logger logger.Interface) user.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *user.Profile) error {
	model := toProfileModel(profile)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("email or username already in use")
		}
		r.logger.Errorw("failed to create profile", "username", profile.Username(), "error", err)
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if err := profile.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set profile ID", "error", err)
		return fmt.Errorf("failed to set profile ID: %w", err)
	}

	r.logger.Infow("profile created", "id", model.ID, "username", model.Username)
	return nil
}

func (r *ProfileRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		r.logger.Errorw("failed to get profile", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return toProfileDomain(&model)
}

func (r *ProfileRepositoryImpl) GetByUsername(ctx context.Context, username string) (*user.Profile, error) {
	var model models.ProfileModel
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		r.logger.Errorw("failed to get profile by username", "username", username, "error", err)
		return nil, fmt.Errorf("failed to get profile by username: %w", err)
	}

	return toProfileDomain(&model)
}

func (r *ProfileRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProfileModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check username", "username", username, "error", err)
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return count > 0, nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *user.Profile) error {
	model := toProfileModel(profile)

	result := r.db.WithContext(ctx).
		Model(&models.ProfileModel{}).
		Where("id = ?", profile.ID()).
		Updates(map[string]interface{}{
			"username":     model.Username,
			"display_name": model.DisplayName,
			"role":         model.Role,
			"beta_status":  model.BetaStatus,
			"version":      model.Version,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("username already in use")
		}
		r.logger.Errorw("failed to update profile", "id", profile.ID(), "error", result.Error)
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("profile not found")
	}

	return nil
}

func (r *ProfileRepositoryImpl) List(ctx context.Context, filter user.ProfileFilter) ([]*user.Profile, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ProfileModel{})

	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count profiles", "error", err)
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	query = applySort(query, "created_at", true)
	query = applyPaging(query, filter.Page, filter.PageSize)

	var profileModels []models.ProfileModel
	if err := query.Find(&profileModels).Error; err != nil {
		r.logger.Errorw("failed to list profiles", "error", err)
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*user.Profile, len(profileModels))
	for i := range profileModels {
		profile, err := toProfileDomain(&profileModels[i])
		if err != nil {
			return nil, 0, err
		}
		profiles[i] = profile
	}

	return profiles, total, nil
}

func toProfileModel(profile *user.Profile) *models.ProfileModel {
	return &models.ProfileModel{
		Email:       profile.Email(),
		Username:    profile.Username(),
		DisplayName: profile.DisplayName(),
		Role:        string(profile.Role()),
		BetaStatus:  string(profile.BetaStatus()),
		Version:     profile.Version(),
		CreatedAt:   profile.CreatedAt(),
		UpdatedAt:   profile.UpdatedAt(),
	}
}

func toProfileDomain(model *models.ProfileModel) (*user.Profile, error) {
	profile, err := user.ReconstructProfile(
		model.ID,
		model.Email,
		model.Username,
		model.DisplayName,
		authorization.UserRole(model.Role),
		rules.BetaApplicationStatus(model.BetaStatus),
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct profile: %w", err)
	}

	return profile, nil
}
