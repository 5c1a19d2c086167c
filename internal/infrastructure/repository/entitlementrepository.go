package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/inkpress-io/inkpress/internal/domain/entitlement"
	"github.com/inkpress-io/inkpress/internal/infrastructure/persistence/models"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

// EntitlementRepositoryImpl implements the entitlement.Repository interface
type EntitlementRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewEntitlementRepository creates a new entitlement repository instance
func NewEntitlementRepository(db *gorm.DB, logger logger.Interface) entitlement.Repository {
	return &EntitlementRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *EntitlementRepositoryImpl) Create(ctx context.Context, ent *entitlement.Entitlement) error {
	model := &models.EntitlementModel{
		UserID:    ent.UserID(),
		Scope:     ent.Scope(),
		Source:    ent.Source(),
		StartsAt:  ent.StartsAt(),
		EndsAt:    ent.EndsAt(),
		CreatedAt: ent.CreatedAt(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("entitlement already exists")
		}
		r.logger.Errorw("failed to create entitlement",
			"user_id", ent.UserID(),
			"scope", ent.Scope(),
			"source", ent.Source(),
			"error", err)
		return fmt.Errorf("failed to create entitlement: %w", err)
	}

	if err := ent.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set entitlement ID", "error", err)
		return fmt.Errorf("failed to set entitlement ID: %w", err)
	}

	r.logger.Infow("entitlement created",
		"id", model.ID,
		"user_id", model.UserID,
		"scope", model.Scope,
		"source", model.Source)
	return nil
}

func (r *EntitlementRepositoryImpl) GetByID(ctx context.Context, id uint) (*entitlement.Entitlement, error) {
	var model models.EntitlementModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("entitlement not found")
		}
		r.logger.Errorw("failed to get entitlement", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get entitlement: %w", err)
	}

	return toEntitlementDomain(&model)
}

func (r *EntitlementRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error) {
	var entModels []models.EntitlementModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&entModels).Error; err != nil {
		r.logger.Errorw("failed to list entitlements", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}

	return toEntitlementDomains(entModels)
}

func (r *EntitlementRepositoryImpl) ListActiveByUserID(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error) {
	now := time.Now().UTC()

	var entModels []models.EntitlementModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND starts_at <= ? AND (ends_at IS NULL OR ends_at > ?)", userID, now, now).
		Order("id ASC").
		Find(&entModels).Error; err != nil {
		r.logger.Errorw("failed to list active entitlements", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list active entitlements: %w", err)
	}

	return toEntitlementDomains(entModels)
}

func (r *EntitlementRepositoryImpl) Update(ctx context.Context, ent *entitlement.Entitlement) error {
	result := r.db.WithContext(ctx).
		Model(&models.EntitlementModel{}).
		Where("id = ?", ent.ID()).
		Update("ends_at", ent.EndsAt())
	if result.Error != nil {
		r.logger.Errorw("failed to update entitlement", "id", ent.ID(), "error", result.Error)
		return fmt.Errorf("failed to update entitlement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("entitlement not found")
	}
	return nil
}

// DeleteByUserAndSource removes every grant the source produced. Deleting a
// source with no grants is a no-op so revocation is idempotent.
func (r *EntitlementRepositoryImpl) DeleteByUserAndSource(ctx context.Context, userID uint, source string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND source = ?", userID, source).
		Delete(&models.EntitlementModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete entitlements",
			"user_id", userID,
			"source", source,
			"error", result.Error)
		return fmt.Errorf("failed to delete entitlements: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Infow("entitlements revoked",
			"user_id", userID,
			"source", source,
			"count", result.RowsAffected)
	}
	return nil
}

func (r *EntitlementRepositoryImpl) HasActiveScope(ctx context.Context, userID uint, scope string) (bool, error) {
	now := time.Now().UTC()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.EntitlementModel{}).
		Where("user_id = ? AND scope = ? AND starts_at <= ? AND (ends_at IS NULL OR ends_at > ?)", userID, scope, now, now).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check active scope",
			"user_id", userID,
			"scope", scope,
			"error", err)
		return false, fmt.Errorf("failed to check active scope: %w", err)
	}

	return count > 0, nil
}

func toEntitlementDomain(model *models.EntitlementModel) (*entitlement.Entitlement, error) {
	ent, err := entitlement.ReconstructEntitlement(
		model.ID,
		model.UserID,
		model.Scope,
		model.Source,
		model.StartsAt,
		model.EndsAt,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct entitlement: %w", err)
	}

	return ent, nil
}

func toEntitlementDomains(entModels []models.EntitlementModel) ([]*entitlement.Entitlement, error) {
	ents := make([]*entitlement.Entitlement, len(entModels))
	for i := range entModels {
		ent, err := toEntitlementDomain(&entModels[i])
		if err != nil {
			return nil, err
		}
		ents[i] = ent
	}
	return ents, nil
}
