package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	vo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
	"github.com/inkpress-io/inkpress/internal/infrastructure/persistence/models"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

// activeStatuses are the lifecycle statuses that count toward a user's
// concurrent subscription limits, matching Status.CountsAsActive.
var activeStatuses = []string{string(vo.StatusActive), string(vo.StatusTrialing)}

// SubscriptionRepositoryImpl implements the subscription.Repository interface
type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model, err := toSubscriptionModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("subscription already exists")
		}
		r.logger.Errorw("failed to create subscription", "user_id", sub.UserID(), "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set subscription ID", "error", err)
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created",
		"id", model.ID,
		"user_id", model.UserID,
		"plan_id", model.PlanID,
		"status", model.Status)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		r.logger.Errorw("failed to get subscription", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return toSubscriptionDomain(&model)
}

func (r *SubscriptionRepositoryImpl) GetByProviderSubscriptionID(ctx context.Context, providerID string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("provider_subscription_id = ?", providerID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		r.logger.Errorw("failed to get subscription by provider ID", "provider_id", providerID, "error", err)
		return nil, fmt.Errorf("failed to get subscription by provider ID: %w", err)
	}

	return toSubscriptionDomain(&model)
}

func (r *SubscriptionRepositoryImpl) GetByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	var subModels []models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subModels).Error; err != nil {
		r.logger.Errorw("failed to get subscriptions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	return toSubscriptionDomains(subModels)
}

func (r *SubscriptionRepositoryImpl) GetActiveByUserAndPlan(ctx context.Context, userID, planID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND plan_id = ? AND status IN ?", userID, planID, activeStatuses).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		r.logger.Errorw("failed to get active subscription",
			"user_id", userID,
			"plan_id", planID,
			"error", err)
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}

	return toSubscriptionDomain(&model)
}

func (r *SubscriptionRepositoryImpl) CountActiveByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("user_id = ? AND status IN ?", userID, activeStatuses).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count active subscriptions", "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to count active subscriptions: %w", err)
	}

	return count, nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.Subscription) error {
	model, err := toSubscriptionModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", sub.ID()).
		Updates(map[string]interface{}{
			"status":                   model.Status,
			"current_period_start":     model.CurrentPeriodStart,
			"current_period_end":       model.CurrentPeriodEnd,
			"trial_start":              model.TrialStart,
			"trial_end":                model.TrialEnd,
			"cancel_at_period_end":     model.CancelAtPeriodEnd,
			"canceled_at":              model.CanceledAt,
			"cancel_reason":            model.CancelReason,
			"provider_subscription_id": model.ProviderSubscriptionID,
			"metadata":                 model.Metadata,
			"version":                  model.Version,
			"updated_at":               model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", sub.ID(), "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("subscription not found")
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) List(ctx context.Context, filter subscription.Filter) ([]*subscription.Subscription, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SubscriptionModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	query = applySort(query, filter.SortBy, filter.SortDesc)
	query = applyPaging(query, filter.Page, filter.PageSize)

	var subModels []models.SubscriptionModel
	if err := query.Find(&subModels).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subs, err := toSubscriptionDomains(subModels)
	if err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

func toSubscriptionModel(sub *subscription.Subscription) (*models.SubscriptionModel, error) {
	metadata, err := json.Marshal(sub.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	return &models.SubscriptionModel{
		UserID:                 sub.UserID(),
		ProductID:              sub.ProductID(),
		PlanID:                 sub.PlanID(),
		Status:                 string(sub.Status()),
		CurrentPeriodStart:     sub.CurrentPeriodStart(),
		CurrentPeriodEnd:       sub.CurrentPeriodEnd(),
		TrialStart:             sub.TrialStart(),
		TrialEnd:               sub.TrialEnd(),
		CancelAtPeriodEnd:      sub.CancelAtPeriodEnd(),
		CanceledAt:             sub.CanceledAt(),
		CancelReason:           sub.CancelReason(),
		ProviderSubscriptionID: sub.ProviderSubscriptionID(),
		Metadata:               metadata,
		Version:                sub.Version(),
		CreatedAt:              sub.CreatedAt(),
		UpdatedAt:              sub.UpdatedAt(),
	}, nil
}

func toSubscriptionDomain(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	sub, err := subscription.ReconstructSubscription(
		model.ID,
		model.UserID,
		model.ProductID,
		model.PlanID,
		vo.Status(model.Status),
		model.CurrentPeriodStart,
		model.CurrentPeriodEnd,
		model.TrialStart,
		model.TrialEnd,
		model.CancelAtPeriodEnd,
		model.CanceledAt,
		model.CancelReason,
		model.ProviderSubscriptionID,
		metadata,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription: %w", err)
	}

	return sub, nil
}

func toSubscriptionDomains(subModels []models.SubscriptionModel) ([]*subscription.Subscription, error) {
	subs := make([]*subscription.Subscription, len(subModels))
	for i := range subModels {
		sub, err := toSubscriptionDomain(&subModels[i])
		if err != nil {
			return nil, err
		}
		subs[i] = sub
	}
	return subs, nil
}
