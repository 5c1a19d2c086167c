package usecases

import (
	"context"
	"time"

	"github.com/inkpress-io/inkpress/internal/application/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	vo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	UserID                 uint
	ProductID              uint
	PlanID                 uint
	Status                 vo.Status
	PeriodStart            *time.Time
	PeriodEnd              *time.Time
	ProviderSubscriptionID string
}

type CreateSubscriptionResult struct {
	Subscription *subscription.Subscription
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	productRepo      catalog.ProductRepository
	variantRepo      catalog.VariantRepository
	profileRepo      user.ProfileRepository
	entitlementSvc   *entitlement.Service
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	profileRepo user.ProfileRepository,
	entitlementSvc *entitlement.Service,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		variantRepo:      variantRepo,
		profileRepo:      profileRepo,
		entitlementSvc:   entitlementSvc,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*CreateSubscriptionResult, error) {
	status := cmd.Status
	if status == "" {
		status = vo.StatusActive
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("Invalid subscription status")
	}

	profile, err := uc.profileRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("User")
		}
		uc.logger.Errorw("failed to get profile", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewDatabaseError("failed to get profile", err)
	}

	product, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Product")
		}
		uc.logger.Errorw("failed to get product", "error", err, "product_id", cmd.ProductID)
		return nil, apperrors.NewDatabaseError("failed to get product", err)
	}
	if !product.IsActive() {
		return nil, apperrors.NewBusinessRuleError("This plan is no longer available")
	}
	if !rules.CanSubscribeToProductType(profile.Role(), product.Type()) {
		return nil, apperrors.NewBusinessRuleError("This product cannot be subscribed to")
	}

	variant, err := uc.variantRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("Plan")
		}
		uc.logger.Errorw("failed to get plan variant", "error", err, "plan_id", cmd.PlanID)
		return nil, apperrors.NewDatabaseError("failed to get plan variant", err)
	}
	if variant.ProductID() != cmd.ProductID {
		return nil, apperrors.NewValidationError("Plan does not belong to the given product")
	}
	if !variant.IsActive() {
		return nil, apperrors.NewBusinessRuleError("This plan is no longer available")
	}
	if variant.BillingInterval() == nil {
		return nil, apperrors.NewValidationError("Plan is not a recurring price")
	}

	existing, err := uc.subscriptionRepo.GetActiveByUserAndPlan(ctx, cmd.UserID, cmd.PlanID)
	if err != nil && !apperrors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to look up existing subscription", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewDatabaseError("failed to look up existing subscription", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("You already have an active subscription to this plan")
	}

	activeCount, err := uc.subscriptionRepo.CountActiveByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count subscriptions", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewDatabaseError("failed to count subscriptions", err)
	}
	if activeCount >= rules.GlobalMaxActiveSubscriptions {
		return nil, apperrors.NewBusinessRuleError("Maximum number of active subscriptions reached")
	}
	if activeCount >= int64(rules.MaxSubscriptionsForRole(profile.Role())) {
		return nil, apperrors.NewBusinessRuleError("Subscription limit for your account reached")
	}

	periodStart, periodEnd := resolvePeriod(cmd.PeriodStart, cmd.PeriodEnd, variant)

	sub, err := subscription.NewSubscription(cmd.UserID, cmd.ProductID, cmd.PlanID, status, periodStart, periodEnd)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.ProviderSubscriptionID != "" {
		if err := sub.SetProviderSubscriptionID(cmd.ProviderSubscriptionID); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("You already have an active subscription to this plan")
		}
		uc.logger.Errorw("failed to create subscription", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewDatabaseError("failed to create subscription", err)
	}

	// Access is granted after the subscription is saved; a grant failure is
	// recoverable by support and must not undo the subscription.
	if sub.GrantsAccess() {
		if err := uc.entitlementSvc.GrantForSubscription(ctx, cmd.UserID, cmd.ProductID, sub.ID()); err != nil {
			uc.logger.Errorw("failed to grant subscription entitlements",
				"error", err, "subscription_id", sub.ID(), "user_id", cmd.UserID)
		}
	}

	uc.logger.Infow("subscription created",
		"subscription_id", sub.ID(),
		"user_id", cmd.UserID,
		"plan_id", cmd.PlanID,
		"status", sub.Status().String())

	return &CreateSubscriptionResult{Subscription: sub}, nil
}

// resolvePeriod falls back to one billing interval from now when the caller
// does not supply explicit period bounds.
func resolvePeriod(start, end *time.Time, variant *catalog.Variant) (time.Time, time.Time) {
	if start != nil && end != nil {
		return *start, *end
	}

	now := time.Now().UTC()
	interval := "month"
	if variant.BillingInterval() != nil {
		interval = *variant.BillingInterval()
	}
	if interval == "year" {
		return now, now.AddDate(1, 0, 0)
	}
	return now, now.AddDate(0, 1, 0)
}
