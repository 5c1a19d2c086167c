package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/application/payment/paymentgateway"
	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	vo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type SyncProviderSubscriptionCommand struct {
	Provider *paymentgateway.ProviderSubscription
	// Deleted marks a provider-side deletion, which always cancels.
	Deleted bool
}

// SyncProviderSubscriptionUseCase reconciles a local subscription with the
// state the payment provider reports in its webhooks. Events for unknown
// subscriptions are logged and dropped because the provider may replay
// history from before this service existed.
type SyncProviderSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	update           *UpdateSubscriptionUseCase
	logger           logger.Interface
}

func NewSyncProviderSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	update *UpdateSubscriptionUseCase,
	logger logger.Interface,
) *SyncProviderSubscriptionUseCase {
	return &SyncProviderSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		update:           update,
		logger:           logger,
	}
}

func (uc *SyncProviderSubscriptionUseCase) Execute(ctx context.Context, cmd SyncProviderSubscriptionCommand) error {
	if cmd.Provider == nil || cmd.Provider.ID == "" {
		return apperrors.NewValidationError("Provider subscription is required")
	}

	sub, err := uc.subscriptionRepo.GetByProviderSubscriptionID(ctx, cmd.Provider.ID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			uc.logger.Warnw("webhook for unknown subscription", "provider_subscription_id", cmd.Provider.ID)
			return nil
		}
		uc.logger.Errorw("failed to get subscription", "error", err, "provider_subscription_id", cmd.Provider.ID)
		return apperrors.NewDatabaseError("failed to get subscription", err)
	}

	status := vo.StatusCanceled
	if !cmd.Deleted {
		parsed, ok := vo.ParseStatus(cmd.Provider.Status)
		if !ok {
			uc.logger.Warnw("unknown provider subscription status",
				"status", cmd.Provider.Status, "provider_subscription_id", cmd.Provider.ID)
			return nil
		}
		status = parsed
	}

	updateCmd := UpdateSubscriptionCommand{
		SubscriptionID:    sub.ID(),
		Status:            &status,
		CancelAtPeriodEnd: &cmd.Provider.CancelAtPeriodEnd,
	}
	if !cmd.Provider.CurrentPeriodStart.IsZero() && !cmd.Provider.CurrentPeriodEnd.IsZero() {
		updateCmd.PeriodStart = &cmd.Provider.CurrentPeriodStart
		updateCmd.PeriodEnd = &cmd.Provider.CurrentPeriodEnd
	}

	if _, err := uc.update.Execute(ctx, updateCmd); err != nil {
		return err
	}
	return nil
}
