package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress-io/inkpress/internal/application/entitlement"
	"github.com/inkpress-io/inkpress/internal/application/payment/paymentgateway"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	entdomain "github.com/inkpress-io/inkpress/internal/domain/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	vo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
)

func newUpdateUseCase(t *testing.T, subRepo *mockSubscriptionRepository,
	entRepo *mockEntitlementRepository, notifier *mockNotifier) *UpdateSubscriptionUseCase {
	t.Helper()
	profileRepo := &mockProfileRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) {
			return testProfile(t, id, authorization.RoleUser), nil
		},
	}
	productRepo := &mockProductRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Product, error) {
			return testSubscriptionProduct(t, id, true), nil
		},
	}
	svc := entitlement.NewService(entRepo, productRepo, &mockLogger{})
	return NewUpdateSubscriptionUseCase(subRepo, profileRepo, svc, notifier, &mockLogger{})
}

func TestUpdateSubscriptionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("grants access when the status starts granting it", func(t *testing.T) {
		sub := subscriptionStartedDaysAgo(t, 5, 1, vo.StatusPastDue, 10)
		subRepo := &mockSubscriptionRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) { return sub, nil },
		}
		var granted []*entdomain.Entitlement
		entRepo := &mockEntitlementRepository{
			CreateFunc: func(ctx context.Context, ent *entdomain.Entitlement) error {
				granted = append(granted, ent)
				return nil
			},
		}
		var oldReported, newReported string
		notifier := &mockNotifier{
			NotifyStatusChangeFunc: func(ctx context.Context, email, oldStatus, newStatus string) error {
				oldReported, newReported = oldStatus, newStatus
				return nil
			},
		}

		status := vo.StatusActive
		uc := newUpdateUseCase(t, subRepo, entRepo, notifier)
		result, err := uc.Execute(ctx, UpdateSubscriptionCommand{SubscriptionID: 5, Status: &status})

		require.NoError(t, err)
		assert.Equal(t, vo.StatusActive, result.Subscription.Status())
		require.Len(t, granted, 1)
		assert.Equal(t, "past_due", oldReported)
		assert.Equal(t, "active", newReported)
	})

	t.Run("revokes access when the status stops granting it", func(t *testing.T) {
		sub := subscriptionStartedDaysAgo(t, 5, 1, vo.StatusActive, 10)
		subRepo := &mockSubscriptionRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) { return sub, nil },
		}
		var revokedSource string
		entRepo := &mockEntitlementRepository{
			DeleteByUserAndSourceFunc: func(ctx context.Context, userID uint, source string) error {
				revokedSource = source
				return nil
			},
		}

		status := vo.StatusCanceled
		uc := newUpdateUseCase(t, subRepo, entRepo, &mockNotifier{})
		result, err := uc.Execute(ctx, UpdateSubscriptionCommand{SubscriptionID: 5, Status: &status})

		require.NoError(t, err)
		assert.Equal(t, vo.StatusCanceled, result.Subscription.Status())
		assert.Equal(t, entdomain.SubscriptionSource(5), revokedSource)
	})

	t.Run("trial conversion to active grants access", func(t *testing.T) {
		sub := subscriptionStartedDaysAgo(t, 5, 1, vo.StatusTrialing, 10)
		subRepo := &mockSubscriptionRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) { return sub, nil },
		}
		var granted []*entdomain.Entitlement
		entRepo := &mockEntitlementRepository{
			CreateFunc: func(ctx context.Context, ent *entdomain.Entitlement) error {
				granted = append(granted, ent)
				return nil
			},
		}

		status := vo.StatusActive
		uc := newUpdateUseCase(t, subRepo, entRepo, &mockNotifier{})
		_, err := uc.Execute(ctx, UpdateSubscriptionCommand{SubscriptionID: 5, Status: &status})

		require.NoError(t, err)
		require.Len(t, granted, 1)
		assert.Equal(t, entdomain.SubscriptionSource(5), granted[0].Source())
	})

	t.Run("entering a trial grants nothing", func(t *testing.T) {
		sub := subscriptionStartedDaysAgo(t, 5, 1, vo.StatusIncomplete, 0)
		subRepo := &mockSubscriptionRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) { return sub, nil },
		}
		granted := false
		entRepo := &mockEntitlementRepository{
			CreateFunc: func(ctx context.Context, ent *entdomain.Entitlement) error {
				granted = true
				return nil
			},
		}

		status := vo.StatusTrialing
		uc := newUpdateUseCase(t, subRepo, entRepo, &mockNotifier{})
		_, err := uc.Execute(ctx, UpdateSubscriptionCommand{SubscriptionID: 5, Status: &status})

		require.NoError(t, err)
		assert.False(t, granted)
		assert.Equal(t, vo.StatusTrialing, sub.Status())
	})

	t.Run("rolls the billing period forward without side effects", func(t *testing.T) {
		sub := subscriptionStartedDaysAgo(t, 5, 1, vo.StatusActive, 28)
		subRepo := &mockSubscriptionRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) { return sub, nil },
		}
		notified := false
		notifier := &mockNotifier{
			NotifyStatusChangeFunc: func(ctx context.Context, email, oldStatus, newStatus string) error {
				notified = true
				return nil
			},
		}

		start := time.Now().UTC()
		end := start.AddDate(0, 1, 0)
		uc := newUpdateUseCase(t, subRepo, &mockEntitlementRepository{}, notifier)
		result, err := uc.Execute(ctx, UpdateSubscriptionCommand{
			SubscriptionID: 5,
			PeriodStart:    &start,
			PeriodEnd:      &end,
		})

		require.NoError(t, err)
		assert.Equal(t, start, result.Subscription.CurrentPeriodStart())
		assert.Equal(t, end, result.Subscription.CurrentPeriodEnd())
		assert.False(t, notified)
	})

	t.Run("rejects an illegal status transition", func(t *testing.T) {
		sub := subscriptionStartedDaysAgo(t, 5, 1, vo.StatusCanceled, 10)
		subRepo := &mockSubscriptionRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) { return sub, nil },
		}

		status := vo.StatusActive
		uc := newUpdateUseCase(t, subRepo, &mockEntitlementRepository{}, &mockNotifier{})
		_, err := uc.Execute(ctx, UpdateSubscriptionCommand{SubscriptionID: 5, Status: &status})

		require.Error(t, err)
		assert.True(t, apperrors.IsBusinessRuleError(err))
	})
}

func TestSyncProviderSubscriptionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newSyncUseCase := func(t *testing.T, subRepo *mockSubscriptionRepository,
		entRepo *mockEntitlementRepository) *SyncProviderSubscriptionUseCase {
		update := newUpdateUseCase(t, subRepo, entRepo, &mockNotifier{})
		return NewSyncProviderSubscriptionUseCase(subRepo, update, &mockLogger{})
	}

	t.Run("applies the provider status and period", func(t *testing.T) {
		sub := subscriptionStartedDaysAgo(t, 5, 1, vo.StatusActive, 28)
		require.NoError(t, sub.SetProviderSubscriptionID("sub_123"))
		subRepo := &mockSubscriptionRepository{
			GetByProviderSubscriptionIDFunc: func(ctx context.Context, providerID string) (*subscription.Subscription, error) {
				return sub, nil
			},
			GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) { return sub, nil },
		}

		start := time.Now().UTC()
		end := start.AddDate(0, 1, 0)
		uc := newSyncUseCase(t, subRepo, &mockEntitlementRepository{})
		err := uc.Execute(ctx, SyncProviderSubscriptionCommand{
			Provider: &paymentgateway.ProviderSubscription{
				ID:                 "sub_123",
				Status:             "past_due",
				CurrentPeriodStart: start,
				CurrentPeriodEnd:   end,
			},
		})

		require.NoError(t, err)
		assert.Equal(t, vo.StatusPastDue, sub.Status())
		assert.Equal(t, start, sub.CurrentPeriodStart())
	})

	t.Run("cancels on provider deletion and revokes access", func(t *testing.T) {
		sub := subscriptionStartedDaysAgo(t, 5, 1, vo.StatusActive, 28)
		subRepo := &mockSubscriptionRepository{
			GetByProviderSubscriptionIDFunc: func(ctx context.Context, providerID string) (*subscription.Subscription, error) {
				return sub, nil
			},
			GetByIDFunc: func(ctx context.Context, id uint) (*subscription.Subscription, error) { return sub, nil },
		}
		var revokedSource string
		entRepo := &mockEntitlementRepository{
			DeleteByUserAndSourceFunc: func(ctx context.Context, userID uint, source string) error {
				revokedSource = source
				return nil
			},
		}

		uc := newSyncUseCase(t, subRepo, entRepo)
		err := uc.Execute(ctx, SyncProviderSubscriptionCommand{
			Provider: &paymentgateway.ProviderSubscription{ID: "sub_123", Status: "active"},
			Deleted:  true,
		})

		require.NoError(t, err)
		assert.Equal(t, vo.StatusCanceled, sub.Status())
		assert.Equal(t, entdomain.SubscriptionSource(5), revokedSource)
	})

	t.Run("drops events for unknown provider subscriptions", func(t *testing.T) {
		subRepo := &mockSubscriptionRepository{
			GetByProviderSubscriptionIDFunc: func(ctx context.Context, providerID string) (*subscription.Subscription, error) {
				return nil, apperrors.NewNotFoundError("Subscription")
			},
			UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
				t.Fatal("update must not be called for unknown subscriptions")
				return nil
			},
		}

		uc := newSyncUseCase(t, subRepo, &mockEntitlementRepository{})
		err := uc.Execute(ctx, SyncProviderSubscriptionCommand{
			Provider: &paymentgateway.ProviderSubscription{ID: "sub_unknown", Status: "active"},
		})

		assert.NoError(t, err)
	})

	t.Run("drops events with an unknown status", func(t *testing.T) {
		sub := subscriptionStartedDaysAgo(t, 5, 1, vo.StatusActive, 28)
		subRepo := &mockSubscriptionRepository{
			GetByProviderSubscriptionIDFunc: func(ctx context.Context, providerID string) (*subscription.Subscription, error) {
				return sub, nil
			},
			UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
				t.Fatal("update must not be called for unknown statuses")
				return nil
			},
		}

		uc := newSyncUseCase(t, subRepo, &mockEntitlementRepository{})
		err := uc.Execute(ctx, SyncProviderSubscriptionCommand{
			Provider: &paymentgateway.ProviderSubscription{ID: "sub_123", Status: "nonsense"},
		})

		assert.NoError(t, err)
	})
}
