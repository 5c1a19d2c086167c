package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress-io/inkpress/internal/application/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	entdomain "github.com/inkpress-io/inkpress/internal/domain/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	vo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
)

func testProfile(t *testing.T, id uint, role authorization.UserRole) *user.Profile {
	t.Helper()
	now := time.Now().UTC()
	profile, err := user.ReconstructProfile(id, "reader@example.com", "reader_one", "Reader One", role, rules.BetaStatusNone, 1, now, now)
	require.NoError(t, err)
	return profile
}

func testSubscriptionProduct(t *testing.T, id uint, active bool) *catalog.Product {
	t.Helper()
	now := time.Now().UTC()
	grants := catalog.ContentGrants{Grants: []catalog.ContentGrant{{Scope: "work:saga-of-ash"}}}
	product, err := catalog.ReconstructProduct(id, "All Access", "Every serialized work", catalog.ProductTypeSubscription,
		"saga-of-ash", grants, nil, active, nil, nil, 1, now, now)
	require.NoError(t, err)
	return product
}

func testPassProduct(t *testing.T, id uint, active bool) *catalog.Product {
	t.Helper()
	now := time.Now().UTC()
	grants := catalog.ContentGrants{Grants: []catalog.ContentGrant{{Scope: "work:saga-of-ash"}}}
	product, err := catalog.ReconstructProduct(id, "Chapter Pass", "Monthly chapters", catalog.ProductTypeChapterPass,
		"saga-of-ash", grants, nil, active, nil, nil, 1, now, now)
	require.NoError(t, err)
	return product
}

func testPlanVariant(t *testing.T, id, productID uint, interval *string) *catalog.Variant {
	t.Helper()
	now := time.Now().UTC()
	variant, err := catalog.ReconstructVariant(id, productID, "Monthly", "SUB-MONTHLY", 999, "usd",
		interval, 0, false, true, nil, 1, now, now)
	require.NoError(t, err)
	return variant
}

func strPtr(s string) *string { return &s }

func existingSubscription(t *testing.T, id, userID, productID, planID uint, status vo.Status) *subscription.Subscription {
	t.Helper()
	now := time.Now().UTC()
	sub, err := subscription.ReconstructSubscription(id, userID, productID, planID, status,
		now.AddDate(0, 0, -1), now.AddDate(0, 1, -1), nil, nil, false, nil, nil, nil, nil, 1, now, now)
	require.NoError(t, err)
	return sub
}

func TestCreateSubscriptionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(subRepo *mockSubscriptionRepository, productRepo *mockProductRepository,
		variantRepo *mockVariantRepository, profileRepo *mockProfileRepository,
		entRepo *mockEntitlementRepository) *CreateSubscriptionUseCase {
		svc := entitlement.NewService(entRepo, productRepo, &mockLogger{})
		return NewCreateSubscriptionUseCase(subRepo, productRepo, variantRepo, profileRepo, svc, &mockLogger{})
	}

	t.Run("creates subscription and grants entitlements", func(t *testing.T) {
		profileRepo := &mockProfileRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) {
				return testProfile(t, 1, authorization.RoleUser), nil
			},
		}
		productRepo := &mockProductRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Product, error) {
				return testPassProduct(t, 10, true), nil
			},
		}
		variantRepo := &mockVariantRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Variant, error) {
				return testPlanVariant(t, 20, 10, strPtr("month")), nil
			},
		}
		var granted []*entdomain.Entitlement
		entRepo := &mockEntitlementRepository{
			CreateFunc: func(ctx context.Context, ent *entdomain.Entitlement) error {
				granted = append(granted, ent)
				return nil
			},
		}
		subRepo := &mockSubscriptionRepository{}

		uc := newUseCase(subRepo, productRepo, variantRepo, profileRepo, entRepo)
		result, err := uc.Execute(ctx, CreateSubscriptionCommand{
			UserID:    1,
			ProductID: 10,
			PlanID:    20,
		})

		require.NoError(t, err)
		assert.Equal(t, vo.StatusActive, result.Subscription.Status())
		assert.Equal(t, uint(1), result.Subscription.UserID())
		require.Len(t, granted, 1)
		assert.Equal(t, "work:saga-of-ash", granted[0].Scope())
	})

	t.Run("rejects duplicate active subscription to the same plan", func(t *testing.T) {
		profileRepo := &mockProfileRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) {
				return testProfile(t, 1, authorization.RoleUser), nil
			},
		}
		productRepo := &mockProductRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Product, error) {
				return testPassProduct(t, 10, true), nil
			},
		}
		variantRepo := &mockVariantRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Variant, error) {
				return testPlanVariant(t, 20, 10, strPtr("month")), nil
			},
		}
		subRepo := &mockSubscriptionRepository{
			GetActiveByUserAndPlanFunc: func(ctx context.Context, userID, planID uint) (*subscription.Subscription, error) {
				return existingSubscription(t, 99, userID, 10, planID, vo.StatusActive), nil
			},
		}

		uc := newUseCase(subRepo, productRepo, variantRepo, profileRepo, &mockEntitlementRepository{})
		_, err := uc.Execute(ctx, CreateSubscriptionCommand{UserID: 1, ProductID: 10, PlanID: 20})

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	})

	t.Run("enforces the global active subscription cap", func(t *testing.T) {
		profileRepo := &mockProfileRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) {
				return testProfile(t, 1, authorization.RoleAdmin), nil
			},
		}
		productRepo := &mockProductRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Product, error) {
				return testSubscriptionProduct(t, 10, true), nil
			},
		}
		variantRepo := &mockVariantRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Variant, error) {
				return testPlanVariant(t, 20, 10, strPtr("month")), nil
			},
		}
		subRepo := &mockSubscriptionRepository{
			CountActiveByUserIDFunc: func(ctx context.Context, userID uint) (int64, error) {
				return rules.GlobalMaxActiveSubscriptions, nil
			},
		}

		uc := newUseCase(subRepo, productRepo, variantRepo, profileRepo, &mockEntitlementRepository{})
		_, err := uc.Execute(ctx, CreateSubscriptionCommand{UserID: 1, ProductID: 10, PlanID: 20})

		require.Error(t, err)
		assert.True(t, apperrors.IsBusinessRuleError(err))
	})

	t.Run("enforces the role subscription limit", func(t *testing.T) {
		profileRepo := &mockProfileRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) {
				return testProfile(t, 1, authorization.RoleUser), nil
			},
		}
		productRepo := &mockProductRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Product, error) {
				return testPassProduct(t, 10, true), nil
			},
		}
		variantRepo := &mockVariantRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Variant, error) {
				return testPlanVariant(t, 20, 10, strPtr("month")), nil
			},
		}
		subRepo := &mockSubscriptionRepository{
			CountActiveByUserIDFunc: func(ctx context.Context, userID uint) (int64, error) {
				return 2, nil
			},
		}

		uc := newUseCase(subRepo, productRepo, variantRepo, profileRepo, &mockEntitlementRepository{})
		_, err := uc.Execute(ctx, CreateSubscriptionCommand{UserID: 1, ProductID: 10, PlanID: 20})

		require.Error(t, err)
		assert.True(t, apperrors.IsBusinessRuleError(err))
	})

	t.Run("rejects a non-recurring plan", func(t *testing.T) {
		profileRepo := &mockProfileRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) {
				return testProfile(t, 1, authorization.RoleUser), nil
			},
		}
		productRepo := &mockProductRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Product, error) {
				return testPassProduct(t, 10, true), nil
			},
		}
		variantRepo := &mockVariantRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Variant, error) {
				return testPlanVariant(t, 20, 10, nil), nil
			},
		}

		uc := newUseCase(&mockSubscriptionRepository{}, productRepo, variantRepo, profileRepo, &mockEntitlementRepository{})
		_, err := uc.Execute(ctx, CreateSubscriptionCommand{UserID: 1, ProductID: 10, PlanID: 20})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("rejects product types outside the role's reach", func(t *testing.T) {
		profileRepo := &mockProfileRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) {
				return testProfile(t, 1, authorization.RoleUser), nil
			},
		}
		productRepo := &mockProductRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Product, error) {
				return testSubscriptionProduct(t, 10, true), nil
			},
		}

		uc := newUseCase(&mockSubscriptionRepository{}, productRepo, &mockVariantRepository{}, profileRepo, &mockEntitlementRepository{})
		_, err := uc.Execute(ctx, CreateSubscriptionCommand{UserID: 1, ProductID: 10, PlanID: 20})

		require.Error(t, err)
		assert.True(t, apperrors.IsBusinessRuleError(err))
	})

	t.Run("rejects an inactive product", func(t *testing.T) {
		profileRepo := &mockProfileRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) {
				return testProfile(t, 1, authorization.RoleUser), nil
			},
		}
		productRepo := &mockProductRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Product, error) {
				return testSubscriptionProduct(t, 10, false), nil
			},
		}

		uc := newUseCase(&mockSubscriptionRepository{}, productRepo, &mockVariantRepository{}, profileRepo, &mockEntitlementRepository{})
		_, err := uc.Execute(ctx, CreateSubscriptionCommand{UserID: 1, ProductID: 10, PlanID: 20})

		require.Error(t, err)
		assert.True(t, apperrors.IsBusinessRuleError(err))
	})
}
