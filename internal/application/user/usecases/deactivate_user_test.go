package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress-io/inkpress/internal/application/entitlement"
	entdomain "github.com/inkpress-io/inkpress/internal/domain/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	subvo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
)

func testUserSubscription(t *testing.T, id, userID uint, status subvo.Status) *subscription.Subscription {
	t.Helper()
	now := time.Now().UTC()
	sub, err := subscription.ReconstructSubscription(id, userID, 10, 20, status,
		now.AddDate(0, 0, -10), now.AddDate(0, 1, 0), nil, nil, false, nil, nil, nil, nil, 1, now, now)
	require.NoError(t, err)
	return sub
}

func testOpenEntitlement(t *testing.T, id, userID uint, source string) *entdomain.Entitlement {
	t.Helper()
	now := time.Now().UTC()
	ent, err := entdomain.ReconstructEntitlement(id, userID, "work:saga-of-ash", source, now.AddDate(0, 0, -10), nil, now)
	require.NoError(t, err)
	return ent
}

func TestDeactivateUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	profilesByRole := func(actorRole, targetRole authorization.UserRole) *mockProfileRepository {
		return &mockProfileRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) {
				if id == 1 {
					return testProfile(t, 1, actorRole, rules.BetaStatusNone), nil
				}
				return testProfile(t, id, targetRole, rules.BetaStatusNone), nil
			},
		}
	}

	newUseCase := func(profileRepo *mockProfileRepository, subRepo *mockSubscriptionRepository,
		entRepo *mockEntitlementRepository) *DeactivateUserUseCase {
		svc := entitlement.NewService(entRepo, &mockProductRepository{}, &mockLogger{})
		return NewDeactivateUserUseCase(profileRepo, subRepo, svc, &mockLogger{})
	}

	t.Run("cancels active subscriptions and closes open entitlements", func(t *testing.T) {
		active := testUserSubscription(t, 5, 2, subvo.StatusActive)
		alreadyCanceled := testUserSubscription(t, 6, 2, subvo.StatusCanceled)
		var updatedSubs []uint
		subRepo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
				return []*subscription.Subscription{active, alreadyCanceled}, nil
			},
			UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
				updatedSubs = append(updatedSubs, s.ID())
				return nil
			},
		}

		open := testOpenEntitlement(t, 100, 2, entdomain.SubscriptionSource(5))
		closed := testOpenEntitlement(t, 101, 2, entdomain.OrderSource(9))
		closed.End(time.Now().UTC().AddDate(0, 0, -1))
		var endedIDs []uint
		entRepo := &mockEntitlementRepository{
			ListByUserIDFunc: func(ctx context.Context, userID uint) ([]*entdomain.Entitlement, error) {
				return []*entdomain.Entitlement{open, closed}, nil
			},
			UpdateFunc: func(ctx context.Context, ent *entdomain.Entitlement) error {
				endedIDs = append(endedIDs, ent.ID())
				return nil
			},
		}

		uc := newUseCase(profilesByRole(authorization.RoleAdmin, authorization.RoleUser), subRepo, entRepo)
		result, err := uc.Execute(ctx, DeactivateUserCommand{ActorID: 1, TargetUserID: 2})

		require.NoError(t, err)
		assert.Equal(t, 1, result.CanceledSubscriptions)
		assert.Equal(t, []uint{5}, updatedSubs)
		assert.Equal(t, subvo.StatusCanceled, active.Status())
		require.NotNil(t, active.CancelReason())
		assert.Equal(t, "account deactivated", *active.CancelReason())

		require.Equal(t, []uint{100}, endedIDs)
		require.NotNil(t, open.EndsAt())
		assert.False(t, open.IsActive(time.Now().UTC().Add(time.Minute)))
	})

	t.Run("cancels a trial subscription too", func(t *testing.T) {
		trial := testUserSubscription(t, 5, 2, subvo.StatusTrialing)
		subRepo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
				return []*subscription.Subscription{trial}, nil
			},
		}

		uc := newUseCase(profilesByRole(authorization.RoleAdmin, authorization.RoleUser), subRepo, &mockEntitlementRepository{})
		result, err := uc.Execute(ctx, DeactivateUserCommand{ActorID: 1, TargetUserID: 2, Reason: "refund abuse"})

		require.NoError(t, err)
		assert.Equal(t, 1, result.CanceledSubscriptions)
		assert.Equal(t, subvo.StatusCanceled, trial.Status())
		require.NotNil(t, trial.CancelReason())
		assert.Equal(t, "refund abuse", *trial.CancelReason())
	})

	t.Run("refuses to deactivate a super admin", func(t *testing.T) {
		uc := newUseCase(profilesByRole(authorization.RoleSuperAdmin, authorization.RoleSuperAdmin),
			&mockSubscriptionRepository{}, &mockEntitlementRepository{})
		_, err := uc.Execute(ctx, DeactivateUserCommand{ActorID: 1, TargetUserID: 2})

		require.Error(t, err)
		assert.True(t, apperrors.IsBusinessRuleError(err))
	})

	t.Run("refuses self deactivation", func(t *testing.T) {
		uc := newUseCase(profilesByRole(authorization.RoleAdmin, authorization.RoleAdmin),
			&mockSubscriptionRepository{}, &mockEntitlementRepository{})
		_, err := uc.Execute(ctx, DeactivateUserCommand{ActorID: 1, TargetUserID: 1})

		require.Error(t, err)
		assert.True(t, apperrors.IsBusinessRuleError(err))
	})

	t.Run("requires rank over the target", func(t *testing.T) {
		tests := []struct {
			name       string
			actorRole  authorization.UserRole
			targetRole authorization.UserRole
		}{
			{"support cannot manage users", authorization.RoleSupport, authorization.RoleUser},
			{"admin cannot deactivate a peer", authorization.RoleAdmin, authorization.RoleAdmin},
			{"basic user cannot deactivate anyone", authorization.RoleUser, authorization.RoleUser},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := newUseCase(profilesByRole(tt.actorRole, tt.targetRole),
					&mockSubscriptionRepository{}, &mockEntitlementRepository{})
				_, err := uc.Execute(ctx, DeactivateUserCommand{ActorID: 1, TargetUserID: 2})

				require.Error(t, err)
				appErr := apperrors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
			})
		}
	})

	t.Run("propagates an unknown target", func(t *testing.T) {
		profileRepo := &mockProfileRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.Profile, error) {
				if id == 1 {
					return testProfile(t, 1, authorization.RoleAdmin, rules.BetaStatusNone), nil
				}
				return nil, apperrors.NewNotFoundError("Profile")
			},
		}

		uc := newUseCase(profileRepo, &mockSubscriptionRepository{}, &mockEntitlementRepository{})
		_, err := uc.Execute(ctx, DeactivateUserCommand{ActorID: 1, TargetUserID: 2})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
