package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress-io/inkpress/internal/domain/order"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
)

func testOrder(t *testing.T, id uint, userID *uint) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	item, err := order.ReconstructItem(1, id, 10, 20, "Ash and Ink #1", "Digital", "AI1-DIG",
		1, 499, 499, false, nil, now)
	require.NoError(t, err)
	o, err := order.ReconstructOrder(id, "INK-20260831-000042", userID, "reader@example.com",
		order.StatusPending, order.PaymentStatusUnpaid, "usd", 499, 499,
		nil, nil, nil, nil, nil, nil, []*order.Item{item}, 1, now, now)
	require.NoError(t, err)
	return o
}

func TestGetOrderUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	ownerID := uint(1)

	t.Run("returns the order to its owner", func(t *testing.T) {
		orderRepo := &mockOrderRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*order.Order, error) {
				return testOrder(t, 7, &ownerID), nil
			},
		}

		uc := NewGetOrderUseCase(orderRepo, &mockLogger{})
		result, err := uc.Execute(ctx, GetOrderCommand{OrderID: 7, UserID: 1})

		require.NoError(t, err)
		assert.Equal(t, "INK-20260831-000042", result.Order.OrderNumber())
	})

	t.Run("rejects a non-owner", func(t *testing.T) {
		orderRepo := &mockOrderRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*order.Order, error) {
				return testOrder(t, 7, &ownerID), nil
			},
		}

		uc := NewGetOrderUseCase(orderRepo, &mockLogger{})
		_, err := uc.Execute(ctx, GetOrderCommand{OrderID: 7, UserID: 2})

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	})

	t.Run("hides guest orders from non-admins", func(t *testing.T) {
		orderRepo := &mockOrderRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*order.Order, error) {
				return testOrder(t, 7, nil), nil
			},
		}

		uc := NewGetOrderUseCase(orderRepo, &mockLogger{})
		_, err := uc.Execute(ctx, GetOrderCommand{OrderID: 7, UserID: 1})

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	})

	t.Run("admin sees any order", func(t *testing.T) {
		orderRepo := &mockOrderRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*order.Order, error) {
				return testOrder(t, 7, nil), nil
			},
		}

		uc := NewGetOrderUseCase(orderRepo, &mockLogger{})
		result, err := uc.Execute(ctx, GetOrderCommand{OrderID: 7, Admin: true})

		require.NoError(t, err)
		assert.NotNil(t, result.Order)
	})
}

func TestListOrdersUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	ownerID := uint(1)

	t.Run("passes the filter through and defaults paging", func(t *testing.T) {
		var captured order.Filter
		orderRepo := &mockOrderRepository{
			ListFunc: func(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
				captured = filter
				return []*order.Order{testOrder(t, 7, &ownerID)}, 1, nil
			},
		}

		uc := NewListOrdersUseCase(orderRepo, &mockLogger{})
		result, err := uc.Execute(ctx, ListOrdersCommand{UserID: &ownerID})

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		require.NotNil(t, captured.UserID)
		assert.Equal(t, ownerID, *captured.UserID)
		assert.Equal(t, 1, captured.Page)
		assert.Equal(t, 20, captured.PageSize)
	})
}
