package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/order"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type mockOrderRepository struct {
	CreateFunc                 func(ctx context.Context, o *order.Order) error
	GetByIDFunc                func(ctx context.Context, id uint) (*order.Order, error)
	GetByCheckoutSessionIDFunc func(ctx context.Context, sessionID string) (*order.Order, error)
	UpdateFunc                 func(ctx context.Context, o *order.Order) error
	DeleteFunc                 func(ctx context.Context, id uint) error
	MarkItemsAccessGrantedFunc func(ctx context.Context, orderID uint) error
	ListFunc                   func(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOrderRepository) GetByCheckoutSessionID(ctx context.Context, sessionID string) (*order.Order, error) {
	if m.GetByCheckoutSessionIDFunc != nil {
		return m.GetByCheckoutSessionIDFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockOrderRepository) MarkItemsAccessGranted(ctx context.Context, orderID uint) error {
	if m.MarkItemsAccessGrantedFunc != nil {
		return m.MarkItemsAccessGrantedFunc(ctx, orderID)
	}
	return nil
}

func (m *mockOrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
