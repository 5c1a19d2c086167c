package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/application/payment/paymentgateway"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type mockProductRepository struct {
	CreateFunc  func(ctx context.Context, product *catalog.Product) error
	GetByIDFunc func(ctx context.Context, id uint) (*catalog.Product, error)
	UpdateFunc  func(ctx context.Context, product *catalog.Product) error
	ListFunc    func(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, int64, error)
}

func (m *mockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	return nil
}

func (m *mockProductRepository) List(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockVariantRepository struct {
	CreateFunc             func(ctx context.Context, variant *catalog.Variant) error
	GetByIDFunc            func(ctx context.Context, id uint) (*catalog.Variant, error)
	GetByProductIDFunc     func(ctx context.Context, productID uint) ([]*catalog.Variant, error)
	UpdateFunc             func(ctx context.Context, variant *catalog.Variant) error
	DecrementInventoryFunc func(ctx context.Context, variantID uint, quantity int) error
}

func (m *mockVariantRepository) Create(ctx context.Context, variant *catalog.Variant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, variant)
	}
	return nil
}

func (m *mockVariantRepository) GetByID(ctx context.Context, id uint) (*catalog.Variant, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockVariantRepository) GetByProductID(ctx context.Context, productID uint) ([]*catalog.Variant, error) {
	if m.GetByProductIDFunc != nil {
		return m.GetByProductIDFunc(ctx, productID)
	}
	return nil, nil
}

func (m *mockVariantRepository) Update(ctx context.Context, variant *catalog.Variant) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, variant)
	}
	return nil
}

func (m *mockVariantRepository) DecrementInventory(ctx context.Context, variantID uint, quantity int) error {
	if m.DecrementInventoryFunc != nil {
		return m.DecrementInventoryFunc(ctx, variantID, quantity)
	}
	return nil
}

type mockGateway struct {
	CreateCheckoutSessionFunc func(ctx context.Context, req paymentgateway.CreateCheckoutSessionRequest) (*paymentgateway.CheckoutSession, error)
	GetCheckoutSessionFunc    func(ctx context.Context, sessionID string) (*paymentgateway.CheckoutSession, error)
	SyncProductFunc           func(ctx context.Context, req paymentgateway.SyncProductRequest) (string, error)
	SyncPriceFunc             func(ctx context.Context, req paymentgateway.SyncPriceRequest) (string, error)
	VerifyWebhookFunc         func(payload []byte, signature string) (*paymentgateway.WebhookEvent, error)
}

func (m *mockGateway) CreateCheckoutSession(ctx context.Context, req paymentgateway.CreateCheckoutSessionRequest) (*paymentgateway.CheckoutSession, error) {
	if m.CreateCheckoutSessionFunc != nil {
		return m.CreateCheckoutSessionFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*paymentgateway.CheckoutSession, error) {
	if m.GetCheckoutSessionFunc != nil {
		return m.GetCheckoutSessionFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockGateway) SyncProduct(ctx context.Context, req paymentgateway.SyncProductRequest) (string, error) {
	if m.SyncProductFunc != nil {
		return m.SyncProductFunc(ctx, req)
	}
	return "", nil
}

func (m *mockGateway) SyncPrice(ctx context.Context, req paymentgateway.SyncPriceRequest) (string, error) {
	if m.SyncPriceFunc != nil {
		return m.SyncPriceFunc(ctx, req)
	}
	return "", nil
}

func (m *mockGateway) VerifyWebhook(payload []byte, signature string) (*paymentgateway.WebhookEvent, error) {
	if m.VerifyWebhookFunc != nil {
		return m.VerifyWebhookFunc(payload, signature)
	}
	return nil, nil
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
