package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/application/payment/paymentgateway"
	"github.com/inkpress-io/inkpress/internal/domain/cart"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/domain/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/order"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type mockCartRepository struct {
	GetOrCreateFunc         func(ctx context.Context, owner cart.OwnerKey) (*cart.Cart, error)
	GetActiveWithItemsFunc  func(ctx context.Context, owner cart.OwnerKey) (*cart.Cart, error)
	GetByIDFunc             func(ctx context.Context, id uint) (*cart.Cart, error)
	FindItemFunc            func(ctx context.Context, cartID, productID, variantID uint) (*cart.Item, error)
	GetItemByIDFunc         func(ctx context.Context, itemID uint) (*cart.Item, error)
	AddItemFunc             func(ctx context.Context, item *cart.Item) error
	UpdateItemQuantityFunc  func(ctx context.Context, itemID uint, quantity int) error
	DeleteItemFunc          func(ctx context.Context, itemID uint) error
	DeleteItemsByCartIDFunc func(ctx context.Context, cartID uint) error
	TouchFunc               func(ctx context.Context, cartID uint) error
}

func (m *mockCartRepository) GetOrCreate(ctx context.Context, owner cart.OwnerKey) (*cart.Cart, error) {
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, owner)
	}
	return nil, nil
}

func (m *mockCartRepository) GetActiveWithItems(ctx context.Context, owner cart.OwnerKey) (*cart.Cart, error) {
	if m.GetActiveWithItemsFunc != nil {
		return m.GetActiveWithItemsFunc(ctx, owner)
	}
	return nil, nil
}

func (m *mockCartRepository) GetByID(ctx context.Context, id uint) (*cart.Cart, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCartRepository) FindItem(ctx context.Context, cartID, productID, variantID uint) (*cart.Item, error) {
	if m.FindItemFunc != nil {
		return m.FindItemFunc(ctx, cartID, productID, variantID)
	}
	return nil, nil
}

func (m *mockCartRepository) GetItemByID(ctx context.Context, itemID uint) (*cart.Item, error) {
	if m.GetItemByIDFunc != nil {
		return m.GetItemByIDFunc(ctx, itemID)
	}
	return nil, nil
}

func (m *mockCartRepository) AddItem(ctx context.Context, item *cart.Item) error {
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, item)
	}
	return nil
}

func (m *mockCartRepository) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	if m.UpdateItemQuantityFunc != nil {
		return m.UpdateItemQuantityFunc(ctx, itemID, quantity)
	}
	return nil
}

func (m *mockCartRepository) DeleteItem(ctx context.Context, itemID uint) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, itemID)
	}
	return nil
}

func (m *mockCartRepository) DeleteItemsByCartID(ctx context.Context, cartID uint) error {
	if m.DeleteItemsByCartIDFunc != nil {
		return m.DeleteItemsByCartIDFunc(ctx, cartID)
	}
	return nil
}

func (m *mockCartRepository) Touch(ctx context.Context, cartID uint) error {
	if m.TouchFunc != nil {
		return m.TouchFunc(ctx, cartID)
	}
	return nil
}

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

type mockEntitlementRepository struct {
	CreateFunc                func(ctx context.Context, ent *entitlement.Entitlement) error
	GetByIDFunc               func(ctx context.Context, id uint) (*entitlement.Entitlement, error)
	ListByUserIDFunc          func(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error)
	ListActiveByUserIDFunc    func(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error)
	UpdateFunc                func(ctx context.Context, ent *entitlement.Entitlement) error
	DeleteByUserAndSourceFunc func(ctx context.Context, userID uint, source string) error
	HasActiveScopeFunc        func(ctx context.Context, userID uint, scope string) (bool, error)
}

func (m *mockEntitlementRepository) Create(ctx context.Context, ent *entitlement.Entitlement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ent)
	}
	return nil
}

func (m *mockEntitlementRepository) GetByID(ctx context.Context, id uint) (*entitlement.Entitlement, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEntitlementRepository) ListByUserID(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockEntitlementRepository) ListActiveByUserID(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error) {
	if m.ListActiveByUserIDFunc != nil {
		return m.ListActiveByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockEntitlementRepository) Update(ctx context.Context, ent *entitlement.Entitlement) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ent)
	}
	return nil
}

func (m *mockEntitlementRepository) DeleteByUserAndSource(ctx context.Context, userID uint, source string) error {
	if m.DeleteByUserAndSourceFunc != nil {
		return m.DeleteByUserAndSourceFunc(ctx, userID, source)
	}
	return nil
}

func (m *mockEntitlementRepository) HasActiveScope(ctx context.Context, userID uint, scope string) (bool, error) {
	if m.HasActiveScopeFunc != nil {
		return m.HasActiveScopeFunc(ctx, userID, scope)
	}
	return false, nil
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
