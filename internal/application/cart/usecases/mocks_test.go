package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/cart"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
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

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }
