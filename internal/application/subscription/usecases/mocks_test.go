package usecases

import (
	"context"

	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/domain/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

type mockSubscriptionRepository struct {
	CreateFunc                      func(ctx context.Context, sub *subscription.Subscription) error
	GetByIDFunc                     func(ctx context.Context, id uint) (*subscription.Subscription, error)
	GetByProviderSubscriptionIDFunc func(ctx context.Context, providerID string) (*subscription.Subscription, error)
	GetByUserIDFunc                 func(ctx context.Context, userID uint) ([]*subscription.Subscription, error)
	GetActiveByUserAndPlanFunc      func(ctx context.Context, userID, planID uint) (*subscription.Subscription, error)
	CountActiveByUserIDFunc         func(ctx context.Context, userID uint) (int64, error)
	UpdateFunc                      func(ctx context.Context, sub *subscription.Subscription) error
	ListFunc                        func(ctx context.Context, filter subscription.Filter) ([]*subscription.Subscription, int64, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetByProviderSubscriptionID(ctx context.Context, providerID string) (*subscription.Subscription, error) {
	if m.GetByProviderSubscriptionIDFunc != nil {
		return m.GetByProviderSubscriptionIDFunc(ctx, providerID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetActiveByUserAndPlan(ctx context.Context, userID, planID uint) (*subscription.Subscription, error) {
	if m.GetActiveByUserAndPlanFunc != nil {
		return m.GetActiveByUserAndPlanFunc(ctx, userID, planID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) CountActiveByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.CountActiveByUserIDFunc != nil {
		return m.CountActiveByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) List(ctx context.Context, filter subscription.Filter) ([]*subscription.Subscription, int64, error) {
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

type mockProfileRepository struct {
	CreateFunc           func(ctx context.Context, profile *user.Profile) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.Profile, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.Profile, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	UpdateFunc           func(ctx context.Context, profile *user.Profile) error
	ListFunc             func(ctx context.Context, filter user.ProfileFilter) ([]*user.Profile, int64, error)
}

func (m *mockProfileRepository) Create(ctx context.Context, profile *user.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepository) GetByID(ctx context.Context, id uint) (*user.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileRepository) GetByUsername(ctx context.Context, username string) (*user.Profile, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockProfileRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockProfileRepository) Update(ctx context.Context, profile *user.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepository) List(ctx context.Context, filter user.ProfileFilter) ([]*user.Profile, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
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

type mockNotifier struct {
	NotifyStatusChangeFunc func(ctx context.Context, email, oldStatus, newStatus string) error
	NotifyCancelledFunc    func(ctx context.Context, email string, immediate bool) error
}

func (m *mockNotifier) NotifySubscriptionStatusChange(ctx context.Context, email, oldStatus, newStatus string) error {
	if m.NotifyStatusChangeFunc != nil {
		return m.NotifyStatusChangeFunc(ctx, email, oldStatus, newStatus)
	}
	return nil
}

func (m *mockNotifier) NotifySubscriptionCancelled(ctx context.Context, email string, immediate bool) error {
	if m.NotifyCancelledFunc != nil {
		return m.NotifyCancelledFunc(ctx, email, immediate)
	}
	return nil
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
