package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/inkpress-io/inkpress/internal/domain/order"
	"github.com/inkpress-io/inkpress/internal/infrastructure/persistence/models"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

// OrderRepositoryImpl implements the order.Repository interface
type OrderRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewOrderRepository creates a new order repository instance
func NewOrderRepository(db *gorm.DB, logger logger.Interface) order.Repository {
	return &OrderRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// Create persists the order and its items in one transaction so a half
// written order can never be observed.
func (r *OrderRepositoryImpl) Create(ctx context.Context, o *order.Order) error {
	model, err := toOrderModel(o)
	if err != nil {
		return fmt.Errorf("failed to map order: %w", err)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}

		itemModels := make([]models.OrderItemModel, len(o.Items()))
		for i, item := range o.Items() {
			itemModels[i] = models.OrderItemModel{
				OrderID:         model.ID,
				ProductID:       item.ProductID(),
				VariantID:       item.VariantID(),
				ProductName:     item.ProductName(),
				VariantName:     item.VariantName(),
				SKU:             item.SKU(),
				Quantity:        item.Quantity(),
				UnitAmount:      item.UnitAmount(),
				TotalAmount:     item.TotalAmount(),
				AccessGranted:   item.AccessGranted(),
				AccessGrantedAt: item.AccessGrantedAt(),
				CreatedAt:       item.CreatedAt(),
			}
		}

		return tx.Create(&itemModels).Error
	})
	if err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("order number already exists")
		}
		r.logger.Errorw("failed to create order", "order_number", o.OrderNumber(), "error", err)
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err := o.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set order ID", "error", err)
		return fmt.Errorf("failed to set order ID: %w", err)
	}

	r.logger.Infow("order created", "id", model.ID, "order_number", model.OrderNumber)
	return nil
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		r.logger.Errorw("failed to get order", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return r.loadOrder(ctx, &model)
}

func (r *OrderRepositoryImpl) GetByCheckoutSessionID(ctx context.Context, sessionID string) (*order.Order, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).
		Where("checkout_session_id = ?", sessionID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		r.logger.Errorw("failed to get order by session", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("failed to get order by session: %w", err)
	}

	return r.loadOrder(ctx, &model)
}

func (r *OrderRepositoryImpl) Update(ctx context.Context, o *order.Order) error {
	model, err := toOrderModel(o)
	if err != nil {
		return fmt.Errorf("failed to map order: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", o.ID()).
		Updates(map[string]interface{}{
			"status":               model.Status,
			"payment_status":       model.PaymentStatus,
			"billing_address":      model.BillingAddress,
			"shipping_address":     model.ShippingAddress,
			"checkout_session_id":  model.CheckoutSessionID,
			"payment_intent_id":    model.PaymentIntentID,
			"provider_customer_id": model.ProviderCustomerID,
			"confirmed_at":         model.ConfirmedAt,
			"version":              model.Version,
			"updated_at":           model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update order", "id", o.ID(), "error", result.Error)
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("order not found")
	}

	return nil
}

func (r *OrderRepositoryImpl) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItemModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.OrderModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("order not found")
		}
		return nil
	})
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return err
		}
		r.logger.Errorw("failed to delete order", "id", id, "error", err)
		return fmt.Errorf("failed to delete order: %w", err)
	}

	r.logger.Infow("order deleted", "id", id)
	return nil
}

func (r *OrderRepositoryImpl) MarkItemsAccessGranted(ctx context.Context, orderID uint) error {
	now := time.Now().UTC()
	err := r.db.WithContext(ctx).
		Model(&models.OrderItemModel{}).
		Where("order_id = ? AND access_granted = ?", orderID, false).
		Updates(map[string]interface{}{
			"access_granted":    true,
			"access_granted_at": now,
		}).Error
	if err != nil {
		r.logger.Errorw("failed to mark items access granted", "order_id", orderID, "error", err)
		return fmt.Errorf("failed to mark items access granted: %w", err)
	}

	return nil
}

func (r *OrderRepositoryImpl) List(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.OrderModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", string(*filter.PaymentStatus))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count orders", "error", err)
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query = applySort(query, filter.SortBy, filter.SortDesc)
	query = applyPaging(query, filter.Page, filter.PageSize)

	var orderModels []models.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		r.logger.Errorw("failed to list orders", "error", err)
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*order.Order, len(orderModels))
	for i := range orderModels {
		loaded, err := r.loadOrder(ctx, &orderModels[i])
		if err != nil {
			return nil, 0, err
		}
		orders[i] = loaded
	}

	return orders, total, nil
}

func (r *OrderRepositoryImpl) loadOrder(ctx context.Context, model *models.OrderModel) (*order.Order, error) {
	var itemModels []models.OrderItemModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", model.ID).
		Order("id ASC").
		Find(&itemModels).Error; err != nil {
		r.logger.Errorw("failed to load order items", "order_id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}

	items := make([]*order.Item, len(itemModels))
	for i, im := range itemModels {
		item, err := order.ReconstructItem(
			im.ID,
			im.OrderID,
			im.ProductID,
			im.VariantID,
			im.ProductName,
			im.VariantName,
			im.SKU,
			im.Quantity,
			im.UnitAmount,
			im.TotalAmount,
			im.AccessGranted,
			im.AccessGrantedAt,
			im.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct order item: %w", err)
		}
		items[i] = item
	}

	billing, err := unmarshalAddress(model.BillingAddress)
	if err != nil {
		return nil, err
	}
	shipping, err := unmarshalAddress(model.ShippingAddress)
	if err != nil {
		return nil, err
	}

	loaded, err := order.ReconstructOrder(
		model.ID,
		model.OrderNumber,
		model.UserID,
		model.Email,
		order.Status(model.Status),
		order.PaymentStatus(model.PaymentStatus),
		model.Currency,
		model.Subtotal,
		model.TotalAmount,
		billing,
		shipping,
		model.CheckoutSessionID,
		model.PaymentIntentID,
		model.ProviderCustomerID,
		model.ConfirmedAt,
		items,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order: %w", err)
	}

	return loaded, nil
}

func toOrderModel(o *order.Order) (*models.OrderModel, error) {
	billing, err := marshalAddress(o.BillingAddress())
	if err != nil {
		return nil, err
	}
	shipping, err := marshalAddress(o.ShippingAddress())
	if err != nil {
		return nil, err
	}

	return &models.OrderModel{
		OrderNumber:        o.OrderNumber(),
		UserID:             o.UserID(),
		Email:              o.Email(),
		Status:             string(o.Status()),
		PaymentStatus:      string(o.PaymentStatus()),
		Currency:           o.Currency(),
		Subtotal:           o.Subtotal(),
		TotalAmount:        o.TotalAmount(),
		BillingAddress:     billing,
		ShippingAddress:    shipping,
		CheckoutSessionID:  o.CheckoutSessionID(),
		PaymentIntentID:    o.PaymentIntentID(),
		ProviderCustomerID: o.ProviderCustomerID(),
		ConfirmedAt:        o.ConfirmedAt(),
		Version:            o.Version(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}, nil
}

func marshalAddress(address map[string]interface{}) (datatypes.JSON, error) {
	if address == nil {
		return nil, nil
	}
	data, err := json.Marshal(address)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal address: %w", err)
	}
	return data, nil
}

func unmarshalAddress(data datatypes.JSON) (map[string]interface{}, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var address map[string]interface{}
	if err := json.Unmarshal(data, &address); err != nil {
		return nil, fmt.Errorf("failed to unmarshal address: %w", err)
	}
	return address, nil
}
