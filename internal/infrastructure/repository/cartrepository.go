package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/inkpress-io/inkpress/internal/domain/cart"
	"github.com/inkpress-io/inkpress/internal/infrastructure/persistence/models"
	"github.com/inkpress-io/inkpress/internal/shared/constants"
	apperrors "github.com/inkpress-io/inkpress/internal/shared/errors"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

// CartRepositoryImpl implements the cart.Repository interface
type CartRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewCartRepository creates a new cart repository instance
func NewCartRepository(db *gorm.DB, logger logger.Interface) cart.Repository {
	return &CartRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// hydratedItem is the join row for a cart line with live catalog state.
type hydratedItem struct {
	models.CartItemModel
	ProductName       string
	ProductActive     bool
	VariantName       string
	SKU               string
	PriceAmount       int64
	Currency          string
	TrackInventory    bool
	InventoryQuantity int
}

func (r *CartRepositoryImpl) GetOrCreate(ctx context.Context, owner cart.OwnerKey) (*cart.Cart, error) {
	existing, err := r.GetActiveWithItems(ctx, owner)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	expiresAt := time.Now().UTC().AddDate(0, 0, constants.CartExpiryDays)
	newCart, err := cart.NewCart(owner, expiresAt)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	model := &models.ShoppingCartModel{
		UserID:    owner.UserID(),
		SessionID: owner.SessionID(),
		ExpiresAt: &expiresAt,
		CreatedAt: newCart.CreatedAt(),
		UpdatedAt: newCart.UpdatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			// Lost a race against a concurrent create for the same owner.
			return r.GetActiveWithItems(ctx, owner)
		}
		r.logger.Errorw("failed to create cart", "error", err)
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	if err := newCart.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set cart ID", "error", err)
		return nil, fmt.Errorf("failed to set cart ID: %w", err)
	}

	r.logger.Infow("cart created", "id", model.ID)
	return newCart, nil
}

func (r *CartRepositoryImpl) GetActiveWithItems(ctx context.Context, owner cart.OwnerKey) (*cart.Cart, error) {
	query := r.db.WithContext(ctx).
		Where("expires_at IS NULL OR expires_at > ?", time.Now().UTC())

	if userID := owner.UserID(); userID != nil {
		query = query.Where("user_id = ?", *userID)
	} else if sessionID := owner.SessionID(); sessionID != nil {
		query = query.Where("session_id = ?", *sessionID)
	} else {
		return nil, apperrors.NewValidationError("cart owner is required")
	}

	var model models.ShoppingCartModel
	if err := query.Order("updated_at DESC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get active cart", "error", err)
		return nil, fmt.Errorf("failed to get active cart: %w", err)
	}

	return r.loadCart(ctx, &model)
}

func (r *CartRepositoryImpl) GetByID(ctx context.Context, id uint) (*cart.Cart, error) {
	var model models.ShoppingCartModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("cart not found")
		}
		r.logger.Errorw("failed to get cart", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return r.loadCart(ctx, &model)
}

func (r *CartRepositoryImpl) loadCart(ctx context.Context, model *models.ShoppingCartModel) (*cart.Cart, error) {
	var rows []hydratedItem
	err := r.db.WithContext(ctx).
		Table(constants.TableCartItems).
		Select(`cart_items.*,
			products.name AS product_name,
			products.active AS product_active,
			product_variants.name AS variant_name,
			product_variants.sku AS sku,
			product_variants.price_amount AS price_amount,
			product_variants.currency AS currency,
			product_variants.track_inventory AS track_inventory,
			product_variants.inventory_quantity AS inventory_quantity`).
		Joins("JOIN products ON products.id = cart_items.product_id").
		Joins("JOIN product_variants ON product_variants.id = cart_items.variant_id").
		Where("cart_items.cart_id = ?", model.ID).
		Order("cart_items.id ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to load cart items", "cart_id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}

	items := make([]*cart.Item, len(rows))
	for i, row := range rows {
		details := &cart.ItemDetails{
			ProductName:       row.ProductName,
			ProductActive:     row.ProductActive,
			VariantName:       row.VariantName,
			SKU:               row.SKU,
			UnitAmount:        row.PriceAmount,
			Currency:          row.Currency,
			TrackInventory:    row.TrackInventory,
			InventoryQuantity: row.InventoryQuantity,
		}

		item, err := cart.ReconstructItem(
			row.ID,
			row.CartID,
			row.ProductID,
			row.VariantID,
			row.Quantity,
			details,
			row.CreatedAt,
			row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct cart item: %w", err)
		}
		items[i] = item
	}

	var expiresAt time.Time
	if model.ExpiresAt != nil {
		expiresAt = *model.ExpiresAt
	}

	loaded, err := cart.ReconstructCart(
		model.ID,
		model.UserID,
		model.SessionID,
		expiresAt,
		items,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct cart: %w", err)
	}

	return loaded, nil
}

func (r *CartRepositoryImpl) FindItem(ctx context.Context, cartID, productID, variantID uint) (*cart.Item, error) {
	var model models.CartItemModel
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND variant_id = ?", cartID, productID, variantID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find cart item", "cart_id", cartID, "error", err)
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}

	return toCartItemDomain(&model)
}

func (r *CartRepositoryImpl) GetItemByID(ctx context.Context, itemID uint) (*cart.Item, error) {
	var model models.CartItemModel
	if err := r.db.WithContext(ctx).First(&model, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("cart item not found")
		}
		r.logger.Errorw("failed to get cart item", "id", itemID, "error", err)
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return toCartItemDomain(&model)
}

func (r *CartRepositoryImpl) AddItem(ctx context.Context, item *cart.Item) error {
	model := &models.CartItemModel{
		CartID:    item.CartID(),
		ProductID: item.ProductID(),
		VariantID: item.VariantID(),
		Quantity:  item.Quantity(),
		CreatedAt: item.CreatedAt(),
		UpdatedAt: item.UpdatedAt(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("item already in cart")
		}
		r.logger.Errorw("failed to add cart item", "cart_id", item.CartID(), "error", err)
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	if err := item.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set cart item ID", "error", err)
		return fmt.Errorf("failed to set cart item ID: %w", err)
	}

	return nil
}

func (r *CartRepositoryImpl) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&models.CartItemModel{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update cart item quantity", "id", itemID, "error", result.Error)
		return fmt.Errorf("failed to update cart item quantity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("cart item not found")
	}

	return nil
}

func (r *CartRepositoryImpl) DeleteItem(ctx context.Context, itemID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CartItemModel{}, itemID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete cart item", "id", itemID, "error", result.Error)
		return fmt.Errorf("failed to delete cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("cart item not found")
	}

	return nil
}

func (r *CartRepositoryImpl) DeleteItemsByCartID(ctx context.Context, cartID uint) error {
	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItemModel{}).Error; err != nil {
		r.logger.Errorw("failed to clear cart", "cart_id", cartID, "error", err)
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

func (r *CartRepositoryImpl) Touch(ctx context.Context, cartID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.ShoppingCartModel{}).
		Where("id = ?", cartID).
		Update("updated_at", time.Now().UTC()).Error; err != nil {
		r.logger.Errorw("failed to touch cart", "cart_id", cartID, "error", err)
		return fmt.Errorf("failed to touch cart: %w", err)
	}

	return nil
}

func toCartItemDomain(model *models.CartItemModel) (*cart.Item, error) {
	item, err := cart.ReconstructItem(
		model.ID,
		model.CartID,
		model.ProductID,
		model.VariantID,
		model.Quantity,
		nil,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct cart item: %w", err)
	}

	return item, nil
}
