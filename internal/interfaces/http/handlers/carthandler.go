package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/application/cart/usecases"
	"github.com/inkpress-io/inkpress/internal/domain/cart"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/utils"
)

type CartHandler struct {
	getCartUC        *usecases.GetCartUseCase
	addToCartUC      *usecases.AddToCartUseCase
	updateCartItemUC *usecases.UpdateCartItemUseCase
	removeCartItemUC *usecases.RemoveCartItemUseCase
	clearCartUC      *usecases.ClearCartUseCase
	logger           logger.Interface
}

func NewCartHandler(
	getCartUC *usecases.GetCartUseCase,
	addToCartUC *usecases.AddToCartUseCase,
	updateCartItemUC *usecases.UpdateCartItemUseCase,
	removeCartItemUC *usecases.RemoveCartItemUseCase,
	clearCartUC *usecases.ClearCartUseCase,
	logger logger.Interface,
) *CartHandler {
	return &CartHandler{
		getCartUC:        getCartUC,
		addToCartUC:      addToCartUC,
		updateCartItemUC: updateCartItemUC,
		removeCartItemUC: removeCartItemUC,
		clearCartUC:      clearCartUC,
		logger:           logger,
	}
}

type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	VariantID uint `json:"variant_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

type CartItemResponse struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"product_id"`
	VariantID   uint   `json:"variant_id"`
	ProductName string `json:"product_name"`
	VariantName string `json:"variant_name,omitempty"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
	UnitAmount  int64  `json:"unit_amount"`
	Currency    string `json:"currency"`
	LineTotal   int64  `json:"line_total"`
	Available   bool   `json:"available"`
}

type CartResponse struct {
	ID        uint               `json:"id"`
	Items     []CartItemResponse `json:"items"`
	Subtotal  int64              `json:"subtotal"`
	ItemCount int                `json:"item_count"`
	ExpiresAt *time.Time         `json:"expires_at,omitempty"`
}

func toCartItemResponse(item *cart.Item) CartItemResponse {
	resp := CartItemResponse{
		ID:        item.ID(),
		ProductID: item.ProductID(),
		VariantID: item.VariantID(),
		Quantity:  item.Quantity(),
		LineTotal: item.LineTotal(),
		Available: item.IsAvailable(),
	}
	if details := item.Details(); details != nil {
		resp.ProductName = details.ProductName
		resp.VariantName = details.VariantName
		resp.SKU = details.SKU
		resp.UnitAmount = details.UnitAmount
		resp.Currency = details.Currency
	}
	return resp
}

func toCartResponse(activeCart *cart.Cart, subtotal int64, itemCount int) CartResponse {
	resp := CartResponse{
		Items:     []CartItemResponse{},
		Subtotal:  subtotal,
		ItemCount: itemCount,
	}
	if activeCart == nil {
		return resp
	}

	resp.ID = activeCart.ID()
	if expiresAt := activeCart.ExpiresAt(); !expiresAt.IsZero() {
		resp.ExpiresAt = &expiresAt
	}
	for _, item := range activeCart.Items() {
		resp.Items = append(resp.Items, toCartItemResponse(item))
	}
	return resp
}

// GetCart returns the caller's cart. Guests without a cart session header
// get an empty cart rather than an error.
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, sessionID := cartIdentity(c)
	if userID == nil && sessionID == nil {
		utils.SuccessResponse(c, http.StatusOK, "", toCartResponse(nil, 0, 0))
		return
	}

	result, err := h.getCartUC.Execute(c.Request.Context(), usecases.GetCartCommand{
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toCartResponse(result.Cart, result.Subtotal, result.ItemCount))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	userID, sessionID := cartIdentity(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add cart item", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addToCartUC.Execute(c.Request.Context(), usecases.AddToCartCommand{
		UserID:    userID,
		SessionID: sessionID,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCartItemResponse(result.Item), "Item added to cart")
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, sessionID := cartIdentity(c)

	itemID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid cart item ID")
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update cart item", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateCartItemUC.Execute(c.Request.Context(), usecases.UpdateCartItemCommand{
		UserID:    userID,
		SessionID: sessionID,
		ItemID:    itemID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Removed {
		utils.SuccessResponse(c, http.StatusOK, "Item removed from cart", nil)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cart item updated", toCartItemResponse(result.Item))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, sessionID := cartIdentity(c)

	itemID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid cart item ID")
		return
	}

	if err := h.removeCartItemUC.Execute(c.Request.Context(), usecases.RemoveCartItemCommand{
		UserID:    userID,
		SessionID: sessionID,
		ItemID:    itemID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, sessionID := cartIdentity(c)

	if err := h.clearCartUC.Execute(c.Request.Context(), usecases.ClearCartCommand{
		UserID:    userID,
		SessionID: sessionID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
