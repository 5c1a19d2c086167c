package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/application/order/usecases"
	"github.com/inkpress-io/inkpress/internal/domain/order"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
	"github.com/inkpress-io/inkpress/internal/shared/constants"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/utils"
)

type OrderHandler struct {
	getOrderUC   *usecases.GetOrderUseCase
	listOrdersUC *usecases.ListOrdersUseCase
	logger       logger.Interface
}

func NewOrderHandler(getOrderUC *usecases.GetOrderUseCase, listOrdersUC *usecases.ListOrdersUseCase, logger logger.Interface) *OrderHandler {
	return &OrderHandler{
		getOrderUC:   getOrderUC,
		listOrdersUC: listOrdersUC,
		logger:       logger,
	}
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	orderID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order ID")
		return
	}

	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))

	result, err := h.getOrderUC.Execute(c.Request.Context(), usecases.GetOrderCommand{
		OrderID: orderID,
		UserID:  userID,
		Admin:   role.IsAdmin(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toOrderResponse(result.Order))
}

// ListOrders returns the caller's order history. Admins may list any user's
// orders with the user_id query parameter, or all orders without it.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	page, pageSize := parsePagination(c)
	cmd := usecases.ListOrdersCommand{Page: page, PageSize: pageSize}

	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
	if role.IsAdmin() {
		if filtered, ok := queryUint(c, "user_id"); ok {
			cmd.UserID = &filtered
		}
	} else {
		cmd.UserID = &userID
	}

	if raw := c.Query("status"); raw != "" {
		status := order.Status(raw)
		cmd.Status = &status
	}
	if raw := c.Query("payment_status"); raw != "" {
		paymentStatus := order.PaymentStatus(raw)
		cmd.PaymentStatus = &paymentStatus
	}

	result, err := h.listOrdersUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toOrderResponses(result.Orders), result.Total, result.Page, result.PageSize)
}
