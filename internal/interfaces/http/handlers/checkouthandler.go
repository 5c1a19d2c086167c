package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/application/checkout/usecases"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/utils"
)

type CheckoutHandler struct {
	createSessionUC *usecases.CreateCheckoutSessionUseCase
	logger          logger.Interface
}

func NewCheckoutHandler(createSessionUC *usecases.CreateCheckoutSessionUseCase, logger logger.Interface) *CheckoutHandler {
	return &CheckoutHandler{
		createSessionUC: createSessionUC,
		logger:          logger,
	}
}

type CreateCheckoutSessionRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CreateSession turns the caller's cart into a pending order and opens a
// hosted checkout session for it.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	userID, sessionID := cartIdentity(c)

	var req CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create checkout session", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createSessionUC.Execute(c.Request.Context(), usecases.CreateCheckoutSessionCommand{
		UserID:    userID,
		SessionID: sessionID,
		Email:     req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"order":        toOrderResponse(result.Order),
		"session_id":   result.SessionID,
		"checkout_url": result.CheckoutURL,
	}, "Checkout session created")
}
