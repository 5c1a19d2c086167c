package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/application/subscription/usecases"
	"github.com/inkpress-io/inkpress/internal/domain/subscription"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/utils"
)

type SubscriptionHandler struct {
	createSubscriptionUC     *usecases.CreateSubscriptionUseCase
	getUserSubscriptionsUC   *usecases.GetUserSubscriptionsUseCase
	cancelSubscriptionUC     *usecases.CancelSubscriptionUseCase
	reactivateSubscriptionUC *usecases.ReactivateSubscriptionUseCase
	logger                   logger.Interface
}

func NewSubscriptionHandler(
	createSubscriptionUC *usecases.CreateSubscriptionUseCase,
	getUserSubscriptionsUC *usecases.GetUserSubscriptionsUseCase,
	cancelSubscriptionUC *usecases.CancelSubscriptionUseCase,
	reactivateSubscriptionUC *usecases.ReactivateSubscriptionUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createSubscriptionUC:     createSubscriptionUC,
		getUserSubscriptionsUC:   getUserSubscriptionsUC,
		cancelSubscriptionUC:     cancelSubscriptionUC,
		reactivateSubscriptionUC: reactivateSubscriptionUC,
		logger:                   logger,
	}
}

type CreateSubscriptionRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	PlanID    uint `json:"plan_id" binding:"required"`
}

type CancelSubscriptionRequest struct {
	Reason    string `json:"reason"`
	Immediate bool   `json:"immediate"`
}

type SubscriptionResponse struct {
	ID                 uint       `json:"id"`
	ProductID          uint       `json:"product_id"`
	PlanID             uint       `json:"plan_id"`
	Status             string     `json:"status"`
	CurrentPeriodStart time.Time  `json:"current_period_start"`
	CurrentPeriodEnd   time.Time  `json:"current_period_end"`
	TrialEnd           *time.Time `json:"trial_end,omitempty"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end"`
	CanceledAt         *time.Time `json:"canceled_at,omitempty"`
	CancelReason       *string    `json:"cancel_reason,omitempty"`
	GrantsAccess       bool       `json:"grants_access"`
	CreatedAt          time.Time  `json:"created_at"`
}

func toSubscriptionResponse(sub *subscription.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:                 sub.ID(),
		ProductID:          sub.ProductID(),
		PlanID:             sub.PlanID(),
		Status:             sub.Status().String(),
		CurrentPeriodStart: sub.CurrentPeriodStart(),
		CurrentPeriodEnd:   sub.CurrentPeriodEnd(),
		TrialEnd:           sub.TrialEnd(),
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd(),
		CanceledAt:         sub.CanceledAt(),
		CancelReason:       sub.CancelReason(),
		GrantsAccess:       sub.GrantsAccess(),
		CreatedAt:          sub.CreatedAt(),
	}
}

// CreateSubscription subscribes the caller to a recurring plan.
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createSubscriptionUC.Execute(c.Request.Context(), usecases.CreateSubscriptionCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		PlanID:    req.PlanID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toSubscriptionResponse(result.Subscription), "Subscription created successfully")
}

func (h *SubscriptionHandler) ListMySubscriptions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.getUserSubscriptionsUC.Execute(c.Request.Context(), usecases.GetUserSubscriptionsCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]SubscriptionResponse, 0, len(result.Subscriptions))
	for _, sub := range result.Subscriptions {
		responses = append(responses, toSubscriptionResponse(sub))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// CancelSubscription cancels the caller's subscription. New subscriptions
// cancel immediately; established ones run to the end of the paid period
// unless the caller asks for an immediate stop.
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	subscriptionID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription ID")
		return
	}

	// The request body is optional; an empty body means a scheduled
	// cancellation with no stated reason.
	var req CancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warnw("invalid request body for cancel subscription", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.cancelSubscriptionUC.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{
		SubscriptionID: subscriptionID,
		UserID:         userID,
		Reason:         req.Reason,
		Immediate:      req.Immediate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Subscription will cancel at the end of the billing period"
	if result.Immediate {
		message = "Subscription cancelled"
	}
	utils.SuccessResponse(c, http.StatusOK, message, toSubscriptionResponse(result.Subscription))
}

func (h *SubscriptionHandler) ReactivateSubscription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	subscriptionID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription ID")
		return
	}

	result, err := h.reactivateSubscriptionUC.Execute(c.Request.Context(), usecases.ReactivateSubscriptionCommand{
		SubscriptionID: subscriptionID,
		UserID:         userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription reactivated", toSubscriptionResponse(result.Subscription))
}
