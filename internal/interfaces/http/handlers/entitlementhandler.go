package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appentitlement "github.com/inkpress-io/inkpress/internal/application/entitlement"
	"github.com/inkpress-io/inkpress/internal/domain/entitlement"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/utils"
)

type EntitlementHandler struct {
	entitlementSvc *appentitlement.Service
	logger         logger.Interface
}

func NewEntitlementHandler(entitlementSvc *appentitlement.Service, logger logger.Interface) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementSvc: entitlementSvc,
		logger:         logger,
	}
}

type EntitlementResponse struct {
	ID       uint       `json:"id"`
	Scope    string     `json:"scope"`
	Source   string     `json:"source"`
	StartsAt time.Time  `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

func toEntitlementResponse(e *entitlement.Entitlement) EntitlementResponse {
	return EntitlementResponse{
		ID:       e.ID(),
		Scope:    e.Scope(),
		Source:   e.Source(),
		StartsAt: e.StartsAt(),
		EndsAt:   e.EndsAt(),
	}
}

// ListMyEntitlements returns the caller's currently active content grants.
func (h *EntitlementHandler) ListMyEntitlements(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	entitlements, err := h.entitlementSvc.ListActiveForUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to list entitlements", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]EntitlementResponse, 0, len(entitlements))
	for _, e := range entitlements {
		responses = append(responses, toEntitlementResponse(e))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// CheckScope reports whether the caller can access a content scope.
func (h *EntitlementHandler) CheckScope(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	scope := c.Param("scope")
	if scope == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "scope is required")
		return
	}

	hasScope, err := h.entitlementSvc.HasScope(c.Request.Context(), userID, scope)
	if err != nil {
		h.logger.Errorw("failed to check entitlement scope", "error", err, "user_id", userID, "scope", scope)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"scope":   scope,
		"granted": hasScope,
	})
}
