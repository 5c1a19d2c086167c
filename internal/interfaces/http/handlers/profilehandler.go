package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/application/user/usecases"
	"github.com/inkpress-io/inkpress/internal/domain/rules"
	"github.com/inkpress-io/inkpress/internal/domain/user"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/utils"
)

type ProfileHandler struct {
	getProfileUC     *usecases.GetProfileUseCase
	updateProfileUC  *usecases.UpdateProfileUseCase
	changeRoleUC     *usecases.ChangeRoleUseCase
	deactivateUserUC *usecases.DeactivateUserUseCase
	submitBetaAppUC  *usecases.SubmitBetaApplicationUseCase
	reviewBetaAppUC  *usecases.ReviewBetaApplicationUseCase
	listBetaAppsUC   *usecases.ListBetaApplicationsUseCase
	logger           logger.Interface
}

func NewProfileHandler(
	getProfileUC *usecases.GetProfileUseCase,
	updateProfileUC *usecases.UpdateProfileUseCase,
	changeRoleUC *usecases.ChangeRoleUseCase,
	deactivateUserUC *usecases.DeactivateUserUseCase,
	submitBetaAppUC *usecases.SubmitBetaApplicationUseCase,
	reviewBetaAppUC *usecases.ReviewBetaApplicationUseCase,
	listBetaAppsUC *usecases.ListBetaApplicationsUseCase,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:     getProfileUC,
		updateProfileUC:  updateProfileUC,
		changeRoleUC:     changeRoleUC,
		deactivateUserUC: deactivateUserUC,
		submitBetaAppUC:  submitBetaAppUC,
		reviewBetaAppUC:  reviewBetaAppUC,
		listBetaAppsUC:   listBetaAppsUC,
		logger:           logger,
	}
}

type UpdateProfileRequest struct {
	Username    *string `json:"username"`
	DisplayName *string `json:"display_name"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type DeactivateUserRequest struct {
	Reason string `json:"reason"`
}

type SubmitBetaApplicationRequest struct {
	InterestStatement  string `json:"interest_statement" binding:"required"`
	FeedbackPhilosophy string `json:"feedback_philosophy" binding:"required"`
	HoursPerWeek       int    `json:"hours_per_week" binding:"required,gt=0"`
	Communication      string `json:"communication" binding:"required"`
	PriorExperience    string `json:"prior_experience"`
}

type ReviewBetaApplicationRequest struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
}

type ProfileResponse struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        string    `json:"role"`
	BetaStatus  string    `json:"beta_status"`
	CreatedAt   time.Time `json:"created_at"`
}

type BetaApplicationResponse struct {
	ID                 uint       `json:"id"`
	UserID             uint       `json:"user_id"`
	InterestStatement  string     `json:"interest_statement"`
	FeedbackPhilosophy string     `json:"feedback_philosophy"`
	HoursPerWeek       int        `json:"hours_per_week"`
	Communication      string     `json:"communication"`
	PriorExperience    string     `json:"prior_experience,omitempty"`
	Score              int        `json:"score"`
	Status             string     `json:"status"`
	ReviewNotes        *string    `json:"review_notes,omitempty"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func toProfileResponse(p *user.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID(),
		Email:       p.Email(),
		Username:    p.Username(),
		DisplayName: p.DisplayName(),
		Role:        string(p.Role()),
		BetaStatus:  string(p.BetaStatus()),
		CreatedAt:   p.CreatedAt(),
	}
}

func toBetaApplicationResponse(a *user.BetaApplication) BetaApplicationResponse {
	return BetaApplicationResponse{
		ID:                 a.ID(),
		UserID:             a.UserID(),
		InterestStatement:  a.InterestStatement(),
		FeedbackPhilosophy: a.FeedbackPhilosophy(),
		HoursPerWeek:       a.HoursPerWeek(),
		Communication:      a.Communication(),
		PriorExperience:    a.PriorExperience(),
		Score:              a.Score(),
		Status:             string(a.Status()),
		ReviewNotes:        a.ReviewNotes(),
		ReviewedAt:         a.ReviewedAt(),
		CreatedAt:          a.CreatedAt(),
	}
}

func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := gin.H{"profile": toProfileResponse(result.Profile)}
	if result.LatestApplication != nil {
		resp["beta_application"] = toBetaApplicationResponse(result.LatestApplication)
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:      userID,
		Username:    req.Username,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", toProfileResponse(result.Profile))
}

// ChangeRole assigns a new role to a user. The rank rules live in the use
// case; the route is additionally gated to admins.
func (h *ProfileHandler) ChangeRole(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	targetID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change role", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeRoleUC.Execute(c.Request.Context(), usecases.ChangeRoleCommand{
		ActorID:      actorID,
		TargetUserID: targetID,
		NewRole:      authorization.UserRole(req.Role),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated successfully", toProfileResponse(result.Profile))
}

// DeactivateUser shuts down a reader account, canceling its subscriptions and
// closing its entitlements. The rank rules live in the use case.
func (h *ProfileHandler) DeactivateUser(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	targetID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	// The request body is optional; an empty body means no stated reason.
	var req DeactivateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warnw("invalid request body for deactivate user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deactivateUserUC.Execute(c.Request.Context(), usecases.DeactivateUserCommand{
		ActorID:      actorID,
		TargetUserID: targetID,
		Reason:       req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deactivated", gin.H{
		"canceled_subscriptions": result.CanceledSubscriptions,
	})
}

func (h *ProfileHandler) SubmitBetaApplication(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req SubmitBetaApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for beta application", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitBetaAppUC.Execute(c.Request.Context(), usecases.SubmitBetaApplicationCommand{
		UserID:             userID,
		InterestStatement:  req.InterestStatement,
		FeedbackPhilosophy: req.FeedbackPhilosophy,
		HoursPerWeek:       req.HoursPerWeek,
		Communication:      req.Communication,
		PriorExperience:    req.PriorExperience,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toBetaApplicationResponse(result.Application), "Application submitted")
}

func (h *ProfileHandler) ReviewBetaApplication(c *gin.Context) {
	reviewerID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	applicationID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid application ID")
		return
	}

	var req ReviewBetaApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for review application", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reviewBetaAppUC.Execute(c.Request.Context(), usecases.ReviewBetaApplicationCommand{
		ApplicationID: applicationID,
		ReviewerID:    reviewerID,
		Approve:       req.Approve,
		Notes:         req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Application reviewed", toBetaApplicationResponse(result.Application))
}

func (h *ProfileHandler) ListBetaApplications(c *gin.Context) {
	page, pageSize := parsePagination(c)

	cmd := usecases.ListBetaApplicationsCommand{Page: page, PageSize: pageSize}
	if raw := c.Query("status"); raw != "" {
		status := rules.BetaApplicationStatus(raw)
		cmd.Status = &status
	}

	result, err := h.listBetaAppsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]BetaApplicationResponse, 0, len(result.Applications))
	for _, application := range result.Applications {
		responses = append(responses, toBetaApplicationResponse(application))
	}

	utils.ListSuccessResponse(c, responses, result.Total, result.Page, result.PageSize)
}
