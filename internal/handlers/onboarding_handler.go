package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EMS-F-2026/onboarding-service/internal/services"
	"github.com/EMS-F-2026/onboarding-service/internal/utils"
)

type OnboardingHandler struct {
	BaseHandler
	onboardingService services.OnboardingService
}

func NewOnboardingHandler(onboardingService services.OnboardingService, logger utils.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		BaseHandler:       NewBaseHandler(logger),
		onboardingService: onboardingService,
	}
}

func (h *OnboardingHandler) ListRecords(c *gin.Context) {
	records, err := h.onboardingService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// UpsertRecord creates a plan for an employee or replaces the existing one,
// keeping its checklist state.
func (h *OnboardingHandler) UpsertRecord(c *gin.Context) {
	var req services.UpsertOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	record, err := h.onboardingService.Upsert(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Checklist returns the onboarding checklist for the authenticated employee.
func (h *OnboardingHandler) Checklist(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	record, err := h.onboardingService.Checklist(c.Request.Context(), session.Email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *OnboardingHandler) ToggleChecklistItem(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	key := c.Param("key")

	if err := h.onboardingService.ToggleChecklistItem(c.Request.Context(), session.Email, key); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Checklist updated"})
}
