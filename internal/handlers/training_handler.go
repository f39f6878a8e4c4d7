package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EMS-F-2026/onboarding-service/internal/services"
	"github.com/EMS-F-2026/onboarding-service/internal/utils"
)

type TrainingHandler struct {
	BaseHandler
	trainingService services.TrainingService
}

func NewTrainingHandler(trainingService services.TrainingService, logger utils.Logger) *TrainingHandler {
	return &TrainingHandler{
		BaseHandler:     NewBaseHandler(logger),
		trainingService: trainingService,
	}
}

func (h *TrainingHandler) ListModules(c *gin.Context) {
	modules, err := h.trainingService.Modules(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": modules})
}

func (h *TrainingHandler) CreateModule(c *gin.Context) {
	var req services.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	module, err := h.trainingService.CreateModule(c.Request.Context(), &req, session.Email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, module)
}

// CompleteModule marks a module done for the authenticated employee.
func (h *TrainingHandler) CompleteModule(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	moduleID := c.Param("id")

	if err := h.trainingService.MarkModuleCompleted(c.Request.Context(), moduleID, session.Email); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Module completed"})
}

func (h *TrainingHandler) SubmitAssignment(c *gin.Context) {
	var req services.SubmitAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	moduleID := c.Param("id")

	if err := h.trainingService.SubmitAssignment(c.Request.Context(), moduleID, session.Email, &req); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Assignment submitted"})
}

func (h *TrainingHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	quiz, err := h.trainingService.CreateQuiz(c.Request.Context(), &req, session.Email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// AttemptQuiz records a scored attempt for the authenticated employee.
func (h *TrainingHandler) AttemptQuiz(c *gin.Context) {
	var req services.AttemptQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	quizID := c.Param("id")

	attempt, err := h.trainingService.AttemptQuiz(c.Request.Context(), quizID, session.Email, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attempt)
}

func (h *TrainingHandler) SubmitReview(c *gin.Context) {
	var req services.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	review, err := h.trainingService.SubmitReview(c.Request.Context(), &req, session.Email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *TrainingHandler) GetProfile(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	profile, err := h.trainingService.Profile(c.Request.Context(), session.Email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *TrainingHandler) UpdateProfile(c *gin.Context) {
	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	profile, err := h.trainingService.UpdateProfile(c.Request.Context(), session.Email, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
