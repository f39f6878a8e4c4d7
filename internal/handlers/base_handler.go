package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/services"
	"github.com/EMS-F-2026/onboarding-service/internal/utils"
	"github.com/EMS-F-2026/onboarding-service/internal/validator"
)

// SuccessResponse is the envelope for successful operations that carry a
// message alongside data.
type SuccessResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// BaseHandler carries the shared logger and error translation.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.logger).Info(msg, args...)
}

// currentSession returns the session the gate stored on the context, or
// ErrNotAuthenticated when a route ran without one.
func currentSession(c *gin.Context) (*models.Session, error) {
	session := SessionFromContext(c)
	if session == nil {
		return nil, services.ErrNotAuthenticated
	}
	return session, nil
}

// handleServiceError maps service-layer errors onto HTTP statuses.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: verrs,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidDomain),
		errors.Is(err, services.ErrInvalidScore),
		errors.Is(err, services.ErrScoreOutOfRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})

	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUnknownUserBadPassword),
		errors.Is(err, services.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: err.Error()})

	case errors.Is(err, services.ErrSelfRemoval),
		errors.Is(err, services.ErrAdminProtected):
		c.JSON(http.StatusForbidden, ErrorResponse{Message: err.Error()})

	case errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrModuleNotFound),
		errors.Is(err, services.ErrQuizNotFound),
		errors.Is(err, services.ErrOnboardingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})

	case errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})

	default:
		h.logger.Error("Unhandled service error", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}
