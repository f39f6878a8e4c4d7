package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EMS-F-2026/onboarding-service/internal/access"
	"github.com/EMS-F-2026/onboarding-service/internal/services"
	"github.com/EMS-F-2026/onboarding-service/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		authService: authService,
	}
}

// Login authenticates (or bootstrap-registers) and persists the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	session, err := h.authService.Authenticate(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":    session,
		"redirectTo": access.HomePath(session.Role),
	})
}

// Logout clears the session slot. Safe to call unauthenticated.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirectTo": access.LoginPath})
}

// Session reports the current authenticated identity, if any.
func (h *AuthHandler) Session(c *gin.Context) {
	session, err := h.authService.CurrentSession(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"session": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}
