package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EMS-F-2026/onboarding-service/internal/services"
	"github.com/EMS-F-2026/onboarding-service/internal/utils"
)

type NotificationHandler struct {
	BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService, logger utils.Logger) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         NewBaseHandler(logger),
		notificationService: notificationService,
	}
}

// Recent returns the newest notification events first.
func (h *NotificationHandler) Recent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notifications": h.notificationService.Recent(c.Request.Context()),
	})
}
