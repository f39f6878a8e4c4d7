package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EMS-F-2026/onboarding-service/internal/services"
	"github.com/EMS-F-2026/onboarding-service/internal/utils"
)

type MemberHandler struct {
	BaseHandler
	memberService services.MemberService
}

func NewMemberHandler(memberService services.MemberService, logger utils.Logger) *MemberHandler {
	return &MemberHandler{
		BaseHandler:   NewBaseHandler(logger),
		memberService: memberService,
	}
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req services.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) RemoveMember(c *gin.Context) {
	id := c.Param("id")
	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if err := h.memberService.Remove(c.Request.Context(), id, session); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Member removed"})
}
