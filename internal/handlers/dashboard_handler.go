package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EMS-F-2026/onboarding-service/internal/services"
	"github.com/EMS-F-2026/onboarding-service/internal/utils"
)

type DashboardHandler struct {
	BaseHandler
	dashboardService services.DashboardService
	reportService    services.ReportService
}

func NewDashboardHandler(
	dashboardService services.DashboardService,
	reportService services.ReportService,
	logger utils.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      NewBaseHandler(logger),
		dashboardService: dashboardService,
		reportService:    reportService,
	}
}

func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.AdminDashboard(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) Attendance(c *gin.Context) {
	report, err := h.dashboardService.Attendance(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// AttendanceExport streams the attendance analytics as an xlsx download.
func (h *DashboardHandler) AttendanceExport(c *gin.Context) {
	workbook, err := h.reportService.AttendanceWorkbook(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

func (h *DashboardHandler) TrainerDashboard(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	dashboard, err := h.dashboardService.TrainerDashboard(c.Request.Context(), session.Email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) TrainerReviews(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	reviews, err := h.dashboardService.TrainerReviews(c.Request.Context(), session.Email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// EmployeeCalendar returns the onboarding summary and module deadlines for
// the authenticated employee.
func (h *DashboardHandler) EmployeeCalendar(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	calendar, err := h.dashboardService.EmployeeCalendar(c.Request.Context(), session.Email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, calendar)
}

func (h *DashboardHandler) EmployeeDashboard(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	dashboard, err := h.dashboardService.EmployeeDashboard(c.Request.Context(), session.Email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
