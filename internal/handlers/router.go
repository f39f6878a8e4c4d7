package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/services"
	"github.com/EMS-F-2026/onboarding-service/internal/utils"
)

type HandlerManager struct {
	authHandler         *AuthHandler
	memberHandler       *MemberHandler
	taskHandler         *TaskHandler
	onboardingHandler   *OnboardingHandler
	trainingHandler     *TrainingHandler
	dashboardHandler    *DashboardHandler
	notificationHandler *NotificationHandler
	authMiddleware      *SessionAuthMiddleware
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		authHandler:         NewAuthHandler(serviceManager.Auth(), logger),
		memberHandler:       NewMemberHandler(serviceManager.Members(), logger),
		taskHandler:         NewTaskHandler(serviceManager.Tasks(), logger),
		onboardingHandler:   NewOnboardingHandler(serviceManager.Onboarding(), logger),
		trainingHandler:     NewTrainingHandler(serviceManager.Training(), logger),
		dashboardHandler:    NewDashboardHandler(serviceManager.Dashboards(), serviceManager.Reports(), logger),
		notificationHandler: NewNotificationHandler(serviceManager.Notifications(), logger),
		authMiddleware:      NewSessionAuthMiddleware(serviceManager.Auth(), logger),
	}
}

// SetupRoutes mounts the role-scoped route groups. The gate middleware
// applies the route policy, so each group is reachable only by its role.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Session endpoints sit outside the gate: login must be reachable
	// unauthenticated and logout is always safe.
	router.POST("/login", hm.authHandler.Login)
	router.POST("/logout", hm.authHandler.Logout)
	router.GET("/session", hm.authHandler.Session)

	// Notifications are visible to any authenticated role.
	router.GET("/notifications",
		hm.authMiddleware.RequireRole(models.RoleAdmin, models.RoleTrainer, models.RoleEmployee),
		hm.notificationHandler.Recent)

	gate := hm.authMiddleware.Gate()

	admin := router.Group("/admin", gate)
	{
		admin.GET("/dashboard", hm.dashboardHandler.AdminDashboard)
		admin.GET("/attendance", hm.dashboardHandler.Attendance)
		admin.GET("/attendance/report", hm.dashboardHandler.AttendanceExport)

		admin.GET("/members", hm.memberHandler.ListMembers)
		admin.POST("/members", hm.memberHandler.CreateMember)
		admin.DELETE("/members/:id", hm.memberHandler.RemoveMember)

		admin.GET("/onboarding", hm.onboardingHandler.ListRecords)
		admin.POST("/onboarding", hm.onboardingHandler.UpsertRecord)
	}

	trainer := router.Group("/trainer", gate)
	{
		trainer.GET("/dashboard", hm.dashboardHandler.TrainerDashboard)

		trainer.GET("/modules", hm.trainingHandler.ListModules)
		trainer.POST("/modules", hm.trainingHandler.CreateModule)
		trainer.POST("/quizzes", hm.trainingHandler.CreateQuiz)

		trainer.GET("/reviews", hm.dashboardHandler.TrainerReviews)
		trainer.POST("/reviews", hm.trainingHandler.SubmitReview)
	}

	employee := router.Group("/employee", gate)
	{
		employee.GET("/dashboard", hm.dashboardHandler.EmployeeDashboard)
		employee.GET("/calendar", hm.dashboardHandler.EmployeeCalendar)

		employee.GET("/checklist", hm.onboardingHandler.Checklist)
		employee.POST("/checklist/:key/toggle", hm.onboardingHandler.ToggleChecklistItem)

		employee.GET("/profile", hm.trainingHandler.GetProfile)
		employee.PUT("/profile", hm.trainingHandler.UpdateProfile)

		employee.GET("/tasks", hm.taskHandler.Board)
		employee.POST("/tasks", hm.taskHandler.CreateTask)
		employee.PUT("/tasks/:id/status", hm.taskHandler.UpdateTaskStatus)

		employee.POST("/modules/:id/complete", hm.trainingHandler.CompleteModule)
		employee.POST("/modules/:id/submission", hm.trainingHandler.SubmitAssignment)
		employee.POST("/quizzes/:id/attempt", hm.trainingHandler.AttemptQuiz)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "onboarding-service",
		})
	})

	// Paths outside the route tree follow the policy's redirect instead of
	// gin's default 404.
	router.NoRoute(hm.authMiddleware.NotFound())
}
