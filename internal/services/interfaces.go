package services

import (
	"context"

	"github.com/EMS-F-2026/onboarding-service/internal/events"
	"github.com/EMS-F-2026/onboarding-service/internal/metrics"
	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/validator"
)

// ===== REQUEST DTOs =====

// Use validator request types so field rules stay in one place.
type LoginRequest = validator.LoginRequest
type CreateMemberRequest = validator.CreateMemberRequest
type CreateTaskRequest = validator.CreateTaskRequest
type UpdateTaskStatusRequest = validator.UpdateTaskStatusRequest
type UpsertOnboardingRequest = validator.UpsertOnboardingRequest
type CreateModuleRequest = validator.CreateModuleRequest
type CreateQuizRequest = validator.CreateQuizRequest
type AttemptQuizRequest = validator.AttemptQuizRequest
type SubmitAssignmentRequest = validator.SubmitAssignmentRequest
type SubmitReviewRequest = validator.SubmitReviewRequest
type UpdateProfileRequest = validator.UpdateProfileRequest

// ===== RESPONSE DTOs =====

// MemberResponse is a User without the credential field.
type MemberResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	Designation string          `json:"designation"`
}

type TaskBoardResponse struct {
	Tasks         []models.Task            `json:"tasks"`
	TasksByStatus map[string][]models.Task `json:"tasksByStatus"`
	Stats         metrics.TaskStats        `json:"stats"`
}

type AdminDashboardResponse struct {
	TotalEmployees    int                       `json:"totalEmployees"`
	ActivePrograms    int                       `json:"activePrograms"`
	CompletionRate    int                       `json:"completionRate"`
	Underperforming   int                       `json:"underperforming"`
	OnboardingRecords []models.OnboardingRecord `json:"onboardingRecords"`
	Modules           []models.TrainingModule   `json:"modules"`
}

type AttendanceResponse struct {
	Overview metrics.AttendanceOverview `json:"overview"`
	Rows     []metrics.AttendanceRow    `json:"rows"`
}

type TrainerDashboardResponse struct {
	AssignedTrainees []string            `json:"assignedTrainees"`
	AverageScore     int                 `json:"averageScore"`
	CurrentWeek      string              `json:"currentWeek"`
	PendingReviews   []string            `json:"pendingReviews"`
	Reviews          metrics.ReviewStats `json:"reviews"`
}

type TrainerReviewsResponse struct {
	Stats   metrics.ReviewStats   `json:"stats"`
	Reviews []models.WeeklyReview `json:"reviews"`
}

// ModuleDeadline is one calendar row for an assigned module.
type ModuleDeadline struct {
	ModuleID string `json:"moduleId"`
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
}

type EmployeeCalendarResponse struct {
	Onboarding      *models.OnboardingRecord `json:"onboarding,omitempty"`
	ModuleDeadlines []ModuleDeadline         `json:"moduleDeadlines"`
	NextDeadline    string                   `json:"nextDeadline"`
}

type EmployeeDashboardResponse struct {
	Progress        int                     `json:"progress"`
	AssignedModules []models.TrainingModule `json:"assignedModules"`
	AssignedQuizzes []models.Quiz           `json:"assignedQuizzes"`
	Attempts        []models.QuizAttempt    `json:"attempts"`
	Reviews         []models.WeeklyReview   `json:"reviews"`
	Profile         *models.Profile         `json:"profile,omitempty"`
	LatestFeedback  string                  `json:"latestFeedback"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Authenticate(ctx context.Context, req *LoginRequest) (*models.Session, error)
	CurrentSession(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
}

type MemberService interface {
	List(ctx context.Context) ([]MemberResponse, error)
	Create(ctx context.Context, req *CreateMemberRequest) (*MemberResponse, error)
	Remove(ctx context.Context, id string, session *models.Session) error
}

type TaskService interface {
	Board(ctx context.Context) (*TaskBoardResponse, error)
	Create(ctx context.Context, req *CreateTaskRequest) (*models.Task, error)
	UpdateStatus(ctx context.Context, id string, req *UpdateTaskStatusRequest) error
}

type OnboardingService interface {
	List(ctx context.Context) ([]models.OnboardingRecord, error)
	Upsert(ctx context.Context, req *UpsertOnboardingRequest) (*models.OnboardingRecord, error)
	Checklist(ctx context.Context, employeeEmail string) (*models.OnboardingRecord, error)
	ToggleChecklistItem(ctx context.Context, employeeEmail, key string) error
}

type TrainingService interface {
	Modules(ctx context.Context) ([]models.TrainingModule, error)
	CreateModule(ctx context.Context, req *CreateModuleRequest, trainerEmail string) (*models.TrainingModule, error)
	MarkModuleCompleted(ctx context.Context, moduleID, employeeEmail string) error
	SubmitAssignment(ctx context.Context, moduleID, employeeEmail string, req *SubmitAssignmentRequest) error

	CreateQuiz(ctx context.Context, req *CreateQuizRequest, trainerEmail string) (*models.Quiz, error)
	AttemptQuiz(ctx context.Context, quizID, employeeEmail string, req *AttemptQuizRequest) (*models.QuizAttempt, error)

	SubmitReview(ctx context.Context, req *SubmitReviewRequest, trainerEmail string) (*models.WeeklyReview, error)

	Profile(ctx context.Context, email string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, email string, req *UpdateProfileRequest) (*models.Profile, error)
}

type DashboardService interface {
	AdminDashboard(ctx context.Context) (*AdminDashboardResponse, error)
	Attendance(ctx context.Context) (*AttendanceResponse, error)
	TrainerDashboard(ctx context.Context, trainerEmail string) (*TrainerDashboardResponse, error)
	TrainerReviews(ctx context.Context, trainerEmail string) (*TrainerReviewsResponse, error)
	EmployeeDashboard(ctx context.Context, employeeEmail string) (*EmployeeDashboardResponse, error)
	EmployeeCalendar(ctx context.Context, employeeEmail string) (*EmployeeCalendarResponse, error)
}

type ReportService interface {
	// AttendanceWorkbook renders the attendance analytics as an xlsx
	// document.
	AttendanceWorkbook(ctx context.Context) ([]byte, error)
}

type NotificationService interface {
	Recent(ctx context.Context) []events.Event
}
