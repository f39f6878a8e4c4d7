package services

import (
	"context"
	"testing"
	"time"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
)

func newTestDashboardService(t *testing.T, at time.Time) (*dashboardService, repositories.Repository) {
	t.Helper()
	repo := newTestRepository(t)
	svc := &dashboardService{
		repo:   repo,
		logger: testLogger(),
		now:    func() time.Time { return at },
	}
	return svc, repo
}

func TestAdminDashboard(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDashboardService(t, time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC))

	dashboard, err := svc.AdminDashboard(ctx)
	if err != nil {
		t.Fatalf("AdminDashboard: %v", err)
	}
	if dashboard.TotalEmployees != 1 {
		t.Errorf("TotalEmployees = %d, want 1", dashboard.TotalEmployees)
	}
	if dashboard.ActivePrograms != 1 {
		t.Errorf("ActivePrograms = %d, want 1", dashboard.ActivePrograms)
	}
	// One module, nobody completed it yet.
	if dashboard.CompletionRate != 0 {
		t.Errorf("CompletionRate = %d, want 0", dashboard.CompletionRate)
	}
	// Seeded review is rating 3 and the attempt passed.
	if dashboard.Underperforming != 0 {
		t.Errorf("Underperforming = %d, want 0", dashboard.Underperforming)
	}
}

func TestAttendanceReport(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDashboardService(t, time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC))

	report, err := svc.Attendance(ctx)
	if err != nil {
		t.Fatalf("Attendance: %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("rows = %d, want 1 employee", len(report.Rows))
	}

	row := report.Rows[0]
	if row.Email != "gourav@employee.com" {
		t.Errorf("row email = %q", row.Email)
	}
	// Modules 0%, quiz pass 100%, review rating 3 -> 60.
	// 0*0.45 + 100*0.35 + 60*0.20 = 47.
	if row.Attendance != 47 {
		t.Errorf("Attendance = %d, want 47", row.Attendance)
	}
	if row.Status != "Needs Attention" {
		t.Errorf("Status = %q", row.Status)
	}
	if report.Overview.AverageAttendance != 47 {
		t.Errorf("AverageAttendance = %d, want 47", report.Overview.AverageAttendance)
	}
	if report.Overview.RiskCount != 1 {
		t.Errorf("RiskCount = %d, want 1", report.Overview.RiskCount)
	}
}

func TestTrainerDashboard(t *testing.T) {
	ctx := context.Background()
	// 2026-02-20 falls in week key 2026-W08, which the seeded review covers.
	svc, repo := newTestDashboardService(t, time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC))

	dashboard, err := svc.TrainerDashboard(ctx, "gourav@trainer.com")
	if err != nil {
		t.Fatalf("TrainerDashboard: %v", err)
	}
	if dashboard.CurrentWeek != "2026-W08" {
		t.Errorf("CurrentWeek = %q, want 2026-W08", dashboard.CurrentWeek)
	}
	if len(dashboard.AssignedTrainees) != 1 || dashboard.AssignedTrainees[0] != "gourav@employee.com" {
		t.Errorf("AssignedTrainees = %v", dashboard.AssignedTrainees)
	}
	if dashboard.AverageScore != 72 {
		t.Errorf("AverageScore = %d, want 72", dashboard.AverageScore)
	}
	// The only trainee is already reviewed for the current week.
	if len(dashboard.PendingReviews) != 0 {
		t.Errorf("PendingReviews = %v, want empty", dashboard.PendingReviews)
	}

	// A second trainee without a review this week becomes pending.
	if err := repo.Onboarding().Upsert(ctx, &models.OnboardingRecord{
		ID:            "ob-2",
		EmployeeEmail: "neha@employee.com",
		TrainerEmail:  "gourav@trainer.com",
		Checklist:     models.DefaultChecklist(),
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	dashboard, err = svc.TrainerDashboard(ctx, "gourav@trainer.com")
	if err != nil {
		t.Fatalf("TrainerDashboard: %v", err)
	}
	if len(dashboard.PendingReviews) != 1 || dashboard.PendingReviews[0] != "neha@employee.com" {
		t.Errorf("PendingReviews = %v, want [neha@employee.com]", dashboard.PendingReviews)
	}
}

func TestTrainerReviews(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDashboardService(t, time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC))

	reviews, err := svc.TrainerReviews(ctx, "gourav@trainer.com")
	if err != nil {
		t.Fatalf("TrainerReviews: %v", err)
	}
	if reviews.Stats.Total != 1 || reviews.Stats.AverageRating != 3 {
		t.Errorf("Stats = %+v", reviews.Stats)
	}
	if len(reviews.Reviews) != 1 || reviews.Reviews[0].ID != "r-1" {
		t.Errorf("Reviews = %+v", reviews.Reviews)
	}

	// Foreign trainer sees nothing.
	empty, err := svc.TrainerReviews(ctx, "other@trainer.com")
	if err != nil {
		t.Fatalf("TrainerReviews: %v", err)
	}
	if empty.Stats.Total != 0 || len(empty.Reviews) != 0 {
		t.Errorf("foreign trainer reviews = %+v", empty)
	}
}

func TestEmployeeDashboard(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestDashboardService(t, time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC))

	dashboard, err := svc.EmployeeDashboard(ctx, "gourav@employee.com")
	if err != nil {
		t.Fatalf("EmployeeDashboard: %v", err)
	}
	if dashboard.Progress != 0 {
		t.Errorf("Progress = %d, want 0", dashboard.Progress)
	}
	if len(dashboard.AssignedModules) != 1 || len(dashboard.AssignedQuizzes) != 1 {
		t.Errorf("assignments = %d modules, %d quizzes", len(dashboard.AssignedModules), len(dashboard.AssignedQuizzes))
	}
	if dashboard.Profile == nil {
		t.Errorf("Profile = nil, want seeded profile")
	}
	// The seeded review outranks the seeded attempt's feedback.
	if dashboard.LatestFeedback != "Consistent progress with minor delays." {
		t.Errorf("LatestFeedback = %q", dashboard.LatestFeedback)
	}

	if err := repo.Module().MarkCompleted(ctx, "m-1", "gourav@employee.com"); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}
	dashboard, err = svc.EmployeeDashboard(ctx, "gourav@employee.com")
	if err != nil {
		t.Fatalf("EmployeeDashboard: %v", err)
	}
	if dashboard.Progress != 100 {
		t.Errorf("Progress = %d, want 100 after completion", dashboard.Progress)
	}
}

func TestEmployeeCalendar(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestDashboardService(t, time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC))

	calendar, err := svc.EmployeeCalendar(ctx, "gourav@employee.com")
	if err != nil {
		t.Fatalf("EmployeeCalendar: %v", err)
	}
	if calendar.Onboarding == nil || calendar.Onboarding.ID != "ob-1" {
		t.Errorf("Onboarding = %+v, want seeded record", calendar.Onboarding)
	}
	if len(calendar.ModuleDeadlines) != 1 {
		t.Fatalf("ModuleDeadlines = %d, want 1", len(calendar.ModuleDeadlines))
	}
	if calendar.NextDeadline != "2026-03-01" {
		t.Errorf("NextDeadline = %q, want 2026-03-01", calendar.NextDeadline)
	}

	if err := repo.Module().Create(ctx, &models.TrainingModule{
		ID:           "m-2",
		Title:        "Color Theory",
		Material:     "https://example.com/color-theory.pdf",
		MaterialType: models.MaterialPDF,
		Deadline:     "2026-02-25",
		Assignee:     "gourav@employee.com",
		TrainerEmail: "gourav@trainer.com",
		CompletedBy:  []string{},
		Submissions:  map[string]string{},
	}); err != nil {
		t.Fatalf("Create module: %v", err)
	}

	calendar, err = svc.EmployeeCalendar(ctx, "gourav@employee.com")
	if err != nil {
		t.Fatalf("EmployeeCalendar: %v", err)
	}
	if len(calendar.ModuleDeadlines) != 2 {
		t.Errorf("ModuleDeadlines = %d, want 2", len(calendar.ModuleDeadlines))
	}
	if calendar.NextDeadline != "2026-02-25" {
		t.Errorf("NextDeadline = %q, want earliest deadline", calendar.NextDeadline)
	}
}

func TestEmployeeCalendarNoAssignments(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDashboardService(t, time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC))

	calendar, err := svc.EmployeeCalendar(ctx, "fresh@employee.com")
	if err != nil {
		t.Fatalf("EmployeeCalendar: %v", err)
	}
	if calendar.Onboarding != nil {
		t.Errorf("Onboarding = %+v, want nil", calendar.Onboarding)
	}
	if len(calendar.ModuleDeadlines) != 0 {
		t.Errorf("ModuleDeadlines = %d, want 0", len(calendar.ModuleDeadlines))
	}
	if calendar.NextDeadline != "N/A" {
		t.Errorf("NextDeadline = %q, want N/A", calendar.NextDeadline)
	}
}

func TestEmployeeDashboardFeedbackFallback(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDashboardService(t, time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC))

	// A fresh trainee with no attempts or reviews gets the placeholder.
	dashboard, err := svc.EmployeeDashboard(ctx, "fresh@employee.com")
	if err != nil {
		t.Fatalf("EmployeeDashboard: %v", err)
	}
	if dashboard.LatestFeedback != "No feedback yet." {
		t.Errorf("LatestFeedback = %q, want placeholder", dashboard.LatestFeedback)
	}
	if dashboard.Profile != nil {
		t.Errorf("Profile = %+v, want nil", dashboard.Profile)
	}
}
