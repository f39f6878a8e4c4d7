package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/EMS-F-2026/onboarding-service/internal/metrics"
	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
)

type dashboardService struct {
	repo   repositories.Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewDashboardService(repo repositories.Repository, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *dashboardService) AdminDashboard(ctx context.Context) (*AdminDashboardResponse, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	records, err := s.repo.Onboarding().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding records: %w", err)
	}
	modules, err := s.repo.Module().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	attempts, err := s.repo.Attempt().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	reviews, err := s.repo.Review().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	employees := 0
	for _, user := range users {
		if user.Role == models.RoleEmployee {
			employees++
		}
	}

	return &AdminDashboardResponse{
		TotalEmployees:    employees,
		ActivePrograms:    len(records),
		CompletionRate:    metrics.CompletionRate(modules),
		Underperforming:   metrics.UnderperformingCount(reviews, attempts),
		OnboardingRecords: records,
		Modules:           modules,
	}, nil
}

func (s *dashboardService) Attendance(ctx context.Context) (*AttendanceResponse, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	modules, err := s.repo.Module().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	attempts, err := s.repo.Attempt().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	reviews, err := s.repo.Review().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	rows := make([]metrics.AttendanceRow, 0)
	for _, user := range users {
		if user.Role != models.RoleEmployee {
			continue
		}
		rows = append(rows, metrics.ComputeAttendance(user, modules, attempts, reviews))
	}

	return &AttendanceResponse{
		Overview: metrics.SummarizeAttendance(rows),
		Rows:     rows,
	}, nil
}

func (s *dashboardService) TrainerDashboard(ctx context.Context, trainerEmail string) (*TrainerDashboardResponse, error) {
	email := models.NormalizeEmail(trainerEmail)

	records, err := s.repo.Onboarding().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding records: %w", err)
	}
	quizzes, err := s.repo.Quiz().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	attempts, err := s.repo.Attempt().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	reviews, err := s.repo.Review().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	trainees := make([]string, 0)
	seen := make(map[string]struct{})
	for _, record := range records {
		if record.TrainerEmail != email {
			continue
		}
		if _, dup := seen[record.EmployeeEmail]; dup {
			continue
		}
		seen[record.EmployeeEmail] = struct{}{}
		trainees = append(trainees, record.EmployeeEmail)
	}

	week := metrics.WeekKey(s.now())

	return &TrainerDashboardResponse{
		AssignedTrainees: trainees,
		AverageScore:     metrics.TrainerAverageScore(email, quizzes, attempts),
		CurrentWeek:      week,
		PendingReviews:   metrics.PendingReviews(email, week, records, reviews),
		Reviews:          metrics.SummarizeTrainerReviews(email, reviews),
	}, nil
}

func (s *dashboardService) TrainerReviews(ctx context.Context, trainerEmail string) (*TrainerReviewsResponse, error) {
	email := models.NormalizeEmail(trainerEmail)

	reviews, err := s.repo.Review().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	authored := make([]models.WeeklyReview, 0)
	for _, review := range reviews {
		if review.TrainerEmail == email {
			authored = append(authored, review)
		}
	}

	return &TrainerReviewsResponse{
		Stats:   metrics.SummarizeTrainerReviews(email, reviews),
		Reviews: authored,
	}, nil
}

func (s *dashboardService) EmployeeDashboard(ctx context.Context, employeeEmail string) (*EmployeeDashboardResponse, error) {
	email := models.NormalizeEmail(employeeEmail)

	modules, err := s.repo.Module().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	quizzes, err := s.repo.Quiz().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	attempts, err := s.repo.Attempt().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	reviews, err := s.repo.Review().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	assignedModules := make([]models.TrainingModule, 0)
	for _, module := range modules {
		if module.Assignee == email {
			assignedModules = append(assignedModules, module)
		}
	}

	assignedQuizzes := make([]models.Quiz, 0)
	for _, quiz := range quizzes {
		if quiz.Assignee == email {
			assignedQuizzes = append(assignedQuizzes, quiz)
		}
	}

	ownAttempts := make([]models.QuizAttempt, 0)
	for _, attempt := range attempts {
		if attempt.EmployeeEmail == email {
			ownAttempts = append(ownAttempts, attempt)
		}
	}

	ownReviews := make([]models.WeeklyReview, 0)
	for _, review := range reviews {
		if review.EmployeeEmail == email {
			ownReviews = append(ownReviews, review)
		}
	}

	profile, err := s.repo.Profile().GetByEmail(ctx, email)
	if err != nil && !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &EmployeeDashboardResponse{
		Progress:        metrics.CourseProgress(email, modules),
		AssignedModules: assignedModules,
		AssignedQuizzes: assignedQuizzes,
		Attempts:        ownAttempts,
		Reviews:         ownReviews,
		Profile:         profile,
		LatestFeedback:  latestFeedback(ownAttempts, ownReviews),
	}, nil
}

// EmployeeCalendar collects the onboarding summary and the deadlines of the
// employee's assigned modules. NextDeadline is the earliest deadline date,
// "N/A" when nothing is assigned.
func (s *dashboardService) EmployeeCalendar(ctx context.Context, employeeEmail string) (*EmployeeCalendarResponse, error) {
	email := models.NormalizeEmail(employeeEmail)

	modules, err := s.repo.Module().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	deadlines := make([]ModuleDeadline, 0)
	next := ""
	for _, module := range modules {
		if module.Assignee != email {
			continue
		}
		deadlines = append(deadlines, ModuleDeadline{
			ModuleID: module.ID,
			Title:    module.Title,
			Deadline: module.Deadline,
		})
		// Deadlines are YYYY-MM-DD, so lexical order is date order.
		if next == "" || module.Deadline < next {
			next = module.Deadline
		}
	}
	if next == "" {
		next = "N/A"
	}

	onboarding, err := s.repo.Onboarding().GetByEmployee(ctx, email)
	if err != nil && !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to get onboarding record: %w", err)
	}

	return &EmployeeCalendarResponse{
		Onboarding:      onboarding,
		ModuleDeadlines: deadlines,
		NextDeadline:    next,
	}, nil
}

// latestFeedback prefers the newest review's comments, then the newest
// attempt's feedback string, then a fixed placeholder. Collections are
// newest-first, so the head is the latest entry.
func latestFeedback(attempts []models.QuizAttempt, reviews []models.WeeklyReview) string {
	if len(reviews) > 0 && reviews[0].Comments != "" {
		return reviews[0].Comments
	}
	if len(attempts) > 0 && attempts[0].Feedback != "" {
		return attempts[0].Feedback
	}
	return "No feedback yet."
}
