// Package metrics computes the dashboard aggregates. Every function is pure:
// it takes repository snapshots and returns view-ready numbers without
// touching state.
package metrics

import (
	"math"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
)

// Attendance composite weighting. Fixed policy constants, not derived.
const (
	weightModules = 0.45
	weightQuizzes = 0.35
	weightReviews = 0.20
)

// Attendance status thresholds.
const (
	attendanceExcellent = 85
	attendanceGood      = 65
)

const (
	StatusExcellent      = "Excellent"
	StatusGood           = "Good"
	StatusNeedsAttention = "Needs Attention"
)

// Fixed feedback strings chosen by attempt outcome.
const (
	FeedbackPassed = "Good job. Keep improving consistency."
	FeedbackFailed = "Needs improvement. Revisit module materials and retry."
)

// ClampPercent rounds and clamps to the [0,100] band.
func ClampPercent(value float64) int {
	rounded := int(math.Round(value))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// CompletionRate is the global module completion rate: total completion-set
// entries over module count, as a rounded percentage. Defined as 0 with no
// modules.
func CompletionRate(modules []models.TrainingModule) int {
	if len(modules) == 0 {
		return 0
	}
	completed := 0
	for _, m := range modules {
		completed += len(m.CompletedBy)
	}
	return int(math.Round(float64(completed) / float64(len(modules)) * 100))
}

// UnderperformingCount is the size of the union of employees with a review
// rated 2 or lower and employees with a failed quiz attempt.
func UnderperformingCount(reviews []models.WeeklyReview, attempts []models.QuizAttempt) int {
	set := make(map[string]struct{})
	for _, review := range reviews {
		if review.Rating <= 2 {
			set[review.EmployeeEmail] = struct{}{}
		}
	}
	for _, attempt := range attempts {
		if !attempt.Passed {
			set[attempt.EmployeeEmail] = struct{}{}
		}
	}
	return len(set)
}

// AttendanceRow is the per-employee attendance breakdown.
type AttendanceRow struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	ModulePercent int    `json:"modulePercent"`
	PassPercent   int    `json:"passPercent"`
	ReviewSignal  int    `json:"reviewSignal"`
	Attendance    int    `json:"attendance"`
	Status        string `json:"status"`
}

// ComputeAttendance blends module completion, quiz pass rate and the review
// rating signal into the composite attendance score for one employee.
func ComputeAttendance(
	employee models.User,
	modules []models.TrainingModule,
	attempts []models.QuizAttempt,
	reviews []models.WeeklyReview,
) AttendanceRow {
	modulePercent := modulePercent(employee.Email, modules)
	passPercent := quizPassPercent(employee.Email, attempts)
	reviewSignal := reviewSignal(employee.Email, reviews)

	attendance := ClampPercent(modulePercent*weightModules + passPercent*weightQuizzes + reviewSignal*weightReviews)

	status := StatusNeedsAttention
	switch {
	case attendance >= attendanceExcellent:
		status = StatusExcellent
	case attendance >= attendanceGood:
		status = StatusGood
	}

	return AttendanceRow{
		Email:         employee.Email,
		Name:          employee.Name,
		ModulePercent: ClampPercent(modulePercent),
		PassPercent:   ClampPercent(passPercent),
		ReviewSignal:  ClampPercent(reviewSignal),
		Attendance:    attendance,
		Status:        status,
	}
}

func modulePercent(email string, modules []models.TrainingModule) float64 {
	assigned, completed := 0, 0
	for _, m := range modules {
		if m.Assignee != email {
			continue
		}
		assigned++
		if m.CompletedByEmail(email) {
			completed++
		}
	}
	if assigned == 0 {
		return 0
	}
	return float64(completed) / float64(assigned) * 100
}

func quizPassPercent(email string, attempts []models.QuizAttempt) float64 {
	total, passed := 0, 0
	for _, a := range attempts {
		if a.EmployeeEmail != email {
			continue
		}
		total++
		if a.Passed {
			passed++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(passed) / float64(total) * 100
}

// reviewSignal scales the 1-5 average rating into the 0-100 band.
func reviewSignal(email string, reviews []models.WeeklyReview) float64 {
	total, sum := 0, 0
	for _, r := range reviews {
		if r.EmployeeEmail != email {
			continue
		}
		total++
		sum += r.Rating
	}
	if total == 0 {
		return 0
	}
	return float64(sum) / float64(total) * 20
}

// AttendanceOverview summarizes all attendance rows for the analytics page.
type AttendanceOverview struct {
	AverageAttendance int `json:"averageAttendance"`
	ExcellentCount    int `json:"excellentCount"`
	RiskCount         int `json:"riskCount"`
}

func SummarizeAttendance(rows []AttendanceRow) AttendanceOverview {
	if len(rows) == 0 {
		return AttendanceOverview{}
	}
	sum, excellent, risk := 0, 0, 0
	for _, row := range rows {
		sum += row.Attendance
		if row.Attendance >= attendanceExcellent {
			excellent++
		}
		if row.Attendance < attendanceGood {
			risk++
		}
	}
	return AttendanceOverview{
		AverageAttendance: ClampPercent(float64(sum) / float64(len(rows))),
		ExcellentCount:    excellent,
		RiskCount:         risk,
	}
}

// CourseProgress is the employee's completed-over-assigned module percentage,
// 0 with no assigned modules.
func CourseProgress(email string, modules []models.TrainingModule) int {
	return int(math.Round(modulePercent(email, modules)))
}

// EvaluateAttempt applies the pass rule and picks the feedback string. A
// non-finite score is rejected.
func EvaluateAttempt(quiz *models.Quiz, score float64) (passed bool, feedback string, ok bool) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return false, "", false
	}
	passed = score >= float64(quiz.PassingScore)
	if passed {
		return true, FeedbackPassed, true
	}
	return false, FeedbackFailed, true
}

// PendingReviews returns the trainees assigned to a trainer (via onboarding
// records) minus those the trainer already reviewed for the given week key,
// in first-assigned order.
func PendingReviews(
	trainerEmail, week string,
	records []models.OnboardingRecord,
	reviews []models.WeeklyReview,
) []string {
	reviewed := make(map[string]struct{})
	for _, review := range reviews {
		if review.TrainerEmail == trainerEmail && review.Week == week {
			reviewed[review.EmployeeEmail] = struct{}{}
		}
	}

	pending := make([]string, 0)
	seen := make(map[string]struct{})
	for _, record := range records {
		if record.TrainerEmail != trainerEmail {
			continue
		}
		if _, dup := seen[record.EmployeeEmail]; dup {
			continue
		}
		seen[record.EmployeeEmail] = struct{}{}
		if _, done := reviewed[record.EmployeeEmail]; !done {
			pending = append(pending, record.EmployeeEmail)
		}
	}
	return pending
}

// TrainerAverageScore averages scores across attempts against the trainer's
// quizzes, rounded, 0 with no attempts.
func TrainerAverageScore(trainerEmail string, quizzes []models.Quiz, attempts []models.QuizAttempt) int {
	owned := make(map[string]struct{})
	for _, quiz := range quizzes {
		if quiz.TrainerEmail == trainerEmail {
			owned[quiz.ID] = struct{}{}
		}
	}

	total, sum := 0, 0.0
	for _, attempt := range attempts {
		if _, ok := owned[attempt.QuizID]; !ok {
			continue
		}
		total++
		sum += attempt.Score
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(sum / float64(total)))
}

// ReviewStats summarizes reviews authored by one trainer.
type ReviewStats struct {
	Total           int     `json:"total"`
	AverageRating   float64 `json:"averageRating"`
	LowRatingCount  int     `json:"lowRatingCount"`
	HighRatingCount int     `json:"highRatingCount"`
}

func SummarizeTrainerReviews(trainerEmail string, reviews []models.WeeklyReview) ReviewStats {
	stats := ReviewStats{}
	sum := 0
	for _, review := range reviews {
		if review.TrainerEmail != trainerEmail {
			continue
		}
		stats.Total++
		sum += review.Rating
		if review.Rating <= 2 {
			stats.LowRatingCount++
		}
		if review.Rating >= 4 {
			stats.HighRatingCount++
		}
	}
	if stats.Total > 0 {
		// One decimal place, matching the trainer reviews page.
		stats.AverageRating = math.Round(float64(sum)/float64(stats.Total)*10) / 10
	}
	return stats
}

// TaskStats counts tasks per status for the task board.
type TaskStats struct {
	New       int `json:"new"`
	Accepted  int `json:"accepted"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

func CountTasks(tasks []models.Task) TaskStats {
	stats := TaskStats{}
	for _, task := range tasks {
		switch task.Status {
		case models.TaskNew:
			stats.New++
		case models.TaskAccepted:
			stats.Accepted++
		case models.TaskCompleted:
			stats.Completed++
		case models.TaskFailed:
			stats.Failed++
		}
	}
	return stats
}
