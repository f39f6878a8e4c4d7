package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/EMS-F-2026/onboarding-service/internal/events"
	"github.com/EMS-F-2026/onboarding-service/internal/metrics"
	"github.com/EMS-F-2026/onboarding-service/internal/validator"
)

func newTestTrainingService(t *testing.T) (TrainingService, *events.MockEventPublisher) {
	t.Helper()
	publisher := newMockPublisher()
	repo := newTestRepository(t)
	return NewTrainingService(repo, testLogger(), validator.New(), publisher), publisher
}

func TestAttemptQuizPassing(t *testing.T) {
	ctx := context.Background()
	svc, publisher := newTestTrainingService(t)

	score := 72.0
	attempt, err := svc.AttemptQuiz(ctx, "q-1", "gourav@employee.com", &AttemptQuizRequest{Score: &score})
	if err != nil {
		t.Fatalf("AttemptQuiz: %v", err)
	}
	if !attempt.Passed {
		t.Errorf("Passed = false, want true for 72 against passing score 60")
	}
	if attempt.Feedback != metrics.FeedbackPassed {
		t.Errorf("Feedback = %q, want %q", attempt.Feedback, metrics.FeedbackPassed)
	}

	if len(publisher.Events) != 1 || publisher.Events[0].Type != events.EventQuizAttempted {
		t.Errorf("events = %+v, want one quiz.attempted", publisher.Events)
	}
}

func TestAttemptQuizFailing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTrainingService(t)

	score := 40.0
	attempt, err := svc.AttemptQuiz(ctx, "q-1", "gourav@employee.com", &AttemptQuizRequest{Score: &score})
	if err != nil {
		t.Fatalf("AttemptQuiz: %v", err)
	}
	if attempt.Passed {
		t.Errorf("Passed = true, want false for 40 against passing score 60")
	}
	if attempt.Feedback != metrics.FeedbackFailed {
		t.Errorf("Feedback = %q, want %q", attempt.Feedback, metrics.FeedbackFailed)
	}
}

func TestAttemptQuizScoreOutOfRange(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTrainingService(t)

	tests := []struct {
		name  string
		score float64
	}{
		{name: "above total marks", score: 150},
		{name: "negative", score: -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := tt.score
			_, err := svc.AttemptQuiz(ctx, "q-1", "gourav@employee.com", &AttemptQuizRequest{Score: &score})
			if !errors.Is(err, ErrScoreOutOfRange) {
				t.Errorf("err = %v, want ErrScoreOutOfRange", err)
			}
		})
	}
}

func TestAttemptQuizUnknownQuiz(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTrainingService(t)

	score := 50.0
	_, err := svc.AttemptQuiz(ctx, "q-missing", "gourav@employee.com", &AttemptQuizRequest{Score: &score})
	if !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestCreateModuleAndComplete(t *testing.T) {
	ctx := context.Background()
	svc, publisher := newTestTrainingService(t)

	module, err := svc.CreateModule(ctx, &CreateModuleRequest{
		Title:        "Accessibility Basics",
		Material:     "https://example.com/a11y.pdf",
		MaterialType: "PDF",
		Deadline:     time.Now().UTC().AddDate(0, 0, 14).Format("2006-01-02"),
		Assignee:     "gourav@employee.com",
	}, "gourav@trainer.com")
	if err != nil {
		t.Fatalf("CreateModule: %v", err)
	}
	if module.TrainerEmail != "gourav@trainer.com" {
		t.Errorf("TrainerEmail = %q", module.TrainerEmail)
	}
	if module.CompletedBy == nil || module.Submissions == nil {
		t.Errorf("collections not initialized: %+v", module)
	}

	if err := svc.MarkModuleCompleted(ctx, module.ID, "gourav@employee.com"); err != nil {
		t.Fatalf("MarkModuleCompleted: %v", err)
	}
	// Completing again is a no-op, not an error.
	if err := svc.MarkModuleCompleted(ctx, module.ID, "gourav@employee.com"); err != nil {
		t.Fatalf("repeat MarkModuleCompleted: %v", err)
	}

	if err := svc.MarkModuleCompleted(ctx, "m-missing", "gourav@employee.com"); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("err = %v, want ErrModuleNotFound", err)
	}

	types := make([]events.EventType, 0, len(publisher.Events))
	for _, e := range publisher.Events {
		types = append(types, e.Type)
	}
	want := []events.EventType{events.EventModuleCreated, events.EventModuleCompleted, events.EventModuleCompleted}
	if len(types) != len(want) {
		t.Fatalf("event types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, types[i], want[i])
		}
	}
}

func TestSubmitAssignment(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTrainingService(t)

	if err := svc.SubmitAssignment(ctx, "m-1", "gourav@employee.com", &SubmitAssignmentRequest{
		Link: "https://example.com/work",
	}); err != nil {
		t.Fatalf("SubmitAssignment: %v", err)
	}

	if err := svc.SubmitAssignment(ctx, "m-missing", "gourav@employee.com", &SubmitAssignmentRequest{
		Link: "https://example.com/work",
	}); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("err = %v, want ErrModuleNotFound", err)
	}
}

func TestCreateQuiz(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTrainingService(t)

	quiz, err := svc.CreateQuiz(ctx, &CreateQuizRequest{
		Title:        "Layout Quiz",
		Assignee:     "gourav@employee.com",
		TimeLimit:    30,
		PassingScore: 50,
		TotalMarks:   80,
		Questions:    8,
	}, "gourav@trainer.com")
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	if quiz.ID == "" || quiz.TrainerEmail != "gourav@trainer.com" {
		t.Errorf("quiz = %+v", quiz)
	}
}

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()
	svc, publisher := newTestTrainingService(t)

	review, err := svc.SubmitReview(ctx, &SubmitReviewRequest{
		EmployeeEmail:    "gourav@employee.com",
		Week:             "2026-W09",
		Rating:           4,
		Comments:         "Strong improvement on delivery.",
		ImprovementAreas: "Documentation quality.",
	}, "gourav@trainer.com")
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}
	if review.TrainerEmail != "gourav@trainer.com" || review.Week != "2026-W09" {
		t.Errorf("review = %+v", review)
	}
	if review.Date == "" {
		t.Errorf("review date not stamped")
	}

	if len(publisher.Events) != 1 || publisher.Events[0].Type != events.EventReviewSubmitted {
		t.Errorf("events = %+v, want one review.submitted", publisher.Events)
	}
}

func TestProfileLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestTrainingService(t)

	profile, err := svc.Profile(ctx, "gourav@employee.com")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile == nil || profile.Location != "New Delhi" {
		t.Errorf("seeded profile = %+v", profile)
	}

	// Missing profile is nil, not an error.
	missing, err := svc.Profile(ctx, "nobody@employee.com")
	if err != nil {
		t.Fatalf("Profile missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing profile = %+v, want nil", missing)
	}

	updated, err := svc.UpdateProfile(ctx, "gourav@employee.com", &UpdateProfileRequest{
		Phone:    "8888888888",
		Location: "Bengaluru",
		Bio:      "Designing onboarding flows.",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Location != "Bengaluru" {
		t.Errorf("Location = %q", updated.Location)
	}
}
