package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/EMS-F-2026/onboarding-service/internal/events"
	"github.com/EMS-F-2026/onboarding-service/internal/metrics"
	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/validator"
)

type trainingService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
	now       func() time.Time
}

func NewTrainingService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) TrainingService {
	return &trainingService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *trainingService) today() string {
	return s.now().UTC().Format("2006-01-02")
}

func (s *trainingService) Modules(ctx context.Context) ([]models.TrainingModule, error) {
	modules, err := s.repo.Module().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	return modules, nil
}

func (s *trainingService) CreateModule(ctx context.Context, req *CreateModuleRequest, trainerEmail string) (*models.TrainingModule, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	module := &models.TrainingModule{
		ID:           newID("m"),
		Title:        strings.TrimSpace(req.Title),
		Material:     strings.TrimSpace(req.Material),
		MaterialType: models.MaterialType(req.MaterialType),
		Deadline:     req.Deadline,
		QuizID:       req.QuizID,
		Assignee:     models.NormalizeEmail(req.Assignee),
		TrainerEmail: models.NormalizeEmail(trainerEmail),
		CompletedBy:  []string{},
		Submissions:  map[string]string{},
	}
	if err := s.repo.Module().Create(ctx, module); err != nil {
		return nil, fmt.Errorf("failed to create module: %w", err)
	}

	s.logger.Info("Module created", "module_id", module.ID, "assignee", module.Assignee)
	s.publish(ctx, events.Event{
		Type:    events.EventModuleCreated,
		Actor:   module.TrainerEmail,
		Subject: module.Assignee,
		Message: fmt.Sprintf("New training module: %s", module.Title),
	})
	return module, nil
}

func (s *trainingService) MarkModuleCompleted(ctx context.Context, moduleID, employeeEmail string) error {
	email := models.NormalizeEmail(employeeEmail)
	err := s.repo.Module().MarkCompleted(ctx, moduleID, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrModuleNotFound
		}
		return fmt.Errorf("failed to mark module completed: %w", err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventModuleCompleted,
		Actor:   email,
		Subject: moduleID,
		Message: "Module marked as completed",
	})
	return nil
}

func (s *trainingService) SubmitAssignment(ctx context.Context, moduleID, employeeEmail string, req *SubmitAssignmentRequest) error {
	if verrs := s.validator.Validate(req); verrs != nil {
		return verrs
	}

	email := models.NormalizeEmail(employeeEmail)
	err := s.repo.Module().SubmitAssignment(ctx, moduleID, email, strings.TrimSpace(req.Link))
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrModuleNotFound
		}
		return fmt.Errorf("failed to submit assignment: %w", err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventAssignmentReceived,
		Actor:   email,
		Subject: moduleID,
		Message: "Assignment submitted",
	})
	return nil
}

func (s *trainingService) CreateQuiz(ctx context.Context, req *CreateQuizRequest, trainerEmail string) (*models.Quiz, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	quiz := &models.Quiz{
		ID:           newID("q"),
		Title:        strings.TrimSpace(req.Title),
		Assignee:     models.NormalizeEmail(req.Assignee),
		TrainerEmail: models.NormalizeEmail(trainerEmail),
		TimeLimit:    req.TimeLimit,
		PassingScore: req.PassingScore,
		TotalMarks:   req.TotalMarks,
		Questions:    req.Questions,
	}
	if err := s.repo.Quiz().Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	s.logger.Info("Quiz created", "quiz_id", quiz.ID, "assignee", quiz.Assignee)
	s.publish(ctx, events.Event{
		Type:    events.EventQuizCreated,
		Actor:   quiz.TrainerEmail,
		Subject: quiz.Assignee,
		Message: fmt.Sprintf("New quiz: %s", quiz.Title),
	})
	return quiz, nil
}

func (s *trainingService) AttemptQuiz(ctx context.Context, quizID, employeeEmail string, req *AttemptQuizRequest) (*models.QuizAttempt, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	quiz, err := s.repo.Quiz().GetByID(ctx, quizID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	score := *req.Score
	passed, feedback, ok := metrics.EvaluateAttempt(quiz, score)
	if !ok {
		return nil, ErrInvalidScore
	}
	if score < 0 || score > float64(quiz.TotalMarks) {
		return nil, ErrScoreOutOfRange
	}

	attempt := &models.QuizAttempt{
		ID:            newID("a"),
		QuizID:        quiz.ID,
		EmployeeEmail: models.NormalizeEmail(employeeEmail),
		Score:         score,
		Passed:        passed,
		Feedback:      feedback,
		Date:          s.today(),
	}
	// Attempts always append; retries are permitted and never deduplicated.
	if err := s.repo.Attempt().Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	s.logger.Info("Quiz attempted",
		"quiz_id", quiz.ID,
		"employee", attempt.EmployeeEmail,
		"score", score,
		"passed", passed)
	s.publish(ctx, events.Event{
		Type:    events.EventQuizAttempted,
		Actor:   attempt.EmployeeEmail,
		Subject: quiz.ID,
		Message: fmt.Sprintf("Quiz %s attempted: %s", quiz.Title, feedback),
	})
	return attempt, nil
}

func (s *trainingService) SubmitReview(ctx context.Context, req *SubmitReviewRequest, trainerEmail string) (*models.WeeklyReview, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	review := &models.WeeklyReview{
		ID:               newID("r"),
		EmployeeEmail:    models.NormalizeEmail(req.EmployeeEmail),
		TrainerEmail:     models.NormalizeEmail(trainerEmail),
		Week:             strings.TrimSpace(req.Week),
		Rating:           req.Rating,
		Comments:         strings.TrimSpace(req.Comments),
		ImprovementAreas: strings.TrimSpace(req.ImprovementAreas),
		Date:             s.today(),
	}
	// Reviews always append; multiple reviews per employee/week remain.
	if err := s.repo.Review().Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to submit review: %w", err)
	}

	s.logger.Info("Weekly review submitted", "employee", review.EmployeeEmail, "week", review.Week)
	s.publish(ctx, events.Event{
		Type:    events.EventReviewSubmitted,
		Actor:   review.TrainerEmail,
		Subject: review.EmployeeEmail,
		Message: fmt.Sprintf("Weekly review for %s", review.Week),
	})
	return review, nil
}

func (s *trainingService) Profile(ctx context.Context, email string) (*models.Profile, error) {
	profile, err := s.repo.Profile().GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *trainingService) UpdateProfile(ctx context.Context, email string, req *UpdateProfileRequest) (*models.Profile, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	profile := &models.Profile{
		Email:    models.NormalizeEmail(email),
		Phone:    strings.TrimSpace(req.Phone),
		Location: strings.TrimSpace(req.Location),
		Bio:      strings.TrimSpace(req.Bio),
	}
	if err := s.repo.Profile().Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

func (s *trainingService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event", "type", event.Type, "error", err)
	}
}
