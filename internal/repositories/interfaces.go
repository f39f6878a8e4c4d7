package repositories

import (
	"context"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
)

// Entity repositories over the persisted JSON collections. Every mutator
// reads the full collection, computes the next one and replaces the slot in a
// single write. String fields holding emails are normalized by the caller
// before they reach this layer.

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

type TaskRepository interface {
	List(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	UpdateStatus(ctx context.Context, id string, status models.TaskStatus) error
}

type OnboardingRepository interface {
	List(ctx context.Context) ([]models.OnboardingRecord, error)
	GetByEmployee(ctx context.Context, email string) (*models.OnboardingRecord, error)
	// Upsert is keyed on employee email; an existing record keeps its id and
	// checklist state.
	Upsert(ctx context.Context, record *models.OnboardingRecord) error
	ToggleChecklistItem(ctx context.Context, email, key string) error
}

type ModuleRepository interface {
	List(ctx context.Context) ([]models.TrainingModule, error)
	GetByID(ctx context.Context, id string) (*models.TrainingModule, error)
	Create(ctx context.Context, module *models.TrainingModule) error
	// MarkCompleted is idempotent: adding an email already in the completion
	// set is a no-op.
	MarkCompleted(ctx context.Context, id, email string) error
	// SubmitAssignment is last-write-wins per employee email.
	SubmitAssignment(ctx context.Context, id, email, link string) error
}

type QuizRepository interface {
	List(ctx context.Context) ([]models.Quiz, error)
	GetByID(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
}

type AttemptRepository interface {
	List(ctx context.Context) ([]models.QuizAttempt, error)
	// Create always appends; duplicate attempts per employee/quiz are allowed.
	Create(ctx context.Context, attempt *models.QuizAttempt) error
}

type ReviewRepository interface {
	List(ctx context.Context) ([]models.WeeklyReview, error)
	Create(ctx context.Context, review *models.WeeklyReview) error
}

type ProfileRepository interface {
	List(ctx context.Context) ([]models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}

// SessionRepository holds the single authenticated-identity slot. Get returns
// nil with no error when unauthenticated; Clear is idempotent.
type SessionRepository interface {
	Get(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
}
