package repositories

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup by id or email misses.
var ErrNotFound = errors.New("record not found")

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Repository aggregates the per-entity repositories over the slot store.
type Repository interface {
	User() UserRepository
	Task() TaskRepository
	Onboarding() OnboardingRepository
	Module() ModuleRepository
	Quiz() QuizRepository
	Attempt() AttemptRepository
	Review() ReviewRepository
	Profile() ProfileRepository
	Session() SessionRepository

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle: seeding the backing store
// on first run and tearing down connections on shutdown.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
