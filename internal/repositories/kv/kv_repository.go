package kv

import (
	"context"
	"fmt"

	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/store"
)

// KVRepository implements the aggregate Repository interface over the slot
// store.
type KVRepository struct {
	store store.Store

	user       repositories.UserRepository
	task       repositories.TaskRepository
	onboarding repositories.OnboardingRepository
	module     repositories.ModuleRepository
	quiz       repositories.QuizRepository
	attempt    repositories.AttemptRepository
	review     repositories.ReviewRepository
	profile    repositories.ProfileRepository
	session    repositories.SessionRepository
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	Store store.Store
}

func NewKVRepository(config RepositoryConfig) repositories.Repository {
	return &KVRepository{
		store:      config.Store,
		user:       NewUserKV(config.Store),
		task:       NewTaskKV(config.Store),
		onboarding: NewOnboardingKV(config.Store),
		module:     NewModuleKV(config.Store),
		quiz:       NewQuizKV(config.Store),
		attempt:    NewAttemptKV(config.Store),
		review:     NewReviewKV(config.Store),
		profile:    NewProfileKV(config.Store),
		session:    NewSessionKV(config.Store),
	}
}

func (r *KVRepository) User() repositories.UserRepository             { return r.user }
func (r *KVRepository) Task() repositories.TaskRepository             { return r.task }
func (r *KVRepository) Onboarding() repositories.OnboardingRepository { return r.onboarding }
func (r *KVRepository) Module() repositories.ModuleRepository         { return r.module }
func (r *KVRepository) Quiz() repositories.QuizRepository             { return r.quiz }
func (r *KVRepository) Attempt() repositories.AttemptRepository       { return r.attempt }
func (r *KVRepository) Review() repositories.ReviewRepository         { return r.review }
func (r *KVRepository) Profile() repositories.ProfileRepository       { return r.profile }
func (r *KVRepository) Session() repositories.SessionRepository       { return r.session }

func (r *KVRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *KVRepository) Close() error {
	return r.store.Close()
}

// Manager wires repository lifecycle: Initialize seeds the store on first
// run, Shutdown closes the backend.
type Manager struct {
	store store.Store
	repo  repositories.Repository
}

func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &Manager{
		store: config.Store,
		repo:  NewKVRepository(config),
	}
}

func (m *Manager) Initialize() error {
	if err := store.Initialize(context.Background(), m.store); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}
	return nil
}

func (m *Manager) GetRepository() repositories.Repository {
	return m.repo
}

func (m *Manager) HealthCheck(ctx context.Context) error {
	return m.store.Ping(ctx)
}

func (m *Manager) Shutdown(_ context.Context) error {
	return m.store.Close()
}
