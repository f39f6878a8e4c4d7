package kv

import (
	"context"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/store"
)

type QuizKV struct {
	store store.Store
}

func NewQuizKV(s store.Store) repositories.QuizRepository {
	return &QuizKV{store: s}
}

func (r *QuizKV) List(ctx context.Context) ([]models.Quiz, error) {
	return loadCollection[models.Quiz](ctx, r.store, store.SlotQuizzes)
}

func (r *QuizKV) GetByID(ctx context.Context, id string) (*models.Quiz, error) {
	quizzes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quizzes {
		if quizzes[i].ID == id {
			return &quizzes[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *QuizKV) Create(ctx context.Context, quiz *models.Quiz) error {
	quizzes, err := r.List(ctx)
	if err != nil {
		return err
	}
	return saveCollection(ctx, r.store, store.SlotQuizzes, prepend(quizzes, *quiz))
}

type AttemptKV struct {
	store store.Store
}

func NewAttemptKV(s store.Store) repositories.AttemptRepository {
	return &AttemptKV{store: s}
}

func (r *AttemptKV) List(ctx context.Context) ([]models.QuizAttempt, error) {
	return loadCollection[models.QuizAttempt](ctx, r.store, store.SlotAttempts)
}

func (r *AttemptKV) Create(ctx context.Context, attempt *models.QuizAttempt) error {
	attempts, err := r.List(ctx)
	if err != nil {
		return err
	}
	return saveCollection(ctx, r.store, store.SlotAttempts, prepend(attempts, *attempt))
}

type ReviewKV struct {
	store store.Store
}

func NewReviewKV(s store.Store) repositories.ReviewRepository {
	return &ReviewKV{store: s}
}

func (r *ReviewKV) List(ctx context.Context) ([]models.WeeklyReview, error) {
	return loadCollection[models.WeeklyReview](ctx, r.store, store.SlotReviews)
}

func (r *ReviewKV) Create(ctx context.Context, review *models.WeeklyReview) error {
	reviews, err := r.List(ctx)
	if err != nil {
		return err
	}
	return saveCollection(ctx, r.store, store.SlotReviews, prepend(reviews, *review))
}

type ProfileKV struct {
	store store.Store
}

func NewProfileKV(s store.Store) repositories.ProfileRepository {
	return &ProfileKV{store: s}
}

func (r *ProfileKV) List(ctx context.Context) ([]models.Profile, error) {
	return loadCollection[models.Profile](ctx, r.store, store.SlotProfiles)
}

func (r *ProfileKV) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	profiles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].Email == email {
			return &profiles[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

// Upsert replaces an existing profile in place; a new one goes to the front.
func (r *ProfileKV) Upsert(ctx context.Context, profile *models.Profile) error {
	profiles, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range profiles {
		if profiles[i].Email == profile.Email {
			profiles[i] = *profile
			return saveCollection(ctx, r.store, store.SlotProfiles, profiles)
		}
	}
	return saveCollection(ctx, r.store, store.SlotProfiles, prepend(profiles, *profile))
}
