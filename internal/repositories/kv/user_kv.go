package kv

import (
	"context"
	"strings"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/store"
)

type UserKV struct {
	store store.Store
}

func NewUserKV(s store.Store) repositories.UserRepository {
	return &UserKV{store: s}
}

func (r *UserKV) List(ctx context.Context) ([]models.User, error) {
	return loadCollection[models.User](ctx, r.store, store.SlotUsers)
}

func (r *UserKV) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

// GetByEmail matches case-insensitively; seeded or imported data may carry
// mixed-case addresses.
func (r *UserKV) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	normalized := models.NormalizeEmail(email)
	for i := range users {
		if strings.ToLower(users[i].Email) == normalized {
			return &users[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserKV) Create(ctx context.Context, user *models.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	// Accounts are appended, unlike the other collections.
	return saveCollection(ctx, r.store, store.SlotUsers, append(users, *user))
}

func (r *UserKV) Delete(ctx context.Context, id string) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	next := make([]models.User, 0, len(users))
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		next = append(next, u)
	}
	if !found {
		return repositories.ErrNotFound
	}
	return saveCollection(ctx, r.store, store.SlotUsers, next)
}
