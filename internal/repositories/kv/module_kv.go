package kv

import (
	"context"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/store"
)

type ModuleKV struct {
	store store.Store
}

func NewModuleKV(s store.Store) repositories.ModuleRepository {
	return &ModuleKV{store: s}
}

func (r *ModuleKV) List(ctx context.Context) ([]models.TrainingModule, error) {
	return loadCollection[models.TrainingModule](ctx, r.store, store.SlotModules)
}

func (r *ModuleKV) GetByID(ctx context.Context, id string) (*models.TrainingModule, error) {
	modules, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range modules {
		if modules[i].ID == id {
			return &modules[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *ModuleKV) Create(ctx context.Context, module *models.TrainingModule) error {
	modules, err := r.List(ctx)
	if err != nil {
		return err
	}
	if module.CompletedBy == nil {
		module.CompletedBy = []string{}
	}
	if module.Submissions == nil {
		module.Submissions = map[string]string{}
	}
	return saveCollection(ctx, r.store, store.SlotModules, prepend(modules, *module))
}

func (r *ModuleKV) MarkCompleted(ctx context.Context, id, email string) error {
	modules, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range modules {
		if modules[i].ID != id {
			continue
		}
		found = true
		if modules[i].CompletedByEmail(email) {
			// Idempotent: completing twice leaves the set unchanged.
			return nil
		}
		modules[i].CompletedBy = append(modules[i].CompletedBy, email)
	}
	if !found {
		return repositories.ErrNotFound
	}
	return saveCollection(ctx, r.store, store.SlotModules, modules)
}

func (r *ModuleKV) SubmitAssignment(ctx context.Context, id, email, link string) error {
	modules, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range modules {
		if modules[i].ID != id {
			continue
		}
		found = true
		if modules[i].Submissions == nil {
			modules[i].Submissions = map[string]string{}
		}
		modules[i].Submissions[email] = link
	}
	if !found {
		return repositories.ErrNotFound
	}
	return saveCollection(ctx, r.store, store.SlotModules, modules)
}
