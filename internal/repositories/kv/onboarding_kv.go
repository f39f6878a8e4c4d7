package kv

import (
	"context"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/store"
)

type OnboardingKV struct {
	store store.Store
}

func NewOnboardingKV(s store.Store) repositories.OnboardingRepository {
	return &OnboardingKV{store: s}
}

func (r *OnboardingKV) List(ctx context.Context) ([]models.OnboardingRecord, error) {
	return loadCollection[models.OnboardingRecord](ctx, r.store, store.SlotOnboarding)
}

func (r *OnboardingKV) GetByEmployee(ctx context.Context, email string) (*models.OnboardingRecord, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].EmployeeEmail == email {
			return &records[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *OnboardingKV) Upsert(ctx context.Context, record *models.OnboardingRecord) error {
	records, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].EmployeeEmail == record.EmployeeEmail {
			// Keep the existing id and checklist progress.
			record.ID = records[i].ID
			if len(records[i].Checklist) > 0 {
				record.Checklist = records[i].Checklist
			}
			records[i] = *record
			return saveCollection(ctx, r.store, store.SlotOnboarding, records)
		}
	}
	return saveCollection(ctx, r.store, store.SlotOnboarding, prepend(records, *record))
}

func (r *OnboardingKV) ToggleChecklistItem(ctx context.Context, email, key string) error {
	records, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range records {
		if records[i].EmployeeEmail != email {
			continue
		}
		found = true
		for j := range records[i].Checklist {
			if records[i].Checklist[j].Key == key {
				records[i].Checklist[j].Done = !records[i].Checklist[j].Done
			}
		}
	}
	if !found {
		return repositories.ErrNotFound
	}
	return saveCollection(ctx, r.store, store.SlotOnboarding, records)
}
