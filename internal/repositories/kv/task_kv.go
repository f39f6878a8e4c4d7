package kv

import (
	"context"

	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/store"
)

type TaskKV struct {
	store store.Store
}

func NewTaskKV(s store.Store) repositories.TaskRepository {
	return &TaskKV{store: s}
}

func (r *TaskKV) List(ctx context.Context) ([]models.Task, error) {
	return loadCollection[models.Task](ctx, r.store, store.SlotTasks)
}

func (r *TaskKV) Create(ctx context.Context, task *models.Task) error {
	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}
	return saveCollection(ctx, r.store, store.SlotTasks, prepend(tasks, *task))
}

// UpdateStatus sets the status directly; any status is reachable from any
// other, there is no enforced transition order.
func (r *TaskKV) UpdateStatus(ctx context.Context, id string, status models.TaskStatus) error {
	tasks, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Status = status
			found = true
		}
	}
	if !found {
		return repositories.ErrNotFound
	}
	return saveCollection(ctx, r.store, store.SlotTasks, tasks)
}
