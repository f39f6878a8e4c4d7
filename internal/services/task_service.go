package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/EMS-F-2026/onboarding-service/internal/events"
	"github.com/EMS-F-2026/onboarding-service/internal/metrics"
	"github.com/EMS-F-2026/onboarding-service/internal/models"
	"github.com/EMS-F-2026/onboarding-service/internal/repositories"
	"github.com/EMS-F-2026/onboarding-service/internal/validator"
)

type taskService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewTaskService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) TaskService {
	return &taskService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

func (s *taskService) Board(ctx context.Context) (*TaskBoardResponse, error) {
	tasks, err := s.repo.Task().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	byStatus := map[string][]models.Task{
		string(models.TaskNew):       {},
		string(models.TaskAccepted):  {},
		string(models.TaskCompleted): {},
		string(models.TaskFailed):    {},
	}
	for _, task := range tasks {
		byStatus[string(task.Status)] = append(byStatus[string(task.Status)], task)
	}

	return &TaskBoardResponse{
		Tasks:         tasks,
		TasksByStatus: byStatus,
		Stats:         metrics.CountTasks(tasks),
	}, nil
}

func (s *taskService) Create(ctx context.Context, req *CreateTaskRequest) (*models.Task, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, verrs
	}

	task := &models.Task{
		ID:          newID("t"),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Date:        req.Date,
		Priority:    models.NormalizePriority(req.Priority),
		Status:      models.TaskNew,
		Assignee:    models.NormalizeEmail(req.Assignee),
		Category:    strings.TrimSpace(req.Category),
	}
	if err := s.repo.Task().Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task created", "task_id", task.ID, "assignee", task.Assignee)
	if err := s.publisher.Publish(ctx, events.Event{
		Type:    events.EventTaskCreated,
		Subject: task.Assignee,
		Message: fmt.Sprintf("New task: %s", task.Title),
	}); err != nil {
		s.logger.Warn("Failed to publish task event", "error", err)
	}
	return task, nil
}

func (s *taskService) UpdateStatus(ctx context.Context, id string, req *UpdateTaskStatusRequest) error {
	if verrs := s.validator.Validate(req); verrs != nil {
		return verrs
	}

	err := s.repo.Task().UpdateStatus(ctx, id, models.TaskStatus(req.Status))
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return nil
}
