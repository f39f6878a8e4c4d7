package models

import "strings"

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// NormalizePriority maps unrecognized input to medium, matching the
// safe-fallback behavior of the validation layer.
func NormalizePriority(value string) TaskPriority {
	switch TaskPriority(strings.ToLower(strings.TrimSpace(value))) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

type TaskStatus string

const (
	TaskNew       TaskStatus = "new"
	TaskAccepted  TaskStatus = "accepted"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskNew, TaskAccepted, TaskCompleted, TaskFailed:
		return true
	}
	return false
}

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	Assignee    string       `json:"assignee"`
	Category    string       `json:"category"`
}
