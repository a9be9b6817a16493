package usecase

import (
	"context"
	"time"

	"statusbar-backend/internal/task/domain"
	"statusbar-backend/pkg/ai"
)

// CreateTaskRequest carries the fields of a new task
type CreateTaskRequest struct {
	Title           string
	DurationMinutes int
	Priority        string
	Category        string
	EnergyRequired  string
}

// TaskUpdateRequest carries optional task field updates
type TaskUpdateRequest struct {
	Title           *string `json:"title"`
	DurationMinutes *int    `json:"duration_minutes"`
	Priority        *string `json:"priority"`
	Category        *string `json:"category"`
	EnergyRequired  *string `json:"energy_required"`
}

// ScheduleCascade receives task lifecycle events the schedule must mirror:
// slot removal on delete, title/category propagation on edit.
type ScheduleCascade interface {
	OnTaskDeleted(userID, taskID string) error
	OnTaskEdited(userID, taskID, title string, category domain.Category) error
}

// ProgressionSink books completion transitions into the user's XP/streak.
type ProgressionSink interface {
	OnCompletionToggled(userID string, completed bool, at time.Time) error
}

// TaskUsecase defines the interface for task use cases
type TaskUsecase interface {
	CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error)
	GetTasks(userID string) ([]*domain.Task, error)
	GetTaskByID(userID, taskID string) (*domain.Task, error)
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)
	DeleteTask(userID, taskID string) error
	UndoDelete(userID string) (*domain.Task, error)
	DismissUndo(userID string)
	ToggleCompletion(userID, taskID string) (*domain.Task, error)
	LogTimeSpent(userID, taskID string, minutes int) (*domain.Task, error)
	ClearCompleted(userID string) (int64, error)

	// DecomposeTask asks the decomposition oracle to split a complex task
	// and inserts the returned sub-tasks into the backlog.
	DecomposeTask(ctx context.Context, userID, title string) ([]*domain.Task, error)

	SetOracle(oracle ai.SchedulerService)
	SetScheduleCascade(cascade ScheduleCascade)
	SetProgression(progression ProgressionSink)
}
