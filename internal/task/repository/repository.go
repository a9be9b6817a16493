package repository

import (
	"statusbar-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task. A provided ID is kept (undo restore), otherwise one is assigned.
	Create(task *domain.Task) error

	// FindByID finds a task by its ID. Returns (nil, nil) when absent.
	FindByID(id string) (*domain.Task, error)

	// FindByUserID returns every task for a user in creation order
	FindByUserID(userID string) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error

	// DeleteCompleted removes all completed tasks for a user and returns the count removed
	DeleteCompleted(userID string) (int64, error)
}
