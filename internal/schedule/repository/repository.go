package repository

import (
	"statusbar-backend/internal/schedule/domain"
	taskdomain "statusbar-backend/internal/task/domain"
)

// ScheduleRepository defines the interface for schedule slot data access
type ScheduleRepository interface {
	// FindByUserID returns the user's slots in presentation order
	FindByUserID(userID string) ([]*domain.ScheduleSlot, error)

	// ReplaceForUser atomically swaps the user's whole slot sequence
	ReplaceForUser(userID string, slots []*domain.ScheduleSlot) error

	// SavePositions rewrites the Position column of the given slots atomically
	SavePositions(slots []*domain.ScheduleSlot) error

	// DeleteByTaskID removes every slot referencing a task (cascade delete)
	DeleteByTaskID(userID, taskID string) error

	// UpdateTaskFields propagates a task's new title/category into its slots
	UpdateTaskFields(userID, taskID, title string, category taskdomain.Category) error
}
