package usecase

import (
	"context"

	"statusbar-backend/internal/schedule/domain"
	taskdomain "statusbar-backend/internal/task/domain"
	"statusbar-backend/pkg/ai"
)

// ScheduleUsecase defines the interface for schedule use cases
type ScheduleUsecase interface {
	GetSchedule(userID string) ([]*domain.ScheduleSlot, error)

	// GenerateSchedule asks the scheduling oracle for a new plan from the
	// user's active tasks and replaces the schedule wholesale on success.
	// Returns the new slots and a motivational nudge.
	GenerateSchedule(ctx context.Context, userID, planContext string) ([]*domain.ScheduleSlot, string, error)

	// Reorder splice-moves the slot at from to to. Out-of-bounds indices
	// make the call a no-op.
	Reorder(userID string, from, to int) ([]*domain.ScheduleSlot, error)

	// NextActionableSlot returns the first non-break slot whose task is not
	// completed, in presentation order, or nil if there is none.
	NextActionableSlot(userID string) (*domain.ScheduleSlot, error)

	// Cascade hooks invoked by the task usecase.
	OnTaskDeleted(userID, taskID string) error
	OnTaskEdited(userID, taskID, title string, category taskdomain.Category) error

	SetOracle(oracle ai.SchedulerService)
}
