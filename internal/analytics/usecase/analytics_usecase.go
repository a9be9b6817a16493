package usecase

import (
	"time"

	schedulerepository "statusbar-backend/internal/schedule/repository"
	taskrepository "statusbar-backend/internal/task/repository"
)

// AnalyticsUsecase defines the interface for analytics use cases
type AnalyticsUsecase interface {
	GetReport(userID string, rng TimeRange) (*Report, error)
}

// analyticsUsecase is a read-only projection over the task and schedule
// repositories, recomputed on demand per selected window.
type analyticsUsecase struct {
	taskRepo     taskrepository.TaskRepository
	scheduleRepo schedulerepository.ScheduleRepository
}

// NewAnalyticsUsecase creates a new instance of analyticsUsecase
func NewAnalyticsUsecase(taskRepo taskrepository.TaskRepository, scheduleRepo schedulerepository.ScheduleRepository) AnalyticsUsecase {
	return &analyticsUsecase{
		taskRepo:     taskRepo,
		scheduleRepo: scheduleRepo,
	}
}

func (u *analyticsUsecase) GetReport(userID string, rng TimeRange) (*Report, error) {
	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	slots, err := u.scheduleRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return Aggregate(tasks, slots, rng, time.Now()), nil
}
