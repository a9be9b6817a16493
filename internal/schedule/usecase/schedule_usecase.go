package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	profileusecase "statusbar-backend/internal/profile/usecase"
	"statusbar-backend/internal/schedule/domain"
	"statusbar-backend/internal/schedule/repository"
	taskdomain "statusbar-backend/internal/task/domain"
	taskrepository "statusbar-backend/internal/task/repository"
	"statusbar-backend/pkg/ai"
)

var ErrNoActiveTasks = errors.New("no active tasks to schedule")

// fallbackNudge is shown when the narrative oracle is unreachable.
const fallbackNudge = "Focus aligned."

// scheduleUsecase implements ScheduleUsecase
type scheduleUsecase struct {
	mu           sync.Mutex
	scheduleRepo repository.ScheduleRepository
	taskRepo     taskrepository.TaskRepository
	profileUc    profileusecase.ProfileUsecase
	oracle       ai.SchedulerService
}

// NewScheduleUsecase creates a new instance of scheduleUsecase
func NewScheduleUsecase(scheduleRepo repository.ScheduleRepository, taskRepo taskrepository.TaskRepository, profileUc profileusecase.ProfileUsecase) ScheduleUsecase {
	return &scheduleUsecase{
		scheduleRepo: scheduleRepo,
		taskRepo:     taskRepo,
		profileUc:    profileUc,
	}
}

func (u *scheduleUsecase) SetOracle(oracle ai.SchedulerService) {
	u.oracle = oracle
}

func (u *scheduleUsecase) GetSchedule(userID string) ([]*domain.ScheduleSlot, error) {
	return u.scheduleRepo.FindByUserID(userID)
}

func (u *scheduleUsecase) GenerateSchedule(ctx context.Context, userID, planContext string) ([]*domain.ScheduleSlot, string, error) {
	if u.oracle == nil {
		return nil, "", errors.New("AI service not configured")
	}

	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, "", err
	}

	var active []ai.TaskContext
	completedCount := 0
	for _, t := range tasks {
		if t.Completed {
			completedCount++
			continue
		}
		active = append(active, ai.TaskContext{
			ID:              t.ID,
			Title:           t.Title,
			DurationMinutes: t.DurationMinutes,
			Priority:        string(t.Priority),
			Category:        string(t.Category),
			EnergyRequired:  string(t.EnergyRequired),
		})
	}
	if len(active) == 0 {
		return nil, "", ErrNoActiveTasks
	}

	profile, err := u.profileUc.GetProfile(userID)
	if err != nil {
		return nil, "", err
	}

	if planContext == "" {
		planContext = "Standard productivity flow"
	}

	log.Printf("[ScheduleUsecase] Requesting schedule for user %s (%d active tasks)", userID, len(active))
	proposals, err := u.oracle.ProposeSchedule(ctx, active, ai.ProfileContext{
		WakeUpTime:      profile.WakeUpTime,
		SleepTime:       profile.SleepTime,
		ProductiveHours: string(profile.ProductiveHours),
	}, planContext)
	if err != nil {
		// Prior schedule stays untouched, the caller may retry.
		return nil, "", err
	}

	// Validate the oracle payload before any of it enters the domain model.
	slots := make([]*domain.ScheduleSlot, 0, len(proposals))
	for _, p := range proposals {
		category, err := taskdomain.ParseCategory(p.Category)
		if err != nil {
			return nil, "", ai.ErrMalformedResponse
		}
		taskID := p.TaskID
		if p.IsBreak {
			taskID = domain.BreakTaskID
		}
		slots = append(slots, &domain.ScheduleSlot{
			TimeSlot:    p.TimeSlot,
			TaskID:      taskID,
			Title:       p.Title,
			Category:    category,
			Description: p.Description,
			IsBreak:     p.IsBreak,
		})
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.scheduleRepo.ReplaceForUser(userID, slots); err != nil {
		return nil, "", err
	}

	nudge, err := u.oracle.MotivationalNudge(ctx, completedCount, len(tasks))
	if err != nil {
		log.Printf("[ScheduleUsecase] Nudge failed: %v", err)
		nudge = fallbackNudge
	}

	return slots, nudge, nil
}

func (u *scheduleUsecase) Reorder(userID string, from, to int) ([]*domain.ScheduleSlot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	slots, err := u.scheduleRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	// Out-of-bounds indices make the reorder a no-op.
	if from < 0 || from >= len(slots) || to < 0 || to >= len(slots) || from == to {
		return slots, nil
	}

	moved := slots[from]
	slots = append(slots[:from], slots[from+1:]...)
	slots = append(slots[:to], append([]*domain.ScheduleSlot{moved}, slots[to:]...)...)

	for i, slot := range slots {
		slot.Position = i
	}
	if err := u.scheduleRepo.SavePositions(slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (u *scheduleUsecase) NextActionableSlot(userID string) (*domain.ScheduleSlot, error) {
	slots, err := u.scheduleRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	for _, slot := range slots {
		if slot.IsBreak {
			continue
		}
		task, err := u.taskRepo.FindByID(slot.TaskID)
		if err != nil {
			return nil, err
		}
		if task != nil && !task.Completed {
			return slot, nil
		}
	}
	return nil, nil
}

func (u *scheduleUsecase) OnTaskDeleted(userID, taskID string) error {
	return u.scheduleRepo.DeleteByTaskID(userID, taskID)
}

func (u *scheduleUsecase) OnTaskEdited(userID, taskID, title string, category taskdomain.Category) error {
	return u.scheduleRepo.UpdateTaskFields(userID, taskID, title, category)
}
