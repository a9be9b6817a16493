package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"statusbar-backend/internal/task/domain"
	"statusbar-backend/internal/task/repository"
	"statusbar-backend/pkg/ai"
)

var ErrUnauthorized = errors.New("unauthorized")

// taskUsecase implements TaskUsecase. A single mutex serializes mutations so
// each command (including its cascades and the undo buffer update) runs to
// completion before the next one is processed.
type taskUsecase struct {
	mu          sync.Mutex
	taskRepo    repository.TaskRepository
	oracle      ai.SchedulerService
	cascade     ScheduleCascade
	progression ProgressionSink

	// lastDeleted is the one-slot undo buffer, per user. It holds only the
	// most recently deleted task; the next delete overwrites it.
	lastDeleted map[string]*domain.Task
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo:    taskRepo,
		lastDeleted: make(map[string]*domain.Task),
	}
}

func (u *taskUsecase) SetOracle(oracle ai.SchedulerService) {
	u.oracle = oracle
}

func (u *taskUsecase) SetScheduleCascade(cascade ScheduleCascade) {
	u.cascade = cascade
}

func (u *taskUsecase) SetProgression(progression ProgressionSink) {
	u.progression = progression
}

func (u *taskUsecase) CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	task := &domain.Task{
		UserID:          userID,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		Priority:        domain.Priority(req.Priority),
		Category:        domain.Category(req.Category),
		EnergyRequired:  domain.EnergyLevel(req.EnergyRequired),
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetTasks(userID string) ([]*domain.Task, error) {
	return u.taskRepo.FindByUserID(userID)
}

func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	if task.UserID != userID {
		return nil, ErrUnauthorized
	}
	return task, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	prevTitle, prevCategory := task.Title, task.Category

	if updates.Title != nil {
		task.Title = *updates.Title
	}
	if updates.DurationMinutes != nil {
		task.DurationMinutes = *updates.DurationMinutes
	}
	if updates.Priority != nil {
		task.Priority = domain.Priority(*updates.Priority)
	}
	if updates.Category != nil {
		task.Category = domain.Category(*updates.Category)
	}
	if updates.EnergyRequired != nil {
		task.EnergyRequired = domain.EnergyLevel(*updates.EnergyRequired)
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	// Slots referencing this task must show the new title/category.
	if u.cascade != nil && (task.Title != prevTitle || task.Category != prevCategory) {
		if err := u.cascade.OnTaskEdited(userID, task.ID, task.Title, task.Category); err != nil {
			return nil, err
		}
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return err
	}

	if err := u.taskRepo.Delete(task.ID); err != nil {
		return err
	}

	// Cascade: slots referencing the task are removed with it. Restoring via
	// undo brings back the task only, never its slots.
	if u.cascade != nil {
		if err := u.cascade.OnTaskDeleted(userID, task.ID); err != nil {
			return err
		}
	}

	u.lastDeleted[userID] = task
	return nil
}

func (u *taskUsecase) UndoDelete(userID string) (*domain.Task, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	task, ok := u.lastDeleted[userID]
	if !ok {
		return nil, domain.ErrNothingToUndo
	}
	delete(u.lastDeleted, userID)

	// Restored to the end of the quest log: creation order is display order.
	task.CreatedAt = time.Now()
	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DismissUndo(userID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.lastDeleted, userID)
}

func (u *taskUsecase) ToggleCompletion(userID, taskID string) (*domain.Task, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task.Completed = !task.Completed
	if task.Completed {
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	if u.progression != nil {
		if err := u.progression.OnCompletionToggled(userID, task.Completed, now); err != nil {
			return nil, err
		}
	}

	return task, nil
}

func (u *taskUsecase) LogTimeSpent(userID, taskID string, minutes int) (*domain.Task, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if minutes < 0 {
		return nil, errors.New("minutes cannot be negative")
	}

	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	// Monotonic: completion toggling never resets logged focus time.
	task.TimeSpent += minutes
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) ClearCompleted(userID string) (int64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.taskRepo.DeleteCompleted(userID)
}

func (u *taskUsecase) DecomposeTask(ctx context.Context, userID, title string) ([]*domain.Task, error) {
	if u.oracle == nil {
		return nil, errors.New("AI service not configured")
	}
	if title == "" {
		return nil, errors.New("title is required")
	}

	log.Printf("[TaskUsecase] Decomposing task %q for user %s", title, userID)
	proposals, err := u.oracle.DecomposeTask(ctx, title)
	if err != nil {
		return nil, err
	}
	log.Printf("[TaskUsecase] Oracle proposed %d sub-tasks", len(proposals))

	// Validate the whole batch before inserting anything: a malformed oracle
	// response must leave the backlog untouched.
	pending := make([]*domain.Task, 0, len(proposals))
	for _, p := range proposals {
		task := &domain.Task{
			UserID:          userID,
			Title:           p.Title,
			DurationMinutes: p.DurationMinutes,
			Priority:        domain.Priority(p.Priority),
			Category:        domain.Category(p.Category),
			EnergyRequired:  domain.EnergyLevel(p.EnergyRequired),
		}
		if err := task.Validate(); err != nil {
			return nil, ai.ErrMalformedResponse
		}
		pending = append(pending, task)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	created := make([]*domain.Task, 0, len(pending))
	for _, task := range pending {
		if err := u.taskRepo.Create(task); err != nil {
			return nil, err
		}
		created = append(created, task)
	}
	return created, nil
}
