package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"statusbar-backend/internal/task/domain"
	"statusbar-backend/internal/task/repository"
	"statusbar-backend/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cascadeRecorder struct {
	deleted []string
	edited  []string
}

func (c *cascadeRecorder) OnTaskDeleted(userID, taskID string) error {
	c.deleted = append(c.deleted, taskID)
	return nil
}

func (c *cascadeRecorder) OnTaskEdited(userID, taskID, title string, category domain.Category) error {
	c.edited = append(c.edited, taskID)
	return nil
}

type progressionRecorder struct {
	toggles []bool
}

func (p *progressionRecorder) OnCompletionToggled(userID string, completed bool, at time.Time) error {
	p.toggles = append(p.toggles, completed)
	return nil
}

type fakeOracle struct {
	proposals []ai.TaskProposal
	err       error
}

func (f *fakeOracle) ProposeSchedule(ctx context.Context, tasks []ai.TaskContext, profile ai.ProfileContext, planContext string) ([]ai.SlotProposal, error) {
	return nil, errors.New("not used")
}

func (f *fakeOracle) DecomposeTask(ctx context.Context, title string) ([]ai.TaskProposal, error) {
	return f.proposals, f.err
}

func (f *fakeOracle) MotivationalNudge(ctx context.Context, completedCount, totalCount int) (string, error) {
	return "", errors.New("not used")
}

func newTestTask(t *testing.T, uc TaskUsecase, userID, title string) *domain.Task {
	t.Helper()
	task, err := uc.CreateTask(userID, CreateTaskRequest{
		Title:           title,
		DurationMinutes: 30,
		Priority:        "Medium",
		Category:        "Work",
		EnergyRequired:  "Medium",
	})
	require.NoError(t, err)
	return task
}

func TestCreateTaskValidation(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())

	_, err := uc.CreateTask("u1", CreateTaskRequest{Title: "", DurationMinutes: 30, Priority: "Medium", Category: "Work", EnergyRequired: "Low"})
	assert.Error(t, err)

	_, err = uc.CreateTask("u1", CreateTaskRequest{Title: "x", DurationMinutes: 0, Priority: "Medium", Category: "Work", EnergyRequired: "Low"})
	assert.Error(t, err)

	_, err = uc.CreateTask("u1", CreateTaskRequest{Title: "x", DurationMinutes: 30, Priority: "urgent", Category: "Work", EnergyRequired: "Low"})
	assert.Error(t, err)

	tasks, err := uc.GetTasks("u1")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTasksOrderedByCreation(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())

	newTestTask(t, uc, "u1", "first")
	newTestTask(t, uc, "u1", "second")
	newTestTask(t, uc, "u1", "third")

	tasks, err := uc.GetTasks("u1")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "third", tasks[2].Title)
}

func TestGetTaskByIDOwnership(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())
	task := newTestTask(t, uc, "u1", "mine")

	_, err := uc.GetTaskByID("u2", task.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.GetTaskByID("u1", "missing")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestUpdateTaskPropagatesToSchedule(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())
	cascade := &cascadeRecorder{}
	uc.SetScheduleCascade(cascade)

	task := newTestTask(t, uc, "u1", "draft")

	// duration-only edit must not trigger the cascade
	minutes := 45
	_, err := uc.UpdateTask("u1", task.ID, TaskUpdateRequest{DurationMinutes: &minutes})
	require.NoError(t, err)
	assert.Empty(t, cascade.edited)

	title := "final"
	updated, err := uc.UpdateTask("u1", task.ID, TaskUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, []string{task.ID}, cascade.edited)
}

func TestUpdateTaskRejectsInvalidEnum(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())
	task := newTestTask(t, uc, "u1", "quest")

	bad := "Critical"
	_, err := uc.UpdateTask("u1", task.ID, TaskUpdateRequest{Priority: &bad})
	assert.Error(t, err)

	// the stored task is untouched
	got, err := uc.GetTaskByID("u1", task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, got.Priority)
}

func TestDeleteThenUndoRestoresTaskOnly(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())
	cascade := &cascadeRecorder{}
	uc.SetScheduleCascade(cascade)

	task := newTestTask(t, uc, "u1", "doomed")
	newTestTask(t, uc, "u1", "survivor")

	require.NoError(t, uc.DeleteTask("u1", task.ID))
	assert.Equal(t, []string{task.ID}, cascade.deleted)

	tasks, err := uc.GetTasks("u1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	restored, err := uc.UndoDelete("u1")
	require.NoError(t, err)
	assert.Equal(t, task.ID, restored.ID)
	assert.Equal(t, "doomed", restored.Title)

	// restored to the end of the list
	tasks, err = uc.GetTasks("u1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "doomed", tasks[1].Title)

	// the buffer holds one task at most
	_, err = uc.UndoDelete("u1")
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
}

func TestUndoBufferOverwrittenByNextDelete(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())

	a := newTestTask(t, uc, "u1", "a")
	b := newTestTask(t, uc, "u1", "b")

	require.NoError(t, uc.DeleteTask("u1", a.ID))
	require.NoError(t, uc.DeleteTask("u1", b.ID))

	restored, err := uc.UndoDelete("u1")
	require.NoError(t, err)
	assert.Equal(t, b.ID, restored.ID)
}

func TestDismissUndoDropsBuffer(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())
	task := newTestTask(t, uc, "u1", "gone")

	require.NoError(t, uc.DeleteTask("u1", task.ID))
	uc.DismissUndo("u1")

	_, err := uc.UndoDelete("u1")
	assert.ErrorIs(t, err, domain.ErrNothingToUndo)
}

func TestToggleCompletionRoundTrip(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())
	progression := &progressionRecorder{}
	uc.SetProgression(progression)

	task := newTestTask(t, uc, "u1", "quest")

	done, err := uc.ToggleCompletion("u1", task.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	undone, err := uc.ToggleCompletion("u1", task.ID)
	require.NoError(t, err)
	assert.False(t, undone.Completed)
	assert.Nil(t, undone.CompletedAt)

	assert.Equal(t, []bool{true, false}, progression.toggles)
}

func TestLogTimeSpentIsMonotonic(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())
	task := newTestTask(t, uc, "u1", "focus")

	_, err := uc.LogTimeSpent("u1", task.ID, 25)
	require.NoError(t, err)
	got, err := uc.LogTimeSpent("u1", task.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 30, got.TimeSpent)

	_, err = uc.LogTimeSpent("u1", task.ID, -1)
	assert.Error(t, err)

	// completion toggling never resets logged time
	_, err = uc.ToggleCompletion("u1", task.ID)
	require.NoError(t, err)
	got, err = uc.GetTaskByID("u1", task.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.TimeSpent)
}

func TestClearCompleted(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())

	a := newTestTask(t, uc, "u1", "a")
	newTestTask(t, uc, "u1", "b")

	_, err := uc.ToggleCompletion("u1", a.ID)
	require.NoError(t, err)

	removed, err := uc.ClearCompleted("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// empty backlog is a no-op, not an error
	removed, err = uc.ClearCompleted("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	tasks, err := uc.GetTasks("u1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].Title)
}

func TestDecomposeTaskInsertsValidBatch(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())
	uc.SetOracle(&fakeOracle{proposals: []ai.TaskProposal{
		{Title: "outline", DurationMinutes: 20, Priority: "High", Category: "Study", EnergyRequired: "Medium"},
		{Title: "draft", DurationMinutes: 40, Priority: "Medium", Category: "Study", EnergyRequired: "High"},
	}})

	created, err := uc.DecomposeTask(context.Background(), "u1", "write thesis chapter")
	require.NoError(t, err)
	require.Len(t, created, 2)

	tasks, err := uc.GetTasks("u1")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestDecomposeTaskRejectsMalformedBatch(t *testing.T) {
	uc := NewTaskUsecase(repository.NewMemoryTaskRepository())
	uc.SetOracle(&fakeOracle{proposals: []ai.TaskProposal{
		{Title: "fine", DurationMinutes: 20, Priority: "High", Category: "Study", EnergyRequired: "Medium"},
		{Title: "broken", DurationMinutes: 0, Priority: "High", Category: "Study", EnergyRequired: "Medium"},
	}})

	_, err := uc.DecomposeTask(context.Background(), "u1", "big task")
	assert.ErrorIs(t, err, ai.ErrMalformedResponse)

	// a malformed batch leaves the backlog untouched
	tasks, err := uc.GetTasks("u1")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
