package usecase

import (
	"context"
	"errors"
	"testing"

	profilerepository "statusbar-backend/internal/profile/repository"
	profileusecase "statusbar-backend/internal/profile/usecase"
	"statusbar-backend/internal/schedule/domain"
	"statusbar-backend/internal/schedule/repository"
	taskdomain "statusbar-backend/internal/task/domain"
	taskrepository "statusbar-backend/internal/task/repository"
	"statusbar-backend/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOracle struct {
	proposals   []ai.SlotProposal
	scheduleErr error
	nudge       string
	nudgeErr    error

	lastTasks   []ai.TaskContext
	lastProfile ai.ProfileContext
	lastContext string
}

func (f *fakeOracle) ProposeSchedule(ctx context.Context, tasks []ai.TaskContext, profile ai.ProfileContext, planContext string) ([]ai.SlotProposal, error) {
	f.lastTasks = tasks
	f.lastProfile = profile
	f.lastContext = planContext
	return f.proposals, f.scheduleErr
}

func (f *fakeOracle) DecomposeTask(ctx context.Context, title string) ([]ai.TaskProposal, error) {
	return nil, errors.New("not used")
}

func (f *fakeOracle) MotivationalNudge(ctx context.Context, completedCount, totalCount int) (string, error) {
	return f.nudge, f.nudgeErr
}

type fixture struct {
	uc           ScheduleUsecase
	scheduleRepo *repository.MemoryScheduleRepository
	taskRepo     *taskrepository.MemoryTaskRepository
	oracle       *fakeOracle
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	scheduleRepo := repository.NewMemoryScheduleRepository()
	taskRepo := taskrepository.NewMemoryTaskRepository()
	profileUc := profileusecase.NewProfileUsecase(profilerepository.NewMemoryProfileRepository())
	oracle := &fakeOracle{nudge: "lock in"}

	uc := NewScheduleUsecase(scheduleRepo, taskRepo, profileUc)
	uc.SetOracle(oracle)
	return &fixture{uc: uc, scheduleRepo: scheduleRepo, taskRepo: taskRepo, oracle: oracle}
}

func addTask(t *testing.T, repo *taskrepository.MemoryTaskRepository, userID, title string, completed bool) *taskdomain.Task {
	t.Helper()
	task := &taskdomain.Task{
		UserID:          userID,
		Title:           title,
		DurationMinutes: 30,
		Priority:        taskdomain.PriorityMedium,
		Category:        taskdomain.CategoryWork,
		EnergyRequired:  taskdomain.EnergyMedium,
		Completed:       completed,
	}
	require.NoError(t, repo.Create(task))
	return task
}

func TestGenerateScheduleReplacesWholesale(t *testing.T) {
	f := newFixture(t)
	task := addTask(t, f.taskRepo, "u1", "deep work", false)
	addTask(t, f.taskRepo, "u1", "already done", true)

	// a stale slot from a previous plan
	require.NoError(t, f.scheduleRepo.ReplaceForUser("u1", []*domain.ScheduleSlot{
		{TimeSlot: "08:00 - 09:00", TaskID: "stale", Title: "old", Category: taskdomain.CategoryWork},
	}))

	f.oracle.proposals = []ai.SlotProposal{
		{TimeSlot: "09:00 - 10:30", TaskID: task.ID, Title: "deep work", Category: "Work"},
		{TimeSlot: "10:30 - 10:45", Title: "Recharge", Category: "Break", IsBreak: true},
	}

	slots, nudge, err := f.uc.GenerateSchedule(context.Background(), "u1", "")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "lock in", nudge)

	// the completed task stays out of the oracle request
	require.Len(t, f.oracle.lastTasks, 1)
	assert.Equal(t, task.ID, f.oracle.lastTasks[0].ID)
	assert.Equal(t, "Standard productivity flow", f.oracle.lastContext)

	// break slots carry the sentinel task id
	assert.Equal(t, domain.BreakTaskID, slots[1].TaskID)

	stored, err := f.uc.GetSchedule("u1")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 0, stored[0].Position)
	assert.Equal(t, 1, stored[1].Position)
	assert.NotEqual(t, "stale", stored[0].TaskID)
}

func TestGenerateScheduleNoActiveTasks(t *testing.T) {
	f := newFixture(t)
	addTask(t, f.taskRepo, "u1", "done", true)

	_, _, err := f.uc.GenerateSchedule(context.Background(), "u1", "")
	assert.ErrorIs(t, err, ErrNoActiveTasks)
}

func TestGenerateScheduleKeepsPriorPlanOnOracleFailure(t *testing.T) {
	f := newFixture(t)
	task := addTask(t, f.taskRepo, "u1", "deep work", false)

	require.NoError(t, f.scheduleRepo.ReplaceForUser("u1", []*domain.ScheduleSlot{
		{TimeSlot: "08:00 - 09:00", TaskID: task.ID, Title: "prior", Category: taskdomain.CategoryWork},
	}))

	f.oracle.scheduleErr = errors.New("oracle down")
	_, _, err := f.uc.GenerateSchedule(context.Background(), "u1", "")
	require.Error(t, err)

	stored, err := f.uc.GetSchedule("u1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "prior", stored[0].Title)
}

func TestGenerateScheduleRejectsUnknownCategory(t *testing.T) {
	f := newFixture(t)
	task := addTask(t, f.taskRepo, "u1", "deep work", false)

	f.oracle.proposals = []ai.SlotProposal{
		{TimeSlot: "09:00 - 10:00", TaskID: task.ID, Title: "deep work", Category: "Gaming"},
	}

	_, _, err := f.uc.GenerateSchedule(context.Background(), "u1", "")
	assert.ErrorIs(t, err, ai.ErrMalformedResponse)

	stored, err := f.uc.GetSchedule("u1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestGenerateScheduleNudgeFallback(t *testing.T) {
	f := newFixture(t)
	task := addTask(t, f.taskRepo, "u1", "deep work", false)

	f.oracle.proposals = []ai.SlotProposal{
		{TimeSlot: "09:00 - 10:00", TaskID: task.ID, Title: "deep work", Category: "Work"},
	}
	f.oracle.nudgeErr = errors.New("oracle down")

	slots, nudge, err := f.uc.GenerateSchedule(context.Background(), "u1", "")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, fallbackNudge, nudge)
}

func seedSchedule(t *testing.T, f *fixture, titles ...string) {
	t.Helper()
	slots := make([]*domain.ScheduleSlot, 0, len(titles))
	for _, title := range titles {
		slots = append(slots, &domain.ScheduleSlot{
			TimeSlot: "09:00 - 10:00",
			TaskID:   "t-" + title,
			Title:    title,
			Category: taskdomain.CategoryWork,
		})
	}
	require.NoError(t, f.scheduleRepo.ReplaceForUser("u1", slots))
}

func TestReorderSpliceMove(t *testing.T) {
	f := newFixture(t)
	seedSchedule(t, f, "a", "b", "c")

	slots, err := f.uc.Reorder("u1", 0, 2)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{slots[0].Title, slots[1].Title, slots[2].Title})

	// positions persist in the repository
	stored, err := f.uc.GetSchedule("u1")
	require.NoError(t, err)
	assert.Equal(t, "b", stored[0].Title)
	assert.Equal(t, "a", stored[2].Title)
}

func TestReorderOutOfBoundsIsNoOp(t *testing.T) {
	f := newFixture(t)
	seedSchedule(t, f, "a", "b")

	slots, err := f.uc.Reorder("u1", 0, 5)
	require.NoError(t, err)
	assert.Equal(t, "a", slots[0].Title)

	slots, err = f.uc.Reorder("u1", -1, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", slots[0].Title)
}

func TestNextActionableSlotSkipsBreaksAndCompleted(t *testing.T) {
	f := newFixture(t)
	done := addTask(t, f.taskRepo, "u1", "done", true)
	open := addTask(t, f.taskRepo, "u1", "open", false)

	require.NoError(t, f.scheduleRepo.ReplaceForUser("u1", []*domain.ScheduleSlot{
		{TimeSlot: "09:00 - 09:15", TaskID: domain.BreakTaskID, Title: "Recharge", Category: taskdomain.CategoryBreak, IsBreak: true},
		{TimeSlot: "09:15 - 10:00", TaskID: done.ID, Title: "done", Category: taskdomain.CategoryWork},
		{TimeSlot: "10:00 - 11:00", TaskID: open.ID, Title: "open", Category: taskdomain.CategoryWork},
	}))

	slot, err := f.uc.NextActionableSlot("u1")
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, open.ID, slot.TaskID)
}

func TestNextActionableSlotEmpty(t *testing.T) {
	f := newFixture(t)

	slot, err := f.uc.NextActionableSlot("u1")
	require.NoError(t, err)
	assert.Nil(t, slot)
}

func TestCascadeHooks(t *testing.T) {
	f := newFixture(t)
	seedSchedule(t, f, "a", "b")

	require.NoError(t, f.uc.OnTaskDeleted("u1", "t-a"))
	stored, err := f.uc.GetSchedule("u1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "b", stored[0].Title)

	require.NoError(t, f.uc.OnTaskEdited("u1", "t-b", "renamed", taskdomain.CategoryStudy))
	stored, err = f.uc.GetSchedule("u1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", stored[0].Title)
	assert.Equal(t, taskdomain.CategoryStudy, stored[0].Category)
}
