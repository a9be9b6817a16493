package usecase

import (
	"testing"
	"time"

	scheduledomain "statusbar-backend/internal/schedule/domain"
	taskdomain "statusbar-backend/internal/task/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedTask(title string, category taskdomain.Category, duration, timeSpent int, completedAt time.Time) *taskdomain.Task {
	return &taskdomain.Task{
		ID:              title,
		UserID:          "u1",
		Title:           title,
		DurationMinutes: duration,
		Priority:        taskdomain.PriorityMedium,
		Category:        category,
		EnergyRequired:  taskdomain.EnergyMedium,
		Completed:       true,
		CompletedAt:     &completedAt,
		TimeSpent:       timeSpent,
	}
}

func TestParseTimeRange(t *testing.T) {
	for _, s := range []string{"Today", "1 Week", "4 Weeks"} {
		rng, err := ParseTimeRange(s)
		require.NoError(t, err)
		assert.Equal(t, TimeRange(s), rng)
	}

	_, err := ParseTimeRange("fortnight")
	assert.Error(t, err)
}

func TestAggregateWeekWindow(t *testing.T) {
	now := time.Date(2026, 3, 20, 18, 0, 0, 0, time.UTC)

	tasks := []*taskdomain.Task{
		// current window: logged time wins over the estimate
		completedTask("a", taskdomain.CategoryWork, 60, 30, now.AddDate(0, 0, -1)),
		// current window: no logged time, estimate used
		completedTask("b", taskdomain.CategoryStudy, 40, 0, now.AddDate(0, 0, -3)),
		// comparison window
		completedTask("c", taskdomain.CategoryWork, 50, 50, now.AddDate(0, 0, -10)),
		// outside both windows
		completedTask("d", taskdomain.CategoryHealth, 90, 90, now.AddDate(0, 0, -20)),
		// never completed, never counted
		{ID: "e", UserID: "u1", Title: "e", DurationMinutes: 120, Category: taskdomain.CategoryWork},
	}

	report := Aggregate(tasks, nil, RangeWeek, now)

	assert.Equal(t, 70, report.Current.FocusTimeMinutes)
	assert.Equal(t, 2, report.Current.TasksCompleted)
	assert.Equal(t, 2, report.Current.Sessions)
	assert.Equal(t, 14, report.Current.BreakTimeMinutes) // 20% of focus, floored

	assert.Equal(t, 50, report.Previous.FocusTimeMinutes)
	assert.Equal(t, 1, report.Previous.TasksCompleted)

	assert.Equal(t, 40, report.Change.FocusTime) // (70-50)/50
	assert.Equal(t, 100, report.Change.TasksCompleted)

	require.Len(t, report.Daily, 7)
	assert.Equal(t, now.Format("2006-01-02"), report.Daily[6].Date)
	assert.Equal(t, 30, report.Daily[5].TotalMinutes) // yesterday
	assert.Equal(t, 1, report.Daily[5].TaskCount)

	// zero-count categories are omitted, order follows the canonical list
	require.Len(t, report.Categories, 2)
	assert.Equal(t, CategoryCount{Name: "Work", Value: 1}, report.Categories[0])
	assert.Equal(t, CategoryCount{Name: "Study", Value: 1}, report.Categories[1])
}

func TestAggregateTodayUsesCalendarDays(t *testing.T) {
	now := time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC)

	tasks := []*taskdomain.Task{
		// late last night: not today, even though it is within 24h
		completedTask("late", taskdomain.CategoryWork, 30, 0, time.Date(2026, 3, 19, 23, 30, 0, 0, time.UTC)),
		completedTask("today", taskdomain.CategoryWork, 45, 0, time.Date(2026, 3, 20, 7, 0, 0, 0, time.UTC)),
	}

	report := Aggregate(tasks, nil, RangeToday, now)
	assert.Equal(t, 45, report.Current.FocusTimeMinutes)
	assert.Equal(t, 1, report.Current.TasksCompleted)

	// yesterday is the comparison window
	assert.Equal(t, 30, report.Previous.FocusTimeMinutes)

	// the Today view still charts a 7-day series
	assert.Len(t, report.Daily, 7)
}

func TestAggregateMonthSeries(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	report := Aggregate(nil, nil, RangeMonth, now)
	assert.Len(t, report.Daily, 28)
}

func TestPercentChangeConventions(t *testing.T) {
	assert.Equal(t, 0, PercentChange(0, 0))
	assert.Equal(t, 100, PercentChange(5, 0))
	assert.Equal(t, -50, PercentChange(50, 100))
	assert.Equal(t, 25, PercentChange(125, 100))
	assert.Equal(t, -100, PercentChange(0, 40))
	assert.Equal(t, 33, PercentChange(4, 3)) // rounded, not truncated
}

func TestProductivityScoreReadsSchedule(t *testing.T) {
	assert.Equal(t, 0, ProductivityScore(nil))

	slots := []*scheduledomain.ScheduleSlot{
		{TaskID: "t1"},
		{TaskID: "t2"},
		{TaskID: scheduledomain.BreakTaskID, IsBreak: true},
	}
	assert.Equal(t, 67, ProductivityScore(slots))

	allWork := []*scheduledomain.ScheduleSlot{{TaskID: "t1"}}
	assert.Equal(t, 100, ProductivityScore(allWork))
}
