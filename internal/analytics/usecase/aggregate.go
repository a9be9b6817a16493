package usecase

import (
	"fmt"
	"math"
	"time"

	scheduledomain "statusbar-backend/internal/schedule/domain"
	taskdomain "statusbar-backend/internal/task/domain"
)

// TimeRange selects the analytics window
type TimeRange string

const (
	RangeToday TimeRange = "Today"
	RangeWeek  TimeRange = "1 Week"
	RangeMonth TimeRange = "4 Weeks"
)

func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case RangeToday, RangeWeek, RangeMonth:
		return TimeRange(s), nil
	}
	return "", fmt.Errorf("invalid time range %q", s)
}

// Stats are the headline metrics for one window.
// Sessions deliberately equals TasksCompleted (one completed task
// approximates one focus session) and BreakTimeMinutes is a fixed 20% of
// focus time. Both heuristics are kept as-is for parity with the original
// behavior.
type Stats struct {
	FocusTimeMinutes int `json:"focus_time_minutes"`
	TasksCompleted   int `json:"tasks_completed"`
	Sessions         int `json:"sessions"`
	BreakTimeMinutes int `json:"break_time_minutes"`
}

// Trend is the percent change of each metric vs the preceding window
type Trend struct {
	FocusTime      int `json:"focus_time"`
	TasksCompleted int `json:"tasks_completed"`
	Sessions       int `json:"sessions"`
	BreakTime      int `json:"break_time"`
}

// DailyPoint is one day of the productivity chart
type DailyPoint struct {
	Date         string `json:"date"` // YYYY-MM-DD
	TotalMinutes int    `json:"total_minutes"`
	TaskCount    int    `json:"task_count"`
}

// CategoryCount is one slice of the category distribution
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Report is the full analytics projection for one window
type Report struct {
	Range             TimeRange       `json:"range"`
	Current           Stats           `json:"current"`
	Previous          Stats           `json:"previous"`
	Change            Trend           `json:"change"`
	Daily             []DailyPoint    `json:"daily"`
	Categories        []CategoryCount `json:"categories"`
	ProductivityScore int             `json:"productivity_score"`
}

// Aggregate is a pure projection of tasks and schedule onto one window.
// The now parameter anchors every calendar comparison.
func Aggregate(tasks []*taskdomain.Task, slots []*scheduledomain.ScheduleSlot, rng TimeRange, now time.Time) *Report {
	current := filterWindow(tasks, rng, now, 0)
	previous := filterWindow(tasks, rng, now, 1)

	curStats := statsOf(current)
	prevStats := statsOf(previous)

	return &Report{
		Range:    rng,
		Current:  curStats,
		Previous: prevStats,
		Change: Trend{
			FocusTime:      PercentChange(curStats.FocusTimeMinutes, prevStats.FocusTimeMinutes),
			TasksCompleted: PercentChange(curStats.TasksCompleted, prevStats.TasksCompleted),
			Sessions:       PercentChange(curStats.Sessions, prevStats.Sessions),
			BreakTime:      PercentChange(curStats.BreakTimeMinutes, prevStats.BreakTimeMinutes),
		},
		Daily:             dailySeries(tasks, rng, now),
		Categories:        categoryCounts(current),
		ProductivityScore: ProductivityScore(slots),
	}
}

// filterWindow returns the completed tasks inside the window. back=0 is the
// current window, back=1 the comparison window of equal length immediately
// preceding it.
func filterWindow(tasks []*taskdomain.Task, rng TimeRange, now time.Time, back int) []*taskdomain.Task {
	var out []*taskdomain.Task
	for _, t := range tasks {
		if !t.Completed || t.CompletedAt == nil {
			continue
		}
		at := *t.CompletedAt

		var in bool
		switch rng {
		case RangeToday:
			// Calendar-day comparison: today, or yesterday for the
			// comparison period.
			in = sameDay(at, now.AddDate(0, 0, -back))
		case RangeWeek:
			in = inRollingWindow(at, now, 7, back)
		case RangeMonth:
			in = inRollingWindow(at, now, 28, back)
		}
		if in {
			out = append(out, t)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// inRollingWindow checks membership in the trailing days-long block ending
// back*days days ago.
func inRollingWindow(at, now time.Time, days, back int) bool {
	end := now.AddDate(0, 0, -back*days)
	start := now.AddDate(0, 0, -(back+1)*days)
	if back == 0 {
		return !at.Before(start) && !at.After(end)
	}
	return !at.Before(start) && at.Before(end)
}

func statsOf(tasks []*taskdomain.Task) Stats {
	focus := 0
	for _, t := range tasks {
		focus += focusMinutes(t)
	}
	return Stats{
		FocusTimeMinutes: focus,
		TasksCompleted:   len(tasks),
		Sessions:         len(tasks),
		BreakTimeMinutes: focus * 20 / 100,
	}
}

// focusMinutes falls back to the estimate when no focus time was logged.
func focusMinutes(t *taskdomain.Task) int {
	if t.TimeSpent > 0 {
		return t.TimeSpent
	}
	return t.DurationMinutes
}

// PercentChange follows the convention that growth from zero is 100%.
func PercentChange(current, previous int) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

// dailySeries builds one point per day. The Today view still charts a 7-day
// lookback so the graph has a shape.
func dailySeries(tasks []*taskdomain.Task, rng TimeRange, now time.Time) []DailyPoint {
	days := 7
	if rng == RangeMonth {
		days = 28
	}

	points := make([]DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		minutes, count := 0, 0
		for _, t := range tasks {
			if t.Completed && t.CompletedAt != nil && sameDay(*t.CompletedAt, day) {
				minutes += focusMinutes(t)
				count++
			}
		}
		points = append(points, DailyPoint{
			Date:         day.Format("2006-01-02"),
			TotalMinutes: minutes,
			TaskCount:    count,
		})
	}
	return points
}

// categoryCounts tallies the filtered tasks per category, omitting empty ones.
func categoryCounts(tasks []*taskdomain.Task) []CategoryCount {
	counts := make(map[taskdomain.Category]int)
	for _, t := range tasks {
		counts[t.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for _, c := range taskdomain.Categories() {
		if counts[c] > 0 {
			out = append(out, CategoryCount{Name: string(c), Value: counts[c]})
		}
	}
	return out
}

// ProductivityScore is the planned work-to-rest ratio of the schedule. It
// reads the schedule, not the task set: it measures what was planned, not
// what was completed.
func ProductivityScore(slots []*scheduledomain.ScheduleSlot) int {
	if len(slots) == 0 {
		return 0
	}
	work := 0
	for _, s := range slots {
		if !s.IsBreak {
			work++
		}
	}
	return int(math.Round(float64(work) / float64(len(slots)) * 100))
}
