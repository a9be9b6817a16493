package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	taskdomain "statusbar-backend/internal/task/domain"
)

// BreakTaskID is the sentinel task reference carried by rest slots.
const BreakTaskID = "break"

var ErrSlotNotFound = errors.New("schedule slot not found")

// ScheduleSlot is one entry in the daily timeline, either a task occurrence
// or a rest period. The slot sequence is ordered by Position, which is the
// authoritative presentation order and may deliberately violate clock order.
type ScheduleSlot struct {
	ID          string              `json:"id" gorm:"primaryKey"`
	UserID      string              `json:"user_id" gorm:"index;not null"`
	Position    int                 `json:"position" gorm:"not null"`
	TimeSlot    string              `json:"time_slot"` // e.g. "09:00 - 10:00"
	TaskID      string              `json:"task_id"`   // "break" for rest slots
	Title       string              `json:"title"`
	Category    taskdomain.Category `json:"category"`
	Description string              `json:"description"` // oracle reasoning or tip
	IsBreak     bool                `json:"is_break"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ParseTimeSlot splits a "HH:MM - HH:MM" interval and anchors both ends to
// the calendar day of ref. When end < start the slot spans into the next day
// and end rolls forward accordingly.
func ParseTimeSlot(timeSlot string, ref time.Time) (start, end time.Time, err error) {
	parts := strings.Split(timeSlot, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid time slot %q", timeSlot)
	}

	startH, startM, err := parseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid time slot %q: %v", timeSlot, err)
	}
	endH, endM, err := parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid time slot %q: %v", timeSlot, err)
	}

	start = time.Date(ref.Year(), ref.Month(), ref.Day(), startH, startM, 0, 0, ref.Location())
	end = time.Date(ref.Year(), ref.Month(), ref.Day(), endH, endM, 0, 0, ref.Location())
	if end.Before(start) {
		end = end.AddDate(0, 0, 1) // overnight slot
	}
	return start, end, nil
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected H:MM, got %q", s)
	}
	hour, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock value out of range in %q", s)
	}
	return hour, minute, nil
}
