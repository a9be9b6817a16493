package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	// CompletionXP is the aura delta for one completed task.
	CompletionXP = 100
	// XPPerLevel is how much aura one level spans.
	XPPerLevel = 1000
)

var ErrProfileNotFound = errors.New("profile not found")

// ProductiveHours is the stretch of day the user works best in
type ProductiveHours string

const (
	ProductiveMorning   ProductiveHours = "morning"
	ProductiveAfternoon ProductiveHours = "afternoon"
	ProductiveNight     ProductiveHours = "night"
)

// PomodoroSettings holds the focus timer configuration, durations in minutes.
type PomodoroSettings struct {
	WorkDuration       int  `json:"work_duration"`
	ShortBreakDuration int  `json:"short_break_duration"`
	LongBreakDuration  int  `json:"long_break_duration"`
	AutoStartBreaks    bool `json:"auto_start_breaks"`
	AutoStartPomodoros bool `json:"auto_start_pomodoros"`
}

// Validate rejects non-positive durations.
func (p *PomodoroSettings) Validate() error {
	if p.WorkDuration <= 0 {
		return errors.New("work_duration must be positive")
	}
	if p.ShortBreakDuration <= 0 {
		return errors.New("short_break_duration must be positive")
	}
	if p.LongBreakDuration <= 0 {
		return errors.New("long_break_duration must be positive")
	}
	return nil
}

// DefaultPomodoro returns the out-of-the-box timer settings.
func DefaultPomodoro() PomodoroSettings {
	return PomodoroSettings{
		WorkDuration:       25,
		ShortBreakDuration: 5,
		LongBreakDuration:  15,
	}
}

// UserProfile is the per-user singleton holding preferences and progression.
type UserProfile struct {
	UserID          string           `json:"user_id" gorm:"primaryKey"`
	Name            string           `json:"name"`
	WakeUpTime      string           `json:"wake_up_time"` // "HH:MM"
	SleepTime       string           `json:"sleep_time"`   // "HH:MM"
	ProductiveHours ProductiveHours  `json:"productive_hours" gorm:"default:morning"`
	Aura            int              `json:"aura"`   // XP, clamped at a floor of 0
	Streak          int              `json:"streak"` // consecutive productive days
	LastActiveDate  string           `json:"last_active_date"` // "YYYY-MM-DD" of the last completion
	Theme           string           `json:"theme"` // opaque display identifier
	Pomodoro        PomodoroSettings `json:"pomodoro_settings" gorm:"embedded;embeddedPrefix:pomodoro_"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// DefaultProfile builds the profile a fresh user starts with.
func DefaultProfile(userID, name string) *UserProfile {
	return &UserProfile{
		UserID:          userID,
		Name:            name,
		WakeUpTime:      "07:00",
		SleepTime:       "23:00",
		ProductiveHours: ProductiveMorning,
		Theme:           "cyber",
		Pomodoro:        DefaultPomodoro(),
	}
}

func ParseProductiveHours(s string) (ProductiveHours, error) {
	switch ProductiveHours(s) {
	case ProductiveMorning, ProductiveAfternoon, ProductiveNight:
		return ProductiveHours(s), nil
	}
	return "", fmt.Errorf("invalid productive hours %q", s)
}

// Level is 1-based: every XPPerLevel aura points is one level.
func (p *UserProfile) Level() int {
	return p.Aura/XPPerLevel + 1
}

// ProgressPercent is how far into the current level the aura sits, 0-99.9.
func (p *UserProfile) ProgressPercent() float64 {
	return float64(p.Aura%XPPerLevel) / 10
}
