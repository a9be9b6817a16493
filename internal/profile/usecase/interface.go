package usecase

import (
	"time"

	"statusbar-backend/internal/profile/domain"
)

// ProfileUpdateRequest carries optional profile field updates
type ProfileUpdateRequest struct {
	Name            *string `json:"name"`
	WakeUpTime      *string `json:"wake_up_time"`
	SleepTime       *string `json:"sleep_time"`
	ProductiveHours *string `json:"productive_hours"`
	Theme           *string `json:"theme"`
}

// ProfileUsecase defines the interface for profile and progression use cases
type ProfileUsecase interface {
	// InitProfile creates the default profile for a new user
	InitProfile(userID, name string) error

	// GetProfile returns the profile, creating a default one if absent
	GetProfile(userID string) (*domain.UserProfile, error)

	// UpdateProfile applies preference changes
	UpdateProfile(userID string, updates ProfileUpdateRequest) (*domain.UserProfile, error)

	// UpdatePomodoro replaces the pomodoro timer settings
	UpdatePomodoro(userID string, settings domain.PomodoroSettings) (*domain.UserProfile, error)

	// ApplyCompletionDelta books a completion toggle into aura/streak.
	// completed=true is a false->true transition (+XP), false the reverse (-XP).
	ApplyCompletionDelta(userID string, completed bool, at time.Time) (*domain.UserProfile, error)
}
