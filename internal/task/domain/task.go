package domain

import (
	"errors"
	"fmt"
	"time"
)

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Category classifies what part of life a task belongs to
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryStudy    Category = "Study"
	CategoryHealth   Category = "Health"
	CategoryPersonal Category = "Personal"
	CategoryBreak    Category = "Break"
)

// EnergyLevel represents how much energy a task demands
type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "High"
	EnergyMedium EnergyLevel = "Medium"
	EnergyLow    EnergyLevel = "Low"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// Task represents one quest in the user's backlog
type Task struct {
	ID              string      `json:"id" gorm:"primaryKey"`
	UserID          string      `json:"user_id" gorm:"index;not null"`
	Title           string      `json:"title" gorm:"not null"`
	DurationMinutes int         `json:"duration_minutes" gorm:"not null"`
	Priority        Priority    `json:"priority" gorm:"default:Medium"`
	Category        Category    `json:"category" gorm:"default:Personal"`
	EnergyRequired  EnergyLevel `json:"energy_required" gorm:"default:Medium"`
	Completed       bool        `json:"completed" gorm:"default:false"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	TimeSpent       int         `json:"time_spent"` // minutes logged by focus sessions
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Validate checks the invariants enforced at every create/edit boundary.
// Enum values outside the closed sets are validation errors, not defaults.
func (t *Task) Validate() error {
	if t.Title == "" {
		return errors.New("title is required")
	}
	if t.DurationMinutes <= 0 {
		return errors.New("duration_minutes must be positive")
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return err
	}
	if _, err := ParseCategory(string(t.Category)); err != nil {
		return err
	}
	if _, err := ParseEnergyLevel(string(t.EnergyRequired)); err != nil {
		return err
	}
	if t.TimeSpent < 0 {
		return errors.New("time_spent cannot be negative")
	}
	return nil
}

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q", s)
}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryWork, CategoryStudy, CategoryHealth, CategoryPersonal, CategoryBreak:
		return Category(s), nil
	}
	return "", fmt.Errorf("invalid category %q", s)
}

func ParseEnergyLevel(s string) (EnergyLevel, error) {
	switch EnergyLevel(s) {
	case EnergyHigh, EnergyMedium, EnergyLow:
		return EnergyLevel(s), nil
	}
	return "", fmt.Errorf("invalid energy level %q", s)
}

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{CategoryWork, CategoryStudy, CategoryHealth, CategoryPersonal, CategoryBreak}
}
