package ai

import (
	"context"
	"errors"
)

// ErrMalformedResponse signals that a provider answered but the payload could
// not be parsed into the expected shape. Callers must not apply partial data.
var ErrMalformedResponse = errors.New("ai provider returned malformed data")

// TaskContext is the task data sent to the scheduling oracle (shared type)
type TaskContext struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Priority        string `json:"priority"`
	Category        string `json:"category"`
	EnergyRequired  string `json:"energyRequired"`
}

// ProfileContext is the user preference data sent to the scheduling oracle
type ProfileContext struct {
	WakeUpTime      string `json:"wakeUpTime"`
	SleepTime       string `json:"sleepTime"`
	ProductiveHours string `json:"productiveHours"`
}

// SlotProposal is one timeline entry proposed by the scheduling oracle
type SlotProposal struct {
	TimeSlot    string `json:"timeSlot"` // e.g. "09:00 - 10:00"
	TaskID      string `json:"taskId"`   // "break" for rest slots
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	IsBreak     bool   `json:"isBreak"`
}

// TaskProposal is one sub-task proposed by the decomposition oracle
type TaskProposal struct {
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Category        string `json:"category"`
	Priority        string `json:"priority"`
	EnergyRequired  string `json:"energyRequired"`
}

// SchedulerService is the interface for the AI scheduling/decomposition/nudge
// oracles. Implement this interface to add new AI providers (Gemini, Ollama, ...)
type SchedulerService interface {
	ProposeSchedule(ctx context.Context, tasks []TaskContext, profile ProfileContext, planContext string) ([]SlotProposal, error)
	DecomposeTask(ctx context.Context, title string) ([]TaskProposal, error)
	MotivationalNudge(ctx context.Context, completedCount, totalCount int) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
