package ai

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"
)

// FallbackService implements smart AI provider routing with fallback
// - Scheduling & decomposition: Gemini first (structured output), fallback to Ollama
// - Nudges: Ollama first (local, free), fallback to Gemini
type FallbackService struct {
	gemini SchedulerService
	ollama *OllamaService
}

// NewFallbackService creates a new fallback service with both providers
func NewFallbackService(gemini SchedulerService, ollama *OllamaService) *FallbackService {
	return &FallbackService{
		gemini: gemini,
		ollama: ollama,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	}

	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// ProposeSchedule tries Gemini first (structured output), falls back to Ollama
func (f *FallbackService) ProposeSchedule(ctx context.Context, tasks []TaskContext, profile ProfileContext, planContext string) ([]SlotProposal, error) {
	if f.gemini != nil {
		log.Println("[AI] Trying Gemini for schedule proposal...")
		result, err := f.gemini.ProposeSchedule(ctx, tasks, profile, planContext)
		if err == nil {
			log.Println("[AI] Gemini schedule proposal successful")
			return result, nil
		}

		if isQuotaError(err) {
			log.Printf("[AI] Gemini quota exhausted: %v, falling back to Ollama", err)
		} else {
			log.Printf("[AI] Gemini error: %v, falling back to Ollama", err)
		}
	}

	if f.ollama != nil {
		log.Println("[AI] Using Ollama for schedule proposal...")
		result, err := f.ollama.ProposeSchedule(ctx, tasks, profile, planContext)
		if err == nil {
			log.Println("[AI] Ollama schedule proposal successful")
			return result, nil
		}

		if isConnectionError(err) && f.gemini != nil {
			log.Printf("[AI] Ollama connection failed: %v, retrying Gemini", err)
			return f.gemini.ProposeSchedule(ctx, tasks, profile, planContext)
		}

		return nil, fmt.Errorf("ollama schedule proposal failed: %w", err)
	}

	return nil, fmt.Errorf("no AI provider available for scheduling")
}

// DecomposeTask tries Gemini first, falls back to Ollama
func (f *FallbackService) DecomposeTask(ctx context.Context, title string) ([]TaskProposal, error) {
	if f.gemini != nil {
		log.Println("[AI] Trying Gemini for task decomposition...")
		result, err := f.gemini.DecomposeTask(ctx, title)
		if err == nil {
			log.Println("[AI] Gemini task decomposition successful")
			return result, nil
		}

		if isQuotaError(err) {
			log.Printf("[AI] Gemini quota exhausted: %v, falling back to Ollama", err)
		} else {
			log.Printf("[AI] Gemini error: %v, falling back to Ollama", err)
		}
	}

	if f.ollama != nil {
		log.Println("[AI] Using Ollama for task decomposition...")
		result, err := f.ollama.DecomposeTask(ctx, title)
		if err == nil {
			log.Println("[AI] Ollama task decomposition successful")
			return result, nil
		}

		if isConnectionError(err) && f.gemini != nil {
			log.Printf("[AI] Ollama connection failed: %v, retrying Gemini", err)
			return f.gemini.DecomposeTask(ctx, title)
		}

		return nil, fmt.Errorf("ollama task decomposition failed: %w", err)
	}

	return nil, fmt.Errorf("no AI provider available for decomposition")
}

// MotivationalNudge tries Ollama first (local, free), falls back to Gemini
func (f *FallbackService) MotivationalNudge(ctx context.Context, completedCount, totalCount int) (string, error) {
	if f.ollama != nil {
		result, err := f.ollama.MotivationalNudge(ctx, completedCount, totalCount)
		if err == nil {
			return result, nil
		}

		if isConnectionError(err) {
			log.Printf("[AI] Ollama connection failed: %v, falling back to Gemini", err)
		} else {
			log.Printf("[AI] Ollama error: %v, falling back to Gemini", err)
		}
	}

	if f.gemini != nil {
		result, err := f.gemini.MotivationalNudge(ctx, completedCount, totalCount)
		if err == nil {
			return result, nil
		}

		if isQuotaError(err) && f.ollama != nil {
			log.Printf("[AI] Gemini quota exhausted: %v, retrying Ollama", err)
			return f.ollama.MotivationalNudge(ctx, completedCount, totalCount)
		}

		return "", fmt.Errorf("gemini nudge failed: %w", err)
	}

	return "", fmt.Errorf("no AI provider available for nudges")
}
