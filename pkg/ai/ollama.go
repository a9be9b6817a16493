package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

// OllamaService implements SchedulerService using a local Ollama LLM
type OllamaService struct {
	BaseURL string
	Model   string

	// optional getters for runtime-updatable settings
	getBaseURL func() string
	getModel   func() string
}

// NewOllamaService creates a new Ollama service
func NewOllamaService(baseURL, model string) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaService{BaseURL: baseURL, Model: model}
}

// NewOllamaServiceWithGetters creates an Ollama service whose base URL and
// model are resolved on every call, so the settings API can change them at
// runtime.
func NewOllamaServiceWithGetters(getBaseURL, getModel func() string) *OllamaService {
	return &OllamaService{getBaseURL: getBaseURL, getModel: getModel}
}

func (o *OllamaService) baseURL() string {
	if o.getBaseURL != nil {
		if url := o.getBaseURL(); url != "" {
			return url
		}
	}
	if o.BaseURL != "" {
		return o.BaseURL
	}
	return "http://localhost:11434"
}

func (o *OllamaService) model() string {
	if o.getModel != nil {
		if m := o.getModel(); m != "" {
			return m
		}
	}
	if o.Model != "" {
		return o.Model
	}
	return "llama3"
}

func (o *OllamaService) generate(ctx context.Context, prompt string, temperature float64, numPredict int) (string, error) {
	url := o.baseURL() + "/api/generate"

	payload := map[string]interface{}{
		"model":  o.model(),
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": temperature,
			"num_predict": numPredict,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return result.Response, nil
}

// jsonArrayPattern pulls the first JSON array out of a chatty model reply
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

func extractJSONArray(text string) string {
	if match := jsonArrayPattern.FindString(text); match != "" {
		return match
	}
	return text
}

// ProposeSchedule implements SchedulerService
func (o *OllamaService) ProposeSchedule(ctx context.Context, tasks []TaskContext, profile ProfileContext, planContext string) ([]SlotProposal, error) {
	if len(tasks) == 0 {
		return []SlotProposal{}, nil
	}

	taskJSON, _ := json.Marshal(tasks)
	prompt := fmt.Sprintf(`You are Statusbar, an AI productivity scheduler.

User profile: wakes at %s, sleeps at %s, most productive in the %s.
Context: %s

Tasks to schedule (JSON):
%s

Create an optimized daily timeline that respects wake/sleep times, puts High
priority / High energy tasks in the productive hours, and inserts short
breaks between deep work sessions.

Return ONLY a JSON array. Each element has: timeSlot ("HH:MM - HH:MM"),
taskId (the task id, or "break"), title, category, description, isBreak.`,
		profile.WakeUpTime, profile.SleepTime, profile.ProductiveHours, planContext, string(taskJSON))

	text, err := o.generate(ctx, prompt, 0.3, 1500)
	if err != nil {
		return nil, err
	}

	var slots []SlotProposal
	if err := json.Unmarshal([]byte(extractJSONArray(text)), &slots); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return slots, nil
}

// DecomposeTask implements SchedulerService
func (o *OllamaService) DecomposeTask(ctx context.Context, title string) ([]TaskProposal, error) {
	prompt := fmt.Sprintf(`Break the complex task "%s" into 3-6 smaller actionable sub-tasks.

For each sub-task estimate durationMinutes (number), priority (High/Medium/Low),
energyRequired (High/Medium/Low) and category (Work, Study, Health, Personal, Break).

Return ONLY a JSON array of objects with keys: title, durationMinutes,
category, priority, energyRequired. No other text.`, title)

	text, err := o.generate(ctx, prompt, 0.4, 800)
	if err != nil {
		return nil, err
	}

	var subtasks []TaskProposal
	if err := json.Unmarshal([]byte(extractJSONArray(text)), &subtasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return subtasks, nil
}

// MotivationalNudge implements SchedulerService
func (o *OllamaService) MotivationalNudge(ctx context.Context, completedCount, totalCount int) (string, error) {
	prompt := fmt.Sprintf(`The user has completed %d tasks and has %d left.
Give a short, Gen Z style motivational quote (max 1 sentence). No preamble.`,
		completedCount, totalCount-completedCount)

	text, err := o.generate(ctx, prompt, 0.7, 60)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(strings.Trim(strings.TrimSpace(text), `"`))
	if text == "" {
		return "Stay focused, bestie.", nil
	}
	return text, nil
}
