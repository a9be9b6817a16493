package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const geminiModel = "gemini-2.5-flash"

// GeminiService implements SchedulerService using the Gemini REST API
type GeminiService struct {
	ApiKey string
}

// NewGeminiService creates a new Gemini service
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{ApiKey: apiKey}
}

// geminiResponse is the subset of the generateContent response we read
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiService) generate(ctx context.Context, prompt string, config map[string]interface{}) (string, error) {
	url := "https://generativelanguage.googleapis.com/v1beta/models/" + geminiModel + ":generateContent?key=" + g.ApiKey

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}
	if config != nil {
		payload["generationConfig"] = config
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error: %s", string(respBody))
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// ProposeSchedule asks Gemini for an optimized daily timeline
func (g *GeminiService) ProposeSchedule(ctx context.Context, tasks []TaskContext, profile ProfileContext, planContext string) ([]SlotProposal, error) {
	if len(tasks) == 0 {
		return []SlotProposal{}, nil
	}

	taskJSON, _ := json.Marshal(tasks)
	prompt := fmt.Sprintf(`You are Statusbar, an advanced AI productivity scheduler with a Gen Z personality.

User Profile:
- Wake up: %s
- Sleep: %s
- Peak Productivity: %s

Context: %s

Tasks to schedule:
%s

Goal: Create an optimized daily timeline.
Rules:
1. Respect the user's wake and sleep times.
2. Place High priority/High energy tasks during peak productivity hours.
3. Insert short breaks (5-15 mins) between deep work sessions. Call them "Touch Grass" or "Vibe Check".
4. Group similar tasks (Task Batching) where possible.
5. Ensure high priority tasks are scheduled first.
6. If the day is overbooked, suggest moving low priority tasks to tomorrow (but do not schedule them today).
7. The 'description' field should use Gen Z slang, be hype, and fun.

Return a JSON array representing the schedule.`,
		profile.WakeUpTime, profile.SleepTime, profile.ProductiveHours, planContext, string(taskJSON))

	text, err := g.generate(ctx, prompt, map[string]interface{}{
		"responseMimeType": "application/json",
		"responseSchema":   scheduleSchema,
		"temperature":      0.3,
	})
	if err != nil {
		return nil, err
	}

	var slots []SlotProposal
	if err := json.Unmarshal([]byte(text), &slots); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return slots, nil
}

// DecomposeTask asks Gemini to break a complex task into 3-6 sub-tasks
func (g *GeminiService) DecomposeTask(ctx context.Context, title string) ([]TaskProposal, error) {
	prompt := fmt.Sprintf(`The user has a complex task: "%s".
Break this down into 3-6 smaller, actionable sub-tasks.

For each sub-task, estimate:
- Duration (minutes)
- Priority (High/Medium/Low)
- Energy Required (High/Medium/Low)
- Category (Work, Study, Health, Personal, Break)

Keep the titles concise and actionable.`, title)

	text, err := g.generate(ctx, prompt, map[string]interface{}{
		"responseMimeType": "application/json",
		"responseSchema":   subTaskSchema,
		"temperature":      0.4,
	})
	if err != nil {
		return nil, err
	}

	var subtasks []TaskProposal
	if err := json.Unmarshal([]byte(text), &subtasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return subtasks, nil
}

// MotivationalNudge asks Gemini for a one-line motivational quote
func (g *GeminiService) MotivationalNudge(ctx context.Context, completedCount, totalCount int) (string, error) {
	prompt := fmt.Sprintf(`The user has completed %d tasks and has %d left.
Give a short, Gen Z style motivational quote (max 1 sentence).
Use slang like 'locked in', 'main character', 'W', 'no cap', 'slay', 'touch grass'.
Example: "You're entering your academic weapon era, no cap."`,
		completedCount, totalCount-completedCount)

	text, err := g.generate(ctx, prompt, nil)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "Stay focused, bestie.", nil
	}
	return text, nil
}

// Structured-output schemas sent to Gemini so the reply parses as our types.
var scheduleSchema = map[string]interface{}{
	"type": "ARRAY",
	"items": map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"timeSlot":    map[string]interface{}{"type": "STRING", "description": "Start and end time, e.g., '09:00 - 10:00'"},
			"taskId":      map[string]interface{}{"type": "STRING", "description": "The ID of the task assigned to this slot, or 'break' if it is a break."},
			"title":       map[string]interface{}{"type": "STRING", "description": "Title of the activity"},
			"category":    map[string]interface{}{"type": "STRING", "description": "Category of the task"},
			"description": map[string]interface{}{"type": "STRING", "description": "Short strategic advice or reason for placement."},
			"isBreak":     map[string]interface{}{"type": "BOOLEAN", "description": "True if this is a recovery period."},
		},
		"required": []string{"timeSlot", "title", "category", "description", "isBreak"},
	},
}

var subTaskSchema = map[string]interface{}{
	"type": "ARRAY",
	"items": map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"title":           map[string]interface{}{"type": "STRING", "description": "Actionable sub-task title"},
			"durationMinutes": map[string]interface{}{"type": "NUMBER", "description": "Estimated duration in minutes"},
			"category":        map[string]interface{}{"type": "STRING", "description": "Category of the task"},
			"priority":        map[string]interface{}{"type": "STRING", "description": "Priority level (High, Medium, Low)"},
			"energyRequired":  map[string]interface{}{"type": "STRING", "description": "Energy level (High, Medium, Low)"},
		},
		"required": []string{"title", "durationMinutes", "category", "priority", "energyRequired"},
	},
}
