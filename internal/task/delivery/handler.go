package delivery

import (
	"errors"
	"net/http"

	"statusbar-backend/internal/task/domain"
	"statusbar-backend/internal/task/usecase"
	"statusbar-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title           string `json:"title" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	Priority        string `json:"priority"`
	Category        string `json:"category"`
	EnergyRequired  string `json:"energy_required"`
}

// GetTasks returns the user's backlog in creation order
// GET /api/tasks
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	tasks, err := h.taskUsecase.GetTasks(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.GetTaskByID(userID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Priority == "" {
		req.Priority = string(domain.PriorityMedium)
	}
	if req.Category == "" {
		req.Category = string(domain.CategoryPersonal)
	}
	if req.EnergyRequired == "" {
		req.EnergyRequired = string(domain.EnergyMedium)
	}
	if req.DurationMinutes == 0 {
		req.DurationMinutes = 30
	}

	task, err := h.taskUsecase.CreateTask(userID, usecase.CreateTaskRequest{
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		Priority:        req.Priority,
		Category:        req.Category,
		EnergyRequired:  req.EnergyRequired,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates an existing task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, updates)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case errors.Is(err, usecase.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		default:
			// remaining update failures are field validation
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task and arms the undo buffer
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(userID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted", "undoable": true})
}

// UndoDelete restores the most recently deleted task
// POST /api/tasks/undo
func (h *TaskHandler) UndoDelete(c *gin.Context) {
	userID := c.GetString("userID")

	task, err := h.taskUsecase.UndoDelete(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNothingToUndo) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Nothing to undo"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// DismissUndo drops the undo buffer without restoring
// DELETE /api/tasks/undo
func (h *TaskHandler) DismissUndo(c *gin.Context) {
	userID := c.GetString("userID")

	h.taskUsecase.DismissUndo(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Undo dismissed"})
}

// ToggleCompletion flips a task's completed flag and books progression
// POST /api/tasks/:id/toggle
func (h *TaskHandler) ToggleCompletion(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.ToggleCompletion(userID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// LogTimeRequest represents the request body for logging focus time
type LogTimeRequest struct {
	Minutes *int `json:"minutes" binding:"required"`
}

// LogTime adds focused minutes to a task
// POST /api/tasks/:id/time
func (h *TaskHandler) LogTime(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req LogTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.LogTimeSpent(userID, taskID, *req.Minutes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case errors.Is(err, usecase.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// ClearCompleted removes all completed tasks
// DELETE /api/tasks/completed
func (h *TaskHandler) ClearCompleted(c *gin.Context) {
	userID := c.GetString("userID")

	removed, err := h.taskUsecase.ClearCompleted(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// DecomposeRequest represents the request body for AI task decomposition
type DecomposeRequest struct {
	Title string `json:"title" binding:"required"`
}

// Decompose asks the AI to split a complex task into sub-tasks
// POST /api/tasks/decompose
func (h *TaskHandler) Decompose(c *gin.Context) {
	userID := c.GetString("userID")

	var req DecomposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := h.taskUsecase.DecomposeTask(c.Request.Context(), userID, req.Title)
	if err != nil {
		if errors.Is(err, ai.ErrMalformedResponse) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "AI returned an unusable breakdown"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
