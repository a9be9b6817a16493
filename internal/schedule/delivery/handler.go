package delivery

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"statusbar-backend/internal/calendar"
	"statusbar-backend/internal/schedule/domain"
	"statusbar-backend/internal/schedule/usecase"
	"statusbar-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles schedule-related HTTP requests
type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
	}
}

// GetSchedule returns the user's schedule in presentation order
// GET /api/schedule
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	userID := c.GetString("userID")

	slots, err := h.scheduleUsecase.GetSchedule(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if slots == nil {
		slots = []*domain.ScheduleSlot{}
	}

	c.JSON(http.StatusOK, gin.H{"schedule": slots})
}

// GenerateRequest represents the request body for schedule generation
type GenerateRequest struct {
	Context string `json:"context"`
}

// Generate asks the AI for a fresh schedule from the active backlog
// POST /api/schedule/generate
func (h *ScheduleHandler) Generate(c *gin.Context) {
	userID := c.GetString("userID")

	// the plan context is optional, an empty body is fine
	var req GenerateRequest
	_ = c.ShouldBindJSON(&req)

	slots, nudge, err := h.scheduleUsecase.GenerateSchedule(c.Request.Context(), userID, req.Context)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoActiveTasks):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No active tasks to schedule"})
		case errors.Is(err, ai.ErrMalformedResponse):
			c.JSON(http.StatusBadGateway, gin.H{"error": "AI returned an unusable schedule"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedule": slots,
		"nudge":    nudge,
	})
}

// ReorderRequest represents the request body for a slot move
type ReorderRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

// Reorder splice-moves a slot within the schedule
// PUT /api/schedule/reorder
func (h *ScheduleHandler) Reorder(c *gin.Context) {
	userID := c.GetString("userID")

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots, err := h.scheduleUsecase.Reorder(userID, *req.From, *req.To)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if slots == nil {
		slots = []*domain.ScheduleSlot{}
	}

	c.JSON(http.StatusOK, gin.H{"schedule": slots})
}

// Next returns the first actionable slot, if any
// GET /api/schedule/next
func (h *ScheduleHandler) Next(c *gin.Context) {
	userID := c.GetString("userID")

	slot, err := h.scheduleUsecase.NextActionableSlot(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

// Export streams the schedule as an iCalendar document
// GET /api/schedule/export
func (h *ScheduleHandler) Export(c *gin.Context) {
	userID := c.GetString("userID")

	slots, err := h.scheduleUsecase.GetSchedule(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	doc := calendar.BuildDocument(slots, now)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", calendar.Filename(now)))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(doc))
}
