package delivery

import (
	"net/http"

	"statusbar-backend/internal/notes/usecase"

	"github.com/gin-gonic/gin"
)

// NotesHandler handles scratchpad HTTP requests
type NotesHandler struct {
	notesUsecase usecase.NotesUsecase
}

// NewNotesHandler creates a new NotesHandler
func NewNotesHandler(notesUsecase usecase.NotesUsecase) *NotesHandler {
	return &NotesHandler{
		notesUsecase: notesUsecase,
	}
}

// GetNotes returns the user's scratchpad content
// GET /api/notes
func (h *NotesHandler) GetNotes(c *gin.Context) {
	userID := c.GetString("userID")

	content, err := h.notesUsecase.GetNotes(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

// SaveNotesRequest represents the request body for saving notes
type SaveNotesRequest struct {
	Content string `json:"content"`
}

// SaveNotes overwrites the user's scratchpad
// PUT /api/notes
func (h *NotesHandler) SaveNotes(c *gin.Context) {
	userID := c.GetString("userID")

	var req SaveNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.notesUsecase.SaveNotes(userID, req.Content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notes saved"})
}
