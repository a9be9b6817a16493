package delivery

import (
	"net/http"

	"statusbar-backend/internal/profile/domain"
	"statusbar-backend/internal/profile/usecase"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile and progression HTTP requests
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileUsecase usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
	}
}

func profileResponse(p *domain.UserProfile) gin.H {
	return gin.H{
		"profile":          p,
		"level":            p.Level(),
		"progress_percent": p.ProgressPercent(),
	}
}

// GetProfile returns the user's profile with derived progression fields
// GET /api/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")

	profile, err := h.profileUsecase.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profileResponse(profile))
}

// UpdateProfile applies preference changes
// PUT /api/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("userID")

	var updates usecase.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileUsecase.UpdateProfile(userID, updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profileResponse(profile))
}

// UpdatePomodoro replaces the pomodoro timer settings
// PUT /api/profile/pomodoro
func (h *ProfileHandler) UpdatePomodoro(c *gin.Context) {
	userID := c.GetString("userID")

	var settings domain.PomodoroSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileUsecase.UpdatePomodoro(userID, settings)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profileResponse(profile))
}
