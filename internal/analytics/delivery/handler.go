package delivery

import (
	"net/http"

	"statusbar-backend/internal/analytics/usecase"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
	}
}

// GetReport returns the productivity report for a time range
// GET /api/analytics?range=Today|1+Week|4+Weeks
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	userID := c.GetString("userID")

	rng, err := usecase.ParseTimeRange(c.DefaultQuery("range", string(usecase.RangeWeek)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.analyticsUsecase.GetReport(userID, rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
