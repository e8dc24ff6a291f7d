package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"safespend/internal/services"
)

// InsightsHandler serves the month spending breakdown.
type InsightsHandler struct {
	insightsService services.InsightsServicer
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService services.InsightsServicer) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// GetMonthInsights returns the current month's spend grouped by category.
// @Summary     Get spending insights
// @Description Get the month-to-date spend broken down by category, largest first
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.MonthInsights "Month insights"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights [get]
func (h *InsightsHandler) GetMonthInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.insightsService.GetMonthInsights(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": result})
}
