package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"safespend/internal/services"
)

// PacingHandler serves the live dashboard and daily pacing views.
type PacingHandler struct {
	pacingService services.PacingServicer
}

// NewPacingHandler creates a new PacingHandler.
func NewPacingHandler(pacingService services.PacingServicer) *PacingHandler {
	return &PacingHandler{pacingService: pacingService}
}

// GetDashboard returns the month-level budget state.
// @Summary     Get dashboard
// @Description Get the budget overview, month pacing status, goals, and recent transactions
// @Tags        pacing
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardResult "Dashboard state"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget setup incomplete"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *PacingHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.pacingService.GetDashboard(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDailyPacing returns today's spending allowance and status.
// @Summary     Get daily pacing
// @Description Get today's spending limit, amount spent so far today, and pacing status
// @Tags        pacing
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DailyPacingResult "Daily pacing state"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget setup incomplete"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pacing [get]
func (h *PacingHandler) GetDailyPacing(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.pacingService.GetDailyPacing(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
