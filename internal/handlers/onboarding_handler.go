package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "safespend/internal/errors"
	"safespend/internal/models"
	"safespend/internal/services"
)

// OnboardingHandler handles the budget setup flow.
type OnboardingHandler struct {
	onboardingService services.OnboardingServicer
	auditService      services.AuditServicer
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(onboardingService services.OnboardingServicer, auditService services.AuditServicer) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService, auditService: auditService}
}

// CommitmentRequest represents one fixed monthly obligation in the onboarding payload.
type CommitmentRequest struct {
	Name            string                `json:"name" binding:"required,min=1,max=100"`
	Amount          float64               `json:"amount" binding:"gte=0"`
	Type            models.CommitmentType `json:"type" binding:"required,commitment_type"`
	DueDay          *int                  `json:"due_day" binding:"omitempty,min=1,max=31"`
	EndDate         *time.Time            `json:"end_date"`
	RemainingMonths *int                  `json:"remaining_months" binding:"omitempty,gt=0"`
}

// GoalRequest represents one savings target in the onboarding payload.
type GoalRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	Months       int     `json:"months" binding:"required,gt=0"`
}

// OnboardingRequest represents the full budget setup payload.
type OnboardingRequest struct {
	MonthlyIncome float64             `json:"monthly_income" binding:"gte=0"`
	Commitments   []CommitmentRequest `json:"commitments" binding:"dive"`
	Goals         []GoalRequest       `json:"goals" binding:"dive"`
}

// CompleteOnboarding handles submission of the budget setup form. Resubmitting
// replaces the previous setup wholesale.
// @Summary     Complete budget setup
// @Description Submit income, commitments, and goals to compute the initial spendable amount
// @Tags        onboarding
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body OnboardingRequest true "Budget setup data"
// @Success     201 {object} services.OnboardingResult "Computed allocation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /onboarding [post]
func (h *OnboardingHandler) CompleteOnboarding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	commitments := make([]services.CommitmentInput, 0, len(req.Commitments))
	for _, cr := range req.Commitments {
		commitments = append(commitments, services.CommitmentInput{
			Name:            cr.Name,
			Amount:          cr.Amount,
			Type:            cr.Type,
			DueDay:          cr.DueDay,
			EndDate:         cr.EndDate,
			RemainingMonths: cr.RemainingMonths,
		})
	}

	goals := make([]services.GoalInput, 0, len(req.Goals))
	for _, gr := range req.Goals {
		goals = append(goals, services.GoalInput{
			Name:         gr.Name,
			TargetAmount: gr.TargetAmount,
			Months:       gr.Months,
		})
	}

	result, err := h.onboardingService.CompleteOnboarding(userID, req.MonthlyIncome, commitments, goals)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "COMPLETE_ONBOARDING", "budget_snapshot", result.Snapshot.ID, c.ClientIP(),
		map[string]interface{}{
			"monthly_income": req.MonthlyIncome,
			"commitments":    len(req.Commitments),
			"goals":          len(req.Goals),
		})

	c.JSON(http.StatusCreated, gin.H{
		"snapshot":    result.Snapshot,
		"commitments": result.Commitments,
		"goals":       result.Goals,
	})
}
