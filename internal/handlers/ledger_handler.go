package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "safespend/internal/errors"
	"safespend/internal/models"
	"safespend/internal/pagination"
	"safespend/internal/services"
)

// LedgerHandler handles the transaction ledger.
type LedgerHandler struct {
	ledgerService services.LedgerServicer
	auditService  services.AuditServicer
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService services.LedgerServicer, auditService services.AuditServicer) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService, auditService: auditService}
}

// RecordSpendRequest represents the request payload for recording a spend.
type RecordSpendRequest struct {
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Category    string     `json:"category" binding:"required,min=1,max=100"`
	Description string     `json:"description" binding:"max=255"`
	Date        *time.Time `json:"date"`
}

// RecordSpend handles recording a new spend in the ledger.
// @Summary     Record a spend
// @Description Append a debit entry to the ledger; an omitted date defaults to now
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RecordSpendRequest true "Spend details"
// @Success     201 {object} models.Transaction "Recorded transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *LedgerHandler) RecordSpend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	transaction, err := h.ledgerService.RecordSpend(userID, req.Amount, req.Category, req.Description, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "RECORD_SPEND", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount, "category": req.Category})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// LedgerFilterRequest represents the ledger list filter query parameters.
type LedgerFilterRequest struct {
	FromDate string `form:"from_date"`
	ToDate   string `form:"to_date"`
	Category string `form:"category"`
	Type     string `form:"type" binding:"omitempty,ledger_type"`
}

// GetTransactions handles listing ledger entries for the authenticated user.
// @Summary     Get transactions
// @Description Get a paginated list of ledger entries, newest first
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string false "Filter from date (RFC3339)"
// @Param       to_date   query string false "Filter to date (RFC3339)"
// @Param       category  query string false "Filter by category"
// @Param       type      query string false "Filter by type (credit/debit)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *LedgerHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var req LedgerFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.LedgerFilter

	if req.FromDate != "" {
		t, err := time.Parse(time.RFC3339, req.FromDate)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from_date must be RFC3339"))
			return
		}
		filter.FromDate = &t
	}

	if req.ToDate != "" {
		t, err := time.Parse(time.RFC3339, req.ToDate)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to_date must be RFC3339"))
			return
		}
		filter.ToDate = &t
	}

	if req.Category != "" {
		filter.Category = &req.Category
	}

	if req.Type != "" {
		txType := models.TransactionType(req.Type)
		filter.Type = &txType
	}

	result, err := h.ledgerService.ListTransactions(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransaction handles retrieving a specific ledger entry.
// @Summary     Get transaction by ID
// @Description Get a specific ledger entry by ID
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *LedgerHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.ledgerService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}
