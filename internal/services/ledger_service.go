package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "safespend/internal/errors"
	"safespend/internal/models"
	"safespend/internal/pagination"
	"safespend/internal/uuid"
)

// ledgerService handles the append-only transaction ledger. Entries are
// created and read, never updated or deleted; all derived figures are
// recomputed from the entries themselves.
type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db}
}

// RecordSpend appends a debit entry to the user's ledger. The date may lie in
// the past to allow backdated entries; a zero date defaults to now.
func (s *ledgerService) RecordSpend(
	userID uint,
	amount float64,
	category, description string,
	date time.Time,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if description == "" {
		description = "Simulated Purchase"
	}
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Reference:   uuid.New(),
		Date:        date,
		Amount:      amount,
		Description: description,
		Category:    category,
		Type:        models.TransactionTypeDebit,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// ListTransactions retrieves a paginated, filtered list of ledger entries.
func (s *ledgerService) ListTransactions(
	userID uint,
	page pagination.PageRequest,
	filter LedgerFilter,
) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyLedgerFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyLedgerFilters(q *gorm.DB, f LedgerFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	return q
}

// GetTransactionByID retrieves a ledger entry by ID for a specific user
func (s *ledgerService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}
