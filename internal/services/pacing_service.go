package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"safespend/internal/engine"
	apperrors "safespend/internal/errors"
	"safespend/internal/models"
)

// pacingService serves the live pacing views. It is strictly read-only: it
// fetches the budget snapshot and the month-to-date ledger entries and lets
// the engine recompute everything from scratch on every call. No running
// totals are cached anywhere; the cost is O(entries in the month).
type pacingService struct {
	db *gorm.DB
}

// NewPacingService creates a new PacingServicer.
func NewPacingService(db *gorm.DB) PacingServicer {
	return &pacingService{db: db}
}

// snapshotFor loads the user's budget snapshot, translating an absent row
// into the setup-incomplete signal.
func (s *pacingService) snapshotFor(userID uint) (*models.BudgetSnapshot, error) {
	var snapshot models.BudgetSnapshot
	if err := s.db.Where("user_id = ?", userID).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoBudgetConfigured
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &snapshot, nil
}

// monthTransactions fetches every ledger entry for the user dated on or after
// the first day of now's month. All entries are fetched regardless of
// credit/debit type; the pacing sums whatever it is handed.
func (s *pacingService) monthTransactions(userID uint, now time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.
		Where("user_id = ? AND date >= ?", userID, engine.StartOfMonth(now)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func toEntries(transactions []models.Transaction) []engine.Entry {
	entries := make([]engine.Entry, 0, len(transactions))
	for _, t := range transactions {
		entries = append(entries, engine.Entry{Date: t.Date, Amount: t.Amount})
	}
	return entries
}

// GetDashboard returns the monthly pacing view: snapshot totals, the daily
// safe spend, goal progress, and the five most recent entries.
func (s *pacingService) GetDashboard(userID uint, now time.Time) (*DashboardResult, error) {
	snapshot, err := s.snapshotFor(userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.monthTransactions(userID, now)
	if err != nil {
		return nil, err
	}

	pacing := engine.ComputeMonthlyPacing(snapshot.InitialSpendableAmount, toEntries(transactions), now)

	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	recent := transactions
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return &DashboardResult{
		Budget: BudgetOverview{
			Income:           snapshot.MonthlyIncome,
			Committed:        snapshot.TotalCommitments + snapshot.TotalGoalAllocations,
			InitialSpendable: snapshot.InitialSpendableAmount,
			Currency:         snapshot.Currency,
		},
		Status: PacingStatus{
			TotalSpent:         pacing.TotalSpent,
			RemainingSpendable: pacing.RemainingSpendable,
			DailySafeSpend:     pacing.DailySafeSpend,
			DaysLeft:           pacing.DaysLeft,
		},
		Goals:              goals,
		RecentTransactions: recent,
	}, nil
}

// GetDailyPacing returns today's spending cap. The month's entries are
// fetched once and partitioned in memory rather than queried twice.
func (s *pacingService) GetDailyPacing(userID uint, now time.Time) (*DailyPacingResult, error) {
	snapshot, err := s.snapshotFor(userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.monthTransactions(userID, now)
	if err != nil {
		return nil, err
	}

	pacing := engine.ComputeDailyPacing(snapshot.InitialSpendableAmount, toEntries(transactions), now)

	startOfToday := engine.StartOfDay(now)
	todayTransactions := make([]models.Transaction, 0)
	for _, t := range transactions {
		if !t.Date.Before(startOfToday) {
			todayTransactions = append(todayTransactions, t)
		}
	}

	return &DailyPacingResult{
		DailyLimit:        pacing.DailyLimit,
		TodaySpent:        pacing.TodaySpent,
		RemainingForToday: pacing.RemainingForToday,
		Status:            pacing.Status,
		TodayTransactions: todayTransactions,
	}, nil
}
