package services

import (
	"time"

	"safespend/internal/engine"
	"safespend/internal/models"
	"safespend/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// CommitmentInput is a fixed monthly obligation submitted at onboarding.
type CommitmentInput struct {
	Name            string
	Amount          float64
	Type            models.CommitmentType
	DueDay          *int
	EndDate         *time.Time
	RemainingMonths *int
}

// GoalInput is a savings target submitted at onboarding.
type GoalInput struct {
	Name         string
	TargetAmount float64
	Months       int
}

// OnboardingResult is everything persisted by a completed onboarding.
type OnboardingResult struct {
	Snapshot    *models.BudgetSnapshot `json:"snapshot"`
	Commitments []models.Commitment    `json:"commitments"`
	Goals       []models.Goal          `json:"goals"`
}

// OnboardingServicer defines the contract for the onboarding allocation flow.
type OnboardingServicer interface {
	CompleteOnboarding(userID uint, income float64, commitments []CommitmentInput, goals []GoalInput) (*OnboardingResult, error)
}

// BudgetOverview is the static part of the dashboard: the snapshot totals.
type BudgetOverview struct {
	Income           float64 `json:"income"`
	Committed        float64 `json:"committed"`
	InitialSpendable float64 `json:"initial_spendable"`
	Currency         string  `json:"currency"`
}

// PacingStatus is the live month-granularity pacing state.
type PacingStatus struct {
	TotalSpent         float64 `json:"total_spent"`
	RemainingSpendable float64 `json:"remaining_spendable"`
	DailySafeSpend     float64 `json:"daily_safe_spend"`
	DaysLeft           int     `json:"days_left"`
}

// DashboardResult is the full dashboard payload.
type DashboardResult struct {
	Budget             BudgetOverview       `json:"budget"`
	Status             PacingStatus         `json:"status"`
	Goals              []models.Goal        `json:"goals"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
}

// DailyPacingResult is the day-granularity pacing payload.
type DailyPacingResult struct {
	DailyLimit        float64              `json:"daily_limit"`
	TodaySpent        float64              `json:"today_spent"`
	RemainingForToday float64              `json:"remaining_for_today"`
	Status            engine.DailyStatus   `json:"status"`
	TodayTransactions []models.Transaction `json:"today_transactions"`
}

// PacingServicer defines the contract for the live pacing views. Both
// operations are read-only: they fetch the snapshot and the month's ledger
// entries and hand the math to the engine.
type PacingServicer interface {
	GetDashboard(userID uint, now time.Time) (*DashboardResult, error)
	GetDailyPacing(userID uint, now time.Time) (*DailyPacingResult, error)
}

// LedgerFilter holds optional filter parameters for listing ledger entries.
type LedgerFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Category *string
	Type     *models.TransactionType
}

// LedgerServicer defines the contract for the append-only transaction ledger.
type LedgerServicer interface {
	RecordSpend(userID uint, amount float64, category, description string, date time.Time) (*models.Transaction, error)
	ListTransactions(userID uint, page pagination.PageRequest, filter LedgerFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
}

// CategoryInsight summarizes one category's share of the month's spend.
type CategoryInsight struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	Total    float64 `json:"total"`
	Share    float64 `json:"share"`
}

// MonthInsights is a breakdown of the current month's spend by category.
type MonthInsights struct {
	TotalSpent float64           `json:"total_spent"`
	Categories []CategoryInsight `json:"categories"`
}

// InsightsServicer defines the contract for spending insights.
type InsightsServicer interface {
	GetMonthInsights(userID uint, now time.Time) (*MonthInsights, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
