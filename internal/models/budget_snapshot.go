package models

import "time"

// BudgetSnapshot is the single authoritative budget record per user. It is
// written wholesale at onboarding and only read afterwards; the pacing
// engine derives everything else from it on every request.
//
// InitialSpendableAmount is always recomputed as
// MonthlyIncome - TotalCommitments - TotalGoalAllocations and may be
// negative when the user is over-committed.
type BudgetSnapshot struct {
	Base
	UserID                 uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	MonthlyIncome          float64   `gorm:"not null" json:"monthly_income"`
	TotalCommitments       float64   `gorm:"default:0" json:"total_commitments"`
	TotalGoalAllocations   float64   `gorm:"default:0" json:"total_goal_allocations"`
	InitialSpendableAmount float64   `gorm:"default:0" json:"initial_spendable_amount"`
	Currency               string    `gorm:"default:INR" json:"currency"`
	LastUpdated            time.Time `json:"last_updated"`
}
