package models

import "time"

// TransactionType represents the direction of a ledger entry
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Transaction is an append-only ledger entry. Entries are never modified
// after creation; period-to-date spend is always recomputed by summing them.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Reference   string          `gorm:"size:36;uniqueIndex" json:"reference"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Category    string          `gorm:"default:Uncategorized" json:"category"`
	Type        TransactionType `gorm:"not null" json:"type"`
	IsRecurring bool            `gorm:"default:false" json:"is_recurring"`
}
