package models

import "time"

// CommitmentType classifies a fixed recurring obligation
type CommitmentType string

const (
	CommitmentTypeBill         CommitmentType = "bill"
	CommitmentTypeEMI          CommitmentType = "emi"
	CommitmentTypeSubscription CommitmentType = "subscription"
)

// Commitment is a fixed recurring monthly obligation subtracted from income
// before any discretionary spending is computed. Commitments are replaced
// wholesale on re-onboarding, never edited in place.
type Commitment struct {
	Base
	UserID uint           `gorm:"not null;index" json:"user_id"`
	Name   string         `gorm:"not null" json:"name"`
	Amount float64        `gorm:"not null" json:"amount"`
	Type   CommitmentType `gorm:"not null" json:"type"`

	// EMI bookkeeping
	EndDate         *time.Time `json:"end_date,omitempty"`
	RemainingMonths *int       `json:"remaining_months,omitempty"`

	// Day of month (1-31) a bill or subscription falls due
	DueDay *int `json:"due_day,omitempty"`
}
