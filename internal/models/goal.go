package models

import "time"

// Goal is a savings target. MonthlyContribution is fixed at onboarding as
// ceil(TargetAmount / months) and is not recomputed as months elapse;
// SavedAmount accrues outside the pacing engine.
type Goal struct {
	Base
	UserID              uint      `gorm:"not null;index" json:"user_id"`
	Name                string    `gorm:"not null" json:"name"`
	TargetAmount        float64   `gorm:"not null" json:"target_amount"`
	SavedAmount         float64   `gorm:"default:0" json:"saved_amount"`
	MonthlyContribution float64   `gorm:"not null" json:"monthly_contribution"`
	Deadline            time.Time `gorm:"not null" json:"deadline"`
}
