package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	// Users cannot see the dashboard until onboarding has produced a
	// budget snapshot for them.
	IsOnboardingComplete bool `gorm:"default:false" json:"is_onboarding_complete"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	Commitments  []Commitment  `gorm:"foreignKey:UserID" json:"commitments,omitempty"`
	Goals        []Goal        `gorm:"foreignKey:UserID" json:"goals,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
