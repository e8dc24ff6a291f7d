package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"safespend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestSnapshot creates a budget snapshot with the given spendable amount.
// Income and commitments are back-filled so the snapshot invariant holds.
func CreateTestSnapshot(t *testing.T, db *gorm.DB, userID uint, spendable float64) *models.BudgetSnapshot {
	t.Helper()

	snapshot := &models.BudgetSnapshot{
		UserID:                 userID,
		MonthlyIncome:          spendable + 20000,
		TotalCommitments:       15000,
		TotalGoalAllocations:   5000,
		InitialSpendableAmount: spendable,
		Currency:               "INR",
		LastUpdated:            time.Now(),
	}
	if err := db.Create(snapshot).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return snapshot
}

// CreateTestCommitment creates a bill commitment with the given amount.
func CreateTestCommitment(t *testing.T, db *gorm.DB, userID uint, amount float64) *models.Commitment {
	t.Helper()

	commitment := &models.Commitment{
		UserID: userID,
		Name:   fmt.Sprintf("Test Bill %d", nextID()),
		Amount: amount,
		Type:   models.CommitmentTypeBill,
	}
	if err := db.Create(commitment).Error; err != nil {
		t.Fatalf("failed to create test commitment: %v", err)
	}
	return commitment
}

// CreateTestGoal creates a goal with the given target and contribution.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, target, contribution float64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:              userID,
		Name:                fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:        target,
		MonthlyContribution: contribution,
		Deadline:            time.Now().AddDate(0, 6, 0),
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestSpend creates a debit ledger entry on the given date.
func CreateTestSpend(t *testing.T, db *gorm.DB, userID uint, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:      userID,
		Reference:   fmt.Sprintf("test-ref-%d", nextID()),
		Date:        date,
		Amount:      amount,
		Description: fmt.Sprintf("Test Spend %d", nextID()),
		Category:    "Food",
		Type:        models.TransactionTypeDebit,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}
