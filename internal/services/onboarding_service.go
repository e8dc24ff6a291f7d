package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"safespend/internal/engine"
	apperrors "safespend/internal/errors"
	"safespend/internal/models"
)

// onboardingService turns raw onboarding input into the persisted budget
// partition: commitments, goals, and the single budget snapshot.
type onboardingService struct {
	db *gorm.DB
}

// NewOnboardingService creates a new OnboardingServicer.
func NewOnboardingService(db *gorm.DB) OnboardingServicer {
	return &onboardingService{db: db}
}

// CompleteOnboarding validates the input, runs the allocation calculator, and
// replaces the user's commitments, goals, and budget snapshot wholesale in a
// single database transaction. Re-onboarding never merges with what was there
// before: afterwards exactly the submitted set exists.
func (s *onboardingService) CompleteOnboarding(
	userID uint,
	income float64,
	commitments []CommitmentInput,
	goals []GoalInput,
) (*OnboardingResult, error) {
	if income < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income must not be negative")
	}
	for _, c := range commitments {
		if c.Amount < 0 {
			return nil, apperrors.ErrInvalidCommitment
		}
	}
	for _, g := range goals {
		if g.Months <= 0 {
			return nil, apperrors.ErrInvalidGoalDuration
		}
		if g.TargetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal target amount must be greater than zero")
		}
	}

	now := time.Now()

	engineCommitments := make([]engine.CommitmentInput, 0, len(commitments))
	for _, c := range commitments {
		engineCommitments = append(engineCommitments, engine.CommitmentInput{Name: c.Name, Amount: c.Amount})
	}
	engineGoals := make([]engine.GoalInput, 0, len(goals))
	for _, g := range goals {
		engineGoals = append(engineGoals, engine.GoalInput{Name: g.Name, TargetAmount: g.TargetAmount, Months: g.Months})
	}

	alloc, err := engine.ComputeAllocation(income, engineCommitments, engineGoals, now)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidGoalDuration) {
			return nil, apperrors.ErrInvalidGoalDuration
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	commitmentRecords := make([]models.Commitment, 0, len(commitments))
	for _, c := range commitments {
		commitmentRecords = append(commitmentRecords, models.Commitment{
			UserID:          userID,
			Name:            c.Name,
			Amount:          c.Amount,
			Type:            c.Type,
			DueDay:          c.DueDay,
			EndDate:         c.EndDate,
			RemainingMonths: c.RemainingMonths,
		})
	}

	goalRecords := make([]models.Goal, 0, len(alloc.Goals))
	for _, g := range alloc.Goals {
		goalRecords = append(goalRecords, models.Goal{
			UserID:              userID,
			Name:                g.Name,
			TargetAmount:        g.TargetAmount,
			SavedAmount:         0,
			MonthlyContribution: g.MonthlyContribution,
			Deadline:            g.Deadline,
		})
	}

	snapshot := &models.BudgetSnapshot{
		UserID:                 userID,
		MonthlyIncome:          alloc.MonthlyIncome,
		TotalCommitments:       alloc.TotalCommitments,
		TotalGoalAllocations:   alloc.TotalGoalAllocations,
		InitialSpendableAmount: alloc.InitialSpendableAmount,
		LastUpdated:            now,
	}

	// The replace must be all-or-nothing: a concurrent read may see the old
	// set or the new set, never a mix.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Commitment{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Goal{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if len(commitmentRecords) > 0 {
			if err := tx.Create(&commitmentRecords).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if len(goalRecords) > 0 {
			if err := tx.Create(&goalRecords).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"monthly_income",
				"total_commitments",
				"total_goal_allocations",
				"initial_spendable_amount",
				"last_updated",
				"updated_at",
			}),
		}).Create(snapshot).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("is_onboarding_complete", true).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Re-read the snapshot so the result carries the row's identity even
	// when the upsert updated an existing record.
	var stored models.BudgetSnapshot
	if err := s.db.Where("user_id = ?", userID).First(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &OnboardingResult{
		Snapshot:    &stored,
		Commitments: commitmentRecords,
		Goals:       goalRecords,
	}, nil
}
