// Package engine implements the budget allocation and pacing arithmetic.
// Everything in this package is a pure function of its inputs: callers fetch
// the snapshot and ledger entries, the engine only does the math.
package engine

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidGoalDuration is returned when a goal's duration is zero or
// negative months. Callers are expected to validate input before persisting
// anything; the allocation never divides by a non-positive duration.
var ErrInvalidGoalDuration = errors.New("goal duration must be a positive number of months")

// CommitmentInput is a fixed monthly obligation as submitted at onboarding.
type CommitmentInput struct {
	Name   string
	Amount float64
}

// GoalInput is a savings target as submitted at onboarding.
type GoalInput struct {
	Name         string
	TargetAmount float64
	Months       int
}

// GoalAllocation is a goal with its derived monthly contribution and deadline.
type GoalAllocation struct {
	Name                string
	TargetAmount        float64
	MonthlyContribution float64
	Deadline            time.Time
}

// Allocation is the computed monthly budget split: the totals that make up a
// budget snapshot plus the per-goal contribution plan.
type Allocation struct {
	MonthlyIncome          float64
	TotalCommitments       float64
	TotalGoalAllocations   float64
	InitialSpendableAmount float64
	Goals                  []GoalAllocation
}

// ComputeAllocation derives the initial budget partition from raw onboarding
// input. Each goal contributes ceil(target/months) per month; rounding up
// deliberately biases the plan toward over-saving. The spendable amount is
// not floored at zero: a negative result means the user is over-committed
// before spending anything, and that signal is preserved.
func ComputeAllocation(income float64, commitments []CommitmentInput, goals []GoalInput, now time.Time) (*Allocation, error) {
	var totalCommitments float64
	for _, c := range commitments {
		totalCommitments += c.Amount
	}

	var totalGoalAllocations float64
	goalAllocs := make([]GoalAllocation, 0, len(goals))
	for _, g := range goals {
		if g.Months <= 0 {
			return nil, ErrInvalidGoalDuration
		}
		contribution := math.Ceil(g.TargetAmount / float64(g.Months))
		totalGoalAllocations += contribution
		goalAllocs = append(goalAllocs, GoalAllocation{
			Name:                g.Name,
			TargetAmount:        g.TargetAmount,
			MonthlyContribution: contribution,
			Deadline:            now.AddDate(0, g.Months, 0),
		})
	}

	return &Allocation{
		MonthlyIncome:          income,
		TotalCommitments:       totalCommitments,
		TotalGoalAllocations:   totalGoalAllocations,
		InitialSpendableAmount: income - totalCommitments - totalGoalAllocations,
		Goals:                  goalAllocs,
	}, nil
}
