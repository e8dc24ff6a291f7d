package engine

import "time"

// DailyStatus indicates whether today's spend is within today's limit.
type DailyStatus string

const (
	StatusSafe      DailyStatus = "SAFE"
	StatusOverspent DailyStatus = "OVERSPENT"
)

// Entry is a ledger entry as seen by the pacing math: a date and a debit
// magnitude. Every entry handed to the engine counts toward spend; the
// caller decides what to fetch.
type Entry struct {
	Date   time.Time
	Amount float64
}

// MonthlyPacing is the month-granularity pacing result. DailySafeSpend is the
// flat per-day allowance if the remaining budget were spent evenly across the
// remaining days of the month; it goes negative when the user has overspent.
type MonthlyPacing struct {
	TotalSpent         float64
	RemainingSpendable float64
	DailySafeSpend     float64
	DaysLeft           int
}

// DailyPacing is the day-granularity pacing result. DailyLimit is the whole
// day's allowance independent of what was already spent today, so
// RemainingForToday = DailyLimit - TodaySpent never double-subtracts.
type DailyPacing struct {
	DailyLimit        float64
	TodaySpent        float64
	RemainingForToday float64
	Status            DailyStatus
}

// ComputeMonthlyPacing recomputes the month's pacing from first principles:
// no running totals, no caching, just a sum over the month-to-date entries.
// The result re-paces automatically after every new entry or day boundary.
func ComputeMonthlyPacing(initialSpendable float64, monthEntries []Entry, now time.Time) MonthlyPacing {
	var totalSpent float64
	for _, e := range monthEntries {
		totalSpent += e.Amount
	}

	daysLeft := DaysInMonth(now) - now.Day() + 1 // inclusive of today
	remaining := initialSpendable - totalSpent

	var dailySafeSpend float64
	if daysLeft > 0 {
		dailySafeSpend = remaining / float64(daysLeft)
	}

	return MonthlyPacing{
		TotalSpent:         totalSpent,
		RemainingSpendable: remaining,
		DailySafeSpend:     dailySafeSpend,
		DaysLeft:           daysLeft,
	}
}

// ComputeDailyPacing derives today's spending cap from the month-to-date
// entries. TodaySpent is added back into the numerator because the limit
// covers the whole day, including what has already been spent.
func ComputeDailyPacing(initialSpendable float64, monthEntries []Entry, now time.Time) DailyPacing {
	var monthlySpent, todaySpent float64
	startOfToday := StartOfDay(now)
	for _, e := range monthEntries {
		monthlySpent += e.Amount
		if !e.Date.Before(startOfToday) {
			todaySpent += e.Amount
		}
	}

	daysLeft := DaysInMonth(now) - now.Day() + 1
	totalRemaining := initialSpendable - monthlySpent

	var dailyLimit float64
	if daysLeft > 0 {
		dailyLimit = (totalRemaining + todaySpent) / float64(daysLeft)
	}

	status := StatusSafe
	if todaySpent > dailyLimit {
		status = StatusOverspent
	}

	return DailyPacing{
		DailyLimit:        dailyLimit,
		TodaySpent:        todaySpent,
		RemainingForToday: dailyLimit - todaySpent,
		Status:            status,
	}
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfDay returns midnight on t's day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
