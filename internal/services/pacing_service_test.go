package services

import (
	"testing"
	"time"

	"safespend/internal/engine"
	"safespend/internal/testutil"
)

func TestPacingService_GetDashboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPacingService(db)

	t.Run("returns not found without a snapshot", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		_, err := svc.GetDashboard(user.ID, time.Now())
		testutil.AssertAppError(t, err, "NO_BUDGET_CONFIGURED")
	})

	t.Run("recomputes month pacing from ledger entries", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestSnapshot(t, db, user.ID, 30000)

		// June 2025 has 30 days; on the 15th there are 16 days left inclusive.
		now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
		testutil.CreateTestSpend(t, db, user.ID, 5000, time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC))
		testutil.CreateTestSpend(t, db, user.ID, 4000, time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC))

		result, err := svc.GetDashboard(user.ID, now)
		testutil.AssertNoError(t, err)

		if result.Status.TotalSpent != 9000 {
			t.Errorf("expected total spent 9000, got %v", result.Status.TotalSpent)
		}
		if result.Status.RemainingSpendable != 21000 {
			t.Errorf("expected remaining 21000, got %v", result.Status.RemainingSpendable)
		}
		if result.Status.DaysLeft != 16 {
			t.Errorf("expected 16 days left, got %d", result.Status.DaysLeft)
		}
		if result.Status.DailySafeSpend != 1312.5 {
			t.Errorf("expected daily safe spend 1312.5, got %v", result.Status.DailySafeSpend)
		}
		if result.Budget.InitialSpendable != 30000 {
			t.Errorf("expected initial spendable 30000, got %v", result.Budget.InitialSpendable)
		}
	})

	t.Run("ignores entries from previous months", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestSnapshot(t, db, user.ID, 10000)

		now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
		testutil.CreateTestSpend(t, db, user.ID, 999, time.Date(2025, 5, 28, 9, 0, 0, 0, time.UTC))
		testutil.CreateTestSpend(t, db, user.ID, 100, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

		result, err := svc.GetDashboard(user.ID, now)
		testutil.AssertNoError(t, err)

		if result.Status.TotalSpent != 100 {
			t.Errorf("expected only this month's 100, got %v", result.Status.TotalSpent)
		}
	})

	t.Run("caps recent transactions at five, newest first", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestSnapshot(t, db, user.ID, 10000)

		now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
		for day := 1; day <= 7; day++ {
			testutil.CreateTestSpend(t, db, user.ID, 100, time.Date(2025, 6, day, 12, 0, 0, 0, time.UTC))
		}

		result, err := svc.GetDashboard(user.ID, now)
		testutil.AssertNoError(t, err)

		if len(result.RecentTransactions) != 5 {
			t.Fatalf("expected 5 recent transactions, got %d", len(result.RecentTransactions))
		}
		if result.RecentTransactions[0].Date.Day() != 7 {
			t.Errorf("expected newest entry first, got day %d", result.RecentTransactions[0].Date.Day())
		}
	})

	t.Run("goes negative when spend exceeds the budget", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestSnapshot(t, db, user.ID, 1000)

		now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
		testutil.CreateTestSpend(t, db, user.ID, 1800, time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC))

		result, err := svc.GetDashboard(user.ID, now)
		testutil.AssertNoError(t, err)

		if result.Status.RemainingSpendable != -800 {
			t.Errorf("expected remaining -800, got %v", result.Status.RemainingSpendable)
		}
		if result.Status.DailySafeSpend != -50 {
			t.Errorf("expected daily safe spend -50, got %v", result.Status.DailySafeSpend)
		}
	})
}

func TestPacingService_GetDailyPacing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPacingService(db)

	t.Run("returns not found without a snapshot", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		_, err := svc.GetDailyPacing(user.ID, time.Now())
		testutil.AssertAppError(t, err, "NO_BUDGET_CONFIGURED")
	})

	t.Run("stays safe while under today's limit", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestSnapshot(t, db, user.ID, 1200)

		// June 26 leaves 5 days inclusive. Today's spend is added back into
		// the numerator, so the limit is (1000 + 200) / 5 = 240.
		now := time.Date(2025, 6, 26, 14, 0, 0, 0, time.UTC)
		testutil.CreateTestSpend(t, db, user.ID, 200, time.Date(2025, 6, 26, 9, 0, 0, 0, time.UTC))

		result, err := svc.GetDailyPacing(user.ID, now)
		testutil.AssertNoError(t, err)

		if result.DailyLimit != 240 {
			t.Errorf("expected daily limit 240, got %v", result.DailyLimit)
		}
		if result.TodaySpent != 200 {
			t.Errorf("expected today spent 200, got %v", result.TodaySpent)
		}
		if result.RemainingForToday != 40 {
			t.Errorf("expected remaining 40, got %v", result.RemainingForToday)
		}
		if result.Status != engine.StatusSafe {
			t.Errorf("expected SAFE, got %v", result.Status)
		}
		if len(result.TodayTransactions) != 1 {
			t.Errorf("expected 1 entry today, got %d", len(result.TodayTransactions))
		}
	})

	t.Run("flips to overspent past today's limit", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestSnapshot(t, db, user.ID, 1200)

		now := time.Date(2025, 6, 26, 14, 0, 0, 0, time.UTC)
		testutil.CreateTestSpend(t, db, user.ID, 300, time.Date(2025, 6, 26, 9, 0, 0, 0, time.UTC))

		result, err := svc.GetDailyPacing(user.ID, now)
		testutil.AssertNoError(t, err)

		if result.DailyLimit != 240 {
			t.Errorf("expected daily limit 240, got %v", result.DailyLimit)
		}
		if result.Status != engine.StatusOverspent {
			t.Errorf("expected OVERSPENT, got %v", result.Status)
		}
		if result.RemainingForToday != -60 {
			t.Errorf("expected remaining -60, got %v", result.RemainingForToday)
		}
	})

	t.Run("partitions yesterday's entries out of today", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestSnapshot(t, db, user.ID, 5000)

		now := time.Date(2025, 6, 26, 14, 0, 0, 0, time.UTC)
		testutil.CreateTestSpend(t, db, user.ID, 400, time.Date(2025, 6, 25, 23, 0, 0, 0, time.UTC))
		testutil.CreateTestSpend(t, db, user.ID, 150, time.Date(2025, 6, 26, 0, 30, 0, 0, time.UTC))

		result, err := svc.GetDailyPacing(user.ID, now)
		testutil.AssertNoError(t, err)

		if result.TodaySpent != 150 {
			t.Errorf("expected today spent 150, got %v", result.TodaySpent)
		}
		if len(result.TodayTransactions) != 1 {
			t.Errorf("expected 1 entry today, got %d", len(result.TodayTransactions))
		}
	})
}
