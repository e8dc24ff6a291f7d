package services

import (
	"time"

	"gorm.io/gorm"

	"safespend/internal/engine"
	apperrors "safespend/internal/errors"
	"safespend/internal/models"
)

// insightsService aggregates the month's ledger by category.
type insightsService struct {
	db *gorm.DB
}

// NewInsightsService creates a new InsightsServicer.
func NewInsightsService(db *gorm.DB) InsightsServicer {
	return &insightsService{db: db}
}

// categoryRow is the scan target for the grouped aggregation.
type categoryRow struct {
	Category string
	Count    int64
	Total    float64
}

// GetMonthInsights returns the month-to-date spend grouped by category,
// largest first, with each category's share of the total.
func (s *insightsService) GetMonthInsights(userID uint, now time.Time) (*MonthInsights, error) {
	var rows []categoryRow
	err := s.db.Model(&models.Transaction{}).
		Select("category, COUNT(*) as count, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND date >= ?", userID, engine.StartOfMonth(now)).
		Group("category").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var totalSpent float64
	for _, r := range rows {
		totalSpent += r.Total
	}

	categories := make([]CategoryInsight, 0, len(rows))
	for _, r := range rows {
		var share float64
		if totalSpent > 0 {
			share = r.Total / totalSpent * 100
		}
		categories = append(categories, CategoryInsight{
			Category: r.Category,
			Count:    r.Count,
			Total:    r.Total,
			Share:    share,
		})
	}

	return &MonthInsights{
		TotalSpent: totalSpent,
		Categories: categories,
	}, nil
}
