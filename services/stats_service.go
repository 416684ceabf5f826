package services

import (
	"fmt"
	"time"

	"github.com/canteen-ops/meal-tracker/models"
	"gorm.io/gorm"
)

// MonthlyStat is one aggregation row: an employee code and the number of
// distinct calendar days with at least one claim in the month.
type MonthlyStat struct {
	Code      string `json:"code"`
	MealCount int    `json:"meal_count"`
}

// TodayClaim is one of today's claims joined with the employee's identity.
type TodayClaim struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// StatsService is read-only over claims and customers.
type StatsService struct {
	DB    *gorm.DB
	Clock Clock
}

func NewStatsService(db *gorm.DB, clock Clock) *StatsService {
	if clock == nil {
		clock = SystemClock()
	}
	return &StatsService{DB: db, Clock: clock}
}

// MonthlyStats counts distinct claim days per employee inside the given
// month, most claims first. The distinct-day count is computed here rather
// than assumed from the ledger's one-per-day rule, so stores without that
// guarantee aggregate correctly too. Ties break by code ascending to keep
// the order deterministic. A month with no claims yields an empty slice.
func (ss *StatsService) MonthlyStats(year int, month time.Month) ([]MonthlyStat, error) {
	loc := ss.Clock.Now().Location()
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var stats []MonthlyStat
	err := ss.DB.Model(&models.Order{}).
		Select("customers.code AS code, COUNT(DISTINCT DATE(orders.created_at)) AS meal_count").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", monthStart, monthEnd).
		Group("customers.code").
		Order("meal_count DESC, customers.code ASC").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate monthly stats: %w", err)
	}
	return stats, nil
}

// TodaysClaims lists the current day's claims with the employee's code and
// display name, most recent first.
func (ss *StatsService) TodaysClaims() ([]TodayClaim, error) {
	dayStart := startOfDay(ss.Clock.Now())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var claims []TodayClaim
	err := ss.DB.Model(&models.Order{}).
		Select("customers.code AS code, customers.name AS name, orders.created_at AS created_at").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", dayStart, dayEnd).
		Order("orders.created_at DESC").
		Scan(&claims).Error
	if err != nil {
		return nil, fmt.Errorf("query today's claims: %w", err)
	}
	return claims, nil
}
