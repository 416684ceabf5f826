package services

import (
	"errors"
	"fmt"

	"github.com/canteen-ops/meal-tracker/models"
	"github.com/canteen-ops/meal-tracker/utils"
	"gorm.io/gorm"
)

// MealService resolves employee codes and owns all writes to the claim
// ledger.
type MealService struct {
	DB    *gorm.DB
	Clock Clock
}

func NewMealService(db *gorm.DB, clock Clock) *MealService {
	if clock == nil {
		clock = SystemClock()
	}
	return &MealService{DB: db, Clock: clock}
}

// ResolveCode maps an operator-entered code to the internal customer id.
// Exact match only, no fuzzy lookup; an unknown code rejects with
// ErrInvalidCode instead of creating anything.
func (ms *MealService) ResolveCode(code string) (uint, error) {
	var customer models.Customer
	err := ms.DB.Select("id").Where("code = ?", code).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrInvalidCode
	}
	if err != nil {
		return 0, fmt.Errorf("resolve code: %w", err)
	}
	return customer.ID, nil
}

// LogMeal records one meal claim for today. At most one claim may exist per
// employee per calendar day; a repeat attempt on the same day rejects with
// ErrAlreadyLoggedToday and writes nothing.
//
// The count-then-insert sequence assumes a single attendant terminal.
// Deployments with concurrent writers must move the uniqueness into a
// storage constraint on (customer_id, claim date) and map the conflict to
// ErrAlreadyLoggedToday.
func (ms *MealService) LogMeal(code string) (*models.Order, error) {
	customerID, err := ms.ResolveCode(code)
	if err != nil {
		return nil, err
	}

	now := ms.Clock.Now()
	dayStart := startOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int64
	err = ms.DB.Model(&models.Order{}).
		Where("customer_id = ? AND created_at >= ? AND created_at < ?", customerID, dayStart, dayEnd).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check today's claims: %w", err)
	}
	if count > 0 {
		return nil, ErrAlreadyLoggedToday
	}

	order := models.Order{
		CustomerID: customerID,
		CreatedAt:  now,
	}
	if err := ms.DB.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("insert claim: %w", err)
	}

	utils.InfoLogger.Printf("Meal logged for employee code %s (customer_id=%d)", code, customerID)
	return &order, nil
}
