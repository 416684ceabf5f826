package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/canteen-ops/meal-tracker/database"
	"github.com/canteen-ops/meal-tracker/models"
	"github.com/canteen-ops/meal-tracker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name, code string) models.Customer {
	t.Helper()
	customer := models.Customer{
		Name:      name,
		Code:      code,
		CreatedAt: time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func orderCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	return count
}

func TestLogMealAcceptsThenRejectsSameDay(t *testing.T) {
	db := newTestDB(t)
	seedCustomer(t, db, "Omar", "100001")
	clock := fixedClock{now: time.Date(2024, time.March, 5, 12, 30, 0, 0, time.UTC)}
	meals := NewMealService(db, clock)

	order, err := meals.LogMeal("100001")
	require.NoError(t, err)
	assert.Equal(t, clock.now, order.CreatedAt)
	assert.EqualValues(t, 1, orderCount(t, db))

	_, err = meals.LogMeal("100001")
	assert.ErrorIs(t, err, ErrAlreadyLoggedToday)
	assert.EqualValues(t, 1, orderCount(t, db), "rejected call must not write")
}

func TestLogMealInvalidCodeWritesNothing(t *testing.T) {
	db := newTestDB(t)
	seedCustomer(t, db, "Omar", "100001")
	meals := NewMealService(db, fixedClock{now: time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)})

	_, err := meals.LogMeal("999999")
	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.EqualValues(t, 0, orderCount(t, db))
}

func TestLogMealAcceptsAgainNextDay(t *testing.T) {
	db := newTestDB(t)
	seedCustomer(t, db, "Omar", "100001")

	day1 := NewMealService(db, fixedClock{now: time.Date(2024, time.March, 5, 23, 50, 0, 0, time.UTC)})
	_, err := day1.LogMeal("100001")
	require.NoError(t, err)

	day2 := NewMealService(db, fixedClock{now: time.Date(2024, time.March, 6, 0, 10, 0, 0, time.UTC)})
	_, err = day2.LogMeal("100001")
	require.NoError(t, err)

	assert.EqualValues(t, 2, orderCount(t, db))
}

func TestResolveCode(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db, "Omar", "100001")
	meals := NewMealService(db, nil)

	id, err := meals.ResolveCode("100001")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, id)

	_, err = meals.ResolveCode("10000")
	assert.ErrorIs(t, err, ErrInvalidCode, "no partial matching")
}
