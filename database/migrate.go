package database

import (
	"fmt"

	"github.com/canteen-ops/meal-tracker/models"
	"gorm.io/gorm"
)

// Migrate creates the customers, alternates and orders tables with their
// indexes. Safe to call on every start; existing tables are left alone and
// no data is seeded.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Customer{},
		&models.Alternate{},
		&models.Order{},
	)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// ClearAllData empties every table. This is the only deletion path for
// claims; child tables go first so foreign keys hold.
func ClearAllData(db *gorm.DB) error {
	for _, stmt := range []string{
		"DELETE FROM orders",
		"DELETE FROM alternates",
		"DELETE FROM customers",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("clear data: %w", err)
		}
	}
	return nil
}
