package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	defaultDBPath    = "db/meal_tracker.db"
	defaultExportDir = "exports"
)

// DBPath returns the sqlite file location, overridable via MEAL_DB_PATH.
func DBPath() string {
	if path := os.Getenv("MEAL_DB_PATH"); path != "" {
		return path
	}
	return defaultDBPath
}

// ExportDir returns where spreadsheet exports land, overridable via
// MEAL_EXPORT_DIR.
func ExportDir() string {
	if dir := os.Getenv("MEAL_EXPORT_DIR"); dir != "" {
		return dir
	}
	return defaultExportDir
}

// InitDB opens the sqlite store, creating its parent directory if needed.
// A store that cannot be opened is a hard failure for the whole process.
func InitDB() (*gorm.DB, error) {
	path := DBPath()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return db, nil
}
