package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/canteen-ops/meal-tracker/models"
	"github.com/canteen-ops/meal-tracker/utils"
	"gorm.io/gorm"
)

// RosterService loads and inserts employee records.
type RosterService struct {
	DB    *gorm.DB
	Clock Clock
}

func NewRosterService(db *gorm.DB, clock Clock) *RosterService {
	if clock == nil {
		clock = SystemClock()
	}
	return &RosterService{DB: db, Clock: clock}
}

// AddCustomer inserts a single employee. The code must be exactly six
// characters and not already in use; a conflict rejects with ErrCodeTaken
// and inserts nothing.
func (rs *RosterService) AddCustomer(name, code string) (*models.Customer, error) {
	if len(code) != 6 {
		return nil, ErrCodeFormat
	}

	var count int64
	err := rs.DB.Model(&models.Customer{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check code availability: %w", err)
	}
	if count > 0 {
		return nil, ErrCodeTaken
	}

	customer := models.Customer{
		Name:      name,
		Code:      code,
		CreatedAt: rs.Clock.Now(),
	}
	if err := rs.DB.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return &customer, nil
}

// ImportCSV loads employees from a delimited file with name and code
// columns. Rows whose code is already taken, and rows that fail to parse,
// are skipped and tallied; a bad row never aborts the rest of the import.
func (rs *RosterService) ImportCSV(r io.Reader) (imported, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("read roster header: %w", err)
	}
	nameIdx, codeIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name":
			nameIdx = i
		case "code":
			codeIdx = i
		}
	}
	if nameIdx < 0 || codeIdx < 0 {
		return 0, 0, fmt.Errorf("roster header needs name and code columns, got %v", header)
	}

	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			skipped++
			continue
		}
		if len(record) <= nameIdx || len(record) <= codeIdx {
			skipped++
			continue
		}
		name := strings.TrimSpace(record[nameIdx])
		code := strings.TrimSpace(record[codeIdx])
		if name == "" || code == "" {
			skipped++
			continue
		}
		if _, addErr := rs.AddCustomer(name, code); addErr != nil {
			skipped++
			continue
		}
		imported++
	}

	utils.InfoLogger.Printf("Roster import finished: %d imported, %d skipped", imported, skipped)
	return imported, skipped, nil
}

// ImportCSVFile is ImportCSV over a file on disk.
func (rs *RosterService) ImportCSVFile(path string) (imported, skipped int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open roster file %s: %w", path, err)
	}
	defer file.Close()
	return rs.ImportCSV(file)
}
