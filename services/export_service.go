package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/canteen-ops/meal-tracker/utils"
	"github.com/xuri/excelize/v2"
)

const (
	statsSheet      = "Monthly Stats"
	headerCode      = "employee code"
	headerCount     = "meal count"
	exportedAtLabel = "exported at"
	columnPadding   = 2
)

// ExportService renders monthly aggregation results into xlsx files.
type ExportService struct {
	Stats     *StatsService
	Clock     Clock
	ExportDir string
}

func NewExportService(stats *StatsService, clock Clock, exportDir string) *ExportService {
	if clock == nil {
		clock = SystemClock()
	}
	return &ExportService{Stats: stats, Clock: clock, ExportDir: exportDir}
}

// ExportMonthlyStats writes the month's stats to a spreadsheet and returns
// its path. The filename defaults to meal_stats_<YYYY-MM>.xlsx inside the
// export directory (created if absent); an existing file with the same name
// is overwritten. The sheet carries a bold centered header row, one row per
// stat in aggregation order, and after a blank row the export timestamp.
// The file is written under a temporary name and renamed into place, so a
// failed export never leaves a partial file behind the final name.
func (es *ExportService) ExportMonthlyStats(year int, month time.Month, filename string) (string, error) {
	stats, err := es.Stats.MonthlyStats(year, month)
	if err != nil {
		return "", err
	}

	if filename == "" {
		filename = fmt.Sprintf("meal_stats_%04d-%02d.xlsx", year, int(month))
	}
	if err := os.MkdirAll(es.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory %s: %w", es.ExportDir, err)
	}
	filePath := filepath.Join(es.ExportDir, filename)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", statsSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return "", fmt.Errorf("build header style: %w", err)
	}

	if err := f.SetSheetRow(statsSheet, "A1", &[]interface{}{headerCode, headerCount}); err != nil {
		return "", fmt.Errorf("write header row: %w", err)
	}
	if err := f.SetCellStyle(statsSheet, "A1", "B1", headerStyle); err != nil {
		return "", fmt.Errorf("style header row: %w", err)
	}

	row := 2
	for _, stat := range stats {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(statsSheet, cell, &[]interface{}{stat.Code, stat.MealCount}); err != nil {
			return "", fmt.Errorf("write stats row %d: %w", row, err)
		}
		row++
	}

	// Column width follows the longest value in the column, header included.
	widthCode, widthCount := len(headerCode), len(headerCount)
	for _, stat := range stats {
		if l := len(stat.Code); l > widthCode {
			widthCode = l
		}
		if l := len(fmt.Sprint(stat.MealCount)); l > widthCount {
			widthCount = l
		}
	}
	if err := f.SetColWidth(statsSheet, "A", "A", float64(widthCode+columnPadding)); err != nil {
		return "", fmt.Errorf("size column A: %w", err)
	}
	if err := f.SetColWidth(statsSheet, "B", "B", float64(widthCount+columnPadding)); err != nil {
		return "", fmt.Errorf("size column B: %w", err)
	}

	// Blank row, then the export timestamp.
	exportedAt := es.Clock.Now().Format("2006-01-02 15:04:05")
	metaCell := fmt.Sprintf("A%d", row+1)
	if err := f.SetSheetRow(statsSheet, metaCell, &[]interface{}{exportedAtLabel, exportedAt}); err != nil {
		return "", fmt.Errorf("write export timestamp row: %w", err)
	}

	tmp, err := os.CreateTemp(es.ExportDir, filename+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temporary export file in %s: %w", es.ExportDir, err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close temporary export file %s: %w", tmpPath, err)
	}

	if err := f.SaveAs(tmpPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("write export %s: %w", filePath, err)
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("finalize export %s: %w", filePath, err)
	}

	utils.InfoLogger.Printf("Monthly stats for %04d-%02d exported to %s", year, int(month), filePath)
	return filePath, nil
}
