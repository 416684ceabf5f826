package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportMonthlyStatsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	a := seedCustomer(t, db, "Amal", "100001")
	b := seedCustomer(t, db, "Badr", "100002")
	seedClaimDays(t, db, a.ID, 2024, time.March, 3, 10, 17)
	seedClaimDays(t, db, b.ID, 2024, time.March, 1, 5, 12, 19, 26)

	clock := fixedClock{now: time.Date(2024, time.April, 1, 8, 15, 0, 0, time.UTC)}
	exportDir := t.TempDir()
	export := NewExportService(NewStatsService(db, clock), clock, exportDir)

	filePath, err := export.ExportMonthlyStats(2024, time.March, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(exportDir, "meal_stats_2024-03.xlsx"), filePath)

	f, err := excelize.OpenFile(filePath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Monthly Stats")
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, []string{"employee code", "meal count"}, rows[0])
	assert.Equal(t, []string{"100002", "5"}, rows[1])
	assert.Equal(t, []string{"100001", "3"}, rows[2])
	assert.Empty(t, rows[3], "blank row before the metadata")
	require.Len(t, rows[4], 2)
	assert.Equal(t, "exported at", rows[4][0])
	assert.Equal(t, "2024-04-01 08:15:00", rows[4][1])
}

func TestExportMonthlyStatsEmptyMonth(t *testing.T) {
	db := newTestDB(t)
	clock := fixedClock{now: time.Date(2024, time.April, 1, 8, 0, 0, 0, time.UTC)}
	export := NewExportService(NewStatsService(db, clock), clock, t.TempDir())

	filePath, err := export.ExportMonthlyStats(2024, time.March, "")
	require.NoError(t, err)

	f, err := excelize.OpenFile(filePath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Monthly Stats")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"employee code", "meal count"}, rows[0])
	assert.Empty(t, rows[1])
	assert.Equal(t, "exported at", rows[2][0])
}

func TestExportMonthlyStatsOverwritesExistingFile(t *testing.T) {
	db := newTestDB(t)
	a := seedCustomer(t, db, "Amal", "100001")
	seedClaimDays(t, db, a.ID, 2024, time.March, 3)

	clock := fixedClock{now: time.Date(2024, time.April, 1, 8, 0, 0, 0, time.UTC)}
	exportDir := t.TempDir()
	export := NewExportService(NewStatsService(db, clock), clock, exportDir)

	stale := filepath.Join(exportDir, "meal_stats_2024-03.xlsx")
	require.NoError(t, os.WriteFile(stale, []byte("not a spreadsheet"), 0o644))

	filePath, err := export.ExportMonthlyStats(2024, time.March, "")
	require.NoError(t, err)
	assert.Equal(t, stale, filePath)

	f, err := excelize.OpenFile(filePath)
	require.NoError(t, err, "stale file must be replaced with a valid workbook")
	defer f.Close()

	rows, err := f.GetRows("Monthly Stats")
	require.NoError(t, err)
	assert.Equal(t, []string{"100001", "1"}, rows[1])
}

func TestExportMonthlyStatsFilenameOverride(t *testing.T) {
	db := newTestDB(t)
	clock := fixedClock{now: time.Date(2024, time.April, 1, 8, 0, 0, 0, time.UTC)}
	exportDir := t.TempDir()
	export := NewExportService(NewStatsService(db, clock), clock, exportDir)

	filePath, err := export.ExportMonthlyStats(2024, time.March, "custom.xlsx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(exportDir, "custom.xlsx"), filePath)

	_, err = os.Stat(filePath)
	assert.NoError(t, err)
}

func TestExportMonthlyStatsCreatesExportDir(t *testing.T) {
	db := newTestDB(t)
	clock := fixedClock{now: time.Date(2024, time.April, 1, 8, 0, 0, 0, time.UTC)}
	exportDir := filepath.Join(t.TempDir(), "nested", "exports")
	export := NewExportService(NewStatsService(db, clock), clock, exportDir)

	filePath, err := export.ExportMonthlyStats(2024, time.March, "")
	require.NoError(t, err)

	entries, err := os.ReadDir(exportDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp file left behind")
	assert.Equal(t, filepath.Base(filePath), entries[0].Name())
}
