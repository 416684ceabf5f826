package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/canteen-ops/meal-tracker/services"
	"github.com/canteen-ops/meal-tracker/utils"
	"github.com/gin-gonic/gin"
)

var errInvalidMonth = errors.New("month must be between 1 and 12")

type StatsController struct {
	Stats  *services.StatsService
	Export *services.ExportService
	Clock  services.Clock
}

func NewStatsController(stats *services.StatsService, export *services.ExportService, clock services.Clock) *StatsController {
	if clock == nil {
		clock = services.SystemClock()
	}
	return &StatsController{Stats: stats, Export: export, Clock: clock}
}

// GetMonthlyStats -> distinct-day claim counts for the requested month,
// defaulting to the current one
func (sc *StatsController) GetMonthlyStats(c *gin.Context) {
	year, month, ok := sc.monthParams(c)
	if !ok {
		return
	}

	stats, err := sc.Stats.MonthlyStats(year, month)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Monthly stats", stats)
}

// GetTodaysClaims -> today's claims with employee identity, newest first
func (sc *StatsController) GetTodaysClaims(c *gin.Context) {
	claims, err := sc.Stats.TodaysClaims()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Today's claims", claims)
}

// ExportMonthlyStats -> writes the month's stats to an xlsx file
func (sc *StatsController) ExportMonthlyStats(c *gin.Context) {
	year, month, ok := sc.monthParams(c)
	if !ok {
		return
	}

	filePath, err := sc.Export.ExportMonthlyStats(year, month, c.Query("filename"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Stats exported", gin.H{"file_path": filePath})
}

func (sc *StatsController) monthParams(c *gin.Context) (int, time.Month, bool) {
	now := sc.Clock.Now()
	year, month := now.Year(), now.Month()

	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return 0, 0, false
		}
		year = parsed
	}
	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			utils.RespondError(c, http.StatusBadRequest, errInvalidMonth)
			return 0, 0, false
		}
		month = time.Month(parsed)
	}
	return year, month, true
}
