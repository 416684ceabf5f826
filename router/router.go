package router

import (
	"github.com/canteen-ops/meal-tracker/controllers"
	"github.com/canteen-ops/meal-tracker/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the services and the routes the attendant UI calls.
func SetupRouter(db *gorm.DB, clock services.Clock, exportDir string) *gin.Engine {
	r := gin.Default()

	meals := services.NewMealService(db, clock)
	stats := services.NewStatsService(db, clock)
	export := services.NewExportService(stats, clock, exportDir)
	roster := services.NewRosterService(db, clock)
	alternates := services.NewAlternateService(db)

	mealCtrl := controllers.NewMealController(meals)
	statsCtrl := controllers.NewStatsController(stats, export, clock)
	customerCtrl := controllers.NewCustomerController(db, roster, alternates)

	r.POST("/meals", mealCtrl.LogMeal)

	r.GET("/stats/monthly", statsCtrl.GetMonthlyStats)
	r.GET("/stats/today", statsCtrl.GetTodaysClaims)
	r.POST("/stats/export", statsCtrl.ExportMonthlyStats)

	r.POST("/customers", customerCtrl.CreateCustomer)
	r.POST("/customers/import", customerCtrl.ImportRoster)
	r.GET("/customers/alternates", customerCtrl.ListAlternates)
	r.POST("/alternates", customerCtrl.CreateAlternate)

	r.DELETE("/data", customerCtrl.ClearAllData)

	return r
}
