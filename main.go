package main

import (
	"log"
	"os"

	"github.com/canteen-ops/meal-tracker/config"
	"github.com/canteen-ops/meal-tracker/database"
	"github.com/canteen-ops/meal-tracker/router"
	"github.com/canteen-ops/meal-tracker/services"
	"github.com/canteen-ops/meal-tracker/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate schema: %v", err)
	}
	utils.InfoLogger.Println("Schema migration completed")

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(db, services.SystemClock(), config.ExportDir())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
