package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	appcache "github.com/utppedidos/backend/cache"
	"github.com/utppedidos/backend/config"
	"github.com/utppedidos/backend/database"
	"github.com/utppedidos/backend/models"
	"github.com/utppedidos/backend/router"
	"github.com/utppedidos/backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	cfg := config.Load()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed reference data: %v", err)
	}

	// Stats caching is optional; without REDIS_ADDR every read hits MySQL.
	var statsCache appcache.Cache
	if cfg.RedisAddr != "" {
		statsCache = appcache.NewRedisCache(cfg.RedisAddr, "utppedidos")
		utils.InfoLogger.Printf("Stats cache enabled via redis at %s", cfg.RedisAddr)
	}

	r := router.SetupRouter(db, statsCache)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Cafeteria{},
		&models.Schedule{},
		&models.ProductCategory{},
		&models.Product{},
		&models.Order{},
		&models.OrderDetail{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
