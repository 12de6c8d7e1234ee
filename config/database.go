package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/food-finder/api-go/models"
	"github.com/food-finder/api-go/utils"
)

// ConnectDatabase opens the Postgres connection for the enrichment cache.
// The cache is optional: callers may run without a database and fall back
// to per-request review generation.
func ConnectDatabase() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.EnvString("DB_HOST", "localhost"),
			utils.EnvString("DB_USER", "foodfinder"),
			os.Getenv("DB_PASSWORD"),
			utils.EnvString("DB_NAME", "foodfinder"),
			utils.EnvString("DB_PORT", "5432"))
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.PlaceEnrichment{}); err != nil {
		return nil, err
	}
	return db, nil
}

// InitDB connects and migrates, exiting on failure. Used by main when a
// database is required.
func InitDB() *gorm.DB {
	db, err := ConnectDatabase()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	return db
}
