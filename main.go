package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/food-finder/api-go/config"
	"github.com/food-finder/api-go/places"
	"github.com/food-finder/api-go/routes"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.GoogleMapsAPIKey == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	provider, err := places.NewGoogleProvider(cfg.GoogleMapsAPIKey)
	if err != nil {
		log.Fatal("Failed to create places provider:", err)
	}

	// The enrichment cache is optional; run without it when no database
	// is reachable.
	db, err := config.ConnectDatabase()
	if err != nil {
		log.Printf("Running without enrichment cache: %v", err)
	}

	r := gin.Default()
	routes.SetupRoutes(r, db, cfg, provider, nil)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
