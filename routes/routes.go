package routes

import (
	"math/rand"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/food-finder/api-go/config"
	"github.com/food-finder/api-go/controllers"
	"github.com/food-finder/api-go/middleware"
	"github.com/food-finder/api-go/models"
	"github.com/food-finder/api-go/places"
	"github.com/food-finder/api-go/search"
)

// SetupRoutes wires the pipeline together and registers the API surface.
// db may be nil, in which case review sets are generated per request
// instead of being cached.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.AppConfig, provider places.Provider, rng *rand.Rand) {
	var store places.ReviewStore
	if db != nil {
		store = models.NewEnrichmentStore(db)
	}

	aggregator := search.NewAggregator(provider)
	resolver := search.NewResolver(provider)
	enricher := places.NewEnricher(provider, store, cfg.DefaultKeyword, rng)

	searchController := controllers.NewSearchController(aggregator, enricher, cfg)
	navigationController := controllers.NewNavigationController(resolver)
	placeController := controllers.NewPlaceController(cfg)

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	api := r.Group("/api")
	{
		api.POST("/search", searchController.Search)
		api.GET("/navigate", navigationController.Navigate)
		SetupPlaceRoutes(api, placeController)
	}
}
