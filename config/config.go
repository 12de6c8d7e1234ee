package config

import (
	"os"

	"github.com/food-finder/api-go/types"
	"github.com/food-finder/api-go/utils"
)

// AppConfig carries the recognized application settings. Every value has
// a default so the service runs with nothing but a Google API key.
type AppConfig struct {
	GoogleMapsAPIKey string
	Port             string

	DefaultSearchRadiusMeters float64
	DefaultMapCenter          types.LatLng
	DefaultCategories         []string
	DefaultKeyword            string

	// Filter defaults applied when a request leaves criteria unset.
	DefaultWeightedRatingThreshold float64
	DefaultKeywordThreshold        int

	// Display severity thresholds consumed by the rendering client,
	// not by filtering.
	HighWeightedRatingThreshold float64
	HighKeywordCountThreshold   int
}

func Load() *AppConfig {
	categories := utils.SplitList(os.Getenv("DEFAULT_CATEGORIES"))
	if len(categories) == 0 {
		categories = []string{"restaurant"}
	}

	return &AppConfig{
		GoogleMapsAPIKey:          os.Getenv("GOOGLE_MAPS_API_KEY"),
		Port:                      utils.EnvString("PORT", "8080"),
		DefaultSearchRadiusMeters: utils.EnvFloat("DEFAULT_SEARCH_RADIUS_M", 5000),
		DefaultMapCenter: types.LatLng{
			Lat: utils.EnvFloat("DEFAULT_MAP_CENTER_LAT", 40.7128),
			Lng: utils.EnvFloat("DEFAULT_MAP_CENTER_LNG", -74.0060),
		},
		DefaultCategories:              categories,
		DefaultKeyword:                 utils.EnvString("DEFAULT_KEYWORD", "food poisoning"),
		DefaultWeightedRatingThreshold: utils.EnvFloat("DEFAULT_WEIGHTED_RATING_THRESHOLD", 100),
		DefaultKeywordThreshold:        utils.EnvInt("DEFAULT_KEYWORD_THRESHOLD", 5),
		HighWeightedRatingThreshold:    utils.EnvFloat("HIGH_WEIGHTED_RATING_THRESHOLD", 200),
		HighKeywordCountThreshold:      utils.EnvInt("HIGH_KEYWORD_COUNT_THRESHOLD", 5),
	}
}
