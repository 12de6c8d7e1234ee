package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/food-finder/api-go/config"
	"github.com/food-finder/api-go/filter"
	"github.com/food-finder/api-go/types"
)

type PlaceController struct {
	Config *config.AppConfig
}

func NewPlaceController(cfg *config.AppConfig) *PlaceController {
	return &PlaceController{Config: cfg}
}

type FilterBody struct {
	Places    []types.Place        `json:"places" binding:"required"`
	Criteria  types.FilterCriteria `json:"criteria"`
	SortBy    types.SortKey        `json:"sortBy"`
	Reference *types.LatLng        `json:"reference"`
}

// FilterPlaces re-filters and re-sorts a place set the client already
// holds, without a new provider search. The input set is left untouched
// so it stays re-filterable with different criteria.
func (pc *PlaceController) FilterPlaces(c *gin.Context) {
	var body FilterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter request: " + err.Error()})
		return
	}

	filtered := filter.Apply(body.Places, body.Criteria)

	// Distance ordering without a reference point degrades to the
	// filtered, unsorted set rather than failing the request.
	sorted, err := filter.Sort(filtered, body.SortBy, body.Reference)
	if err != nil {
		sorted = filtered
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    sorted,
		Meta: ResultsMeta{
			TotalResults:    len(body.Places),
			FilteredResults: len(sorted),
		},
	})
}

// GetThresholds returns the display thresholds the rendering client uses
// for marker severity, plus the filter defaults.
func (pc *PlaceController) GetThresholds(c *gin.Context) {
	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"defaultKeyword":                 pc.Config.DefaultKeyword,
			"defaultWeightedRatingThreshold": pc.Config.DefaultWeightedRatingThreshold,
			"defaultKeywordThreshold":        pc.Config.DefaultKeywordThreshold,
			"highWeightedRatingThreshold":    pc.Config.HighWeightedRatingThreshold,
			"highKeywordCountThreshold":      pc.Config.HighKeywordCountThreshold,
		},
	})
}
