package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/food-finder/api-go/config"
	"github.com/food-finder/api-go/filter"
	"github.com/food-finder/api-go/geo"
	"github.com/food-finder/api-go/places"
	"github.com/food-finder/api-go/search"
	"github.com/food-finder/api-go/types"
)

type SearchController struct {
	Aggregator *search.Aggregator
	Enricher   *places.Enricher
	Config     *config.AppConfig
}

func NewSearchController(aggregator *search.Aggregator, enricher *places.Enricher, cfg *config.AppConfig) *SearchController {
	return &SearchController{
		Aggregator: aggregator,
		Enricher:   enricher,
		Config:     cfg,
	}
}

type Viewport struct {
	NorthEast types.LatLng `json:"northEast"`
	SouthWest types.LatLng `json:"southWest"`
}

type SearchBody struct {
	Center       *types.LatLng         `json:"center"`
	Viewport     *Viewport             `json:"viewport"`
	Categories   []string              `json:"categories"`
	RadiusMeters float64               `json:"radiusMeters"`
	Criteria     *types.FilterCriteria `json:"criteria"`
	SortBy       types.SortKey         `json:"sortBy"`
}

// Search runs the whole pipeline: aggregate, enrich, filter, sort. The
// ordered set plus counts goes back to the rendering client.
func (sc *SearchController) Search(c *gin.Context) {
	var body SearchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search request: " + err.Error()})
		return
	}

	center, radius, ok := sc.resolveArea(body)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "center or viewport is required"})
		return
	}

	categories := body.Categories
	if len(categories) == 0 {
		categories = sc.Config.DefaultCategories
	}

	results, err := sc.Aggregator.Search(c.Request.Context(), types.SearchRequest{
		Center:           center,
		Categories:       categories,
		BaseRadiusMeters: radius,
	})
	if err != nil {
		if errors.Is(err, types.ErrEmptyResult) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	enriched := sc.Enricher.EnrichAll(c.Request.Context(), results)

	criteria := types.FilterCriteria{}
	if body.Criteria != nil {
		criteria = *body.Criteria
	}
	filtered := filter.Apply(enriched, criteria)

	// The request center doubles as the reference point, so distance
	// ordering can never be missing one here.
	sorted, err := filter.Sort(filtered, body.SortBy, &center)
	if err != nil {
		sorted = filtered
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    sorted,
		Meta: ResultsMeta{
			TotalResults:    len(enriched),
			FilteredResults: len(sorted),
			RadiusMeters:    radius,
		},
	})
}

// resolveArea picks the search center and base radius: an explicit radius
// wins, then a viewport-derived one, then the configured default.
func (sc *SearchController) resolveArea(body SearchBody) (types.LatLng, float64, bool) {
	var center types.LatLng
	switch {
	case body.Center != nil:
		center = *body.Center
	case body.Viewport != nil:
		center = types.LatLng{
			Lat: (body.Viewport.NorthEast.Lat + body.Viewport.SouthWest.Lat) / 2,
			Lng: (body.Viewport.NorthEast.Lng + body.Viewport.SouthWest.Lng) / 2,
		}
	default:
		return types.LatLng{}, 0, false
	}

	radius := body.RadiusMeters
	if radius <= 0 && body.Viewport != nil {
		radius = geo.RadiusFromViewport(body.Viewport.NorthEast, body.Viewport.SouthWest)
	}
	if radius <= 0 {
		radius = sc.Config.DefaultSearchRadiusMeters
	}
	return center, radius, true
}
