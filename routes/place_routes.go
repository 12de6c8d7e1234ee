package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/food-finder/api-go/controllers"
)

func SetupPlaceRoutes(api *gin.RouterGroup, placeController *controllers.PlaceController) {
	placeGroup := api.Group("/places")
	{
		placeGroup.POST("/filter", placeController.FilterPlaces)
		placeGroup.GET("/thresholds", placeController.GetThresholds)
	}
}
