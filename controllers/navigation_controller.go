package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/food-finder/api-go/search"
	"github.com/food-finder/api-go/types"
)

type NavigationController struct {
	Resolver *search.Resolver
}

func NewNavigationController(resolver *search.Resolver) *NavigationController {
	return &NavigationController{Resolver: resolver}
}

// Navigate resolves a free-text query to a single location the client
// can recenter on.
func (nc *NavigationController) Navigate(c *gin.Context) {
	result, err := nc.Resolver.Resolve(c.Request.Context(), c.Query("q"))
	if err != nil {
		switch {
		case errors.Is(err, types.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, types.ErrNoLocationData):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    result,
	})
}
