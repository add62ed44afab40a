package controllers

import (
	"github.com/gin-gonic/gin"
	"trotter/internal/services"
	"trotter/pkg/utils"
)

type ExploreController struct {
	exploreService services.ExploreServiceInterface
}

func NewExploreController(exploreService services.ExploreServiceInterface) *ExploreController {
	return &ExploreController{
		exploreService: exploreService,
	}
}

// SearchCities godoc
// @Summary City autocomplete
// @Tags Explore
// @Produce json
// @Param namePrefix query string true "City name prefix"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /explore/search-cities [get]
func (e *ExploreController) SearchCities(c *gin.Context) {
	cities, err := e.exploreService.SearchCities(c.Request.Context(), c.Query("namePrefix"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// CurrentWeather godoc
// @Summary Current weather for a city
// @Tags Explore
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /explore/current-weather [get]
func (e *ExploreController) CurrentWeather(c *gin.Context) {
	weather, err := e.exploreService.CurrentWeather(c.Request.Context(), c.Query("city"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, weather, "Weather fetched successfully")
}

// SearchImages godoc
// @Summary Cover image search for a destination
// @Tags Explore
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /explore/search-images [get]
func (e *ExploreController) SearchImages(c *gin.Context) {
	images, err := e.exploreService.SearchImages(c.Request.Context(), c.Query("query"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, images, "Images fetched successfully")
}
