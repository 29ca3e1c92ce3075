package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"wanderwise/internal/models/request_models"
	"wanderwise/internal/services"
	"wanderwise/pkg/utils"
)

type CityController struct {
	cityService services.CityService
}

func NewCityController(cityService services.CityService) *CityController {
	return &CityController{cityService: cityService}
}

// ListCities godoc
// @Summary Search and filter cities
// @Tags Cities
// @Produce json
// @Param search query string false "Free text search"
// @Param country query string false "Country"
// @Param region query string false "Region"
// @Param costIndex query []int false "Cost index 1-5" collectionFormat(multi)
// @Param tags query []string false "Tags" collectionFormat(multi)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param sortBy query string false "popularityScore|name|costIndex|createdAt" default(popularityScore)
// @Param sortOrder query string false "asc|desc" default(desc)
// @Success 200 {object} utils.APIResponse
// @Router /cities [get]
func (cc *CityController) ListCities(c *gin.Context) {
	page, pageSize, ok := parsePaging(c, "20")
	if !ok {
		return
	}

	filter := request_models.CityFilter{
		Search:   c.Query("search"),
		Country:  c.Query("country"),
		Region:   c.Query("region"),
		Tags:     queryList(c, "tags"),
		SortBy:   c.DefaultQuery("sortBy", "popularityScore"),
		SortDesc: sortDesc(c),
		Page:     page,
		PageSize: pageSize,
	}
	for _, raw := range queryList(c, "costIndex") {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 5 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid cost index (must be 1-5)")
			return
		}
		filter.CostIndex = append(filter.CostIndex, v)
	}

	cities, err := cc.cityService.ListCities(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCity godoc
// @Summary City details with its activities
// @Tags Cities
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cities/{id} [get]
func (cc *CityController) GetCity(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	city, err := cc.cityService.GetCity(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City fetched successfully")
}

// Suggestions godoc
// @Summary City search suggestions
// @Tags Cities
// @Produce json
// @Param q query string true "Search text (2+ characters)"
// @Success 200 {object} utils.APIResponse
// @Router /cities/search/suggestions [get]
func (cc *CityController) Suggestions(c *gin.Context) {
	suggestions, err := cc.cityService.Suggestions(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Suggestions fetched successfully")
}

// Popular godoc
// @Summary Most popular destinations
// @Tags Cities
// @Produce json
// @Param limit query int false "Max results" default(12)
// @Success 200 {object} utils.APIResponse
// @Router /cities/popular/destinations [get]
func (cc *CityController) Popular(c *gin.Context) {
	cities, err := cc.cityService.Popular(c.Request.Context(), queryInt(c, "limit", 12))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Popular destinations fetched successfully")
}

// NearbyCity godoc
// @Summary Cities near another city
// @Tags Cities
// @Produce json
// @Param id path string true "City ID"
// @Param maxDistance query number false "Radius in km" default(500)
// @Param limit query int false "Max results" default(10)
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cities/nearby/{id} [get]
func (cc *CityController) NearbyCity(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	maxDistance, _ := queryFloat(c, "maxDistance")

	cities, err := cc.cityService.NearbyCity(c.Request.Context(), id, maxDistance, queryInt(c, "limit", 10))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Nearby cities fetched successfully")
}

// NearbyPoint godoc
// @Summary Cities near a coordinate
// @Tags Cities
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in km" default(100)
// @Param limit query int false "Max results" default(10)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /cities/nearby [get]
func (cc *CityController) NearbyPoint(c *gin.Context) {
	lat, okLat := queryFloat(c, "lat")
	lng, okLng := queryFloat(c, "lng")
	if !okLat || !okLng {
		utils.RespondError(c, http.StatusBadRequest, "lat and lng are required")
		return
	}
	radius, _ := queryFloat(c, "radius")

	cities, err := cc.cityService.NearbyPoint(c.Request.Context(), lat, lng, radius, queryInt(c, "limit", 10))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Nearby cities fetched successfully")
}

// Countries godoc
// @Summary Countries with city counts
// @Tags Cities
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /cities/countries/list [get]
func (cc *CityController) Countries(c *gin.Context) {
	countries, err := cc.cityService.Countries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, countries, "Countries fetched successfully")
}
