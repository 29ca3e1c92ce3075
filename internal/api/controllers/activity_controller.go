package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderwise/internal/models/request_models"
	"wanderwise/internal/services"
	"wanderwise/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityService
}

func NewActivityController(activityService services.ActivityService) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// ListActivities godoc
// @Summary Search and filter activities
// @Tags Activities
// @Produce json
// @Param cityId query string false "City ID"
// @Param search query string false "Free text search"
// @Param category query []string false "Categories" collectionFormat(multi)
// @Param priceCategory query []string false "Price categories" collectionFormat(multi)
// @Param tags query []string false "Tags" collectionFormat(multi)
// @Param duration query string false "Duration range in hours, e.g. 1-3"
// @Param rating query number false "Minimum rating"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param sortBy query string false "rating|name|price|duration|createdAt" default(rating)
// @Param sortOrder query string false "asc|desc" default(desc)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /activities [get]
func (a *ActivityController) ListActivities(c *gin.Context) {
	page, pageSize, ok := parsePaging(c, "20")
	if !ok {
		return
	}
	cityID, ok := optionalQueryUUID(c, "cityId")
	if !ok {
		return
	}

	filter := request_models.ActivityFilter{
		Search:        c.Query("search"),
		Categories:    queryList(c, "category"),
		PriceCategory: queryList(c, "priceCategory"),
		Tags:          queryList(c, "tags"),
		SortBy:        c.DefaultQuery("sortBy", "rating"),
		SortDesc:      sortDesc(c),
		Page:          page,
		PageSize:      pageSize,
	}
	if cityID != nil {
		filter.CityID = cityID.String()
	}
	if c.Query("rating") != "" {
		rating, ok := queryFloat(c, "rating")
		if !ok || rating < 0 || rating > 5 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid rating (must be 0-5)")
			return
		}
		filter.MinRating = &rating
	}

	activities, err := a.activityService.ListActivities(c.Request.Context(), filter, c.Query("duration"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

// GetActivity godoc
// @Summary Activity details
// @Tags Activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /activities/{id} [get]
func (a *ActivityController) GetActivity(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	activity, err := a.activityService.GetActivity(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity fetched successfully")
}

// Recommended godoc
// @Summary Activities recommended for a budget range
// @Tags Activities
// @Produce json
// @Param cityId path string true "City ID"
// @Param budgetRange query string false "budget|mid-range|luxury|mixed" default(mid-range)
// @Param limit query int false "Max results" default(10)
// @Success 200 {object} utils.APIResponse
// @Router /activities/city/{cityId}/recommended [get]
func (a *ActivityController) Recommended(c *gin.Context) {
	cityID, ok := pathUUID(c, "cityId")
	if !ok {
		return
	}

	out, err := a.activityService.Recommended(c.Request.Context(), cityID, c.Query("budgetRange"), queryInt(c, "limit", 10))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Recommended activities fetched successfully")
}

// Categories godoc
// @Summary Activity categories with counts
// @Tags Activities
// @Produce json
// @Param cityId query string false "City ID"
// @Success 200 {object} utils.APIResponse
// @Router /activities/categories/list [get]
func (a *ActivityController) Categories(c *gin.Context) {
	cityID, ok := optionalQueryUUID(c, "cityId")
	if !ok {
		return
	}

	categories, err := a.activityService.Categories(c.Request.Context(), cityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

// Suggestions godoc
// @Summary Activity search suggestions
// @Tags Activities
// @Produce json
// @Param q query string true "Search text (2+ characters)"
// @Param cityId query string false "City ID"
// @Success 200 {object} utils.APIResponse
// @Router /activities/search/suggestions [get]
func (a *ActivityController) Suggestions(c *gin.Context) {
	cityID, ok := optionalQueryUUID(c, "cityId")
	if !ok {
		return
	}

	suggestions, err := a.activityService.Suggestions(c.Request.Context(), c.Query("q"), cityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Suggestions fetched successfully")
}

// BulkPricing godoc
// @Summary Estimated cost of several activities
// @Tags Activities
// @Accept json
// @Produce json
// @Param request body request_models.BulkPricingRequest true "Activity IDs"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /activities/bulk-pricing [post]
func (a *ActivityController) BulkPricing(c *gin.Context) {
	var req request_models.BulkPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if len(req.ActivityIDs) == 0 {
			utils.HandleServiceError(c, utils.ErrEmptyActivityIDs)
			return
		}
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pricing, err := a.activityService.BulkPricing(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pricing, "Pricing calculated successfully")
}
