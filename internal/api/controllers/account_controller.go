package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"wanderwise/internal/models/request_models"
	"wanderwise/internal/services"
	"wanderwise/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	statsService   services.StatsService
}

func NewAccountController(accountService services.AccountServiceInterface, statsService services.StatsService) *AccountController {
	return &AccountController{
		accountService: accountService,
		statsService:   statsService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	auth, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, auth, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	auth, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, auth, "Login successful")
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/profile [get]
func (a *AccountController) GetProfile(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}

	profile, err := a.accountService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateProfile godoc
// @Summary Update name or profile photo
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/profile [put]
func (a *AccountController) UpdateProfile(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := a.accountService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile updated successfully")
}

// UpdatePreferences godoc
// @Summary Update travel preferences
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/preferences [put]
func (a *AccountController) UpdatePreferences(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}

	var req request_models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := a.accountService.UpdatePreferences(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Preferences updated successfully")
}

// DeleteAccount godoc
// @Summary Deactivate the current account
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/account [delete]
func (a *AccountController) DeleteAccount(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := a.accountService.Deactivate(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account deactivated successfully")
}

// GetSavedDestinations godoc
// @Summary Saved destinations
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/saved-destinations [get]
func (a *AccountController) GetSavedDestinations(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}

	saved, err := a.accountService.ListSavedDestinations(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Saved destinations fetched successfully")
}

// SaveDestination godoc
// @Summary Save a city
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.SaveDestinationRequest true "City to save"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/saved-destinations [post]
func (a *AccountController) SaveDestination(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}

	var req request_models.SaveDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	saved, err := a.accountService.SaveDestination(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Destination saved successfully")
}

// RemoveSavedDestination godoc
// @Summary Remove a saved city
// @Tags Users
// @Produce json
// @Param cityId path string true "City ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/saved-destinations/{cityId} [delete]
func (a *AccountController) RemoveSavedDestination(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}
	cityID, ok := pathUUID(c, "cityId")
	if !ok {
		return
	}

	if err := a.accountService.RemoveSavedDestination(c.Request.Context(), userID, cityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destination removed successfully")
}

// GetTravelStats godoc
// @Summary Travel wrap statistics
// @Tags Users
// @Produce json
// @Param year query int false "Limit to trips starting in this year"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/stats [get]
func (a *AccountController) GetTravelStats(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}

	var year *int
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1900 || y > 9999 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = &y
	}

	stats, err := a.statsService.TravelStats(c.Request.Context(), userID, year)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Travel stats fetched successfully")
}
