package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderwise/internal/models/request_models"
	"wanderwise/internal/services"
	"wanderwise/pkg/utils"
)

type StopController struct {
	stopService services.StopService
}

func NewStopController(stopService services.StopService) *StopController {
	return &StopController{stopService: stopService}
}

// AddStop godoc
// @Summary Add a city stop
// @Tags Stops
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.AddStopRequest true "Stop"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/stops [post]
func (s *StopController) AddStop(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.AddStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	stop, err := s.stopService.AddStop(c.Request.Context(), tripID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, stop, "Stop added successfully")
}

// UpdateStop godoc
// @Summary Update a stop
// @Tags Stops
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param request body request_models.UpdateStopRequest true "Changed fields"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/stops/{stopId} [put]
func (s *StopController) UpdateStop(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	stopID, ok := pathUUID(c, "stopId")
	if !ok {
		return
	}

	var req request_models.UpdateStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	stop, err := s.stopService.UpdateStop(c.Request.Context(), tripID, stopID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stop, "Stop updated successfully")
}

// RemoveStop godoc
// @Summary Remove a stop
// @Tags Stops
// @Produce json
// @Param id path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/stops/{stopId} [delete]
func (s *StopController) RemoveStop(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	stopID, ok := pathUUID(c, "stopId")
	if !ok {
		return
	}

	if err := s.stopService.RemoveStop(c.Request.Context(), tripID, stopID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Stop removed successfully")
}

// ReorderStops godoc
// @Summary Reorder stops
// @Tags Stops
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.ReorderStopsRequest true "Every stop ID in the new order"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/stops/order [put]
func (s *StopController) ReorderStops(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.ReorderStopsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	stops, err := s.stopService.ReorderStops(c.Request.Context(), tripID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stops, "Stops reordered successfully")
}

// ReplaceActivities godoc
// @Summary Replace the activities of a stop
// @Tags Stops
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param request body request_models.ReplaceStopActivitiesRequest true "Activities"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/stops/{stopId}/activities [put]
func (s *StopController) ReplaceActivities(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	stopID, ok := pathUUID(c, "stopId")
	if !ok {
		return
	}

	var req request_models.ReplaceStopActivitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := s.stopService.ReplaceStopActivities(c.Request.Context(), tripID, stopID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Activities updated successfully")
}

// AddActivity godoc
// @Summary Append one activity to a stop
// @Tags Stops
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param request body request_models.StopActivityInput true "Activity"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/stops/{stopId}/activities [post]
func (s *StopController) AddActivity(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	stopID, ok := pathUUID(c, "stopId")
	if !ok {
		return
	}

	var req request_models.StopActivityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := s.stopService.AddStopActivity(c.Request.Context(), tripID, stopID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Activity added successfully")
}

// RemoveActivity godoc
// @Summary Remove one activity from a stop
// @Tags Stops
// @Produce json
// @Param id path string true "Trip ID"
// @Param stopId path string true "Stop ID"
// @Param tripActivityId path string true "Trip activity ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/stops/{stopId}/activities/{tripActivityId} [delete]
func (s *StopController) RemoveActivity(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	stopID, ok := pathUUID(c, "stopId")
	if !ok {
		return
	}
	tripActivityID, ok := pathUUID(c, "tripActivityId")
	if !ok {
		return
	}

	trip, err := s.stopService.RemoveStopActivity(c.Request.Context(), tripID, stopID, tripActivityID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Activity removed successfully")
}
