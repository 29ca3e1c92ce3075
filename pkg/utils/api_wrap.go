package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels onto HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrInvalidDateRange):
		RespondError(c, http.StatusBadRequest, "End date must be after start date")
	case errors.Is(err, ErrStopOutsideTrip):
		RespondError(c, http.StatusBadRequest, "Stop dates must fall within the trip dates")
	case errors.Is(err, ErrInvalidDuration):
		RespondError(c, http.StatusBadRequest, "Duration must look like min-max (hours)")
	case errors.Is(err, ErrInvalidCategory):
		RespondError(c, http.StatusBadRequest, "Unknown budget category")
	case errors.Is(err, ErrInvalidStopOrder):
		RespondError(c, http.StatusBadRequest, "Stop order must list every stop of the trip exactly once")
	case errors.Is(err, ErrEmptyActivityIDs):
		RespondError(c, http.StatusBadRequest, "Activity IDs array is required")
	case errors.Is(err, ErrAlreadySaved):
		RespondError(c, http.StatusBadRequest, "City is already in saved destinations")
	case errors.Is(err, ErrCollaboratorIsOwner):
		RespondError(c, http.StatusBadRequest, "The trip owner cannot be added as a collaborator")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email is already registered")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrCityNotFound):
		RespondError(c, http.StatusNotFound, "City not found")
	case errors.Is(err, ErrActivityNotFound):
		RespondError(c, http.StatusNotFound, "Activity not found")
	case errors.Is(err, ErrActivityNotAvailable):
		RespondError(c, http.StatusNotFound, "Activity not available")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrPublicTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found or not public")
	case errors.Is(err, ErrStopNotFound):
		RespondError(c, http.StatusNotFound, "Stop not found")
	case errors.Is(err, ErrTripActivityNotFound):
		RespondError(c, http.StatusNotFound, "Trip activity not found")
	case errors.Is(err, ErrCollaboratorNotFound):
		RespondError(c, http.StatusNotFound, "Collaborator not found")
	default:
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
