package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidPage      = errors.New("invalid page parameter")
	ErrInvalidPageSize  = errors.New("invalid page size parameter")
	ErrDatabaseError    = errors.New("database error")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrStopOutsideTrip  = errors.New("stop dates outside trip window")
	ErrInvalidDuration  = errors.New("invalid duration filter")
	ErrInvalidCategory  = errors.New("invalid budget category")
	ErrInvalidStopOrder = errors.New("stop order must list every stop exactly once")
	ErrEmptyActivityIDs = errors.New("activity ids required")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAlreadySaved       = errors.New("city already saved")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	ErrCityNotFound         = errors.New("city not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrActivityNotAvailable = errors.New("activity not available")
	ErrTripNotFound         = errors.New("trip not found")
	ErrPublicTripNotFound   = errors.New("trip not found or not public")
	ErrStopNotFound         = errors.New("stop not found")
	ErrTripActivityNotFound = errors.New("trip activity not found")
	ErrCollaboratorNotFound = errors.New("collaborator not found")
	ErrCollaboratorIsOwner  = errors.New("owner cannot be a collaborator")
)
