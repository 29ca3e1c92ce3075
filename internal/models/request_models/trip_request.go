package request_models

type TravelersInput struct {
	Adults   int `json:"adults" binding:"omitempty,min=1,max=50"`
	Children int `json:"children" binding:"omitempty,min=0,max=50"`
}

type CreateTripRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Description string          `json:"description" binding:"omitempty,max=500"`
	StartDate   string          `json:"start_date" binding:"required,isodate"`
	EndDate     string          `json:"end_date" binding:"required,isodate"`
	CoverPhoto  string          `json:"cover_photo" binding:"omitempty,url"`
	Privacy     string          `json:"privacy" binding:"omitempty,oneof=private public friends"`
	Travelers   *TravelersInput `json:"travelers"`
	Tags        []string        `json:"tags" binding:"omitempty,dive,oneof=solo couple family friends business adventure relaxation cultural food budget luxury"`
	TotalBudget *float64        `json:"total_budget" binding:"omitempty,min=0"`
	Currency    string          `json:"currency" binding:"omitempty,oneof=USD EUR GBP JPY CAD AUD CHF CNY INR"`
}

// UpdateTripRequest only carries the fields a trip may change after creation.
type UpdateTripRequest struct {
	Name        *string         `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string         `json:"description" binding:"omitempty,max=500"`
	CoverPhoto  *string         `json:"cover_photo" binding:"omitempty,url"`
	Privacy     *string         `json:"privacy" binding:"omitempty,oneof=private public friends"`
	Status      *string         `json:"status" binding:"omitempty,oneof=planning confirmed ongoing completed cancelled"`
	Travelers   *TravelersInput `json:"travelers"`
	Tags        []string        `json:"tags" binding:"omitempty,dive,oneof=solo couple family friends business adventure relaxation cultural food budget luxury"`
	StartDate   *string         `json:"start_date" binding:"omitempty,isodate"`
	EndDate     *string         `json:"end_date" binding:"omitempty,isodate"`
	TotalBudget *float64        `json:"total_budget" binding:"omitempty,min=0"`
}

type AddCollaboratorRequest struct {
	AccountEmail string `json:"account_email" binding:"required,email"`
	Role         string `json:"role" binding:"omitempty,oneof=viewer editor admin"`
}

type AccommodationInput struct {
	Name    string  `json:"name" binding:"omitempty,max=200"`
	Type    string  `json:"type" binding:"omitempty,oneof=hotel hostel airbnb resort guesthouse camping other"`
	Address string  `json:"address" binding:"omitempty,max=300"`
	Cost    float64 `json:"cost" binding:"omitempty,min=0"`
}

type TransportInput struct {
	Method string  `json:"method" binding:"omitempty,oneof=flight train bus car boat other"`
	Cost   float64 `json:"cost" binding:"omitempty,min=0"`
}

type AddStopRequest struct {
	CityID        string              `json:"city_id" binding:"required,uuid"`
	ArrivalDate   string              `json:"arrival_date" binding:"required,isodate"`
	DepartureDate string              `json:"departure_date" binding:"required,isodate"`
	Accommodation *AccommodationInput `json:"accommodation"`
	Transport     *TransportInput     `json:"transport"`
	Notes         string              `json:"notes" binding:"omitempty,max=1000"`
}

type UpdateStopRequest struct {
	ArrivalDate   *string             `json:"arrival_date" binding:"omitempty,isodate"`
	DepartureDate *string             `json:"departure_date" binding:"omitempty,isodate"`
	Accommodation *AccommodationInput `json:"accommodation"`
	Transport     *TransportInput     `json:"transport"`
	Notes         *string             `json:"notes" binding:"omitempty,max=1000"`
}

type ReorderStopsRequest struct {
	StopIDs []string `json:"stop_ids" binding:"required,min=1,dive,uuid"`
}

type StopActivityInput struct {
	ActivityID    string   `json:"activity_id" binding:"required,uuid"`
	ScheduledDate *string  `json:"scheduled_date" binding:"omitempty,isodate"`
	ScheduledTime *string  `json:"scheduled_time" binding:"omitempty,hhmm"`
	Duration      *int     `json:"duration" binding:"omitempty,min=0,max=1440"`
	CustomCost    *float64 `json:"custom_cost" binding:"omitempty,min=0"`
	Notes         string   `json:"notes" binding:"omitempty,max=1000"`
	IsSelected    *bool    `json:"is_selected"`
}

type ReplaceStopActivitiesRequest struct {
	Activities []StopActivityInput `json:"activities" binding:"dive"`
}

type UpdateBudgetRequest struct {
	PlannedAmount *float64 `json:"planned_amount" binding:"omitempty,min=0"`
	SpentAmount   *float64 `json:"spent_amount" binding:"omitempty,min=0"`
}
