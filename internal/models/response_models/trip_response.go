package response_models

type TravelersResponse struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

type TripSummary struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	CoverPhoto  string            `json:"cover_photo,omitempty"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	TotalDays   int               `json:"total_days"`
	Status      string            `json:"status"`
	Privacy     string            `json:"privacy"`
	ShareToken  string            `json:"share_token,omitempty"`
	Travelers   TravelersResponse `json:"travelers"`
	Tags        []string          `json:"tags"`
	Views       int               `json:"views"`
	Currency    string            `json:"currency"`
	TotalBudget float64           `json:"total_budget"`
	StopCount   int               `json:"stop_count"`
	Cities      []string          `json:"cities"`
	CreatedAt   int64             `json:"created_at"`
	UpdatedAt   int64             `json:"updated_at"`
}

type TripResponse struct {
	TripSummary
	OwnerID       string                 `json:"owner_id"`
	OwnerName     string                 `json:"owner_name,omitempty"`
	Stops         []StopResponse         `json:"stops"`
	Budget        *BudgetResponse        `json:"budget,omitempty"`
	Collaborators []CollaboratorResponse `json:"collaborators"`
}

type AccommodationResponse struct {
	Name    string  `json:"name,omitempty"`
	Type    string  `json:"type,omitempty"`
	Address string  `json:"address,omitempty"`
	Cost    float64 `json:"cost"`
}

type TransportResponse struct {
	Method string  `json:"method,omitempty"`
	Cost   float64 `json:"cost"`
}

type StopResponse struct {
	ID            string                 `json:"id"`
	City          CitySummary            `json:"city"`
	ArrivalDate   string                 `json:"arrival_date"`
	DepartureDate string                 `json:"departure_date"`
	Duration      int                    `json:"duration"`
	Order         int                    `json:"order"`
	Accommodation AccommodationResponse  `json:"accommodation"`
	Transport     TransportResponse      `json:"transport"`
	Notes         string                 `json:"notes,omitempty"`
	Activities    []TripActivityResponse `json:"activities"`
}

type TripActivityResponse struct {
	ID            string           `json:"id"`
	Activity      ActivityResponse `json:"activity"`
	ScheduledDate string           `json:"scheduled_date,omitempty"`
	ScheduledTime string           `json:"scheduled_time,omitempty"`
	Duration      *int             `json:"duration,omitempty"`
	CustomCost    *float64         `json:"custom_cost,omitempty"`
	Cost          float64          `json:"cost"`
	Notes         string           `json:"notes,omitempty"`
	IsSelected    bool             `json:"is_selected"`
	AddedToTotal  bool             `json:"added_to_total"`
	IsCompleted   bool             `json:"is_completed"`
}

type CollaboratorResponse struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	AddedAt   int64  `json:"added_at"`
}

type BudgetCategoryResponse struct {
	Category      string  `json:"category"`
	PlannedAmount float64 `json:"planned_amount"`
	SpentAmount   float64 `json:"spent_amount"`
	Remaining     float64 `json:"remaining"`
}

type BudgetResponse struct {
	Currency        string                   `json:"currency"`
	Categories      []BudgetCategoryResponse `json:"categories"`
	TotalPlanned    float64                  `json:"total_planned"`
	TotalSpent      float64                  `json:"total_spent"`
	Remaining       float64                  `json:"remaining"`
	SpentPercentage float64                  `json:"spent_percentage"`
	TotalBudget     float64                  `json:"total_budget"`
	ActivitiesCost  float64                  `json:"activities_cost"`
	DurationDays    int                      `json:"duration_days"`
	CalendarDays    int                      `json:"calendar_days"`
	DailyAverage    float64                  `json:"daily_average"`
}

type MapMarker struct {
	StopID    string  `json:"stop_id"`
	Order     int     `json:"order"`
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ItineraryLeg struct {
	FromStopID string  `json:"from_stop_id"`
	ToStopID   string  `json:"to_stop_id"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
	Method     string  `json:"method,omitempty"`
	Cost       float64 `json:"cost"`
}

type ItineraryDay struct {
	Date       string                 `json:"date"`
	StopID     string                 `json:"stop_id"`
	City       string                 `json:"city"`
	Activities []TripActivityResponse `json:"activities"`
}

type ItineraryStop struct {
	StopResponse
	Nights int `json:"nights"`
}

type ItineraryResponse struct {
	TripID          string          `json:"trip_id"`
	Name            string          `json:"name"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	Stops           []ItineraryStop `json:"stops"`
	Legs            []ItineraryLeg  `json:"legs"`
	Days            []ItineraryDay  `json:"days"`
	TotalDistanceKm float64         `json:"total_distance_km"`
	Markers         []MapMarker     `json:"markers"`
}
