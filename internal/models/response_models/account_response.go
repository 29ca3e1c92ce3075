package response_models

type PreferencesResponse struct {
	Language    string   `json:"language"`
	Currency    string   `json:"currency"`
	BudgetRange string   `json:"budget_range"`
	TravelStyle []string `json:"travel_style"`
}

type AccountResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Role         string              `json:"role"`
	ProfilePhoto string              `json:"profile_photo,omitempty"`
	Preferences  PreferencesResponse `json:"preferences"`
	IsActive     bool                `json:"is_active"`
	LastLogin    *int64              `json:"last_login,omitempty"`
	CreatedAt    int64               `json:"created_at"`
}

type AuthResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

type SavedDestinationResponse struct {
	City    CitySummary `json:"city"`
	SavedAt int64       `json:"saved_at"`
}

// TravelStats is the yearly "travel wrap" summary.
type TravelStats struct {
	Year              *int        `json:"year,omitempty"`
	TotalTrips        int64       `json:"total_trips"`
	TotalDestinations int64       `json:"total_destinations"`
	TotalCountries    int64       `json:"total_countries"`
	TotalDays         int64       `json:"total_days"`
	TotalBudget       float64     `json:"total_budget"`
	TotalActivities   int64       `json:"total_activities"`
	AverageTripLength float64     `json:"average_trip_length"`
	TopDestination    *CityVisits `json:"top_destination,omitempty"`
	LongestTrip       *TripLength `json:"longest_trip,omitempty"`
	Countries         []string    `json:"countries"`
}

type CityVisits struct {
	CityID  string `json:"city_id" db:"city_id"`
	Name    string `json:"name" db:"name"`
	Country string `json:"country" db:"country"`
	Visits  int64  `json:"visits" db:"visits"`
}

type TripLength struct {
	TripID string `json:"trip_id" db:"trip_id"`
	Name   string `json:"name" db:"name"`
	Days   int    `json:"days" db:"days"`
}
