package response_models

import "wanderwise/internal/models/db_models"

type CostResponse struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Currency  string  `json:"currency"`
	IsFree    bool    `json:"is_free"`
	Estimated float64 `json:"estimated"`
}

type ActivityResponse struct {
	ID              string                   `json:"id"`
	CityID          string                   `json:"city_id"`
	Name            string                   `json:"name"`
	Description     string                   `json:"description,omitempty"`
	Category        string                   `json:"category"`
	Subcategory     string                   `json:"subcategory,omitempty"`
	ImageURL        string                   `json:"image_url,omitempty"`
	Cost            CostResponse             `json:"cost"`
	PriceCategory   string                   `json:"price_category"`
	DurationMin     int                      `json:"duration_min"`
	DurationMax     int                      `json:"duration_max"`
	Address         string                   `json:"address,omitempty"`
	Latitude        *float64                 `json:"latitude,omitempty"`
	Longitude       *float64                 `json:"longitude,omitempty"`
	OperatingHours  db_models.OperatingHours `json:"operating_hours,omitempty"`
	RatingAverage   float64                  `json:"rating_average"`
	RatingCount     int                      `json:"rating_count"`
	Tags            []string                 `json:"tags"`
	BookingRequired bool                     `json:"booking_required"`
	FitnessLevel    string                   `json:"fitness_level,omitempty"`
	BestMonths      []string                 `json:"best_months"`
	City            *CitySummary             `json:"city,omitempty"`
}

type RecommendedActivities struct {
	BudgetRange     string                        `json:"budget_range"`
	PriceCategories []string                      `json:"price_categories"`
	Activities      []ActivityResponse            `json:"activities"`
	ByCategory      map[string][]ActivityResponse `json:"by_category"`
}

type CategorySummary struct {
	Category        string   `json:"category"`
	Count           int64    `json:"count"`
	AvgRating       float64  `json:"avg_rating"`
	PriceCategories []string `json:"price_categories"`
}

type ActivitySuggestion struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	CityID   string `json:"city_id"`
	CityName string `json:"city_name,omitempty"`
}

type CitySuggestion struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Region  string `json:"region,omitempty"`
}

type ActivityPrice struct {
	ActivityID    string  `json:"activity_id"`
	Name          string  `json:"name"`
	EstimatedCost float64 `json:"estimated_cost"`
	Currency      string  `json:"currency"`
	IsFree        bool    `json:"is_free"`
}

type BulkPricingResponse struct {
	Activities []ActivityPrice `json:"activities"`
	TotalCost  float64         `json:"total_cost"`
	Currency   string          `json:"currency"`
}
