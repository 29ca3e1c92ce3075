package response_models

import "wanderwise/internal/models/db_models"

type CitySummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Country         string   `json:"country"`
	Region          string   `json:"region,omitempty"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	ImageURL        string   `json:"image_url,omitempty"`
	CostIndex       int      `json:"cost_index"`
	PopularityScore int      `json:"popularity_score"`
	Tags            []string `json:"tags"`
}

type CityResponse struct {
	CitySummary
	Description  string              `json:"description,omitempty"`
	Images       []string            `json:"images"`
	Timezone     string              `json:"timezone,omitempty"`
	Currency     string              `json:"currency,omitempty"`
	Languages    []string            `json:"languages"`
	AverageCosts db_models.CityCosts `json:"average_costs"`
}

type CityDetailResponse struct {
	CityResponse
	Activities []ActivityResponse `json:"activities"`
}

type NearbyCity struct {
	CitySummary
	DistanceKm float64 `json:"distance_km"`
}

type CountrySummary struct {
	Country       string        `json:"country"`
	CityCount     int64         `json:"city_count"`
	AvgCostIndex  float64       `json:"avg_cost_index"`
	PopularCities []CitySummary `json:"popular_cities"`
}
