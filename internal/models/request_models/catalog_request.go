package request_models

// CityFilter is built from the /cities query string.
type CityFilter struct {
	Search    string
	Country   string
	Region    string
	CostIndex []int
	Tags      []string
	SortBy    string
	SortDesc  bool
	Page      int
	PageSize  int
}

type ActivityFilter struct {
	CityID         string
	Search         string
	Categories     []string
	PriceCategory  []string
	Tags           []string
	MinDurationMin *int
	MaxDurationMin *int
	MinRating      *float64
	SortBy         string
	SortDesc       bool
	Page           int
	PageSize       int
}

type BulkPricingRequest struct {
	ActivityIDs []string `json:"activity_ids" binding:"required,dive,uuid"`
}
