package db_models

import "slices"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type BudgetRange string

const (
	BudgetRangeBudget   BudgetRange = "budget"
	BudgetRangeMidRange BudgetRange = "mid-range"
	BudgetRangeLuxury   BudgetRange = "luxury"
	BudgetRangeMixed    BudgetRange = "mixed"
)

type ActivityCategory string

const (
	CategorySightseeing    ActivityCategory = "sightseeing"
	CategoryAdventure      ActivityCategory = "adventure"
	CategoryCultural       ActivityCategory = "cultural"
	CategoryFood           ActivityCategory = "food"
	CategoryShopping       ActivityCategory = "shopping"
	CategoryNightlife      ActivityCategory = "nightlife"
	CategoryNature         ActivityCategory = "nature"
	CategorySports         ActivityCategory = "sports"
	CategoryRelaxation     ActivityCategory = "relaxation"
	CategoryTransportation ActivityCategory = "transportation"
	CategoryAccommodation  ActivityCategory = "accommodation"
)

type PriceCategory string

const (
	PriceFree      PriceCategory = "free"
	PriceBudget    PriceCategory = "budget"
	PriceMidRange  PriceCategory = "mid-range"
	PriceExpensive PriceCategory = "expensive"
	PriceLuxury    PriceCategory = "luxury"
)

// PriceCategoriesFor maps a traveller budget range onto the activity price
// tiers worth recommending.
func PriceCategoriesFor(r BudgetRange) []PriceCategory {
	switch r {
	case BudgetRangeBudget:
		return []PriceCategory{PriceFree, PriceBudget}
	case BudgetRangeMidRange:
		return []PriceCategory{PriceFree, PriceBudget, PriceMidRange}
	case BudgetRangeLuxury:
		return []PriceCategory{PriceMidRange, PriceExpensive, PriceLuxury}
	default:
		return []PriceCategory{PriceFree, PriceBudget, PriceMidRange, PriceExpensive}
	}
}

type TripStatus string

const (
	TripPlanning  TripStatus = "planning"
	TripConfirmed TripStatus = "confirmed"
	TripOngoing   TripStatus = "ongoing"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

type Privacy string

const (
	PrivacyPrivate Privacy = "private"
	PrivacyPublic  Privacy = "public"
	PrivacyFriends Privacy = "friends"
)

type CollaboratorRole string

const (
	CollabViewer CollaboratorRole = "viewer"
	CollabEditor CollaboratorRole = "editor"
	CollabAdmin  CollaboratorRole = "admin"
)

type BudgetCategory string

const (
	BudgetTransport     BudgetCategory = "transport"
	BudgetAccommodation BudgetCategory = "accommodation"
	BudgetActivities    BudgetCategory = "activities"
	BudgetFood          BudgetCategory = "food"
	BudgetShopping      BudgetCategory = "shopping"
	BudgetOther         BudgetCategory = "other"
)

// BudgetCategories is the fixed set every trip is created with, in display order.
var BudgetCategories = []BudgetCategory{
	BudgetTransport, BudgetAccommodation, BudgetActivities, BudgetFood, BudgetShopping, BudgetOther,
}

func (c BudgetCategory) Valid() bool {
	return slices.Contains(BudgetCategories, c)
}

// Allowed values, shared with request binding tags.
var (
	Languages          = []string{"en", "es", "fr", "de", "it", "pt", "ja", "ko", "zh"}
	Currencies         = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF", "CNY", "INR"}
	CityTags           = []string{"beach", "mountains", "city", "historical", "cultural", "adventure", "nightlife", "food", "shopping", "nature", "romantic", "family-friendly"}
	TripTags           = []string{"solo", "couple", "family", "friends", "business", "adventure", "relaxation", "cultural", "food", "budget", "luxury"}
	AccommodationTypes = []string{"hotel", "hostel", "airbnb", "resort", "guesthouse", "camping", "other"}
	TransportMethods   = []string{"flight", "train", "bus", "car", "boat", "other"}
)
