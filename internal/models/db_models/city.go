package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type PriceBand struct {
	Budget   float64 `json:"budget"`
	MidRange float64 `json:"mid_range"`
	Luxury   float64 `json:"luxury"`
}

// CityCosts are typical per-day prices in the city's currency.
type CityCosts struct {
	Accommodation PriceBand `json:"accommodation"`
	Meal          PriceBand `json:"meal"`
	Transport     PriceBand `json:"transport"`
}

type City struct {
	BaseModel
	Name            string  `gorm:"size:120;not null;index"`
	Country         string  `gorm:"size:120;not null;index"`
	Region          string  `gorm:"size:120"`
	Latitude        float64 `gorm:"not null"`
	Longitude       float64 `gorm:"not null"`
	Description     string  `gorm:"size:1000"`
	ImageURL        string
	Images          pq.StringArray `gorm:"type:text[]"`
	CostIndex       int            `gorm:"default:3"`
	PopularityScore int            `gorm:"default:0;index"`
	Timezone        string
	CurrencyCode    string                        `gorm:"size:3"`
	Languages       pq.StringArray                `gorm:"type:text[]"`
	Tags            pq.StringArray                `gorm:"type:text[]"`
	AverageCosts    datatypes.JSONType[CityCosts] `gorm:"type:jsonb"`

	Activities []Activity
}
