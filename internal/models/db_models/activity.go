package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed"`
}

// OperatingHours is keyed by lower-case weekday name.
type OperatingHours map[string]DayHours

type Activity struct {
	BaseModel
	CityID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name          string           `gorm:"size:200;not null"`
	Description   string           `gorm:"size:1000"`
	Category      ActivityCategory `gorm:"size:32;not null;index"`
	Subcategory   string
	ImageURL      string
	IsFree        bool
	CostMin       float64
	CostMax       float64
	Currency      string        `gorm:"size:3;default:USD"`
	PriceCategory PriceCategory `gorm:"size:16;not null;index"`
	DurationMin   int           `gorm:"default:60"`
	DurationMax   int           `gorm:"default:120"`

	Address   string
	Latitude  *float64
	Longitude *float64

	OperatingHours datatypes.JSONType[OperatingHours] `gorm:"type:jsonb"`

	RatingAverage   float64        `gorm:"default:0;index"`
	RatingCount     int            `gorm:"default:0"`
	Tags            pq.StringArray `gorm:"type:text[]"`
	BookingRequired bool
	FitnessLevel    string         `gorm:"size:16"`
	BestMonths      pq.StringArray `gorm:"type:text[]"`
	IsActive        bool           `gorm:"default:true"`

	City City `gorm:"foreignKey:CityID"`
}

// EstimatedCost is the midpoint of the price range, or 0 for free activities.
func (a *Activity) EstimatedCost() float64 {
	if a.IsFree {
		return 0
	}
	return (a.CostMin + a.CostMax) / 2
}
