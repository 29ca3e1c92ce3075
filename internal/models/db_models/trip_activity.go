package db_models

import (
	"time"

	"github.com/google/uuid"
)

type TripActivity struct {
	BaseModel
	StopID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ActivityID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ScheduledDate *time.Time
	ScheduledTime string `gorm:"size:5"`
	Duration      *int
	CustomCost    *float64
	Notes         string
	IsSelected    bool
	AddedToTotal  bool
	IsCompleted   bool

	Activity Activity `gorm:"foreignKey:ActivityID"`
}

// Cost prefers the traveller's own figure over the catalog estimate.
func (ta *TripActivity) Cost() float64 {
	if ta.CustomCost != nil {
		return *ta.CustomCost
	}
	return ta.Activity.EstimatedCost()
}
