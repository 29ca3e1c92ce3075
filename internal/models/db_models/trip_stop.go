package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Accommodation struct {
	Name    string
	Type    string `gorm:"size:16"`
	Address string
	Cost    float64
}

type Transport struct {
	Method string `gorm:"size:16"`
	Cost   float64
}

type TripStop struct {
	BaseModel
	TripID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CityID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ArrivalDate   time.Time `gorm:"not null"`
	DepartureDate time.Time `gorm:"not null"`
	Duration      int
	OrderIndex    int `gorm:"not null"`

	Accommodation Accommodation `gorm:"embedded;embeddedPrefix:accommodation_"`
	Transport     Transport     `gorm:"embedded;embeddedPrefix:transport_"`
	Notes         string

	City       City           `gorm:"foreignKey:CityID"`
	Activities []TripActivity `gorm:"foreignKey:StopID"`
}
