package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Account struct {
	BaseModel
	Name         string `gorm:"size:50;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	ProfilePhoto string
	Role         Role `gorm:"size:16;default:user"`

	// preferences
	Language    string         `gorm:"size:2;default:en"`
	Currency    string         `gorm:"size:3;default:USD"`
	BudgetRange BudgetRange    `gorm:"size:16;default:mid-range"`
	TravelStyle pq.StringArray `gorm:"type:text[]"`

	IsActive  bool `gorm:"default:true"`
	LastLogin *int64

	SavedDestinations []SavedDestination
	Trips             []Trip `gorm:"foreignKey:OwnerID"`
}

type SavedDestination struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_account_city"`
	CityID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_account_city"`
	SavedAt   int64     `gorm:"not null"`

	City City `gorm:"foreignKey:CityID"`
}
