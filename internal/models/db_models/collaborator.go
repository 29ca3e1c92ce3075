package db_models

import "github.com/google/uuid"

type TripCollaborator struct {
	BaseModel
	TripID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_trip_collaborator"`
	AccountID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_trip_collaborator"`
	Role      CollaboratorRole `gorm:"size:16;default:viewer"`

	Account Account `gorm:"foreignKey:AccountID"`
}
