package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Trip struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"size:100;not null"`
	Description string    `gorm:"size:500"`
	CoverPhoto  string
	StartDate   time.Time      `gorm:"not null"`
	EndDate     time.Time      `gorm:"not null"`
	TotalDays   int            `gorm:"not null"`
	Status      TripStatus     `gorm:"size:16;default:planning;index"`
	Privacy     Privacy        `gorm:"size:16;default:private"`
	ShareToken  *string        `gorm:"size:80;uniqueIndex"`
	Adults      int            `gorm:"default:1"`
	Children    int            `gorm:"default:0"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	Views       int            `gorm:"default:0"`
	IsTemplate  bool
	Currency    string `gorm:"size:3;default:USD"`
	TotalBudget float64

	Owner         Account            `gorm:"foreignKey:OwnerID"`
	Stops         []TripStop         `gorm:"foreignKey:TripID"`
	Budgets       []TripBudget       `gorm:"foreignKey:TripID"`
	Collaborators []TripCollaborator `gorm:"foreignKey:TripID"`
}

func (t *Trip) IsOwner(accountID uuid.UUID) bool {
	return accountID != uuid.Nil && t.OwnerID == accountID
}

// CollaboratorRole returns the caller's collaborator role; ok is false when
// the caller is not listed.
func (t *Trip) CollaboratorRole(accountID uuid.UUID) (CollaboratorRole, bool) {
	if accountID == uuid.Nil {
		return "", false
	}
	for _, c := range t.Collaborators {
		if c.AccountID == accountID {
			return c.Role, true
		}
	}
	return "", false
}

// IsMember is true for the owner and listed collaborators.
func (t *Trip) IsMember(accountID uuid.UUID) bool {
	if t.IsOwner(accountID) {
		return true
	}
	_, ok := t.CollaboratorRole(accountID)
	return ok
}

// CanView: public trips are open to anyone, others only to the owner and collaborators.
func (t *Trip) CanView(accountID uuid.UUID) bool {
	return t.Privacy == PrivacyPublic || t.IsMember(accountID)
}

// CanEditItinerary covers stops and their activities.
func (t *Trip) CanEditItinerary(accountID uuid.UUID) bool {
	if t.IsOwner(accountID) {
		return true
	}
	role, ok := t.CollaboratorRole(accountID)
	return ok && (role == CollabEditor || role == CollabAdmin)
}

// CanEditDetails covers the trip's own fields; budgets follow CanEditItinerary.
func (t *Trip) CanEditDetails(accountID uuid.UUID) bool {
	if t.IsOwner(accountID) {
		return true
	}
	role, ok := t.CollaboratorRole(accountID)
	return ok && role == CollabAdmin
}

// EnsureShareToken assigns a share token the first time a trip is public.
// It reports whether a new token was generated.
func (t *Trip) EnsureShareToken(now time.Time, gen func(uuid.UUID, time.Time) string) bool {
	if t.Privacy != PrivacyPublic || t.ShareToken != nil {
		return false
	}
	tok := gen(t.ID, now)
	t.ShareToken = &tok
	return true
}

// StopCount ignores soft-deleted rows already filtered by the query.
func (t *Trip) StopCount() int { return len(t.Stops) }
