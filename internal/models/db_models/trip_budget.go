package db_models

import "github.com/google/uuid"

type TripBudget struct {
	BaseModel
	TripID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_trip_budget_category"`
	Category      BudgetCategory `gorm:"size:16;not null;uniqueIndex:idx_trip_budget_category"`
	PlannedAmount float64        `gorm:"not null;default:0"`
	SpentAmount   float64        `gorm:"not null;default:0"`
}

func (b *TripBudget) Remaining() float64 {
	return b.PlannedAmount - b.SpentAmount
}

// DefaultBudgets returns one zeroed row per category.
func DefaultBudgets(tripID uuid.UUID) []TripBudget {
	out := make([]TripBudget, 0, len(BudgetCategories))
	for _, cat := range BudgetCategories {
		out = append(out, TripBudget{TripID: tripID, Category: cat})
	}
	return out
}
