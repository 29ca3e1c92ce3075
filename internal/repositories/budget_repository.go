package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "wanderwise/internal/models/db_models"
)

type BudgetRepository interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.TripBudget, error)
	FindCategory(ctx context.Context, tripID uuid.UUID, category dbm.BudgetCategory) (*dbm.TripBudget, error)
	Upsert(ctx context.Context, budget *dbm.TripBudget) error
	SetPlanned(ctx context.Context, tripID uuid.UUID, category dbm.BudgetCategory, amount float64) error
}

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.TripBudget, error) {
	var budgets []dbm.TripBudget
	if err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *budgetRepository) FindCategory(ctx context.Context, tripID uuid.UUID, category dbm.BudgetCategory) (*dbm.TripBudget, error) {
	var budget dbm.TripBudget
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND category = ?", tripID, category).
		First(&budget).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &budget, nil
}

func (r *budgetRepository) Upsert(ctx context.Context, budget *dbm.TripBudget) error {
	if budget.ID != uuid.Nil {
		return r.db.WithContext(ctx).
			Model(budget).
			Select("planned_amount", "spent_amount", "updated_at").
			Updates(budget).Error
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"planned_amount", "spent_amount", "updated_at"}),
		}).
		Create(budget).Error
}

// SetPlanned creates the category row when a trip predates default budgets.
func (r *budgetRepository) SetPlanned(ctx context.Context, tripID uuid.UUID, category dbm.BudgetCategory, amount float64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"planned_amount", "updated_at"}),
		}).
		Create(&dbm.TripBudget{TripID: tripID, Category: category, PlannedAmount: amount}).Error
}
