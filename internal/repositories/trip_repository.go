package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "wanderwise/internal/models/db_models"
	"wanderwise/pkg/utils"
)

type TripRepository interface {
	CreateWithBudgets(ctx context.Context, trip *dbm.Trip, budgets []dbm.TripBudget) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, status string, page, pageSize int) ([]dbm.Trip, int64, error)
	FindById(ctx context.Context, id uuid.UUID) (*dbm.Trip, error)
	FindDetailsById(ctx context.Context, id uuid.UUID) (*dbm.Trip, error)
	FindDetailsByShareToken(ctx context.Context, token string) (*dbm.Trip, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddCollaborator(ctx context.Context, collab *dbm.TripCollaborator) error
	RemoveCollaborator(ctx context.Context, tripID, accountID uuid.UUID) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateWithBudgets(ctx context.Context, trip *dbm.Trip, budgets []dbm.TripBudget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(trip).Error; err != nil {
			return err
		}
		for i := range budgets {
			budgets[i].TripID = trip.ID
		}
		if len(budgets) > 0 {
			if err := tx.Create(&budgets).Error; err != nil {
				return err
			}
		}
		trip.Budgets = budgets
		return nil
	})
}

func (r *tripRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, status string, page, pageSize int) ([]dbm.Trip, int64, error) {
	q := r.db.WithContext(ctx).Model(&dbm.Trip{}).Where("owner_id = ?", ownerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var trips []dbm.Trip
	err := q.
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("order_index ASC") }).
		Preload("Stops.City").
		Order("created_at DESC").
		Offset(utils.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}

	return trips, total, nil
}

// FindById loads the trip with collaborators only, enough for access checks.
func (r *tripRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Preload("Collaborators").
		First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) detailsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Collaborators.Account").
		Preload("Budgets").
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("order_index ASC") }).
		Preload("Stops.City").
		Preload("Stops.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("scheduled_date ASC NULLS LAST, scheduled_time ASC, created_at ASC")
		}).
		Preload("Stops.Activities.Activity")
}

func (r *tripRepository) FindDetailsById(ctx context.Context, id uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.detailsQuery(ctx).First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) FindDetailsByShareToken(ctx context.Context, token string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.detailsQuery(ctx).
		Where("share_token = ? AND privacy = ?", token, dbm.PrivacyPublic).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

// IncrementViews does not touch updated_at.
func (r *tripRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *tripRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Trip{BaseModel: dbm.BaseModel{ID: id}}).
		Updates(fields).Error
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dbm.Trip{}, "id = ?", id).Error
}

// AddCollaborator inserts or updates the role of an existing collaborator.
func (r *tripRepository) AddCollaborator(ctx context.Context, collab *dbm.TripCollaborator) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}, {Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
		}).
		Create(collab).Error
}

func (r *tripRepository) RemoveCollaborator(ctx context.Context, tripID, accountID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Unscoped().
		Where("trip_id = ? AND account_id = ?", tripID, accountID).
		Delete(&dbm.TripCollaborator{})
	return res.RowsAffected > 0, res.Error
}
