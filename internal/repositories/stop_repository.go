package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "wanderwise/internal/models/db_models"
)

type StopRepository interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.TripStop, error)
	CountByTrip(ctx context.Context, tripID uuid.UUID) (int64, error)
	Insert(ctx context.Context, stop *dbm.TripStop) error
	FindById(ctx context.Context, tripID, stopID uuid.UUID) (*dbm.TripStop, error)
	Save(ctx context.Context, stop *dbm.TripStop) error
	DeleteAndRenumber(ctx context.Context, tripID, stopID uuid.UUID) error
	Reorder(ctx context.Context, tripID uuid.UUID, orderedIDs []uuid.UUID) error

	ReplaceActivities(ctx context.Context, stopID uuid.UUID, acts []dbm.TripActivity) error
	InsertActivity(ctx context.Context, act *dbm.TripActivity) error
	DeleteActivity(ctx context.Context, stopID, tripActivityID uuid.UUID) (bool, error)
	ListAddedActivities(ctx context.Context, tripID uuid.UUID) ([]dbm.TripActivity, error)
}

type stopRepository struct {
	db *gorm.DB
}

func NewStopRepository(db *gorm.DB) StopRepository {
	return &stopRepository{db: db}
}

func (r *stopRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.TripStop, error) {
	var stops []dbm.TripStop
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Preload("City").
		Order("order_index ASC").
		Find(&stops).Error
	if err != nil {
		return nil, err
	}
	return stops, nil
}

func (r *stopRepository) CountByTrip(ctx context.Context, tripID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.TripStop{}).Where("trip_id = ?", tripID).Count(&n).Error
	return n, err
}

func (r *stopRepository) Insert(ctx context.Context, stop *dbm.TripStop) error {
	return r.db.WithContext(ctx).Omit("City", "Activities").Create(stop).Error
}

func (r *stopRepository) FindById(ctx context.Context, tripID, stopID uuid.UUID) (*dbm.TripStop, error) {
	var stop dbm.TripStop
	err := r.db.WithContext(ctx).
		Preload("City").
		Where("trip_id = ? AND id = ?", tripID, stopID).
		First(&stop).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &stop, nil
}

func (r *stopRepository) Save(ctx context.Context, stop *dbm.TripStop) error {
	return r.db.WithContext(ctx).Omit("City", "Activities").Save(stop).Error
}

// DeleteAndRenumber removes a stop with its activities and closes the gap in
// order_index so the remaining stops stay 1..n.
func (r *stopRepository) DeleteAndRenumber(ctx context.Context, tripID, stopID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stop_id = ?", stopID).Delete(&dbm.TripActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ? AND id = ?", tripID, stopID).Delete(&dbm.TripStop{}).Error; err != nil {
			return err
		}

		var remaining []dbm.TripStop
		if err := tx.Select("id", "order_index").
			Where("trip_id = ?", tripID).
			Order("order_index ASC").
			Find(&remaining).Error; err != nil {
			return err
		}
		for i, s := range remaining {
			if s.OrderIndex == i+1 {
				continue
			}
			if err := tx.Model(&dbm.TripStop{}).
				Where("id = ?", s.ID).
				Update("order_index", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *stopRepository) Reorder(ctx context.Context, tripID uuid.UUID, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&dbm.TripStop{}).
				Where("trip_id = ? AND id = ?", tripID, id).
				Update("order_index", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceActivities hard deletes the stop's current activities before inserting acts.
func (r *stopRepository) ReplaceActivities(ctx context.Context, stopID uuid.UUID, acts []dbm.TripActivity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("stop_id = ?", stopID).Delete(&dbm.TripActivity{}).Error; err != nil {
			return err
		}
		if len(acts) == 0 {
			return nil
		}
		for i := range acts {
			acts[i].StopID = stopID
		}
		return tx.Omit("Activity").Create(&acts).Error
	})
}

func (r *stopRepository) InsertActivity(ctx context.Context, act *dbm.TripActivity) error {
	return r.db.WithContext(ctx).Omit("Activity").Create(act).Error
}

func (r *stopRepository) DeleteActivity(ctx context.Context, stopID, tripActivityID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Unscoped().
		Where("stop_id = ? AND id = ?", stopID, tripActivityID).
		Delete(&dbm.TripActivity{})
	return res.RowsAffected > 0, res.Error
}

// ListAddedActivities returns every activity counted toward the trip budget.
func (r *stopRepository) ListAddedActivities(ctx context.Context, tripID uuid.UUID) ([]dbm.TripActivity, error) {
	var acts []dbm.TripActivity
	err := r.db.WithContext(ctx).
		Joins("JOIN trip_stops ON trip_stops.id = trip_activities.stop_id AND trip_stops.deleted_at IS NULL").
		Where("trip_stops.trip_id = ? AND trip_activities.added_to_total = ?", tripID, true).
		Preload("Activity").
		Find(&acts).Error
	if err != nil {
		return nil, err
	}
	return acts, nil
}
