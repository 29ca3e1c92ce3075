package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"gorm.io/gorm"
	dbm "wanderwise/internal/models/db_models"
	req "wanderwise/internal/models/request_models"
	"wanderwise/pkg/utils"
)

type ActivityRepository interface {
	Insert(ctx context.Context, activity *dbm.Activity) error
	List(ctx context.Context, f req.ActivityFilter) ([]dbm.Activity, int64, error)
	FindById(ctx context.Context, id uuid.UUID) (*dbm.Activity, error)
	FindActiveByIds(ctx context.Context, ids []uuid.UUID) ([]dbm.Activity, error)
	ListByCity(ctx context.Context, cityID uuid.UUID) ([]dbm.Activity, error)
	Recommended(ctx context.Context, cityID uuid.UUID, prices []dbm.PriceCategory, minRating float64, limit int) ([]dbm.Activity, error)
	Suggest(ctx context.Context, q string, cityID *uuid.UUID, limit int) ([]dbm.Activity, error)
	Categories(ctx context.Context, cityID *uuid.UUID) ([]CategoryRow, error)
}

type activityRepository struct {
	db *gorm.DB
	rx *sqlx.DB
}

func NewActivityRepository(db *gorm.DB, rx *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db, rx: rx}
}

type CategoryRow struct {
	Category        string         `db:"category"`
	Count           int64          `db:"count"`
	AvgRating       float64        `db:"avg_rating"`
	PriceCategories pq.StringArray `db:"price_categories"`
}

var activitySortColumns = map[string]string{
	"rating":    "rating_average",
	"name":      "name",
	"price":     "cost_min",
	"duration":  "duration_min",
	"createdAt": "created_at",
}

func (r *activityRepository) Insert(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) List(ctx context.Context, f req.ActivityFilter) ([]dbm.Activity, int64, error) {
	q := r.db.WithContext(ctx).Model(&dbm.Activity{}).Where("is_active = ?", true)

	if f.CityID != "" {
		q = q.Where("city_id = ?", f.CityID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ? OR subcategory ILIKE ?", like, like, like)
	}
	if len(f.Categories) > 0 {
		q = q.Where("category IN ?", f.Categories)
	}
	if len(f.PriceCategory) > 0 {
		q = q.Where("price_category IN ?", f.PriceCategory)
	}
	if len(f.Tags) > 0 {
		q = q.Where("tags && ?", pq.Array(f.Tags))
	}
	// duration ranges overlap
	if f.MaxDurationMin != nil {
		q = q.Where("duration_min <= ?", *f.MaxDurationMin)
	}
	if f.MinDurationMin != nil {
		q = q.Where("duration_max >= ?", *f.MinDurationMin)
	}
	if f.MinRating != nil {
		q = q.Where("rating_average >= ?", *f.MinRating)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := activitySortColumns[f.SortBy]
	if !ok {
		col = "rating_average"
	}
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}

	var activities []dbm.Activity
	err := q.Preload("City").
		Order(fmt.Sprintf("%s %s, rating_count DESC, name ASC", col, dir)).
		Offset(utils.Offset(f.Page, f.PageSize)).
		Limit(f.PageSize).
		Find(&activities).Error
	if err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

func (r *activityRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.Activity, error) {
	var activity dbm.Activity
	err := r.db.WithContext(ctx).
		Preload("City").
		First(&activity, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &activity, nil
}

func (r *activityRepository) FindActiveByIds(ctx context.Context, ids []uuid.UUID) ([]dbm.Activity, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) ListByCity(ctx context.Context, cityID uuid.UUID) ([]dbm.Activity, error) {
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).
		Where("city_id = ? AND is_active = ?", cityID, true).
		Order("rating_average DESC, rating_count DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Recommended(ctx context.Context, cityID uuid.UUID, prices []dbm.PriceCategory, minRating float64, limit int) ([]dbm.Activity, error) {
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).
		Where("city_id = ? AND is_active = ?", cityID, true).
		Where("price_category IN ?", prices).
		Where("rating_average >= ?", minRating).
		Order("rating_average DESC, rating_count DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Suggest(ctx context.Context, q string, cityID *uuid.UUID, limit int) ([]dbm.Activity, error) {
	like := "%" + q + "%"

	tx := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("name ILIKE ? OR description ILIKE ? OR category ILIKE ? OR subcategory ILIKE ?", like, like, like, like)
	if cityID != nil {
		tx = tx.Where("city_id = ?", *cityID)
	}

	var activities []dbm.Activity
	err := tx.Preload("City").
		Order("rating_average DESC, rating_count DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Categories(ctx context.Context, cityID *uuid.UUID) ([]CategoryRow, error) {
	var sb strings.Builder
	sb.WriteString(`
SELECT category,
	COUNT(*) AS count,
	ROUND(AVG(rating_average)::numeric, 1)::float8 AS avg_rating,
	ARRAY_AGG(DISTINCT price_category::text) AS price_categories
FROM activities
WHERE deleted_at IS NULL AND is_active = TRUE`)
	args := []interface{}{}
	if cityID != nil {
		sb.WriteString(" AND city_id = ?")
		args = append(args, *cityID)
	}
	sb.WriteString(" GROUP BY category ORDER BY count DESC, category ASC")

	query := sqlx.Rebind(sqlx.DOLLAR, sb.String())
	rows := []CategoryRow{}
	if err := r.rx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("activity categories: %w", err)
	}
	return rows, nil
}
