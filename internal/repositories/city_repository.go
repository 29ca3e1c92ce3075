package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"gorm.io/gorm"
	dbm "wanderwise/internal/models/db_models"
	req "wanderwise/internal/models/request_models"
	"wanderwise/pkg/utils"
)

type CityRepository interface {
	Insert(ctx context.Context, city *dbm.City) error
	List(ctx context.Context, f req.CityFilter) ([]dbm.City, int64, error)
	FindById(ctx context.Context, id uuid.UUID) (*dbm.City, error)
	FindByIds(ctx context.Context, ids []uuid.UUID) ([]dbm.City, error)
	Suggest(ctx context.Context, q string, limit int) ([]dbm.City, error)
	Popular(ctx context.Context, limit int) ([]dbm.City, error)

	// raw read models
	Nearby(ctx context.Context, lat, lng, radiusKm float64, exclude uuid.UUID, limit int) ([]CityRow, error)
	Countries(ctx context.Context) ([]CountryRow, error)
	PopularPerCountry(ctx context.Context, minScore, perCountry int) ([]CityRow, error)
}

type cityRepository struct {
	db *gorm.DB
	rx *sqlx.DB
}

func NewCityRepository(db *gorm.DB, rx *sqlx.DB) CityRepository {
	return &cityRepository{db: db, rx: rx}
}

// ---------- Row helpers ----------
type CityRow struct {
	ID              uuid.UUID      `db:"id"`
	Name            string         `db:"name"`
	Country         string         `db:"country"`
	Region          string         `db:"region"`
	Latitude        float64        `db:"latitude"`
	Longitude       float64        `db:"longitude"`
	ImageURL        string         `db:"image_url"`
	CostIndex       int            `db:"cost_index"`
	PopularityScore int            `db:"popularity_score"`
	Tags            pq.StringArray `db:"tags"`
	DistanceKm      float64        `db:"distance_km"`
}

type CountryRow struct {
	Country      string  `db:"country"`
	CityCount    int64   `db:"city_count"`
	AvgCostIndex float64 `db:"avg_cost_index"`
}

var citySortColumns = map[string]string{
	"popularityScore": "popularity_score",
	"name":            "name",
	"costIndex":       "cost_index",
	"createdAt":       "created_at",
}

func (r *cityRepository) Insert(ctx context.Context, city *dbm.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *cityRepository) List(ctx context.Context, f req.CityFilter) ([]dbm.City, int64, error) {
	q := r.db.WithContext(ctx).Model(&dbm.City{})

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR country ILIKE ? OR region ILIKE ? OR description ILIKE ?", like, like, like, like)
	}
	if f.Country != "" {
		q = q.Where("country ILIKE ?", "%"+f.Country+"%")
	}
	if f.Region != "" {
		q = q.Where("region ILIKE ?", "%"+f.Region+"%")
	}
	if len(f.CostIndex) > 0 {
		q = q.Where("cost_index IN ?", f.CostIndex)
	}
	if len(f.Tags) > 0 {
		q = q.Where("tags && ?", pq.Array(f.Tags))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := citySortColumns[f.SortBy]
	if !ok {
		col = "popularity_score"
	}
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}

	var cities []dbm.City
	err := q.Order(fmt.Sprintf("%s %s, name ASC", col, dir)).
		Offset(utils.Offset(f.Page, f.PageSize)).
		Limit(f.PageSize).
		Find(&cities).Error
	if err != nil {
		return nil, 0, err
	}

	return cities, total, nil
}

func (r *cityRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.City, error) {
	var city dbm.City
	err := r.db.WithContext(ctx).First(&city, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &city, nil
}

func (r *cityRepository) FindByIds(ctx context.Context, ids []uuid.UUID) ([]dbm.City, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var cities []dbm.City
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) Suggest(ctx context.Context, q string, limit int) ([]dbm.City, error) {
	like := "%" + q + "%"

	var cities []dbm.City
	err := r.db.WithContext(ctx).
		Select("id", "name", "country", "region").
		Where("name ILIKE ? OR country ILIKE ? OR region ILIKE ?", like, like, like).
		Order("popularity_score DESC").
		Limit(limit).
		Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) Popular(ctx context.Context, limit int) ([]dbm.City, error) {
	var cities []dbm.City
	err := r.db.WithContext(ctx).
		Order("popularity_score DESC, name ASC").
		Limit(limit).
		Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

const nearbySQL = `
SELECT id, name, country, region, latitude, longitude, image_url, cost_index, popularity_score, tags, distance_km
FROM (
	SELECT c.*,
		2 * 6371 * ASIN(SQRT(
			POWER(SIN(RADIANS(c.latitude - $1) / 2), 2) +
			COS(RADIANS($1)) * COS(RADIANS(c.latitude)) * POWER(SIN(RADIANS(c.longitude - $2) / 2), 2)
		)) AS distance_km
	FROM cities c
	WHERE c.deleted_at IS NULL AND c.id <> $3
) t
WHERE distance_km <= $4
ORDER BY distance_km ASC
LIMIT $5`

func (r *cityRepository) Nearby(ctx context.Context, lat, lng, radiusKm float64, exclude uuid.UUID, limit int) ([]CityRow, error) {
	rows := []CityRow{}
	if err := r.rx.SelectContext(ctx, &rows, nearbySQL, lat, lng, exclude, radiusKm, limit); err != nil {
		return nil, fmt.Errorf("nearby cities: %w", err)
	}
	return rows, nil
}

const countriesSQL = `
SELECT country,
	COUNT(*) AS city_count,
	ROUND(AVG(cost_index)::numeric, 1)::float8 AS avg_cost_index
FROM cities
WHERE deleted_at IS NULL
GROUP BY country
ORDER BY city_count DESC, country ASC`

func (r *cityRepository) Countries(ctx context.Context) ([]CountryRow, error) {
	rows := []CountryRow{}
	if err := r.rx.SelectContext(ctx, &rows, countriesSQL); err != nil {
		return nil, fmt.Errorf("countries: %w", err)
	}
	return rows, nil
}

const popularPerCountrySQL = `
SELECT id, name, country, region, latitude, longitude, image_url, cost_index, popularity_score, tags, 0::float8 AS distance_km
FROM (
	SELECT c.*, ROW_NUMBER() OVER (PARTITION BY c.country ORDER BY c.popularity_score DESC, c.name ASC) AS rn
	FROM cities c
	WHERE c.deleted_at IS NULL AND c.popularity_score >= $1
) t
WHERE rn <= $2
ORDER BY country ASC, popularity_score DESC`

func (r *cityRepository) PopularPerCountry(ctx context.Context, minScore, perCountry int) ([]CityRow, error) {
	rows := []CityRow{}
	if err := r.rx.SelectContext(ctx, &rows, popularPerCountrySQL, minScore, perCountry); err != nil {
		return nil, fmt.Errorf("popular cities per country: %w", err)
	}
	return rows, nil
}
