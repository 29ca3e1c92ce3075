package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	resp "wanderwise/internal/models/response_models"
)

// StatsRepository answers the travel wrap queries. A nil year covers every trip.
type StatsRepository interface {
	TripTotals(ctx context.Context, ownerID uuid.UUID, year *int) (TripTotalsRow, error)
	DestinationTotals(ctx context.Context, ownerID uuid.UUID, year *int) (DestinationTotalsRow, error)
	Countries(ctx context.Context, ownerID uuid.UUID, year *int) ([]string, error)
	CountActivities(ctx context.Context, ownerID uuid.UUID, year *int) (int64, error)
	TopDestination(ctx context.Context, ownerID uuid.UUID, year *int) (*resp.CityVisits, error)
	LongestTrip(ctx context.Context, ownerID uuid.UUID, year *int) (*resp.TripLength, error)
}

type statsRepository struct {
	rx *sqlx.DB
}

func NewStatsRepository(rx *sqlx.DB) StatsRepository {
	return &statsRepository{rx: rx}
}

// ---------- Row helpers ----------
type TripTotalsRow struct {
	Trips  int64   `db:"trips"`
	Days   int64   `db:"days"`
	Budget float64 `db:"budget"`
}

type DestinationTotalsRow struct {
	Cities    int64 `db:"cities"`
	Countries int64 `db:"countries"`
}

// ownedTrips restricts to the caller's live trips, optionally starting in year ($2).
const ownedTrips = `t.owner_id = $1 AND t.deleted_at IS NULL
	AND ($2::int IS NULL OR EXTRACT(YEAR FROM t.start_date)::int = $2::int)`

func (r *statsRepository) TripTotals(ctx context.Context, ownerID uuid.UUID, year *int) (TripTotalsRow, error) {
	var row TripTotalsRow
	q := `SELECT COUNT(*) AS trips,
	COALESCE(SUM(t.total_days), 0) AS days,
	COALESCE(SUM(t.total_budget), 0)::float8 AS budget
FROM trips t
WHERE ` + ownedTrips
	if err := r.rx.GetContext(ctx, &row, q, ownerID, year); err != nil {
		return row, fmt.Errorf("trip totals: %w", err)
	}
	return row, nil
}

func (r *statsRepository) DestinationTotals(ctx context.Context, ownerID uuid.UUID, year *int) (DestinationTotalsRow, error) {
	var row DestinationTotalsRow
	q := `SELECT COUNT(DISTINCT s.city_id) AS cities, COUNT(DISTINCT c.country) AS countries
FROM trip_stops s
JOIN trips t ON t.id = s.trip_id
JOIN cities c ON c.id = s.city_id
WHERE s.deleted_at IS NULL AND ` + ownedTrips
	if err := r.rx.GetContext(ctx, &row, q, ownerID, year); err != nil {
		return row, fmt.Errorf("destination totals: %w", err)
	}
	return row, nil
}

func (r *statsRepository) Countries(ctx context.Context, ownerID uuid.UUID, year *int) ([]string, error) {
	countries := []string{}
	q := `SELECT DISTINCT c.country
FROM trip_stops s
JOIN trips t ON t.id = s.trip_id
JOIN cities c ON c.id = s.city_id
WHERE s.deleted_at IS NULL AND ` + ownedTrips + `
ORDER BY c.country ASC`
	if err := r.rx.SelectContext(ctx, &countries, q, ownerID, year); err != nil {
		return nil, fmt.Errorf("visited countries: %w", err)
	}
	return countries, nil
}

func (r *statsRepository) CountActivities(ctx context.Context, ownerID uuid.UUID, year *int) (int64, error) {
	var n int64
	q := `SELECT COUNT(*)
FROM trip_activities ta
JOIN trip_stops s ON s.id = ta.stop_id
JOIN trips t ON t.id = s.trip_id
WHERE ta.deleted_at IS NULL AND s.deleted_at IS NULL AND ` + ownedTrips
	if err := r.rx.GetContext(ctx, &n, q, ownerID, year); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	return n, nil
}

func (r *statsRepository) TopDestination(ctx context.Context, ownerID uuid.UUID, year *int) (*resp.CityVisits, error) {
	var row resp.CityVisits
	q := `SELECT c.id::text AS city_id, c.name, c.country, COUNT(*) AS visits
FROM trip_stops s
JOIN trips t ON t.id = s.trip_id
JOIN cities c ON c.id = s.city_id
WHERE s.deleted_at IS NULL AND ` + ownedTrips + `
GROUP BY c.id, c.name, c.country
ORDER BY visits DESC, c.name ASC
LIMIT 1`
	if err := r.rx.GetContext(ctx, &row, q, ownerID, year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("top destination: %w", err)
	}
	return &row, nil
}

func (r *statsRepository) LongestTrip(ctx context.Context, ownerID uuid.UUID, year *int) (*resp.TripLength, error) {
	var row resp.TripLength
	q := `SELECT t.id::text AS trip_id, t.name, t.total_days AS days
FROM trips t
WHERE ` + ownedTrips + `
ORDER BY t.total_days DESC, t.start_date ASC
LIMIT 1`
	if err := r.rx.GetContext(ctx, &row, q, ownerID, year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("longest trip: %w", err)
	}
	return &row, nil
}
