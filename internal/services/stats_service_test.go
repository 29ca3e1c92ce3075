package services

import (
	"context"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"
	"go.uber.org/zap"
	resp "wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	"wanderwise/pkg/utils"
)

func TestTravelStats(t *testing.T) {
	c := qt.New(t)

	repo := &fakeStatsRepo{
		totals:    repositories.TripTotalsRow{Trips: 3, Days: 20, Budget: 4200.456},
		dest:      repositories.DestinationTotalsRow{Cities: 5, Countries: 2},
		countries: []string{"France", "Japan"},
		acts:      14,
		top:       &resp.CityVisits{Name: "Paris", Country: "France", Visits: 2},
		longest:   &resp.TripLength{Name: "Japan loop", Days: 10},
	}
	svc := NewStatsService(repo, zap.NewNop())
	year := 2025

	out, err := svc.TravelStats(context.Background(), uuid.New(), &year)
	c.Assert(err, qt.IsNil)
	c.Assert(*out.Year, qt.Equals, 2025)
	c.Assert(out.TotalTrips, qt.Equals, int64(3))
	c.Assert(out.TotalDestinations, qt.Equals, int64(5))
	c.Assert(out.TotalCountries, qt.Equals, int64(2))
	c.Assert(out.TotalBudget, qt.Equals, 4200.46)
	c.Assert(out.AverageTripLength, qt.Equals, 6.7)
	c.Assert(out.TotalActivities, qt.Equals, int64(14))
	c.Assert(out.TopDestination.Name, qt.Equals, "Paris")
	c.Assert(out.LongestTrip.Days, qt.Equals, 10)
}

func TestTravelStatsEmpty(t *testing.T) {
	c := qt.New(t)

	out, err := NewStatsService(&fakeStatsRepo{}, zap.NewNop()).TravelStats(context.Background(), uuid.New(), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(out.Year, qt.IsNil)
	c.Assert(out.AverageTripLength, qt.Equals, 0.0)
	c.Assert(out.Countries, qt.DeepEquals, []string{})
	c.Assert(out.TopDestination, qt.IsNil)
}

func TestTravelStatsFailure(t *testing.T) {
	c := qt.New(t)

	repo := &fakeStatsRepo{err: errors.New("boom")}
	_, err := NewStatsService(repo, zap.NewNop()).TravelStats(context.Background(), uuid.New(), nil)
	c.Assert(err, qt.ErrorIs, utils.ErrDatabaseError)
}
