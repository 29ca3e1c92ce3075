package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	resp "wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	"wanderwise/pkg/utils"
)

type StatsService interface {
	// TravelStats builds the travel wrap for one account. A nil year covers
	// every trip the account owns.
	TravelStats(ctx context.Context, accountID uuid.UUID, year *int) (*resp.TravelStats, error)
}

type statsService struct {
	repo repositories.StatsRepository
	log  *zap.Logger
}

func NewStatsService(repo repositories.StatsRepository, log *zap.Logger) StatsService {
	return &statsService{repo: repo, log: log.Named("stats")}
}

func (s *statsService) TravelStats(ctx context.Context, accountID uuid.UUID, year *int) (*resp.TravelStats, error) {
	var (
		totals     repositories.TripTotalsRow
		dest       repositories.DestinationTotalsRow
		countries  []string
		activities int64
		top        *resp.CityVisits
		longest    *resp.TripLength
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.repo.TripTotals(gctx, accountID, year)
		return err
	})
	g.Go(func() (err error) {
		dest, err = s.repo.DestinationTotals(gctx, accountID, year)
		return err
	})
	g.Go(func() (err error) {
		countries, err = s.repo.Countries(gctx, accountID, year)
		return err
	})
	g.Go(func() (err error) {
		activities, err = s.repo.CountActivities(gctx, accountID, year)
		return err
	})
	g.Go(func() (err error) {
		top, err = s.repo.TopDestination(gctx, accountID, year)
		return err
	})
	g.Go(func() (err error) {
		longest, err = s.repo.LongestTrip(gctx, accountID, year)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dbError(s.log, "travel stats", err)
	}

	if countries == nil {
		countries = []string{}
	}
	out := &resp.TravelStats{
		Year:              year,
		TotalTrips:        totals.Trips,
		TotalDestinations: dest.Cities,
		TotalCountries:    dest.Countries,
		TotalDays:         totals.Days,
		TotalBudget:       utils.Round2(totals.Budget),
		TotalActivities:   activities,
		TopDestination:    top,
		LongestTrip:       longest,
		Countries:         countries,
	}
	if totals.Trips > 0 {
		out.AverageTripLength = utils.Round1(float64(totals.Days) / float64(totals.Trips))
	}
	return out, nil
}
