package services

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "wanderwise/internal/models/db_models"
	resp "wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	mem "wanderwise/pkg/memcache"
	"wanderwise/pkg/utils"
)

// LegKey identifies an unordered city pair; distances are symmetric.
type LegKey struct {
	A uuid.UUID
	B uuid.UUID
}

func NewLegKey(a, b uuid.UUID) LegKey {
	if b.String() < a.String() {
		a, b = b, a
	}
	return LegKey{A: a, B: b}
}

// LegCache keeps great-circle distances between city pairs.
type LegCache = mem.Store[LegKey, float64]

const legCacheTTL = 7 * 24 * time.Hour

type ItineraryService interface {
	GetItinerary(ctx context.Context, tripID, viewerID uuid.UUID) (*resp.ItineraryResponse, error)
}

type itineraryService struct {
	tripRepo repositories.TripRepository
	cache    LegCache
	log      *zap.Logger
}

func NewItineraryService(tripRepo repositories.TripRepository, cache LegCache, log *zap.Logger) ItineraryService {
	return &itineraryService{
		tripRepo: tripRepo,
		cache:    cache,
		log:      log.Named("itinerary"),
	}
}

func (s *itineraryService) distance(from, to *dbm.City) float64 {
	if from.ID == to.ID {
		return 0
	}
	k := NewLegKey(from.ID, to.ID)
	if v, ok := s.cache.Get(k); ok {
		return v
	}
	d := utils.Round1(utils.Haversine(from.Latitude, from.Longitude, to.Latitude, to.Longitude))
	s.cache.Set(k, d, legCacheTTL)
	return d
}

func (s *itineraryService) GetItinerary(ctx context.Context, tripID, viewerID uuid.UUID) (*resp.ItineraryResponse, error) {
	trip, err := s.tripRepo.FindDetailsById(ctx, tripID)
	if err != nil {
		return nil, dbError(s.log, "load trip details", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !trip.CanView(viewerID) {
		return nil, utils.ErrForbidden
	}

	return s.build(trip), nil
}

func (s *itineraryService) build(trip *dbm.Trip) *resp.ItineraryResponse {
	sortStops(trip.Stops)

	out := &resp.ItineraryResponse{
		TripID:    trip.ID.String(),
		Name:      trip.Name,
		StartDate: utils.FormatDate(trip.StartDate),
		EndDate:   utils.FormatDate(trip.EndDate),
		Stops:     make([]resp.ItineraryStop, 0, len(trip.Stops)),
		Legs:      []resp.ItineraryLeg{},
		Days:      []resp.ItineraryDay{},
		Markers:   make([]resp.MapMarker, 0, len(trip.Stops)),
	}

	total := 0.0
	for i := range trip.Stops {
		stop := &trip.Stops[i]
		out.Stops = append(out.Stops, resp.ItineraryStop{
			StopResponse: toStopResponse(stop),
			Nights:       nights(stop),
		})
		out.Markers = append(out.Markers, resp.MapMarker{
			StopID:    stop.ID.String(),
			Order:     stop.OrderIndex,
			Label:     stop.City.Name,
			Latitude:  stop.City.Latitude,
			Longitude: stop.City.Longitude,
		})
		out.Days = append(out.Days, stopDays(stop)...)

		if i == 0 {
			continue
		}
		prev := &trip.Stops[i-1]
		d := s.distance(&prev.City, &stop.City)
		total += d
		out.Legs = append(out.Legs, resp.ItineraryLeg{
			FromStopID: prev.ID.String(),
			ToStopID:   stop.ID.String(),
			From:       prev.City.Name,
			To:         stop.City.Name,
			DistanceKm: d,
			Method:     stop.Transport.Method,
			Cost:       stop.Transport.Cost,
		})
	}
	out.TotalDistanceKm = utils.Round1(total)
	return out
}

func nights(stop *dbm.TripStop) int {
	n := utils.CalendarDays(stop.ArrivalDate, stop.DepartureDate) - 1
	if n < 0 {
		return 0
	}
	return n
}

// stopDays lists every date from arrival to departure inclusive, each
// carrying the activities scheduled on that date. Activities dated outside the
// stay get days of their own after it.
func stopDays(stop *dbm.TripStop) []resp.ItineraryDay {
	byDate := map[string][]resp.TripActivityResponse{}
	for i := range stop.Activities {
		ta := &stop.Activities[i]
		if ta.ScheduledDate == nil {
			continue
		}
		key := utils.FormatDate(*ta.ScheduledDate)
		byDate[key] = append(byDate[key], toTripActivityResponse(ta))
	}

	day := func(date string) resp.ItineraryDay {
		acts := byDate[date]
		if acts == nil {
			acts = []resp.TripActivityResponse{}
		}
		return resp.ItineraryDay{
			Date:       date,
			StopID:     stop.ID.String(),
			City:       stop.City.Name,
			Activities: acts,
		}
	}

	count := utils.CalendarDays(stop.ArrivalDate, stop.DepartureDate)
	if count < 1 {
		count = 1
	}
	first := utils.TruncateToDate(stop.ArrivalDate)

	days := make([]resp.ItineraryDay, 0, count)
	covered := make(map[string]bool, count)
	for d := 0; d < count; d++ {
		date := utils.FormatDate(first.AddDate(0, 0, d))
		covered[date] = true
		days = append(days, day(date))
	}

	var extra []string
	for date := range byDate {
		if !covered[date] {
			extra = append(extra, date)
		}
	}
	slices.Sort(extra)
	for _, date := range extra {
		days = append(days, day(date))
	}
	return days
}
