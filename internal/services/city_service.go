package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	req "wanderwise/internal/models/request_models"
	resp "wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	"wanderwise/pkg/utils"
)

const (
	citySuggestionLimit   = 10
	popularCitiesDefault  = 12
	nearbyDefaultDistance = 500.0
	nearbyDefaultRadius   = 100.0
	nearbyDefaultLimit    = 10
	countryPopularScore   = 70
	countryPopularCities  = 3
)

type CityService interface {
	ListCities(ctx context.Context, filter req.CityFilter) (*resp.Page[resp.CityResponse], error)
	GetCity(ctx context.Context, id uuid.UUID) (*resp.CityDetailResponse, error)
	Suggestions(ctx context.Context, q string) ([]resp.CitySuggestion, error)
	Popular(ctx context.Context, limit int) ([]resp.CitySummary, error)
	NearbyCity(ctx context.Context, id uuid.UUID, maxDistanceKm float64, limit int) ([]resp.NearbyCity, error)
	NearbyPoint(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]resp.NearbyCity, error)
	Countries(ctx context.Context) ([]resp.CountrySummary, error)
}

type cityService struct {
	cityRepo     repositories.CityRepository
	activityRepo repositories.ActivityRepository
	log          *zap.Logger
}

func NewCityService(cityRepo repositories.CityRepository, activityRepo repositories.ActivityRepository, log *zap.Logger) CityService {
	return &cityService{
		cityRepo:     cityRepo,
		activityRepo: activityRepo,
		log:          log.Named("city"),
	}
}

func (s *cityService) ListCities(ctx context.Context, filter req.CityFilter) (*resp.Page[resp.CityResponse], error) {
	if err := validatePaging(filter.Page, filter.PageSize); err != nil {
		return nil, err
	}
	filter.Search = strings.TrimSpace(filter.Search)

	cities, total, err := s.cityRepo.List(ctx, filter)
	if err != nil {
		return nil, dbError(s.log, "list cities", err)
	}

	items := make([]resp.CityResponse, 0, len(cities))
	for i := range cities {
		items = append(items, toCityResponse(&cities[i]))
	}

	return &resp.Page[resp.CityResponse]{
		Items:       items,
		TotalPages:  utils.TotalPages(total, filter.PageSize),
		CurrentPage: filter.Page,
		Total:       total,
		HasMore:     utils.HasMore(total, filter.Page, filter.PageSize),
	}, nil
}

func (s *cityService) GetCity(ctx context.Context, id uuid.UUID) (*resp.CityDetailResponse, error) {
	city, err := s.cityRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(s.log, "find city", err)
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	activities, err := s.activityRepo.ListByCity(ctx, city.ID)
	if err != nil {
		return nil, dbError(s.log, "list city activities", err)
	}

	return &resp.CityDetailResponse{
		CityResponse: toCityResponse(city),
		Activities:   toActivityResponses(activities),
	}, nil
}

func (s *cityService) Suggestions(ctx context.Context, q string) ([]resp.CitySuggestion, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < 2 {
		return []resp.CitySuggestion{}, nil
	}

	cities, err := s.cityRepo.Suggest(ctx, q, citySuggestionLimit)
	if err != nil {
		return nil, dbError(s.log, "suggest cities", err)
	}

	out := make([]resp.CitySuggestion, 0, len(cities))
	for _, c := range cities {
		out = append(out, resp.CitySuggestion{ID: c.ID.String(), Name: c.Name, Country: c.Country, Region: c.Region})
	}
	return out, nil
}

func (s *cityService) Popular(ctx context.Context, limit int) ([]resp.CitySummary, error) {
	cities, err := s.cityRepo.Popular(ctx, clampLimit(limit, popularCitiesDefault, 100))
	if err != nil {
		return nil, dbError(s.log, "popular cities", err)
	}

	out := make([]resp.CitySummary, 0, len(cities))
	for i := range cities {
		out = append(out, toCitySummary(&cities[i]))
	}
	return out, nil
}

func (s *cityService) NearbyCity(ctx context.Context, id uuid.UUID, maxDistanceKm float64, limit int) ([]resp.NearbyCity, error) {
	city, err := s.cityRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(s.log, "find city", err)
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}
	if maxDistanceKm <= 0 {
		maxDistanceKm = nearbyDefaultDistance
	}
	return s.nearby(ctx, city.Latitude, city.Longitude, maxDistanceKm, city.ID, limit)
}

func (s *cityService) NearbyPoint(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]resp.NearbyCity, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, utils.ErrInvalidInput
	}
	if radiusKm <= 0 {
		radiusKm = nearbyDefaultRadius
	}
	return s.nearby(ctx, lat, lng, radiusKm, uuid.Nil, limit)
}

func (s *cityService) nearby(ctx context.Context, lat, lng, radiusKm float64, exclude uuid.UUID, limit int) ([]resp.NearbyCity, error) {
	rows, err := s.cityRepo.Nearby(ctx, lat, lng, radiusKm, exclude, clampLimit(limit, nearbyDefaultLimit, 50))
	if err != nil {
		return nil, dbError(s.log, "nearby cities", err)
	}

	out := make([]resp.NearbyCity, 0, len(rows))
	for _, r := range rows {
		out = append(out, resp.NearbyCity{
			CitySummary: rowToCitySummary(r),
			DistanceKm:  utils.Round1(r.DistanceKm),
		})
	}
	return out, nil
}

func (s *cityService) Countries(ctx context.Context) ([]resp.CountrySummary, error) {
	rows, err := s.cityRepo.Countries(ctx)
	if err != nil {
		return nil, dbError(s.log, "countries", err)
	}
	popular, err := s.cityRepo.PopularPerCountry(ctx, countryPopularScore, countryPopularCities)
	if err != nil {
		return nil, dbError(s.log, "popular cities per country", err)
	}

	byCountry := make(map[string][]resp.CitySummary)
	for _, p := range popular {
		byCountry[p.Country] = append(byCountry[p.Country], rowToCitySummary(p))
	}

	out := make([]resp.CountrySummary, 0, len(rows))
	for _, r := range rows {
		cities := byCountry[r.Country]
		if cities == nil {
			cities = []resp.CitySummary{}
		}
		out = append(out, resp.CountrySummary{
			Country:       r.Country,
			CityCount:     r.CityCount,
			AvgCostIndex:  r.AvgCostIndex,
			PopularCities: cities,
		})
	}
	return out, nil
}
