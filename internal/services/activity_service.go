package services

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "wanderwise/internal/models/db_models"
	req "wanderwise/internal/models/request_models"
	resp "wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	"wanderwise/pkg/utils"
)

const (
	activitySuggestionLimit = 8
	recommendedDefaultLimit = 10
	recommendedMinRating    = 3.5
)

type ActivityService interface {
	ListActivities(ctx context.Context, filter req.ActivityFilter, duration string) (*resp.Page[resp.ActivityResponse], error)
	GetActivity(ctx context.Context, id uuid.UUID) (*resp.ActivityResponse, error)
	Recommended(ctx context.Context, cityID uuid.UUID, budgetRange string, limit int) (*resp.RecommendedActivities, error)
	Categories(ctx context.Context, cityID *uuid.UUID) ([]resp.CategorySummary, error)
	Suggestions(ctx context.Context, q string, cityID *uuid.UUID) ([]resp.ActivitySuggestion, error)
	BulkPricing(ctx context.Context, in req.BulkPricingRequest) (*resp.BulkPricingResponse, error)
}

type activityService struct {
	activityRepo repositories.ActivityRepository
	cityRepo     repositories.CityRepository
	log          *zap.Logger
}

func NewActivityService(activityRepo repositories.ActivityRepository, cityRepo repositories.CityRepository, log *zap.Logger) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		cityRepo:     cityRepo,
		log:          log.Named("activity"),
	}
}

// ParseDurationHours reads "min-max" in hours and returns the bounds in minutes.
// Either side may be empty ("2-" or "-4").
func ParseDurationHours(s string) (lower, upper *int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil, nil
	}
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return nil, nil, utils.ErrInvalidDuration
	}

	parse := func(v string) (*int, error) {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, nil
		}
		h, err := strconv.ParseFloat(v, 64)
		if err != nil || h < 0 {
			return nil, utils.ErrInvalidDuration
		}
		m := int(h * 60)
		return &m, nil
	}

	if lower, err = parse(lo); err != nil {
		return nil, nil, err
	}
	if upper, err = parse(hi); err != nil {
		return nil, nil, err
	}
	if lower == nil && upper == nil {
		return nil, nil, utils.ErrInvalidDuration
	}
	if lower != nil && upper != nil && *lower > *upper {
		return nil, nil, utils.ErrInvalidDuration
	}
	return lower, upper, nil
}

func (s *activityService) ListActivities(ctx context.Context, filter req.ActivityFilter, duration string) (*resp.Page[resp.ActivityResponse], error) {
	if err := validatePaging(filter.Page, filter.PageSize); err != nil {
		return nil, err
	}
	lower, upper, err := ParseDurationHours(duration)
	if err != nil {
		return nil, err
	}
	filter.MinDurationMin, filter.MaxDurationMin = lower, upper
	filter.Search = strings.TrimSpace(filter.Search)

	activities, total, err := s.activityRepo.List(ctx, filter)
	if err != nil {
		return nil, dbError(s.log, "list activities", err)
	}

	return &resp.Page[resp.ActivityResponse]{
		Items:       toActivityResponses(activities),
		TotalPages:  utils.TotalPages(total, filter.PageSize),
		CurrentPage: filter.Page,
		Total:       total,
		HasMore:     utils.HasMore(total, filter.Page, filter.PageSize),
	}, nil
}

func (s *activityService) GetActivity(ctx context.Context, id uuid.UUID) (*resp.ActivityResponse, error) {
	activity, err := s.activityRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(s.log, "find activity", err)
	}
	if activity == nil || !activity.IsActive {
		return nil, utils.ErrActivityNotAvailable
	}
	out := toActivityResponse(activity)
	return &out, nil
}

func (s *activityService) Recommended(ctx context.Context, cityID uuid.UUID, budgetRange string, limit int) (*resp.RecommendedActivities, error) {
	city, err := s.cityRepo.FindById(ctx, cityID)
	if err != nil {
		return nil, dbError(s.log, "find city", err)
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	if budgetRange == "" {
		budgetRange = string(dbm.BudgetRangeMidRange)
	}
	prices := dbm.PriceCategoriesFor(dbm.BudgetRange(budgetRange))

	activities, err := s.activityRepo.Recommended(ctx, city.ID, prices, recommendedMinRating, clampLimit(limit, recommendedDefaultLimit, 50))
	if err != nil {
		return nil, dbError(s.log, "recommended activities", err)
	}

	out := &resp.RecommendedActivities{
		BudgetRange:     budgetRange,
		PriceCategories: make([]string, 0, len(prices)),
		Activities:      toActivityResponses(activities),
		ByCategory:      map[string][]resp.ActivityResponse{},
	}
	for _, p := range prices {
		out.PriceCategories = append(out.PriceCategories, string(p))
	}
	for _, a := range out.Activities {
		out.ByCategory[a.Category] = append(out.ByCategory[a.Category], a)
	}
	return out, nil
}

func (s *activityService) Categories(ctx context.Context, cityID *uuid.UUID) ([]resp.CategorySummary, error) {
	rows, err := s.activityRepo.Categories(ctx, cityID)
	if err != nil {
		return nil, dbError(s.log, "activity categories", err)
	}

	out := make([]resp.CategorySummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, resp.CategorySummary{
			Category:        r.Category,
			Count:           r.Count,
			AvgRating:       r.AvgRating,
			PriceCategories: strs(r.PriceCategories),
		})
	}
	return out, nil
}

func (s *activityService) Suggestions(ctx context.Context, q string, cityID *uuid.UUID) ([]resp.ActivitySuggestion, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < 2 {
		return []resp.ActivitySuggestion{}, nil
	}

	activities, err := s.activityRepo.Suggest(ctx, q, cityID, activitySuggestionLimit)
	if err != nil {
		return nil, dbError(s.log, "suggest activities", err)
	}

	out := make([]resp.ActivitySuggestion, 0, len(activities))
	for _, a := range activities {
		out = append(out, resp.ActivitySuggestion{
			ID:       a.ID.String(),
			Name:     a.Name,
			Category: string(a.Category),
			CityID:   a.CityID.String(),
			CityName: a.City.Name,
		})
	}
	return out, nil
}

func (s *activityService) BulkPricing(ctx context.Context, in req.BulkPricingRequest) (*resp.BulkPricingResponse, error) {
	if len(in.ActivityIDs) == 0 {
		return nil, utils.ErrEmptyActivityIDs
	}

	ids := make([]uuid.UUID, 0, len(in.ActivityIDs))
	for _, raw := range in.ActivityIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		ids = append(ids, id)
	}

	activities, err := s.activityRepo.FindActiveByIds(ctx, ids)
	if err != nil {
		return nil, dbError(s.log, "find activities", err)
	}

	out := &resp.BulkPricingResponse{
		Activities: make([]resp.ActivityPrice, 0, len(activities)),
		Currency:   "USD",
	}
	for i := range activities {
		a := &activities[i]
		cost := a.EstimatedCost()
		out.Activities = append(out.Activities, resp.ActivityPrice{
			ActivityID:    a.ID.String(),
			Name:          a.Name,
			EstimatedCost: cost,
			Currency:      a.Currency,
			IsFree:        a.IsFree,
		})
		out.TotalCost += cost
	}
	if len(activities) > 0 && activities[0].Currency != "" {
		out.Currency = activities[0].Currency
	}
	out.TotalCost = utils.Round2(out.TotalCost)
	return out, nil
}
