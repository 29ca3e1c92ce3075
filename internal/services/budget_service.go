package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "wanderwise/internal/models/db_models"
	req "wanderwise/internal/models/request_models"
	resp "wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	"wanderwise/pkg/utils"
)

type BudgetService interface {
	GetBudget(ctx context.Context, tripID, viewerID uuid.UUID) (*resp.BudgetResponse, error)
	UpdateCategory(ctx context.Context, tripID, actorID uuid.UUID, category string, in req.UpdateBudgetRequest) (*resp.BudgetResponse, error)

	// RecalculateActivities sets the activities budget to the cost of every
	// activity currently counted toward the trip total.
	RecalculateActivities(ctx context.Context, tripID uuid.UUID) (float64, error)
}

type budgetService struct {
	tripRepo   repositories.TripRepository
	stopRepo   repositories.StopRepository
	budgetRepo repositories.BudgetRepository
	log        *zap.Logger
}

func NewBudgetService(
	tripRepo repositories.TripRepository,
	stopRepo repositories.StopRepository,
	budgetRepo repositories.BudgetRepository,
	log *zap.Logger,
) BudgetService {
	return &budgetService{
		tripRepo:   tripRepo,
		stopRepo:   stopRepo,
		budgetRepo: budgetRepo,
		log:        log.Named("budget"),
	}
}

// AddedActivitiesCost sums the cost of activities flagged as added to total.
func AddedActivitiesCost(stops []dbm.TripStop) float64 {
	total := 0.0
	for _, s := range stops {
		for i := range s.Activities {
			if s.Activities[i].AddedToTotal {
				total += s.Activities[i].Cost()
			}
		}
	}
	return total
}

// BuildBudget lays out every category in canonical order. Categories with no
// stored row are reported as zero.
func BuildBudget(t *dbm.Trip, budgets []dbm.TripBudget, activitiesCost float64) resp.BudgetResponse {
	byCat := make(map[dbm.BudgetCategory]dbm.TripBudget, len(budgets))
	for _, b := range budgets {
		byCat[b.Category] = b
	}

	out := resp.BudgetResponse{
		Currency:       t.Currency,
		Categories:     make([]resp.BudgetCategoryResponse, 0, len(dbm.BudgetCategories)),
		TotalBudget:    t.TotalBudget,
		ActivitiesCost: utils.Round2(activitiesCost),
		DurationDays:   utils.DurationDays(t.StartDate, t.EndDate),
		CalendarDays:   utils.CalendarDays(t.StartDate, t.EndDate),
	}
	for _, cat := range dbm.BudgetCategories {
		b := byCat[cat]
		out.Categories = append(out.Categories, resp.BudgetCategoryResponse{
			Category:      string(cat),
			PlannedAmount: b.PlannedAmount,
			SpentAmount:   b.SpentAmount,
			Remaining:     b.Remaining(),
		})
		out.TotalPlanned += b.PlannedAmount
		out.TotalSpent += b.SpentAmount
	}
	out.Remaining = out.TotalPlanned - out.TotalSpent
	if out.TotalPlanned > 0 {
		out.SpentPercentage = utils.Round1(out.TotalSpent / out.TotalPlanned * 100)
	}

	base := t.TotalBudget
	if base <= 0 {
		base = out.TotalPlanned
	}
	if out.CalendarDays > 0 {
		out.DailyAverage = utils.Round2(base / float64(out.CalendarDays))
	}
	return out
}

func (s *budgetService) loadTrip(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {
	trip, err := s.tripRepo.FindById(ctx, tripID)
	if err != nil {
		return nil, dbError(s.log, "find trip", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *budgetService) build(ctx context.Context, trip *dbm.Trip) (*resp.BudgetResponse, error) {
	budgets, err := s.budgetRepo.ListByTrip(ctx, trip.ID)
	if err != nil {
		return nil, dbError(s.log, "list budgets", err)
	}
	added, err := s.stopRepo.ListAddedActivities(ctx, trip.ID)
	if err != nil {
		return nil, dbError(s.log, "list added activities", err)
	}
	cost := 0.0
	for i := range added {
		cost += added[i].Cost()
	}
	out := BuildBudget(trip, budgets, cost)
	return &out, nil
}

func (s *budgetService) GetBudget(ctx context.Context, tripID, viewerID uuid.UUID) (*resp.BudgetResponse, error) {
	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.CanView(viewerID) {
		return nil, utils.ErrForbidden
	}
	return s.build(ctx, trip)
}

func (s *budgetService) UpdateCategory(ctx context.Context, tripID, actorID uuid.UUID, category string, in req.UpdateBudgetRequest) (*resp.BudgetResponse, error) {
	cat := dbm.BudgetCategory(category)
	if !cat.Valid() {
		return nil, utils.ErrInvalidCategory
	}
	if in.PlannedAmount == nil && in.SpentAmount == nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := s.loadTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.CanEditItinerary(actorID) {
		return nil, utils.ErrForbidden
	}

	row, err := s.budgetRepo.FindCategory(ctx, tripID, cat)
	if err != nil {
		return nil, dbError(s.log, "find budget", err)
	}
	if row == nil {
		row = &dbm.TripBudget{TripID: tripID, Category: cat}
	}
	if in.PlannedAmount != nil {
		row.PlannedAmount = *in.PlannedAmount
	}
	if in.SpentAmount != nil {
		row.SpentAmount = *in.SpentAmount
	}
	if err := s.budgetRepo.Upsert(ctx, row); err != nil {
		return nil, dbError(s.log, "upsert budget", err)
	}

	return s.build(ctx, trip)
}

func (s *budgetService) RecalculateActivities(ctx context.Context, tripID uuid.UUID) (float64, error) {
	added, err := s.stopRepo.ListAddedActivities(ctx, tripID)
	if err != nil {
		return 0, dbError(s.log, "list added activities", err)
	}
	total := 0.0
	for i := range added {
		total += added[i].Cost()
	}
	total = utils.Round2(total)

	if err := s.budgetRepo.SetPlanned(ctx, tripID, dbm.BudgetActivities, total); err != nil {
		return 0, dbError(s.log, "set activities budget", err)
	}
	return total, nil
}
