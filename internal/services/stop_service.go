package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "wanderwise/internal/models/db_models"
	req "wanderwise/internal/models/request_models"
	resp "wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	"wanderwise/pkg/utils"
)

type StopService interface {
	AddStop(ctx context.Context, tripID, actorID uuid.UUID, in req.AddStopRequest) (*resp.StopResponse, error)
	UpdateStop(ctx context.Context, tripID, stopID, actorID uuid.UUID, in req.UpdateStopRequest) (*resp.StopResponse, error)
	RemoveStop(ctx context.Context, tripID, stopID, actorID uuid.UUID) error
	ReorderStops(ctx context.Context, tripID, actorID uuid.UUID, in req.ReorderStopsRequest) ([]resp.StopResponse, error)

	ReplaceStopActivities(ctx context.Context, tripID, stopID, actorID uuid.UUID, in req.ReplaceStopActivitiesRequest) (*resp.TripResponse, error)
	AddStopActivity(ctx context.Context, tripID, stopID, actorID uuid.UUID, in req.StopActivityInput) (*resp.TripResponse, error)
	RemoveStopActivity(ctx context.Context, tripID, stopID, tripActivityID, actorID uuid.UUID) (*resp.TripResponse, error)
}

type stopService struct {
	tripRepo     repositories.TripRepository
	stopRepo     repositories.StopRepository
	cityRepo     repositories.CityRepository
	activityRepo repositories.ActivityRepository
	budgets      BudgetService
	log          *zap.Logger
}

func NewStopService(
	tripRepo repositories.TripRepository,
	stopRepo repositories.StopRepository,
	cityRepo repositories.CityRepository,
	activityRepo repositories.ActivityRepository,
	budgets BudgetService,
	log *zap.Logger,
) StopService {
	return &stopService{
		tripRepo:     tripRepo,
		stopRepo:     stopRepo,
		cityRepo:     cityRepo,
		activityRepo: activityRepo,
		budgets:      budgets,
		log:          log.Named("stop"),
	}
}

// editableTrip loads the trip and checks the actor may change its itinerary.
func (s *stopService) editableTrip(ctx context.Context, tripID, actorID uuid.UUID) (*dbm.Trip, error) {
	trip, err := s.tripRepo.FindById(ctx, tripID)
	if err != nil {
		return nil, dbError(s.log, "find trip", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !trip.CanEditItinerary(actorID) {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}

func (s *stopService) findStop(ctx context.Context, tripID, stopID uuid.UUID) (*dbm.TripStop, error) {
	stop, err := s.stopRepo.FindById(ctx, tripID, stopID)
	if err != nil {
		return nil, dbError(s.log, "find stop", err)
	}
	if stop == nil {
		return nil, utils.ErrStopNotFound
	}
	return stop, nil
}

// checkStopDates enforces departure after arrival, both inside the trip's dates.
func checkStopDates(trip *dbm.Trip, arrival, departure time.Time) error {
	if !departure.After(arrival) {
		return utils.ErrInvalidDateRange
	}
	if utils.TruncateToDate(arrival).Before(utils.TruncateToDate(trip.StartDate)) ||
		utils.TruncateToDate(departure).After(utils.TruncateToDate(trip.EndDate)) {
		return utils.ErrStopOutsideTrip
	}
	return nil
}

func applyAccommodation(dst *dbm.Accommodation, in *req.AccommodationInput) {
	if in == nil {
		return
	}
	*dst = dbm.Accommodation{Name: in.Name, Type: in.Type, Address: in.Address, Cost: in.Cost}
}

func applyTransport(dst *dbm.Transport, in *req.TransportInput) {
	if in == nil {
		return
	}
	*dst = dbm.Transport{Method: in.Method, Cost: in.Cost}
}

func (s *stopService) AddStop(ctx context.Context, tripID, actorID uuid.UUID, in req.AddStopRequest) (*resp.StopResponse, error) {
	trip, err := s.editableTrip(ctx, tripID, actorID)
	if err != nil {
		return nil, err
	}

	cityID, err := uuid.Parse(in.CityID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	arrival, err := utils.ParseDate(in.ArrivalDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	departure, err := utils.ParseDate(in.DepartureDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if err := checkStopDates(trip, arrival, departure); err != nil {
		return nil, err
	}

	city, err := s.cityRepo.FindById(ctx, cityID)
	if err != nil {
		return nil, dbError(s.log, "find city", err)
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	count, err := s.stopRepo.CountByTrip(ctx, trip.ID)
	if err != nil {
		return nil, dbError(s.log, "count stops", err)
	}

	stop := &dbm.TripStop{
		TripID:        trip.ID,
		CityID:        city.ID,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Duration:      utils.DurationDays(arrival, departure),
		OrderIndex:    int(count) + 1,
		Notes:         in.Notes,
	}
	applyAccommodation(&stop.Accommodation, in.Accommodation)
	applyTransport(&stop.Transport, in.Transport)

	if err := s.stopRepo.Insert(ctx, stop); err != nil {
		return nil, dbError(s.log, "insert stop", err)
	}
	stop.City = *city

	out := toStopResponse(stop)
	return &out, nil
}

func (s *stopService) UpdateStop(ctx context.Context, tripID, stopID, actorID uuid.UUID, in req.UpdateStopRequest) (*resp.StopResponse, error) {
	trip, err := s.editableTrip(ctx, tripID, actorID)
	if err != nil {
		return nil, err
	}
	stop, err := s.findStop(ctx, trip.ID, stopID)
	if err != nil {
		return nil, err
	}

	if in.ArrivalDate != nil || in.DepartureDate != nil {
		arrival, departure := stop.ArrivalDate, stop.DepartureDate
		if in.ArrivalDate != nil {
			if arrival, err = utils.ParseDate(*in.ArrivalDate); err != nil {
				return nil, utils.ErrInvalidInput
			}
		}
		if in.DepartureDate != nil {
			if departure, err = utils.ParseDate(*in.DepartureDate); err != nil {
				return nil, utils.ErrInvalidInput
			}
		}
		if err := checkStopDates(trip, arrival, departure); err != nil {
			return nil, err
		}
		stop.ArrivalDate = arrival
		stop.DepartureDate = departure
		stop.Duration = utils.DurationDays(arrival, departure)
	}
	applyAccommodation(&stop.Accommodation, in.Accommodation)
	applyTransport(&stop.Transport, in.Transport)
	if in.Notes != nil {
		stop.Notes = *in.Notes
	}

	if err := s.stopRepo.Save(ctx, stop); err != nil {
		return nil, dbError(s.log, "save stop", err)
	}

	out := toStopResponse(stop)
	return &out, nil
}

func (s *stopService) RemoveStop(ctx context.Context, tripID, stopID, actorID uuid.UUID) error {
	trip, err := s.editableTrip(ctx, tripID, actorID)
	if err != nil {
		return err
	}
	if _, err := s.findStop(ctx, trip.ID, stopID); err != nil {
		return err
	}

	if err := s.stopRepo.DeleteAndRenumber(ctx, trip.ID, stopID); err != nil {
		return dbError(s.log, "delete stop", err)
	}
	if _, err := s.budgets.RecalculateActivities(ctx, trip.ID); err != nil {
		return err
	}
	return nil
}

func (s *stopService) ReorderStops(ctx context.Context, tripID, actorID uuid.UUID, in req.ReorderStopsRequest) ([]resp.StopResponse, error) {
	trip, err := s.editableTrip(ctx, tripID, actorID)
	if err != nil {
		return nil, err
	}
	stops, err := s.stopRepo.ListByTrip(ctx, trip.ID)
	if err != nil {
		return nil, dbError(s.log, "list stops", err)
	}

	ordered, err := permutation(stops, in.StopIDs)
	if err != nil {
		return nil, err
	}
	if err := s.stopRepo.Reorder(ctx, trip.ID, ordered); err != nil {
		return nil, dbError(s.log, "reorder stops", err)
	}

	pos := make(map[uuid.UUID]int, len(ordered))
	for i, id := range ordered {
		pos[id] = i + 1
	}
	out := make([]resp.StopResponse, 0, len(stops))
	for i := range stops {
		stops[i].OrderIndex = pos[stops[i].ID]
	}
	sortStops(stops)
	for i := range stops {
		out = append(out, toStopResponse(&stops[i]))
	}
	return out, nil
}

// permutation parses ids and checks they name every stop exactly once.
func permutation(stops []dbm.TripStop, ids []string) ([]uuid.UUID, error) {
	if len(ids) != len(stops) {
		return nil, utils.ErrInvalidStopOrder
	}
	known := make(map[uuid.UUID]bool, len(stops))
	for _, st := range stops {
		known[st.ID] = false
	}

	out := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, utils.ErrInvalidStopOrder
		}
		seen, ok := known[id]
		if !ok || seen {
			return nil, utils.ErrInvalidStopOrder
		}
		known[id] = true
		out = append(out, id)
	}
	return out, nil
}

// buildTripActivities resolves every referenced catalog activity; one
// unknown or inactive id rejects the whole batch.
func (s *stopService) buildTripActivities(ctx context.Context, stopID uuid.UUID, inputs []req.StopActivityInput) ([]dbm.TripActivity, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		id, err := uuid.Parse(in.ActivityID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		ids = append(ids, id)
	}

	found, err := s.activityRepo.FindActiveByIds(ctx, ids)
	if err != nil {
		return nil, dbError(s.log, "find activities", err)
	}
	byID := make(map[uuid.UUID]dbm.Activity, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}

	out := make([]dbm.TripActivity, 0, len(inputs))
	for i, in := range inputs {
		act, ok := byID[ids[i]]
		if !ok {
			return nil, utils.ErrActivityNotFound
		}
		date, err := utils.ParseOptionalDate(in.ScheduledDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		selected := derefOr(in.IsSelected, false)
		ta := dbm.TripActivity{
			StopID:        stopID,
			ActivityID:    act.ID,
			ScheduledDate: date,
			ScheduledTime: derefOr(in.ScheduledTime, ""),
			Duration:      in.Duration,
			CustomCost:    in.CustomCost,
			Notes:         in.Notes,
			IsSelected:    selected,
			AddedToTotal:  selected,
			Activity:      act,
		}
		out = append(out, ta)
	}
	return out, nil
}

// afterActivityChange refreshes the activities budget and returns the trip.
func (s *stopService) afterActivityChange(ctx context.Context, tripID, actorID uuid.UUID) (*resp.TripResponse, error) {
	if _, err := s.budgets.RecalculateActivities(ctx, tripID); err != nil {
		return nil, err
	}
	trip, err := s.tripRepo.FindDetailsById(ctx, tripID)
	if err != nil {
		return nil, dbError(s.log, "load trip details", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return toTripResponse(trip, actorID), nil
}

func (s *stopService) ReplaceStopActivities(ctx context.Context, tripID, stopID, actorID uuid.UUID, in req.ReplaceStopActivitiesRequest) (*resp.TripResponse, error) {
	trip, err := s.editableTrip(ctx, tripID, actorID)
	if err != nil {
		return nil, err
	}
	stop, err := s.findStop(ctx, trip.ID, stopID)
	if err != nil {
		return nil, err
	}

	acts, err := s.buildTripActivities(ctx, stop.ID, in.Activities)
	if err != nil {
		return nil, err
	}
	if err := s.stopRepo.ReplaceActivities(ctx, stop.ID, acts); err != nil {
		return nil, dbError(s.log, "replace stop activities", err)
	}

	return s.afterActivityChange(ctx, trip.ID, actorID)
}

func (s *stopService) AddStopActivity(ctx context.Context, tripID, stopID, actorID uuid.UUID, in req.StopActivityInput) (*resp.TripResponse, error) {
	trip, err := s.editableTrip(ctx, tripID, actorID)
	if err != nil {
		return nil, err
	}
	stop, err := s.findStop(ctx, trip.ID, stopID)
	if err != nil {
		return nil, err
	}

	acts, err := s.buildTripActivities(ctx, stop.ID, []req.StopActivityInput{in})
	if err != nil {
		return nil, err
	}
	if err := s.stopRepo.InsertActivity(ctx, &acts[0]); err != nil {
		return nil, dbError(s.log, "insert stop activity", err)
	}

	return s.afterActivityChange(ctx, trip.ID, actorID)
}

func (s *stopService) RemoveStopActivity(ctx context.Context, tripID, stopID, tripActivityID, actorID uuid.UUID) (*resp.TripResponse, error) {
	trip, err := s.editableTrip(ctx, tripID, actorID)
	if err != nil {
		return nil, err
	}
	stop, err := s.findStop(ctx, trip.ID, stopID)
	if err != nil {
		return nil, err
	}

	removed, err := s.stopRepo.DeleteActivity(ctx, stop.ID, tripActivityID)
	if err != nil {
		return nil, dbError(s.log, "delete stop activity", err)
	}
	if !removed {
		return nil, utils.ErrTripActivityNotFound
	}

	return s.afterActivityChange(ctx, trip.ID, actorID)
}
