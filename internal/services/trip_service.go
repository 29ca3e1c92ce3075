package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "wanderwise/internal/models/db_models"
	req "wanderwise/internal/models/request_models"
	resp "wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	"wanderwise/pkg/utils"
)

type TripService interface {
	CreateTrip(ctx context.Context, ownerID uuid.UUID, in req.CreateTripRequest) (*resp.TripResponse, error)
	ListMyTrips(ctx context.Context, ownerID uuid.UUID, status string, page, pageSize int) (*resp.Page[resp.TripSummary], error)
	GetTrip(ctx context.Context, tripID, viewerID uuid.UUID) (*resp.TripResponse, error)
	GetPublicTrip(ctx context.Context, shareToken string) (*resp.TripResponse, error)
	UpdateTrip(ctx context.Context, tripID, actorID uuid.UUID, in req.UpdateTripRequest) (*resp.TripResponse, error)
	DeleteTrip(ctx context.Context, tripID, actorID uuid.UUID) error

	AddCollaborator(ctx context.Context, tripID, actorID uuid.UUID, in req.AddCollaboratorRequest) (*resp.TripResponse, error)
	RemoveCollaborator(ctx context.Context, tripID, actorID, accountID uuid.UUID) error
}

type tripService struct {
	tripRepo    repositories.TripRepository
	stopRepo    repositories.StopRepository
	accountRepo repositories.AccountRepository
	events      *EventEmitter
	log         *zap.Logger
	now         func() time.Time
}

func NewTripService(
	tripRepo repositories.TripRepository,
	stopRepo repositories.StopRepository,
	accountRepo repositories.AccountRepository,
	events *EventEmitter,
	log *zap.Logger,
) TripService {
	return &tripService{
		tripRepo:    tripRepo,
		stopRepo:    stopRepo,
		accountRepo: accountRepo,
		events:      events,
		log:         log.Named("trip"),
		now:         time.Now,
	}
}

func parseTripWindow(start, end string) (time.Time, time.Time, error) {
	s, err := utils.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, utils.ErrInvalidInput
	}
	e, err := utils.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, utils.ErrInvalidInput
	}
	if !e.After(s) {
		return time.Time{}, time.Time{}, utils.ErrInvalidDateRange
	}
	return s, e, nil
}

func (s *tripService) CreateTrip(ctx context.Context, ownerID uuid.UUID, in req.CreateTripRequest) (*resp.TripResponse, error) {
	start, end, err := parseTripWindow(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	trip := &dbm.Trip{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CoverPhoto:  in.CoverPhoto,
		StartDate:   start,
		EndDate:     end,
		TotalDays:   utils.DurationDays(start, end),
		Status:      dbm.TripPlanning,
		Privacy:     dbm.PrivacyPrivate,
		Adults:      1,
		Tags:        in.Tags,
		Currency:    "USD",
		TotalBudget: derefOr(in.TotalBudget, 0),
	}
	trip.ID = uuid.New()
	if in.Privacy != "" {
		trip.Privacy = dbm.Privacy(in.Privacy)
	}
	if in.Currency != "" {
		trip.Currency = in.Currency
	}
	if in.Travelers != nil {
		if in.Travelers.Adults > 0 {
			trip.Adults = in.Travelers.Adults
		}
		trip.Children = in.Travelers.Children
	}
	trip.EnsureShareToken(s.now(), utils.ShareToken)

	if err := s.tripRepo.CreateWithBudgets(ctx, trip, dbm.DefaultBudgets(trip.ID)); err != nil {
		return nil, dbError(s.log, "create trip", err)
	}
	s.log.Info("trip created", zap.String("trip_id", trip.ID.String()), zap.String("owner_id", ownerID.String()))

	s.events.Trip(ctx, EventTripCreated, trip, ownerID.String())
	if trip.ShareToken != nil {
		s.events.Trip(ctx, EventTripShared, trip, ownerID.String())
	}

	return s.detailsOf(ctx, trip.ID, ownerID)
}

func (s *tripService) detailsOf(ctx context.Context, tripID, viewerID uuid.UUID) (*resp.TripResponse, error) {
	trip, err := s.tripRepo.FindDetailsById(ctx, tripID)
	if err != nil {
		return nil, dbError(s.log, "load trip details", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return toTripResponse(trip, viewerID), nil
}

func (s *tripService) ListMyTrips(ctx context.Context, ownerID uuid.UUID, status string, page, pageSize int) (*resp.Page[resp.TripSummary], error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	trips, total, err := s.tripRepo.ListByOwner(ctx, ownerID, status, page, pageSize)
	if err != nil {
		return nil, dbError(s.log, "list trips", err)
	}

	items := make([]resp.TripSummary, 0, len(trips))
	for i := range trips {
		items = append(items, toTripSummary(&trips[i]))
	}

	return &resp.Page[resp.TripSummary]{
		Items:       items,
		TotalPages:  utils.TotalPages(total, pageSize),
		CurrentPage: page,
		Total:       total,
		HasMore:     utils.HasMore(total, page, pageSize),
	}, nil
}

func (s *tripService) GetTrip(ctx context.Context, tripID, viewerID uuid.UUID) (*resp.TripResponse, error) {
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

	if !trip.IsOwner(viewerID) {
		s.countView(ctx, trip)
	}
	return toTripResponse(trip, viewerID), nil
}

func (s *tripService) GetPublicTrip(ctx context.Context, shareToken string) (*resp.TripResponse, error) {
	if strings.TrimSpace(shareToken) == "" {
		return nil, utils.ErrPublicTripNotFound
	}
	trip, err := s.tripRepo.FindDetailsByShareToken(ctx, shareToken)
	if err != nil {
		return nil, dbError(s.log, "load shared trip", err)
	}
	if trip == nil || trip.Privacy != dbm.PrivacyPublic {
		return nil, utils.ErrPublicTripNotFound
	}

	s.countView(ctx, trip)
	return toTripResponse(trip, uuid.Nil), nil
}

// countView never fails the read.
func (s *tripService) countView(ctx context.Context, trip *dbm.Trip) {
	if err := s.tripRepo.IncrementViews(ctx, trip.ID); err != nil {
		s.log.Warn("increment views", zap.String("trip_id", trip.ID.String()), zap.Error(err))
		return
	}
	trip.Views++
}

func (s *tripService) loadForWrite(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {
	trip, err := s.tripRepo.FindById(ctx, tripID)
	if err != nil {
		return nil, dbError(s.log, "find trip", err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *tripService) UpdateTrip(ctx context.Context, tripID, actorID uuid.UUID, in req.UpdateTripRequest) (*resp.TripResponse, error) {
	trip, err := s.loadForWrite(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.CanEditDetails(actorID) {
		return nil, utils.ErrForbidden
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.CoverPhoto != nil {
		fields["cover_photo"] = *in.CoverPhoto
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.Tags != nil {
		fields["tags"] = in.Tags
	}
	if in.TotalBudget != nil {
		fields["total_budget"] = *in.TotalBudget
	}
	if in.Travelers != nil {
		if in.Travelers.Adults > 0 {
			fields["adults"] = in.Travelers.Adults
		}
		fields["children"] = in.Travelers.Children
	}

	if in.StartDate != nil || in.EndDate != nil {
		start := utils.FormatDate(trip.StartDate)
		end := utils.FormatDate(trip.EndDate)
		if in.StartDate != nil {
			start = *in.StartDate
		}
		if in.EndDate != nil {
			end = *in.EndDate
		}
		st, en, err := parseTripWindow(start, end)
		if err != nil {
			return nil, err
		}
		if err := s.checkStopsWithin(ctx, trip.ID, st, en); err != nil {
			return nil, err
		}
		fields["start_date"] = st
		fields["end_date"] = en
		fields["total_days"] = utils.DurationDays(st, en)
	}

	shared := false
	if in.Privacy != nil {
		trip.Privacy = dbm.Privacy(*in.Privacy)
		fields["privacy"] = trip.Privacy
		if trip.EnsureShareToken(s.now(), utils.ShareToken) {
			fields["share_token"] = *trip.ShareToken
			shared = true
		}
	}

	if len(fields) > 0 {
		if err := s.tripRepo.UpdateFields(ctx, trip.ID, fields); err != nil {
			return nil, dbError(s.log, "update trip", err)
		}
	}

	out, err := s.tripRepo.FindDetailsById(ctx, trip.ID)
	if err != nil {
		return nil, dbError(s.log, "load trip details", err)
	}
	if out == nil {
		return nil, utils.ErrTripNotFound
	}

	s.events.Trip(ctx, EventTripUpdated, out, actorID.String())
	if shared {
		s.events.Trip(ctx, EventTripShared, out, actorID.String())
	}
	return toTripResponse(out, actorID), nil
}

// checkStopsWithin rejects a new window that would leave a stop outside it.
func (s *tripService) checkStopsWithin(ctx context.Context, tripID uuid.UUID, start, end time.Time) error {
	stops, err := s.stopRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return dbError(s.log, "list stops", err)
	}
	start, end = utils.TruncateToDate(start), utils.TruncateToDate(end)
	for _, st := range stops {
		if utils.TruncateToDate(st.ArrivalDate).Before(start) || utils.TruncateToDate(st.DepartureDate).After(end) {
			return utils.ErrStopOutsideTrip
		}
	}
	return nil
}

func (s *tripService) DeleteTrip(ctx context.Context, tripID, actorID uuid.UUID) error {
	trip, err := s.loadForWrite(ctx, tripID)
	if err != nil {
		return err
	}
	if !trip.IsOwner(actorID) {
		return utils.ErrForbidden
	}

	if err := s.tripRepo.Delete(ctx, trip.ID); err != nil {
		return dbError(s.log, "delete trip", err)
	}
	s.log.Info("trip deleted", zap.String("trip_id", trip.ID.String()))
	s.events.Trip(ctx, EventTripDeleted, trip, actorID.String())
	return nil
}

func (s *tripService) AddCollaborator(ctx context.Context, tripID, actorID uuid.UUID, in req.AddCollaboratorRequest) (*resp.TripResponse, error) {
	trip, err := s.loadForWrite(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.IsOwner(actorID) {
		return nil, utils.ErrForbidden
	}

	account, err := s.accountRepo.FindByEmail(ctx, in.AccountEmail)
	if err != nil {
		return nil, dbError(s.log, "find collaborator account", err)
	}
	if account == nil || !account.IsActive {
		return nil, utils.ErrAccountNotFound
	}
	if account.ID == trip.OwnerID {
		return nil, utils.ErrCollaboratorIsOwner
	}

	role := dbm.CollabViewer
	if in.Role != "" {
		role = dbm.CollaboratorRole(in.Role)
	}
	collab := &dbm.TripCollaborator{TripID: trip.ID, AccountID: account.ID, Role: role}
	if err := s.tripRepo.AddCollaborator(ctx, collab); err != nil {
		return nil, dbError(s.log, "add collaborator", err)
	}

	return s.detailsOf(ctx, trip.ID, actorID)
}

func (s *tripService) RemoveCollaborator(ctx context.Context, tripID, actorID, accountID uuid.UUID) error {
	trip, err := s.loadForWrite(ctx, tripID)
	if err != nil {
		return err
	}
	if !trip.IsOwner(actorID) {
		return utils.ErrForbidden
	}

	removed, err := s.tripRepo.RemoveCollaborator(ctx, trip.ID, accountID)
	if err != nil {
		return dbError(s.log, "remove collaborator", err)
	}
	if !removed {
		return utils.ErrCollaboratorNotFound
	}
	return nil
}
