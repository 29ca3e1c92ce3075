package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "wanderwise/internal/models/db_models"
	req "wanderwise/internal/models/request_models"
	"wanderwise/pkg/utils"
)

type tripFixture struct {
	db     *memDB
	pub    *fakePublisher
	svc    TripService
	owner  dbm.Account
	friend dbm.Account
}

func newTripFixture() *tripFixture {
	db := newMemDB()
	pub := &fakePublisher{}
	log := zap.NewNop()
	f := &tripFixture{
		db:  db,
		pub: pub,
		svc: NewTripService(fakeTripRepo{db}, fakeStopRepo{db}, fakeAccountRepo{db}, NewEventEmitter(pub, log), log),
	}
	f.owner = db.addAccount(dbm.Account{Name: "Owner", Email: "owner@example.com", IsActive: true})
	f.friend = db.addAccount(dbm.Account{Name: "Friend", Email: "friend@example.com", IsActive: true})
	return f
}

func (f *tripFixture) create(c *qt.C, in req.CreateTripRequest) uuid.UUID {
	if in.Name == "" {
		in.Name = "Summer in Europe"
	}
	if in.StartDate == "" {
		in.StartDate, in.EndDate = "2025-06-01", "2025-06-15"
	}
	out, err := f.svc.CreateTrip(context.Background(), f.owner.ID, in)
	c.Assert(err, qt.IsNil)
	return uuid.MustParse(out.ID)
}

func TestCreateTripDefaults(t *testing.T) {
	c := qt.New(t)
	f := newTripFixture()

	out, err := f.svc.CreateTrip(context.Background(), f.owner.ID, req.CreateTripRequest{
		Name:      "  Summer in Europe ",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-08",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(out.Name, qt.Equals, "Summer in Europe")
	c.Assert(out.Status, qt.Equals, "planning")
	c.Assert(out.Privacy, qt.Equals, "private")
	c.Assert(out.Currency, qt.Equals, "USD")
	c.Assert(out.TotalDays, qt.Equals, 7)
	c.Assert(out.Travelers.Adults, qt.Equals, 1)
	c.Assert(out.ShareToken, qt.Equals, "")
	c.Assert(out.OwnerName, qt.Equals, "Owner")

	c.Assert(out.Budget, qt.IsNotNil)
	c.Assert(out.Budget.Categories, qt.HasLen, len(dbm.BudgetCategories))
	c.Assert(out.Budget.CalendarDays, qt.Equals, 8)

	c.Assert(f.pub.keys(), qt.DeepEquals, []string{EventTripCreated})
}

func TestCreatePublicTripGetsShareToken(t *testing.T) {
	c := qt.New(t)
	f := newTripFixture()

	out, err := f.svc.CreateTrip(context.Background(), f.owner.ID, req.CreateTripRequest{
		Name:      "Open trip",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-03",
		Privacy:   "public",
		Travelers: &req.TravelersInput{Adults: 2, Children: 1},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(strings.HasPrefix(out.ShareToken, out.ID+"-"), qt.IsTrue)
	c.Assert(out.Travelers.Adults, qt.Equals, 2)
	c.Assert(out.Travelers.Children, qt.Equals, 1)
	c.Assert(f.pub.keys(), qt.DeepEquals, []string{EventTripCreated, EventTripShared})

	shared, err := f.svc.GetPublicTrip(context.Background(), out.ShareToken)
	c.Assert(err, qt.IsNil)
	c.Assert(shared.ID, qt.Equals, out.ID)
	c.Assert(shared.Views, qt.Equals, 1)
}

func TestCreateTripRejectsBadWindow(t *testing.T) {
	c := qt.New(t)
	f := newTripFixture()

	_, err := f.svc.CreateTrip(context.Background(), f.owner.ID, req.CreateTripRequest{
		Name: "Backwards", StartDate: "2025-06-10", EndDate: "2025-06-10",
	})
	c.Assert(err, qt.ErrorIs, utils.ErrInvalidDateRange)

	_, err = f.svc.CreateTrip(context.Background(), f.owner.ID, req.CreateTripRequest{
		Name: "Garbage", StartDate: "someday", EndDate: "2025-06-10",
	})
	c.Assert(err, qt.ErrorIs, utils.ErrInvalidInput)
	c.Assert(f.db.trips, qt.HasLen, 0)
}

func TestGetTripAccess(t *testing.T) {
	c := qt.New(t)
	f := newTripFixture()
	id := f.create(c, req.CreateTripRequest{})
	ctx := context.Background()

	_, err := f.svc.GetTrip(ctx, id, f.friend.ID)
	c.Assert(err, qt.ErrorIs, utils.ErrForbidden)

	_, err = f.svc.GetTrip(ctx, id, uuid.Nil)
	c.Assert(err, qt.ErrorIs, utils.ErrForbidden)

	_, err = f.svc.GetTrip(ctx, uuid.New(), f.owner.ID)
	c.Assert(err, qt.ErrorIs, utils.ErrTripNotFound)

	// the owner's own reads are not counted
	out, err := f.svc.GetTrip(ctx, id, f.owner.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(out.Views, qt.Equals, 0)

	_, err = f.svc.AddCollaborator(ctx, id, f.owner.ID, req.AddCollaboratorRequest{AccountEmail: f.friend.Email})
	c.Assert(err, qt.IsNil)
	out, err = f.svc.GetTrip(ctx, id, f.friend.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(out.Views, qt.Equals, 1)
}

func TestPrivateTripNotPublic(t *testing.T) {
	c := qt.New(t)
	f := newTripFixture()
	ctx := context.Background()

	id := f.create(c, req.CreateTripRequest{Privacy: "public"})
	trip := f.db.trips[id]
	token := *trip.ShareToken

	private := "private"
	_, err := f.svc.UpdateTrip(ctx, id, f.owner.ID, req.UpdateTripRequest{Privacy: &private})
	c.Assert(err, qt.IsNil)

	_, err = f.svc.GetPublicTrip(ctx, token)
	c.Assert(err, qt.ErrorIs, utils.ErrPublicTripNotFound)
	_, err = f.svc.GetPublicTrip(ctx, " ")
	c.Assert(err, qt.ErrorIs, utils.ErrPublicTripNotFound)

	// the old token is kept and works again once public
	public := "public"
	out, err := f.svc.UpdateTrip(ctx, id, f.owner.ID, req.UpdateTripRequest{Privacy: &public})
	c.Assert(err, qt.IsNil)
	c.Assert(out.ShareToken, qt.Equals, token)
}

func TestUpdateTrip(t *testing.T) {
	c := qt.New(t)
	f := newTripFixture()
	ctx := context.Background()
	id := f.create(c, req.CreateTripRequest{})

	name := "Renamed"
	end := "2025-06-05"
	budget := 2500.0
	public := "public"
	out, err := f.svc.UpdateTrip(ctx, id, f.owner.ID, req.UpdateTripRequest{
		Name:        &name,
		EndDate:     &end,
		TotalBudget: &budget,
		Privacy:     &public,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(out.Name, qt.Equals, "Renamed")
	c.Assert(out.EndDate, qt.Equals, "2025-06-05")
	c.Assert(out.TotalDays, qt.Equals, 4)
	c.Assert(out.TotalBudget, qt.Equals, 2500.0)
	c.Assert(out.ShareToken, qt.Not(qt.Equals), "")
	c.Assert(f.pub.keys(), qt.DeepEquals, []string{EventTripCreated, EventTripUpdated, EventTripShared})

	early := "2025-05-01"
	_, err = f.svc.UpdateTrip(ctx, id, f.owner.ID, req.UpdateTripRequest{EndDate: &early})
	c.Assert(err, qt.ErrorIs, utils.ErrInvalidDateRange)
}

func TestUpdateTripRoles(t *testing.T) {
	c := qt.New(t)
	f := newTripFixture()
	ctx := context.Background()
	id := f.create(c, req.CreateTripRequest{})
	name := "Mine now"

	_, err := f.svc.UpdateTrip(ctx, id, f.friend.ID, req.UpdateTripRequest{Name: &name})
	c.Assert(err, qt.ErrorIs, utils.ErrForbidden)

	_, err = f.svc.AddCollaborator(ctx, id, f.owner.ID, req.AddCollaboratorRequest{AccountEmail: f.friend.Email, Role: "editor"})
	c.Assert(err, qt.IsNil)
	_, err = f.svc.UpdateTrip(ctx, id, f.friend.ID, req.UpdateTripRequest{Name: &name})
	c.Assert(err, qt.ErrorIs, utils.ErrForbidden)

	_, err = f.svc.AddCollaborator(ctx, id, f.owner.ID, req.AddCollaboratorRequest{AccountEmail: f.friend.Email, Role: "admin"})
	c.Assert(err, qt.IsNil)
	out, err := f.svc.UpdateTrip(ctx, id, f.friend.ID, req.UpdateTripRequest{Name: &name})
	c.Assert(err, qt.IsNil)
	c.Assert(out.Name, qt.Equals, name)

	// admins still cannot delete
	c.Assert(f.svc.DeleteTrip(ctx, id, f.friend.ID), qt.ErrorIs, utils.ErrForbidden)
}

func TestDeleteTrip(t *testing.T) {
	c := qt.New(t)
	f := newTripFixture()
	ctx := context.Background()
	id := f.create(c, req.CreateTripRequest{})

	c.Assert(f.svc.DeleteTrip(ctx, id, f.owner.ID), qt.IsNil)
	c.Assert(f.svc.DeleteTrip(ctx, id, f.owner.ID), qt.ErrorIs, utils.ErrTripNotFound)
	c.Assert(f.pub.keys(), qt.DeepEquals, []string{EventTripCreated, EventTripDeleted})
}

func TestCollaborators(t *testing.T) {
	c := qt.New(t)
	f := newTripFixture()
	ctx := context.Background()
	id := f.create(c, req.CreateTripRequest{})

	out, err := f.svc.AddCollaborator(ctx, id, f.owner.ID, req.AddCollaboratorRequest{AccountEmail: f.friend.Email})
	c.Assert(err, qt.IsNil)
	c.Assert(out.Collaborators, qt.HasLen, 1)
	c.Assert(out.Collaborators[0].Role, qt.Equals, "viewer")
	c.Assert(out.Collaborators[0].Email, qt.Equals, f.friend.Email)

	_, err = f.svc.AddCollaborator(ctx, id, f.owner.ID, req.AddCollaboratorRequest{AccountEmail: f.owner.Email})
	c.Assert(err, qt.ErrorIs, utils.ErrCollaboratorIsOwner)

	_, err = f.svc.AddCollaborator(ctx, id, f.owner.ID, req.AddCollaboratorRequest{AccountEmail: "nobody@example.com"})
	c.Assert(err, qt.ErrorIs, utils.ErrAccountNotFound)

	_, err = f.svc.AddCollaborator(ctx, id, f.friend.ID, req.AddCollaboratorRequest{AccountEmail: f.friend.Email})
	c.Assert(err, qt.ErrorIs, utils.ErrForbidden)

	c.Assert(f.svc.RemoveCollaborator(ctx, id, f.owner.ID, f.friend.ID), qt.IsNil)
	c.Assert(f.svc.RemoveCollaborator(ctx, id, f.owner.ID, f.friend.ID), qt.ErrorIs, utils.ErrCollaboratorNotFound)
}

func TestCollaboratorEmailsHiddenFromOutsiders(t *testing.T) {
	c := qt.New(t)
	f := newTripFixture()
	ctx := context.Background()
	id := f.create(c, req.CreateTripRequest{Privacy: "public"})
	_, err := f.svc.AddCollaborator(ctx, id, f.owner.ID, req.AddCollaboratorRequest{AccountEmail: f.friend.Email})
	c.Assert(err, qt.IsNil)
	stranger := f.db.addAccount(dbm.Account{Name: "Stranger", Email: "stranger@example.com", IsActive: true})

	anon, err := f.svc.GetTrip(ctx, id, uuid.Nil)
	c.Assert(err, qt.IsNil)
	c.Assert(anon.Collaborators, qt.HasLen, 1)
	c.Assert(anon.Collaborators[0].Name, qt.Equals, "Friend")
	c.Assert(anon.Collaborators[0].Email, qt.Equals, "")

	other, err := f.svc.GetTrip(ctx, id, stranger.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(other.Collaborators[0].Email, qt.Equals, "")

	shared, err := f.svc.GetPublicTrip(ctx, anon.ShareToken)
	c.Assert(err, qt.IsNil)
	c.Assert(shared.Collaborators[0].Email, qt.Equals, "")

	member, err := f.svc.GetTrip(ctx, id, f.friend.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(member.Collaborators[0].Email, qt.Equals, f.friend.Email)
}

func TestListMyTrips(t *testing.T) {
	c := qt.New(t)
	f := newTripFixture()
	ctx := context.Background()
	for _, name := range []string{"A", "B", "C"} {
		f.create(c, req.CreateTripRequest{Name: name})
	}

	page, err := f.svc.ListMyTrips(ctx, f.owner.ID, "", 1, 2)
	c.Assert(err, qt.IsNil)
	c.Assert(page.Items, qt.HasLen, 2)
	c.Assert(page.Total, qt.Equals, int64(3))
	c.Assert(page.TotalPages, qt.Equals, 2)
	c.Assert(page.HasMore, qt.IsTrue)

	page, err = f.svc.ListMyTrips(ctx, f.friend.ID, "", 1, 10)
	c.Assert(err, qt.IsNil)
	c.Assert(page.Items, qt.HasLen, 0)

	_, err = f.svc.ListMyTrips(ctx, f.owner.ID, "", 0, 10)
	c.Assert(err, qt.ErrorIs, utils.ErrInvalidPage)
}

func TestTripRepositoryFailure(t *testing.T) {
	c := qt.New(t)
	f := newTripFixture()
	f.db.err = errors.New("connection reset")

	_, err := f.svc.GetTrip(context.Background(), uuid.New(), f.owner.ID)
	c.Assert(err, qt.ErrorIs, utils.ErrDatabaseError)
}
