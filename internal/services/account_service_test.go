package services

import (
	"context"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "wanderwise/internal/models/db_models"
	"wanderwise/internal/models/request_models"
	"wanderwise/pkg/utils"
)

func newAccountService(db *memDB) (AccountServiceInterface, *utils.TokenIssuer) {
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)
	return NewAccountService(fakeAccountRepo{db}, &fakeCityRepo{memDB: db}, issuer, zap.NewNop()), issuer
}

func TestRegisterAndLogin(t *testing.T) {
	c := qt.New(t)
	db := newMemDB()
	svc, issuer := newAccountService(db)
	ctx := context.Background()

	reg, err := svc.Register(ctx, request_models.RegisterRequest{Name: " Ana ", Email: "Ana@Example.com", Password: "secret1"})
	c.Assert(err, qt.IsNil)
	c.Assert(reg.Account.Email, qt.Equals, "ana@example.com")
	c.Assert(reg.Account.Name, qt.Equals, "Ana")
	c.Assert(reg.Account.Role, qt.Equals, "user")
	c.Assert(reg.Account.Preferences.BudgetRange, qt.Equals, "mid-range")

	claims, err := issuer.ValidateToken(reg.Token)
	c.Assert(err, qt.IsNil)
	c.Assert(claims.UserID, qt.Equals, reg.Account.ID)

	_, err = svc.Register(ctx, request_models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	c.Assert(err, qt.ErrorIs, utils.ErrEmailAlreadyExists)

	login, err := svc.Login(ctx, request_models.LoginRequest{Email: "ANA@example.com", Password: "secret1"})
	c.Assert(err, qt.IsNil)
	c.Assert(login.Account.ID, qt.Equals, reg.Account.ID)
	c.Assert(login.Account.LastLogin, qt.IsNotNil)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	c.Assert(err, qt.ErrorIs, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "bob@example.com", Password: "secret1"})
	c.Assert(err, qt.ErrorIs, utils.ErrAccountNotFound)
}

// staleLookupRepo misses rows a concurrent request has just inserted.
type staleLookupRepo struct {
	fakeAccountRepo
}

func (staleLookupRepo) FindByEmail(context.Context, string) (*dbm.Account, error) {
	return nil, nil
}

func (staleLookupRepo) FindSavedDestination(context.Context, uuid.UUID, uuid.UUID) (*dbm.SavedDestination, error) {
	return nil, nil
}

func TestUniqueIndexRacesKeepTheirErrors(t *testing.T) {
	c := qt.New(t)
	db := newMemDB()
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)
	svc := NewAccountService(staleLookupRepo{fakeAccountRepo{db}}, &fakeCityRepo{memDB: db}, issuer, zap.NewNop())
	ctx := context.Background()

	in := request_models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"}
	reg, err := svc.Register(ctx, in)
	c.Assert(err, qt.IsNil)
	_, err = svc.Register(ctx, in)
	c.Assert(err, qt.ErrorIs, utils.ErrEmailAlreadyExists)

	paris := db.addCity("Paris", "France", 48.8566, 2.3522)
	accountID := uuid.MustParse(reg.Account.ID)
	save := request_models.SaveDestinationRequest{CityID: paris.ID.String()}
	_, err = svc.SaveDestination(ctx, accountID, save)
	c.Assert(err, qt.IsNil)
	_, err = svc.SaveDestination(ctx, accountID, save)
	c.Assert(err, qt.ErrorIs, utils.ErrAlreadySaved)
}

func TestProfileAndDeactivate(t *testing.T) {
	c := qt.New(t)
	db := newMemDB()
	svc, _ := newAccountService(db)
	ctx := context.Background()

	reg, err := svc.Register(ctx, request_models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	c.Assert(err, qt.IsNil)
	id := uuid.MustParse(reg.Account.ID)

	name := "Ana Maria"
	out, err := svc.UpdateProfile(ctx, id, request_models.UpdateProfileRequest{Name: &name})
	c.Assert(err, qt.IsNil)
	c.Assert(out.Name, qt.Equals, name)

	currency := "EUR"
	out, err = svc.UpdatePreferences(ctx, id, request_models.UpdatePreferencesRequest{
		Currency:    &currency,
		TravelStyle: []string{"slow", "food"},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(out.Preferences.Currency, qt.Equals, "EUR")
	c.Assert(out.Preferences.Language, qt.Equals, "en")
	c.Assert(out.Preferences.TravelStyle, qt.DeepEquals, []string{"slow", "food"})

	c.Assert(svc.Deactivate(ctx, id), qt.IsNil)
	_, err = svc.GetProfile(ctx, id)
	c.Assert(err, qt.ErrorIs, utils.ErrAccountNotFound)
	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	c.Assert(err, qt.ErrorIs, utils.ErrAccountNotFound)
}

func TestSavedDestinations(t *testing.T) {
	c := qt.New(t)
	db := newMemDB()
	svc, _ := newAccountService(db)
	ctx := context.Background()
	paris := db.addCity("Paris", "France", 48.8566, 2.3522)
	me := uuid.New()

	list, err := svc.SaveDestination(ctx, me, request_models.SaveDestinationRequest{CityID: paris.ID.String()})
	c.Assert(err, qt.IsNil)
	c.Assert(list, qt.HasLen, 1)
	c.Assert(list[0].City.Name, qt.Equals, "Paris")

	_, err = svc.SaveDestination(ctx, me, request_models.SaveDestinationRequest{CityID: paris.ID.String()})
	c.Assert(err, qt.ErrorIs, utils.ErrAlreadySaved)

	_, err = svc.SaveDestination(ctx, me, request_models.SaveDestinationRequest{CityID: uuid.NewString()})
	c.Assert(err, qt.ErrorIs, utils.ErrCityNotFound)

	c.Assert(svc.RemoveSavedDestination(ctx, me, paris.ID), qt.IsNil)
	c.Assert(svc.RemoveSavedDestination(ctx, me, paris.ID), qt.ErrorIs, utils.ErrCityNotFound)

	list, err = svc.ListSavedDestinations(ctx, me)
	c.Assert(err, qt.IsNil)
	c.Assert(list, qt.HasLen, 0)
}
