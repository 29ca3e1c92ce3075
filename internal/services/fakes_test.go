package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	dbm "wanderwise/internal/models/db_models"
	req "wanderwise/internal/models/request_models"
	resp "wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	"wanderwise/pkg/utils"
)

// memDB backs every fake repository so services see one consistent state.
type memDB struct {
	mu sync.Mutex

	accounts   map[uuid.UUID]dbm.Account
	saved      []dbm.SavedDestination
	cities     map[uuid.UUID]dbm.City
	activities map[uuid.UUID]dbm.Activity
	trips      map[uuid.UUID]dbm.Trip
	stops      map[uuid.UUID]dbm.TripStop
	tripActs   map[uuid.UUID]dbm.TripActivity
	budgets    map[uuid.UUID][]dbm.TripBudget
	collabs    []dbm.TripCollaborator

	// err, when set, is returned by every repository call.
	err error
}

func newMemDB() *memDB {
	return &memDB{
		accounts:   map[uuid.UUID]dbm.Account{},
		cities:     map[uuid.UUID]dbm.City{},
		activities: map[uuid.UUID]dbm.Activity{},
		trips:      map[uuid.UUID]dbm.Trip{},
		stops:      map[uuid.UUID]dbm.TripStop{},
		tripActs:   map[uuid.UUID]dbm.TripActivity{},
		budgets:    map[uuid.UUID][]dbm.TripBudget{},
	}
}

func assignID(b *dbm.BaseModel) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	if b.CreatedAt == 0 {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

func (m *memDB) addAccount(a dbm.Account) dbm.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	assignID(&a.BaseModel)
	m.accounts[a.ID] = a
	return a
}

func (m *memDB) addCity(name, country string, lat, lng float64) dbm.City {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := dbm.City{Name: name, Country: country, Latitude: lat, Longitude: lng}
	assignID(&c.BaseModel)
	m.cities[c.ID] = c
	return c
}

func (m *memDB) addActivity(a dbm.Activity) dbm.Activity {
	m.mu.Lock()
	defer m.mu.Unlock()
	assignID(&a.BaseModel)
	m.activities[a.ID] = a
	return a
}

// ---------- loaders (caller holds mu) ----------

func (m *memDB) collaboratorsOf(tripID uuid.UUID) []dbm.TripCollaborator {
	var out []dbm.TripCollaborator
	for _, c := range m.collabs {
		if c.TripID == tripID {
			c.Account = m.accounts[c.AccountID]
			out = append(out, c)
		}
	}
	return out
}

func (m *memDB) activitiesOf(stopID uuid.UUID) []dbm.TripActivity {
	var out []dbm.TripActivity
	for _, ta := range m.tripActs {
		if ta.StopID == stopID {
			ta.Activity = m.activities[ta.ActivityID]
			out = append(out, ta)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out
}

func (m *memDB) stopsOf(tripID uuid.UUID, withActivities bool) []dbm.TripStop {
	var out []dbm.TripStop
	for _, s := range m.stops {
		if s.TripID != tripID {
			continue
		}
		s.City = m.cities[s.CityID]
		if withActivities {
			s.Activities = m.activitiesOf(s.ID)
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out
}

func (m *memDB) details(t dbm.Trip) *dbm.Trip {
	t.Owner = m.accounts[t.OwnerID]
	t.Stops = m.stopsOf(t.ID, true)
	t.Budgets = append([]dbm.TripBudget(nil), m.budgets[t.ID]...)
	t.Collaborators = m.collaboratorsOf(t.ID)
	return &t
}

// ---------- trips ----------

type fakeTripRepo struct{ *memDB }

var _ repositories.TripRepository = fakeTripRepo{}

func (r fakeTripRepo) CreateWithBudgets(_ context.Context, trip *dbm.Trip, budgets []dbm.TripBudget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	assignID(&trip.BaseModel)
	stored := *trip
	stored.Stops, stored.Budgets, stored.Collaborators = nil, nil, nil
	r.trips[trip.ID] = stored
	for i := range budgets {
		budgets[i].TripID = trip.ID
		assignID(&budgets[i].BaseModel)
	}
	r.budgets[trip.ID] = append([]dbm.TripBudget(nil), budgets...)
	trip.Budgets = budgets
	return nil
}

func (r fakeTripRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, status string, page, pageSize int) ([]dbm.Trip, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, 0, r.err
	}
	var all []dbm.Trip
	for _, t := range r.trips {
		if t.OwnerID == ownerID && (status == "" || string(t.Status) == status) {
			t.Stops = r.stopsOf(t.ID, false)
			all = append(all, t)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	total := int64(len(all))
	from := utils.Offset(page, pageSize)
	if from > len(all) {
		from = len(all)
	}
	to := from + pageSize
	if to > len(all) {
		to = len(all)
	}
	return all[from:to], total, nil
}

func (r fakeTripRepo) FindById(_ context.Context, id uuid.UUID) (*dbm.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.trips[id]
	if !ok {
		return nil, nil
	}
	t.Collaborators = r.collaboratorsOf(id)
	return &t, nil
}

func (r fakeTripRepo) FindDetailsById(_ context.Context, id uuid.UUID) (*dbm.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.trips[id]
	if !ok {
		return nil, nil
	}
	return r.details(t), nil
}

func (r fakeTripRepo) FindDetailsByShareToken(_ context.Context, token string) (*dbm.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, t := range r.trips {
		if t.ShareToken != nil && *t.ShareToken == token {
			return r.details(t), nil
		}
	}
	return nil, nil
}

func (r fakeTripRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	t := r.trips[id]
	t.Views++
	r.trips[id] = t
	return nil
}

func (r fakeTripRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	t := r.trips[id]
	for k, v := range fields {
		switch k {
		case "name":
			t.Name = v.(string)
		case "description":
			t.Description = v.(string)
		case "cover_photo":
			t.CoverPhoto = v.(string)
		case "status":
			t.Status = dbm.TripStatus(v.(string))
		case "privacy":
			t.Privacy = v.(dbm.Privacy)
		case "share_token":
			tok := v.(string)
			t.ShareToken = &tok
		case "tags":
			t.Tags = pq.StringArray(v.([]string))
		case "total_budget":
			t.TotalBudget = v.(float64)
		case "adults":
			t.Adults = v.(int)
		case "children":
			t.Children = v.(int)
		case "start_date":
			t.StartDate = v.(time.Time)
		case "end_date":
			t.EndDate = v.(time.Time)
		case "total_days":
			t.TotalDays = v.(int)
		}
	}
	r.trips[id] = t
	return nil
}

func (r fakeTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	delete(r.trips, id)
	return nil
}

func (r fakeTripRepo) AddCollaborator(_ context.Context, collab *dbm.TripCollaborator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for i, c := range r.collabs {
		if c.TripID == collab.TripID && c.AccountID == collab.AccountID {
			r.collabs[i].Role = collab.Role
			return nil
		}
	}
	assignID(&collab.BaseModel)
	r.collabs = append(r.collabs, *collab)
	return nil
}

func (r fakeTripRepo) RemoveCollaborator(_ context.Context, tripID, accountID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	for i, c := range r.collabs {
		if c.TripID == tripID && c.AccountID == accountID {
			r.collabs = append(r.collabs[:i], r.collabs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------- stops ----------

type fakeStopRepo struct{ *memDB }

var _ repositories.StopRepository = fakeStopRepo{}

func (r fakeStopRepo) ListByTrip(_ context.Context, tripID uuid.UUID) ([]dbm.TripStop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.stopsOf(tripID, false), nil
}

func (r fakeStopRepo) CountByTrip(_ context.Context, tripID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.stopsOf(tripID, false))), nil
}

func (r fakeStopRepo) Insert(_ context.Context, stop *dbm.TripStop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	assignID(&stop.BaseModel)
	stored := *stop
	stored.City, stored.Activities = dbm.City{}, nil
	r.stops[stop.ID] = stored
	return nil
}

func (r fakeStopRepo) FindById(_ context.Context, tripID, stopID uuid.UUID) (*dbm.TripStop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.stops[stopID]
	if !ok || s.TripID != tripID {
		return nil, nil
	}
	s.City = r.cities[s.CityID]
	s.Activities = r.activitiesOf(s.ID)
	return &s, nil
}

func (r fakeStopRepo) Save(_ context.Context, stop *dbm.TripStop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	stored := *stop
	stored.City, stored.Activities = dbm.City{}, nil
	r.stops[stop.ID] = stored
	return nil
}

func (r fakeStopRepo) DeleteAndRenumber(_ context.Context, tripID, stopID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	delete(r.stops, stopID)
	for id, ta := range r.tripActs {
		if ta.StopID == stopID {
			delete(r.tripActs, id)
		}
	}
	for i, s := range r.stopsOf(tripID, false) {
		st := r.stops[s.ID]
		st.OrderIndex = i + 1
		r.stops[s.ID] = st
	}
	return nil
}

func (r fakeStopRepo) Reorder(_ context.Context, _ uuid.UUID, orderedIDs []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for i, id := range orderedIDs {
		st := r.stops[id]
		st.OrderIndex = i + 1
		r.stops[id] = st
	}
	return nil
}

func (r fakeStopRepo) ReplaceActivities(_ context.Context, stopID uuid.UUID, acts []dbm.TripActivity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for id, ta := range r.tripActs {
		if ta.StopID == stopID {
			delete(r.tripActs, id)
		}
	}
	for i := range acts {
		acts[i].StopID = stopID
		assignID(&acts[i].BaseModel)
		acts[i].CreatedAt = int64(i + 1)
		r.tripActs[acts[i].ID] = acts[i]
	}
	return nil
}

func (r fakeStopRepo) InsertActivity(_ context.Context, act *dbm.TripActivity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	assignID(&act.BaseModel)
	r.tripActs[act.ID] = *act
	return nil
}

func (r fakeStopRepo) DeleteActivity(_ context.Context, stopID, tripActivityID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	ta, ok := r.tripActs[tripActivityID]
	if !ok || ta.StopID != stopID {
		return false, nil
	}
	delete(r.tripActs, tripActivityID)
	return true, nil
}

func (r fakeStopRepo) ListAddedActivities(_ context.Context, tripID uuid.UUID) ([]dbm.TripActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []dbm.TripActivity
	for _, s := range r.stopsOf(tripID, true) {
		for _, ta := range s.Activities {
			if ta.AddedToTotal {
				out = append(out, ta)
			}
		}
	}
	return out, nil
}

// ---------- budgets ----------

type fakeBudgetRepo struct{ *memDB }

var _ repositories.BudgetRepository = fakeBudgetRepo{}

func (r fakeBudgetRepo) ListByTrip(_ context.Context, tripID uuid.UUID) ([]dbm.TripBudget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]dbm.TripBudget(nil), r.budgets[tripID]...), nil
}

func (r fakeBudgetRepo) FindCategory(_ context.Context, tripID uuid.UUID, category dbm.BudgetCategory) (*dbm.TripBudget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, b := range r.budgets[tripID] {
		if b.Category == category {
			return &b, nil
		}
	}
	return nil, nil
}

func (r fakeBudgetRepo) Upsert(_ context.Context, budget *dbm.TripBudget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	rows := r.budgets[budget.TripID]
	for i := range rows {
		if rows[i].Category == budget.Category {
			rows[i].PlannedAmount = budget.PlannedAmount
			rows[i].SpentAmount = budget.SpentAmount
			return nil
		}
	}
	assignID(&budget.BaseModel)
	r.budgets[budget.TripID] = append(rows, *budget)
	return nil
}

func (r fakeBudgetRepo) SetPlanned(_ context.Context, tripID uuid.UUID, category dbm.BudgetCategory, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	rows := r.budgets[tripID]
	for i := range rows {
		if rows[i].Category == category {
			rows[i].PlannedAmount = amount
			return nil
		}
	}
	b := dbm.TripBudget{TripID: tripID, Category: category, PlannedAmount: amount}
	assignID(&b.BaseModel)
	r.budgets[tripID] = append(rows, b)
	return nil
}

// ---------- accounts ----------

type fakeAccountRepo struct{ *memDB }

var _ repositories.AccountRepository = fakeAccountRepo{}

func (r fakeAccountRepo) Insert(_ context.Context, account *dbm.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return repositories.ErrDuplicate
		}
	}
	assignID(&account.BaseModel)
	r.accounts[account.ID] = *account
	return nil
}

func (r fakeAccountRepo) FindById(_ context.Context, id uuid.UUID) (*dbm.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r fakeAccountRepo) FindByEmail(_ context.Context, email string) (*dbm.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, a := range r.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}

func (r fakeAccountRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	a := r.accounts[id]
	for k, v := range fields {
		switch k {
		case "name":
			a.Name = v.(string)
		case "profile_photo":
			a.ProfilePhoto = v.(string)
		case "language":
			a.Language = v.(string)
		case "currency":
			a.Currency = v.(string)
		case "budget_range":
			a.BudgetRange = dbm.BudgetRange(v.(string))
		case "travel_style":
			a.TravelStyle = pq.StringArray(v.([]string))
		case "is_active":
			a.IsActive = v.(bool)
		case "last_login":
			last := v.(int64)
			a.LastLogin = &last
		}
	}
	r.accounts[id] = a
	return nil
}

func (r fakeAccountRepo) ListSavedDestinations(_ context.Context, accountID uuid.UUID) ([]dbm.SavedDestination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []dbm.SavedDestination
	for _, s := range r.saved {
		if s.AccountID == accountID {
			s.City = r.cities[s.CityID]
			out = append(out, s)
		}
	}
	return out, nil
}

func (r fakeAccountRepo) FindSavedDestination(_ context.Context, accountID, cityID uuid.UUID) (*dbm.SavedDestination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, s := range r.saved {
		if s.AccountID == accountID && s.CityID == cityID {
			return &s, nil
		}
	}
	return nil, nil
}

func (r fakeAccountRepo) InsertSavedDestination(_ context.Context, saved *dbm.SavedDestination) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, s := range r.saved {
		if s.AccountID == saved.AccountID && s.CityID == saved.CityID {
			return repositories.ErrDuplicate
		}
	}
	assignID(&saved.BaseModel)
	r.saved = append(r.saved, *saved)
	return nil
}

func (r fakeAccountRepo) DeleteSavedDestination(_ context.Context, accountID, cityID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	for i, s := range r.saved {
		if s.AccountID == accountID && s.CityID == cityID {
			r.saved = append(r.saved[:i], r.saved[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------- catalog ----------

type fakeCityRepo struct {
	*memDB
	nearby     []repositories.CityRow
	countries  []repositories.CountryRow
	perCountry []repositories.CityRow
	lastLimit  int
}

var _ repositories.CityRepository = (*fakeCityRepo)(nil)

func (r *fakeCityRepo) Insert(_ context.Context, city *dbm.City) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignID(&city.BaseModel)
	r.cities[city.ID] = *city
	return nil
}

func (r *fakeCityRepo) List(_ context.Context, f req.CityFilter) ([]dbm.City, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, 0, r.err
	}
	var out []dbm.City
	for _, c := range r.cities {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCityRepo) FindById(_ context.Context, id uuid.UUID) (*dbm.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.cities[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCityRepo) FindByIds(_ context.Context, ids []uuid.UUID) ([]dbm.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []dbm.City
	for _, id := range ids {
		if c, ok := r.cities[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCityRepo) Suggest(_ context.Context, q string, limit int) ([]dbm.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit
	var out []dbm.City
	for _, c := range r.cities {
		if strings.HasPrefix(strings.ToLower(c.Name), strings.ToLower(q)) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCityRepo) Popular(_ context.Context, limit int) ([]dbm.City, error) {
	r.lastLimit = limit
	return nil, nil
}

func (r *fakeCityRepo) Nearby(_ context.Context, _, _, _ float64, _ uuid.UUID, limit int) ([]repositories.CityRow, error) {
	r.lastLimit = limit
	return r.nearby, nil
}

func (r *fakeCityRepo) Countries(context.Context) ([]repositories.CountryRow, error) {
	return r.countries, nil
}

func (r *fakeCityRepo) PopularPerCountry(context.Context, int, int) ([]repositories.CityRow, error) {
	return r.perCountry, nil
}

type fakeActivityRepo struct{ *memDB }

var _ repositories.ActivityRepository = fakeActivityRepo{}

func (r fakeActivityRepo) Insert(_ context.Context, activity *dbm.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignID(&activity.BaseModel)
	r.activities[activity.ID] = *activity
	return nil
}

func (r fakeActivityRepo) List(context.Context, req.ActivityFilter) ([]dbm.Activity, int64, error) {
	return nil, 0, nil
}

func (r fakeActivityRepo) FindById(_ context.Context, id uuid.UUID) (*dbm.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.activities[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r fakeActivityRepo) FindActiveByIds(_ context.Context, ids []uuid.UUID) ([]dbm.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []dbm.Activity
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if a, ok := r.activities[id]; ok && a.IsActive && !seen[id] {
			seen[id] = true
			out = append(out, a)
		}
	}
	return out, nil
}

func (r fakeActivityRepo) ListByCity(_ context.Context, cityID uuid.UUID) ([]dbm.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []dbm.Activity
	for _, a := range r.activities {
		if a.CityID == cityID && a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r fakeActivityRepo) Recommended(_ context.Context, cityID uuid.UUID, prices []dbm.PriceCategory, minRating float64, limit int) ([]dbm.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []dbm.Activity
	for _, a := range r.activities {
		if a.CityID != cityID || !a.IsActive || a.RatingAverage < minRating {
			continue
		}
		for _, p := range prices {
			if a.PriceCategory == p {
				out = append(out, a)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RatingAverage > out[j].RatingAverage })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r fakeActivityRepo) Suggest(context.Context, string, *uuid.UUID, int) ([]dbm.Activity, error) {
	return nil, nil
}

func (r fakeActivityRepo) Categories(context.Context, *uuid.UUID) ([]repositories.CategoryRow, error) {
	return nil, nil
}

// ---------- stats ----------

type fakeStatsRepo struct {
	totals    repositories.TripTotalsRow
	dest      repositories.DestinationTotalsRow
	countries []string
	acts      int64
	top       *resp.CityVisits
	longest   *resp.TripLength
	err       error
}

var _ repositories.StatsRepository = (*fakeStatsRepo)(nil)

func (f *fakeStatsRepo) TripTotals(context.Context, uuid.UUID, *int) (repositories.TripTotalsRow, error) {
	return f.totals, nil
}

func (f *fakeStatsRepo) DestinationTotals(context.Context, uuid.UUID, *int) (repositories.DestinationTotalsRow, error) {
	return f.dest, nil
}

func (f *fakeStatsRepo) Countries(context.Context, uuid.UUID, *int) ([]string, error) {
	return f.countries, f.err
}

func (f *fakeStatsRepo) CountActivities(context.Context, uuid.UUID, *int) (int64, error) {
	return f.acts, nil
}

func (f *fakeStatsRepo) TopDestination(context.Context, uuid.UUID, *int) (*resp.CityVisits, error) {
	return f.top, nil
}

func (f *fakeStatsRepo) LongestTrip(context.Context, uuid.UUID, *int) (*resp.TripLength, error) {
	return f.longest, nil
}

// ---------- events ----------

type recordedEvent struct {
	key   string
	event TripEvent
}

type fakePublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *fakePublisher) PublishJSON(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{key: key, event: v.(TripEvent)})
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.key)
	}
	return out
}
