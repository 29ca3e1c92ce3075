package services

import (
	"sort"

	"github.com/google/uuid"
	dbm "wanderwise/internal/models/db_models"
	resp "wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	"wanderwise/pkg/utils"
)

func strs(a []string) []string {
	if a == nil {
		return []string{}
	}
	return a
}

func toAccountResponse(a *dbm.Account) resp.AccountResponse {
	return resp.AccountResponse{
		ID:           a.ID.String(),
		Name:         a.Name,
		Email:        a.Email,
		Role:         string(a.Role),
		ProfilePhoto: a.ProfilePhoto,
		Preferences: resp.PreferencesResponse{
			Language:    a.Language,
			Currency:    a.Currency,
			BudgetRange: string(a.BudgetRange),
			TravelStyle: strs(a.TravelStyle),
		},
		IsActive:  a.IsActive,
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
	}
}

func toCitySummary(c *dbm.City) resp.CitySummary {
	return resp.CitySummary{
		ID:              c.ID.String(),
		Name:            c.Name,
		Country:         c.Country,
		Region:          c.Region,
		Latitude:        c.Latitude,
		Longitude:       c.Longitude,
		ImageURL:        c.ImageURL,
		CostIndex:       c.CostIndex,
		PopularityScore: c.PopularityScore,
		Tags:            strs(c.Tags),
	}
}

func rowToCitySummary(r repositories.CityRow) resp.CitySummary {
	return resp.CitySummary{
		ID:              r.ID.String(),
		Name:            r.Name,
		Country:         r.Country,
		Region:          r.Region,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		ImageURL:        r.ImageURL,
		CostIndex:       r.CostIndex,
		PopularityScore: r.PopularityScore,
		Tags:            strs(r.Tags),
	}
}

func toCityResponse(c *dbm.City) resp.CityResponse {
	return resp.CityResponse{
		CitySummary:  toCitySummary(c),
		Description:  c.Description,
		Images:       strs(c.Images),
		Timezone:     c.Timezone,
		Currency:     c.CurrencyCode,
		Languages:    strs(c.Languages),
		AverageCosts: c.AverageCosts.Data(),
	}
}

func toActivityResponse(a *dbm.Activity) resp.ActivityResponse {
	out := resp.ActivityResponse{
		ID:          a.ID.String(),
		CityID:      a.CityID.String(),
		Name:        a.Name,
		Description: a.Description,
		Category:    string(a.Category),
		Subcategory: a.Subcategory,
		ImageURL:    a.ImageURL,
		Cost: resp.CostResponse{
			Min:       a.CostMin,
			Max:       a.CostMax,
			Currency:  a.Currency,
			IsFree:    a.IsFree,
			Estimated: a.EstimatedCost(),
		},
		PriceCategory:   string(a.PriceCategory),
		DurationMin:     a.DurationMin,
		DurationMax:     a.DurationMax,
		Address:         a.Address,
		Latitude:        a.Latitude,
		Longitude:       a.Longitude,
		OperatingHours:  a.OperatingHours.Data(),
		RatingAverage:   a.RatingAverage,
		RatingCount:     a.RatingCount,
		Tags:            strs(a.Tags),
		BookingRequired: a.BookingRequired,
		FitnessLevel:    a.FitnessLevel,
		BestMonths:      strs(a.BestMonths),
	}
	if a.City.ID != uuid.Nil {
		cs := toCitySummary(&a.City)
		out.City = &cs
	}
	return out
}

func toActivityResponses(acts []dbm.Activity) []resp.ActivityResponse {
	out := make([]resp.ActivityResponse, 0, len(acts))
	for i := range acts {
		out = append(out, toActivityResponse(&acts[i]))
	}
	return out
}

func toTripActivityResponse(ta *dbm.TripActivity) resp.TripActivityResponse {
	out := resp.TripActivityResponse{
		ID:            ta.ID.String(),
		Activity:      toActivityResponse(&ta.Activity),
		ScheduledTime: ta.ScheduledTime,
		Duration:      ta.Duration,
		CustomCost:    ta.CustomCost,
		Cost:          ta.Cost(),
		Notes:         ta.Notes,
		IsSelected:    ta.IsSelected,
		AddedToTotal:  ta.AddedToTotal,
		IsCompleted:   ta.IsCompleted,
	}
	if ta.ScheduledDate != nil {
		out.ScheduledDate = utils.FormatDate(*ta.ScheduledDate)
	}
	return out
}

func toStopResponse(s *dbm.TripStop) resp.StopResponse {
	acts := make([]resp.TripActivityResponse, 0, len(s.Activities))
	for i := range s.Activities {
		acts = append(acts, toTripActivityResponse(&s.Activities[i]))
	}
	return resp.StopResponse{
		ID:            s.ID.String(),
		City:          toCitySummary(&s.City),
		ArrivalDate:   utils.FormatDate(s.ArrivalDate),
		DepartureDate: utils.FormatDate(s.DepartureDate),
		Duration:      s.Duration,
		Order:         s.OrderIndex,
		Accommodation: resp.AccommodationResponse{
			Name:    s.Accommodation.Name,
			Type:    s.Accommodation.Type,
			Address: s.Accommodation.Address,
			Cost:    s.Accommodation.Cost,
		},
		Transport: resp.TransportResponse{
			Method: s.Transport.Method,
			Cost:   s.Transport.Cost,
		},
		Notes:      s.Notes,
		Activities: acts,
	}
}

func sortStops(stops []dbm.TripStop) {
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].OrderIndex < stops[j].OrderIndex })
}

func toTripSummary(t *dbm.Trip) resp.TripSummary {
	sortStops(t.Stops)
	cities := make([]string, 0, len(t.Stops))
	for _, s := range t.Stops {
		if s.City.Name != "" {
			cities = append(cities, s.City.Name)
		}
	}
	out := resp.TripSummary{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		CoverPhoto:  t.CoverPhoto,
		StartDate:   utils.FormatDate(t.StartDate),
		EndDate:     utils.FormatDate(t.EndDate),
		TotalDays:   t.TotalDays,
		Status:      string(t.Status),
		Privacy:     string(t.Privacy),
		Travelers: resp.TravelersResponse{
			Adults:   t.Adults,
			Children: t.Children,
		},
		Tags:        strs(t.Tags),
		Views:       t.Views,
		Currency:    t.Currency,
		TotalBudget: t.TotalBudget,
		StopCount:   t.StopCount(),
		Cities:      cities,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.ShareToken != nil {
		out.ShareToken = *t.ShareToken
	}
	return out
}

// toTripResponse hides collaborator emails from viewers outside the trip.
func toTripResponse(t *dbm.Trip, viewerID uuid.UUID) *resp.TripResponse {
	out := &resp.TripResponse{
		TripSummary:   toTripSummary(t),
		OwnerID:       t.OwnerID.String(),
		OwnerName:     t.Owner.Name,
		Stops:         make([]resp.StopResponse, 0, len(t.Stops)),
		Collaborators: make([]resp.CollaboratorResponse, 0, len(t.Collaborators)),
	}
	for i := range t.Stops {
		out.Stops = append(out.Stops, toStopResponse(&t.Stops[i]))
	}
	member := t.IsMember(viewerID)
	for _, c := range t.Collaborators {
		cr := resp.CollaboratorResponse{
			AccountID: c.AccountID.String(),
			Name:      c.Account.Name,
			Role:      string(c.Role),
			AddedAt:   c.CreatedAt,
		}
		if member {
			cr.Email = c.Account.Email
		}
		out.Collaborators = append(out.Collaborators, cr)
	}
	budget := BuildBudget(t, t.Budgets, AddedActivitiesCost(t.Stops))
	out.Budget = &budget
	return out
}
