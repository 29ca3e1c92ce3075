package seed

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	dbm "wanderwise/internal/models/db_models"
)

type activitySeed struct {
	city     string
	activity dbm.Activity
}

func ptr(f float64) *float64 { return &f }

func band(budget, mid, luxury float64) dbm.PriceBand {
	return dbm.PriceBand{Budget: budget, MidRange: mid, Luxury: luxury}
}

func cities() []dbm.City {
	return []dbm.City{
		{
			Name:            "Paris",
			Country:         "France",
			Region:          "Europe",
			Latitude:        48.8566,
			Longitude:       2.3522,
			Description:     "The City of Light, known for art, fashion, gastronomy and culture.",
			ImageURL:        "https://images.unsplash.com/photo-1502602898657-3e91760cbb34",
			CostIndex:       4,
			PopularityScore: 95,
			Timezone:        "Europe/Paris",
			CurrencyCode:    "EUR",
			Languages:       pq.StringArray{"fr"},
			Tags:            pq.StringArray{"city", "cultural", "romantic", "historical", "food"},
			AverageCosts: datatypes.NewJSONType(dbm.CityCosts{
				Accommodation: band(80, 150, 400),
				Meal:          band(15, 35, 80),
				Transport:     band(2, 10, 40),
			}),
		},
		{
			Name:            "Tokyo",
			Country:         "Japan",
			Region:          "Asia",
			Latitude:        35.6762,
			Longitude:       139.6503,
			Description:     "A neon-lit capital where shrines sit next to skyscrapers.",
			ImageURL:        "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf",
			CostIndex:       4,
			PopularityScore: 90,
			Timezone:        "Asia/Tokyo",
			CurrencyCode:    "JPY",
			Languages:       pq.StringArray{"ja"},
			Tags:            pq.StringArray{"city", "cultural", "food", "shopping", "nightlife"},
			AverageCosts: datatypes.NewJSONType(dbm.CityCosts{
				Accommodation: band(8000, 15000, 40000),
				Meal:          band(1000, 3000, 10000),
				Transport:     band(500, 1500, 5000),
			}),
		},
		{
			Name:            "New York",
			Country:         "United States",
			Region:          "North America",
			Latitude:        40.7128,
			Longitude:       -74.0060,
			Description:     "The city that never sleeps, with world-class museums and Broadway.",
			ImageURL:        "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9",
			CostIndex:       5,
			PopularityScore: 92,
			Timezone:        "America/New_York",
			CurrencyCode:    "USD",
			Languages:       pq.StringArray{"en"},
			Tags:            pq.StringArray{"city", "cultural", "shopping", "nightlife", "food"},
			AverageCosts: datatypes.NewJSONType(dbm.CityCosts{
				Accommodation: band(120, 250, 600),
				Meal:          band(20, 45, 120),
				Transport:     band(3, 15, 60),
			}),
		},
		{
			Name:            "Bali",
			Country:         "Indonesia",
			Region:          "Southeast Asia",
			Latitude:        -8.3405,
			Longitude:       115.0920,
			Description:     "Island of temples, rice terraces and surf beaches.",
			ImageURL:        "https://images.unsplash.com/photo-1537996194471-e657df975ab4",
			CostIndex:       2,
			PopularityScore: 88,
			Timezone:        "Asia/Makassar",
			CurrencyCode:    "IDR",
			Languages:       pq.StringArray{"id", "en"},
			Tags:            pq.StringArray{"beach", "cultural", "nature", "adventure"},
			AverageCosts: datatypes.NewJSONType(dbm.CityCosts{
				Accommodation: band(300000, 800000, 3000000),
				Meal:          band(50000, 150000, 500000),
				Transport:     band(30000, 100000, 400000),
			}),
		},
		{
			Name:            "London",
			Country:         "United Kingdom",
			Region:          "Europe",
			Latitude:        51.5074,
			Longitude:       -0.1278,
			Description:     "A historic capital of royal palaces, parks and free museums.",
			ImageURL:        "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad",
			CostIndex:       4,
			PopularityScore: 89,
			Timezone:        "Europe/London",
			CurrencyCode:    "GBP",
			Languages:       pq.StringArray{"en"},
			Tags:            pq.StringArray{"city", "historical", "cultural", "shopping"},
			AverageCosts: datatypes.NewJSONType(dbm.CityCosts{
				Accommodation: band(70, 160, 450),
				Meal:          band(15, 35, 90),
				Transport:     band(5, 15, 50),
			}),
		},
	}
}

func activities() []activitySeed {
	return []activitySeed{
		{"Paris", dbm.Activity{
			Name:            "Eiffel Tower Visit",
			Description:     "Ride to the summit of the iron lattice tower for views over Paris.",
			Category:        dbm.CategorySightseeing,
			Subcategory:     "landmarks",
			CostMin:         25,
			CostMax:         35,
			Currency:        "EUR",
			PriceCategory:   dbm.PriceMidRange,
			DurationMin:     120,
			DurationMax:     180,
			Address:         "Champ de Mars, 5 Avenue Anatole France, 75007 Paris",
			Latitude:        ptr(48.8584),
			Longitude:       ptr(2.2945),
			RatingAverage:   4.5,
			RatingCount:     15420,
			Tags:            pq.StringArray{"iconic", "views", "romantic"},
			BookingRequired: true,
			FitnessLevel:    "easy",
		}},
		{"Paris", dbm.Activity{
			Name:            "Louvre Museum",
			Description:     "The world's largest art museum, home of the Mona Lisa.",
			Category:        dbm.CategoryCultural,
			Subcategory:     "museums",
			CostMin:         17,
			CostMax:         17,
			Currency:        "EUR",
			PriceCategory:   dbm.PriceMidRange,
			DurationMin:     180,
			DurationMax:     300,
			Address:         "Rue de Rivoli, 75001 Paris",
			Latitude:        ptr(48.8606),
			Longitude:       ptr(2.3376),
			RatingAverage:   4.6,
			RatingCount:     8930,
			Tags:            pq.StringArray{"art", "history", "indoor"},
			BookingRequired: true,
			FitnessLevel:    "easy",
		}},
		{"Paris", dbm.Activity{
			Name:          "Seine River Walk",
			Description:   "Stroll the quays between Notre-Dame and the Musée d'Orsay.",
			Category:      dbm.CategoryNature,
			Subcategory:   "walks",
			IsFree:        true,
			Currency:      "EUR",
			PriceCategory: dbm.PriceFree,
			DurationMin:   60,
			DurationMax:   120,
			Latitude:      ptr(48.8570),
			Longitude:     ptr(2.3410),
			RatingAverage: 4.4,
			RatingCount:   2100,
			Tags:          pq.StringArray{"outdoor", "romantic"},
			FitnessLevel:  "easy",
		}},
		{"Tokyo", dbm.Activity{
			Name:          "Senso-ji Temple",
			Description:   "Tokyo's oldest temple, reached through the Nakamise shopping street.",
			Category:      dbm.CategoryCultural,
			Subcategory:   "temples",
			IsFree:        true,
			Currency:      "JPY",
			PriceCategory: dbm.PriceFree,
			DurationMin:   60,
			DurationMax:   120,
			Address:       "2-3-1 Asakusa, Taito City, Tokyo",
			Latitude:      ptr(35.7148),
			Longitude:     ptr(139.7967),
			RatingAverage: 4.4,
			RatingCount:   12500,
			Tags:          pq.StringArray{"temple", "history", "photography"},
			FitnessLevel:  "easy",
		}},
		{"Tokyo", dbm.Activity{
			Name:          "Tsukiji Fish Market",
			Description:   "Graze on fresh sushi and street food in the outer market.",
			Category:      dbm.CategoryFood,
			Subcategory:   "markets",
			CostMin:       2000,
			CostMax:       5000,
			Currency:      "JPY",
			PriceCategory: dbm.PriceBudget,
			DurationMin:   120,
			DurationMax:   180,
			Address:       "4-16-2 Tsukiji, Chuo City, Tokyo",
			Latitude:      ptr(35.6654),
			Longitude:     ptr(139.7707),
			RatingAverage: 4.3,
			RatingCount:   6780,
			Tags:          pq.StringArray{"seafood", "market", "morning"},
			FitnessLevel:  "easy",
		}},
		{"New York", dbm.Activity{
			Name:            "Central Park Bike Tour",
			Description:     "Guided two-hour ride past the park's best-known sights.",
			Category:        dbm.CategoryAdventure,
			Subcategory:     "cycling",
			CostMin:         45,
			CostMax:         65,
			Currency:        "USD",
			PriceCategory:   dbm.PriceMidRange,
			DurationMin:     120,
			DurationMax:     150,
			Latitude:        ptr(40.7829),
			Longitude:       ptr(-73.9654),
			RatingAverage:   4.7,
			RatingCount:     3200,
			Tags:            pq.StringArray{"outdoor", "guided"},
			BookingRequired: true,
			FitnessLevel:    "moderate",
		}},
		{"Bali", dbm.Activity{
			Name:          "Tegallalang Rice Terraces",
			Description:   "Walk the stepped rice paddies north of Ubud.",
			Category:      dbm.CategoryNature,
			Subcategory:   "landscapes",
			CostMin:       15000,
			CostMax:       25000,
			Currency:      "IDR",
			PriceCategory: dbm.PriceBudget,
			DurationMin:   90,
			DurationMax:   180,
			Latitude:      ptr(-8.4312),
			Longitude:     ptr(115.2793),
			RatingAverage: 4.4,
			RatingCount:   5400,
			Tags:          pq.StringArray{"outdoor", "photography"},
			FitnessLevel:  "moderate",
		}},
		{"London", dbm.Activity{
			Name:          "British Museum",
			Description:   "Two million years of human history, free to enter.",
			Category:      dbm.CategoryCultural,
			Subcategory:   "museums",
			IsFree:        true,
			Currency:      "GBP",
			PriceCategory: dbm.PriceFree,
			DurationMin:   120,
			DurationMax:   240,
			Address:       "Great Russell St, London WC1B 3DG",
			Latitude:      ptr(51.5194),
			Longitude:     ptr(-0.1270),
			RatingAverage: 4.7,
			RatingCount:   9800,
			Tags:          pq.StringArray{"history", "indoor"},
			FitnessLevel:  "easy",
		}},
	}
}

// Catalog inserts the demo cities and activities. It does nothing when the
// catalog already has cities unless reset is set, in which case existing
// catalog rows are removed first.
func Catalog(ctx context.Context, db *gorm.DB, reset bool, log *zap.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if reset {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&dbm.Activity{}).Error; err != nil {
				return fmt.Errorf("clear activities: %w", err)
			}
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&dbm.City{}).Error; err != nil {
				return fmt.Errorf("clear cities: %w", err)
			}
			log.Info("catalog cleared")
		}

		var count int64
		if err := tx.Model(&dbm.City{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Info("catalog already seeded", zap.Int64("cities", count))
			return nil
		}

		byName := make(map[string]*dbm.City)
		list := cities()
		for i := range list {
			if err := tx.Create(&list[i]).Error; err != nil {
				return fmt.Errorf("create city %s: %w", list[i].Name, err)
			}
			byName[list[i].Name] = &list[i]
		}

		acts := activities()
		for _, s := range acts {
			city, ok := byName[s.city]
			if !ok {
				return fmt.Errorf("activity %s references unknown city %s", s.activity.Name, s.city)
			}
			a := s.activity
			a.CityID = city.ID
			a.IsActive = true
			if err := tx.Create(&a).Error; err != nil {
				return fmt.Errorf("create activity %s: %w", a.Name, err)
			}
		}

		log.Info("catalog seeded", zap.Int("cities", len(list)), zap.Int("activities", len(acts)))
		return nil
	})
}
