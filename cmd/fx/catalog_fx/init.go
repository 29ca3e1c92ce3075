package catalog_fx

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderwise/internal/repositories"
	"wanderwise/internal/services"
)

var Module = fx.Provide(
	provideCityRepo, provideActivityRepo,
	services.NewCityService, services.NewActivityService)

func provideCityRepo(db *gorm.DB, rx *sqlx.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db, rx)
}

func provideActivityRepo(db *gorm.DB, rx *sqlx.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db, rx)
}
