package stats_fx

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"wanderwise/internal/repositories"
	"wanderwise/internal/services"
)

var Module = fx.Provide(
	provideStatsRepo, services.NewStatsService,
)

func provideStatsRepo(rx *sqlx.DB) repositories.StatsRepository {
	return repositories.NewStatsRepository(rx)
}
