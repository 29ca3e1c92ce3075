package db_fx

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"wanderwise/internal/infra"
	"wanderwise/pkg/config"
)

var Module = fx.Provide(
	provideDB, provideSqlx)

func provideDB(lc fx.Lifecycle, cfg config.App, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := infra.AutoMigrate(db); err != nil {
			return nil, err
		}
		log.Info("database migrated")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}

// provideSqlx shares the gorm connection pool.
func provideSqlx(db *gorm.DB) (*sqlx.DB, error) {
	return infra.NewSqlx(db)
}
