package main

import (
	"context"
	"flag"
	"os"
	"time"

	"go.uber.org/zap"
	"wanderwise/internal/infra"
	"wanderwise/internal/seed"
	"wanderwise/pkg/config"
)

func main() {
	reset := flag.Bool("reset", false, "remove existing catalog rows before seeding")
	flag.Parse()

	log, _ := zap.NewDevelopment()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	db, err := infra.InitPostgresql(cfg)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	defer infra.ClosePostgresql(db, log)

	if err := infra.AutoMigrate(db); err != nil {
		log.Error("migrate", zap.Error(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed.Catalog(ctx, db, *reset, log); err != nil {
		log.Error("seed catalog", zap.Error(err))
		os.Exit(1)
	}
}
