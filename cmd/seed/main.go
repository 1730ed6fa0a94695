package main

import (
	"context"
	"time"

	"github.com/suteetoe/jobboard/internal/seed"
	"github.com/suteetoe/jobboard/internal/store"
	"github.com/suteetoe/jobboard/pkg/config"
	"github.com/suteetoe/jobboard/pkg/database"
	"github.com/suteetoe/jobboard/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	db, err := database.InitDB(&cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed.New(store.New(db, nil), cfg, log).Run(ctx); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
	log.Info("Database seeded")
}
