package main

import (
	"github.com/pageza/moodbites/backend/config"
	"github.com/pageza/moodbites/backend/internal/database"
	"github.com/pageza/moodbites/backend/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	db, err := database.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.RunMigrations(db); err != nil {
		logging.Fatal().Err(err).Msg("Migration failed")
	}
	logging.Info().Str("driver", cfg.Database.Driver).Msg("Migrations applied")
}
