package database

import (
	"fmt"

	"github.com/pageza/moodbites/backend/internal/logging"
	"github.com/pageza/moodbites/backend/internal/models"
	"gorm.io/gorm"
)

// RunMigrations creates or updates the recipes table
func RunMigrations(db *gorm.DB) error {
	logging.Info().Str("dialect", db.Dialector.Name()).Msg("[Database] running auto-migration")
	if err := db.AutoMigrate(&models.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes table: %w", err)
	}
	return nil
}
