// Package migration manages the database schema. The schema is small and
// wholly owned by this service, so gorm's automigrate keeps it in step
// with the persistence models.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"sanad/internal/infrastructure/persistence/models"
	"sanad/internal/shared/logger"
)

// AutoMigrate brings the schema up to date with the persistence models.
func AutoMigrate(db *gorm.DB) error {
	log := logger.WithComponent("migration")

	targets := []interface{}{
		&models.TicketModel{},
		&models.CommentModel{},
		&models.ReactionModel{},
		&models.SupervisorModel{},
		&models.LookupEntryModel{},
	}

	for _, target := range targets {
		if err := db.AutoMigrate(target); err != nil {
			return fmt.Errorf("automigrate %T: %w", target, err)
		}
	}

	log.Info("schema migration complete", "tables", len(targets))
	return nil
}
