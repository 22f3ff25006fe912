package database

import (
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/model"
)

// Migrate brings the schema up to date. AutoMigrate covers the tables plus
// the unique indexes the lifecycle invariants rely on (customer email,
// payment transaction_id and reference_id).
func Migrate(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Running database migrations", nil)

	if err := db.AutoMigrate(
		&model.Customer{},
		&model.Transaction{},
		&model.Payment{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations completed", nil)
	return nil
}
