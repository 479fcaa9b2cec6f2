package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/renalplate/backend/config"
	"github.com/renalplate/backend/internal/logger"
	"github.com/renalplate/backend/internal/model"
)

// New opens the embedded meal log store and ensures its schema. The store
// is opened once per process and closed at exit; there is exactly one
// writer.
func New(cfg *config.Config) (*gorm.DB, error) {
	logger.Info("opening meal log store", zap.String("path", cfg.DBPath))

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.MealLog{},
		&model.SharedPlan{},
	); err != nil {
		return nil, fmt.Errorf("error migrating database: %v", err)
	}

	return db, nil
}

// HealthCheck checks if the database is accessible
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
