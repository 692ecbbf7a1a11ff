// Package database opens the catalog/identity database and the optional
// Redis client for the snapshot store.
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutridiary/backend/config"
	"github.com/nutridiary/backend/internal/model"
)

// New opens the database configured by cfg and runs migrations. The food
// catalog and user identities live here; the food/weight logs do not, they
// go through the snapshot store.
func New(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
		)
		log.Printf("Connecting to database at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		log.Printf("Opening sqlite database at %s", cfg.SQLitePath)
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Printf("Successfully connected to database")
	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.FoodProfile{}, &model.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
