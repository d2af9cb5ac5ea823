package database

import (
	"fmt"
	"log"

	"github.com/rafreid/palefo-mock-api/internal/config"
	"github.com/rafreid/palefo-mock-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the SQL database selected by cfg.Store.Driver
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Store.Driver {
	case config.StorePostgres:
		dialector = postgres.Open(cfg.GetDSN())
	case config.StoreSQLite:
		dialector = sqlite.Open(cfg.Store.SQLitePath)
	default:
		return nil, fmt.Errorf("store driver %q has no database", cfg.Store.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("Database connection established (%s)", cfg.Store.Driver)
	return db, nil
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Contribution{}); err != nil {
		return fmt.Errorf("failed to migrate contributions: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
