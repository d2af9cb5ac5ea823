package database

import (
	"context"
	"fmt"
	"log"

	"github.com/rafreid/palefo-mock-api/internal/config"
	"github.com/rafreid/palefo-mock-api/internal/models"
	"github.com/rafreid/palefo-mock-api/internal/repository"

	"gorm.io/gorm"
)

// OpenContributionStore returns the repository selected by STORE_DRIVER,
// migrated and seeded. close releases the underlying database, if any.
func OpenContributionStore(
	ctx context.Context,
	cfg *config.Config,
	seeds []models.Contribution,
) (repository.ContributionRepository, func() error, error) {
	if cfg.Store.Driver == config.StoreMemory {
		repo := repository.NewMemoryContributionRepository()
		if err := seedStore(ctx, repo, seeds); err != nil {
			return nil, nil, err
		}
		return repo, func() error { return nil }, nil
	}

	db, err := Connect(cfg)
	if err != nil {
		return nil, nil, err
	}

	return openGormStore(ctx, db, seeds)
}

func openGormStore(
	ctx context.Context,
	db *gorm.DB,
	seeds []models.Contribution,
) (repository.ContributionRepository, func() error, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	repo := repository.NewGormContributionRepository(db)
	if err := seedStore(ctx, repo, seeds); err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	return repo, sqlDB.Close, nil
}

func seedStore(ctx context.Context, repo repository.ContributionRepository, seeds []models.Contribution) error {
	seeded, err := repository.SeedIfEmpty(ctx, repo, seeds)
	if err != nil {
		return err
	}
	if seeded > 0 {
		log.Printf("Seeded %d contributions", seeded)
	}
	return nil
}
