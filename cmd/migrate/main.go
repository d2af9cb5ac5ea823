package main

import (
	"context"
	"fmt"
	"log"

	"github.com/rafreid/palefo-mock-api/internal/config"
	"github.com/rafreid/palefo-mock-api/internal/database"
	"github.com/rafreid/palefo-mock-api/internal/seed"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Store.Driver == config.StoreMemory {
		log.Fatal("STORE_DRIVER=memory has no schema; set STORE_DRIVER to sqlite or postgres")
	}

	data, err := seed.Load(cfg.App.SeedFile)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	// Migrate and seed
	repo, closeStore, err := database.OpenContributionStore(context.Background(), cfg, seed.Contributions(data.Sentences))
	if err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}
	defer closeStore()

	count, err := repo.Count(context.Background())
	if err != nil {
		log.Fatalf("Failed to count contributions: %v", err)
	}

	log.Println("✅ Migration applied successfully!")
	fmt.Printf("✅ contributions table ready with %d rows\n", count)
}
