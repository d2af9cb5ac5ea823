package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Resets a Postgres-backed contributions table to its seeded rows:
// drops every contribution submitted after seeding and realigns the id
// sequence so the next submission gets keep+1.
func main() {
	keep := flag.Int("keep", 13, "number of seeded contributions to keep")
	dryRun := flag.Bool("dry-run", false, "report what would be deleted without deleting")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Build connection string
	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), sslMode)

	// Connect to database
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.Println("Connected to database successfully")

	var extra int
	if err := db.QueryRow(`SELECT COUNT(*) FROM contributions WHERE id > $1`, *keep).Scan(&extra); err != nil {
		log.Fatalf("Failed to count contributions: %v", err)
	}

	if *dryRun {
		fmt.Printf("Would delete %d contributions with id > %d\n", extra, *keep)
		return
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}

	// Step 1: Delete submitted contributions
	result, err := tx.Exec(`DELETE FROM contributions WHERE id > $1`, *keep)
	if err != nil {
		tx.Rollback()
		log.Fatalf("Failed to delete contributions: %v", err)
	}
	deleted, _ := result.RowsAffected()

	// Step 2: Realign the id sequence
	_, err = tx.Exec(`SELECT setval(pg_get_serial_sequence('contributions', 'id'), GREATEST((SELECT COALESCE(MAX(id), 0) FROM contributions), 1), (SELECT COUNT(*) > 0 FROM contributions))`)
	if err != nil {
		tx.Rollback()
		log.Fatalf("Failed to reset id sequence: %v", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}

	fmt.Printf("✅ Deleted %d contributions with id > %d\n", deleted, *keep)
}
