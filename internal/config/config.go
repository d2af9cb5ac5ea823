package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	App      AppConfig
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port string
}

// StoreConfig selects where contributions are kept
type StoreConfig struct {
	Driver     string
	SQLitePath string
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AppConfig holds application-specific settings
type AppConfig struct {
	AudioBaseURL string
	SeedFile     string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8000"),
		},
		Store: StoreConfig{
			Driver:     getEnv("STORE_DRIVER", StoreMemory),
			SQLitePath: getEnv("SQLITE_PATH", "palefo.db"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		App: AppConfig{
			AudioBaseURL: getEnv("AUDIO_BASE_URL", "https://example.blob.core.windows.net/audio"),
			SeedFile:     getEnv("SEED_FILE", ""),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks required fields for the selected store
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory:
	case StoreSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER=sqlite")
		}
	case StorePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (expected memory, sqlite or postgres)", c.Store.Driver)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}

	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
