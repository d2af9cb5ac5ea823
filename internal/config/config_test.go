package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "STORE_DRIVER", "SQLITE_PATH", "AUDIO_BASE_URL", "SEED_FILE", "DB_HOST", "DB_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("expected port 8000, got %s", cfg.Server.Port)
	}
	if cfg.Store.Driver != StoreMemory {
		t.Errorf("expected memory store, got %s", cfg.Store.Driver)
	}
	if cfg.App.AudioBaseURL != "https://example.blob.core.windows.net/audio" {
		t.Errorf("unexpected audio base url %s", cfg.App.AudioBaseURL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "palefo")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}

	dsn := cfg.GetDSN()
	for _, part := range []string{"host=db.internal", "dbname=palefo", "password=secret", "sslmode=disable"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("dsn %q missing %q", dsn, part)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "memory",
			cfg:  Config{Server: ServerConfig{Port: "8000"}, Store: StoreConfig{Driver: StoreMemory}},
		},
		{
			name:    "unknown driver",
			cfg:     Config{Server: ServerConfig{Port: "8000"}, Store: StoreConfig{Driver: "mongo"}},
			wantErr: "unknown STORE_DRIVER",
		},
		{
			name:    "postgres without host",
			cfg:     Config{Server: ServerConfig{Port: "8000"}, Store: StoreConfig{Driver: StorePostgres}},
			wantErr: "DB_HOST and DB_NAME are required",
		},
		{
			name:    "sqlite without path",
			cfg:     Config{Server: ServerConfig{Port: "8000"}, Store: StoreConfig{Driver: StoreSQLite}},
			wantErr: "SQLITE_PATH is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
