package config_test

import (
	"os"
	"testing"
	"time"

	"pickem-tracker/internal/config"

	"github.com/rs/zerolog"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := config.Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.DataDir != "." {
		t.Errorf("expected default data dir '.', got %q", cfg.DataDir)
	}
	if cfg.EntriesPath != "entries.json" {
		t.Errorf("expected default entries path 'entries.json', got %q", cfg.EntriesPath)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("expected default server port '8080', got %q", cfg.ServerPort)
	}
	if cfg.ESPNBaseURL != "https://site.api.espn.com" {
		t.Errorf("unexpected default ESPN base URL %q", cfg.ESPNBaseURL)
	}
	if cfg.ESPNCoreURL != "https://sports.core.api.espn.com" {
		t.Errorf("unexpected default ESPN core URL %q", cfg.ESPNCoreURL)
	}
	if cfg.LookupCacheTTL != 5*time.Minute {
		t.Errorf("expected default cache TTL 5m, got %v", cfg.LookupCacheTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	os.Clearenv()
	t.Setenv("DATA_DIR", "/var/data")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ESPN_BASE_URL", "http://localhost:1234")
	t.Setenv("LOOKUP_CACHE_TTL", "30s")

	cfg, err := config.Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.DataDir != "/var/data" {
		t.Errorf("data dir = %q", cfg.DataDir)
	}
	if cfg.EntriesPath != "/var/data/entries.json" {
		t.Errorf("entries path = %q", cfg.EntriesPath)
	}
	if cfg.ServerPort != "9090" {
		t.Errorf("server port = %q", cfg.ServerPort)
	}
	if cfg.ESPNBaseURL != "http://localhost:1234" {
		t.Errorf("ESPN base URL = %q", cfg.ESPNBaseURL)
	}
	if cfg.LookupCacheTTL != 30*time.Second {
		t.Errorf("cache TTL = %v", cfg.LookupCacheTTL)
	}
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	os.Clearenv()
	t.Setenv("LOOKUP_CACHE_TTL", "not-a-duration")

	cfg, err := config.Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LookupCacheTTL != 5*time.Minute {
		t.Errorf("expected fallback TTL 5m, got %v", cfg.LookupCacheTTL)
	}
}
