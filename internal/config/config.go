package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DataDir        string
	EntriesPath    string
	ServerPort     string
	LogLevel       string
	ESPNBaseURL    string
	ESPNCoreURL    string
	LookupCacheTTL time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DataDir:        getEnv("DATA_DIR", "."),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ESPNBaseURL:    getEnv("ESPN_BASE_URL", "https://site.api.espn.com"),
		ESPNCoreURL:    getEnv("ESPN_CORE_BASE_URL", "https://sports.core.api.espn.com"),
		LookupCacheTTL: getDuration("LOOKUP_CACHE_TTL", 5*time.Minute),
	}
	cfg.EntriesPath = filepath.Join(cfg.DataDir, "entries.json")

	logger.Info().
		Str("data_dir", cfg.DataDir).
		Str("entries_path", cfg.EntriesPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("lookup_cache_ttl", cfg.LookupCacheTTL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
