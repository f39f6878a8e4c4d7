package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, loaded from the environment with
// an optional .env overlay.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// RedisURL selects the redis slot-store backend when set; the in-memory
	// backend is used otherwise.
	RedisURL       string
	StoreNamespace string

	// CredentialMode is "plaintext" or "bcrypt".
	CredentialMode string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		RedisURL:       getEnv("REDIS_URL", ""),
		StoreNamespace: getEnv("STORE_NAMESPACE", "ems"),
		CredentialMode: getEnv("CREDENTIAL_MODE", "plaintext"),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch raw {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", raw)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
