package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	DB    DatabaseConfig
	Redis RedisConfig
	Cache CacheConfig
	Order OrderConfig

	// CORSAllowedOrigins lists the browser origins allowed to call the API.
	CORSAllowedOrigins []string

	// PricingPolicyPath points at the YAML file holding VAT, tolerance,
	// shipping and thickness constants.
	PricingPolicyPath string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// CacheConfig controls the precomputed price cache lifecycle.
type CacheConfig struct {
	RebuildTimeout time.Duration
	SyncInterval   time.Duration
	LockTTL        time.Duration
}

// OrderConfig controls order persistence.
type OrderConfig struct {
	PersistAttempts int
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")
	cfg.PricingPolicyPath = getEnv("PRICING_POLICY_PATH", "configs/pricing.yaml")
	cfg.CORSAllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Database
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// Price cache (durations)
	var err error
	if cfg.Cache.RebuildTimeout, err = parseDurationEnv("CACHE_REBUILD_TIMEOUT", "30s"); err != nil {
		return nil, fmt.Errorf("invalid CACHE_REBUILD_TIMEOUT: %w", err)
	}
	if cfg.Cache.SyncInterval, err = parseDurationEnv("CACHE_SYNC_INTERVAL", "30s"); err != nil {
		return nil, fmt.Errorf("invalid CACHE_SYNC_INTERVAL: %w", err)
	}
	if cfg.Cache.LockTTL, err = parseDurationEnv("CACHE_LOCK_TTL", "60s"); err != nil {
		return nil, fmt.Errorf("invalid CACHE_LOCK_TTL: %w", err)
	}

	// Orders
	cfg.Order.PersistAttempts = getEnvInt("ORDER_PERSIST_ATTEMPTS", 3)
	if cfg.Order.PersistAttempts < 1 {
		return nil, errors.New("ORDER_PERSIST_ATTEMPTS must be at least 1")
	}

	// Basic validation for DB parameters keeps messages concise and helpful.
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}

	// Validate JWT_SECRET
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set for admin authentication")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvList splits a comma-separated variable, dropping blank items.
func getEnvList(key, def string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, def), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
