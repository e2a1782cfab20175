// Package config manages application configuration
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port        string
	Environment string // "development" or "production"

	// Database
	DatabaseURL string

	// Redis cache; empty disables caching
	RedisAddr     string
	StatsCacheTTL time.Duration

	// Security
	SecretKey string // For JWT signing

	// Session settings
	SessionDuration time.Duration

	// Rate limiting
	RateLimitPerSecond float64
	RateLimitBurst     int

	// Development seed data
	SeedDemoData bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("DASKPLUS_PORT", "8080"),
		Environment:        getEnv("DASKPLUS_ENV", "development"),
		DatabaseURL:        getEnv("DASKPLUS_DATABASE_URL", "daskplus.db"),
		RedisAddr:          getEnv("DASKPLUS_REDIS_ADDR", ""),
		StatsCacheTTL:      getDurationEnv("DASKPLUS_STATS_CACHE_TTL", 5*time.Minute),
		SecretKey:          getEnv("DASKPLUS_SECRET_KEY", "dev-secret-key-change-in-production"),
		SessionDuration:    getDurationEnv("DASKPLUS_SESSION_DURATION", 24*time.Hour),
		RateLimitPerSecond: getFloatEnv("DASKPLUS_RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getIntEnv("DASKPLUS_RATE_LIMIT_BURST", 20),
		SeedDemoData:       getBoolEnv("DASKPLUS_SEED_DEMO", true),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
