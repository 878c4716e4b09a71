package config

import (
	"fmt"
	"os"
	"strconv"

	"fabshop-backend/internal/pricing"
)

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseJWTSecret      string
	SupabaseStorageBucket  string

	// Database
	DatabaseURL string

	// Pricing
	LaborHourlyRate float64
	TargetCostRatio float64

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	defaults := pricing.DefaultParams()

	cfg := &Config{
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "quote-files"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		LaborHourlyRate: getEnvFloat("LABOR_HOURLY_RATE", defaults.LaborHourlyRate),
		TargetCostRatio: getEnvFloat("TARGET_COST_RATIO", defaults.TargetCostRatio),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.TargetCostRatio <= 0 || c.TargetCostRatio > 1 {
		return fmt.Errorf("TARGET_COST_RATIO must be in (0, 1], got %v", c.TargetCostRatio)
	}
	if c.LaborHourlyRate < 0 {
		return fmt.Errorf("LABOR_HOURLY_RATE must not be negative, got %v", c.LaborHourlyRate)
	}
	return nil
}

// PricingParams exposes the pricing constants as calculator parameters.
func (c *Config) PricingParams() pricing.Params {
	return pricing.Params{
		LaborHourlyRate: c.LaborHourlyRate,
		TargetCostRatio: c.TargetCostRatio,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}
