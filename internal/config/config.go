package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"debase-landing/pkg/validator"
)

type Config struct {
	// Redis
	EnableCache bool
	RedisURL    string `validate:"required_if=EnableCache true"`
	CacheTTL    time.Duration

	// Server
	Port        string `validate:"required,numeric"`
	Environment string `validate:"oneof=development staging production"`

	// CORS
	CORSOrigins []string

	// Rate Limiting
	RateLimitRequests int `validate:"gte=0"`
	RateLimitWindow   int `validate:"gt=0"`
	RateLimitBurst    int `validate:"gte=0"`

	// Features
	EnableMetrics bool

	// Logging
	LogLevel string `validate:"log_level"`

	// Admin
	AdminToken string

	// Site Meta
	SiteName        string `validate:"required"`
	SiteDescription string
	SiteURL         string `validate:"required,url"`
}

func New() *Config {
	return &Config{
		// Redis
		EnableCache: getEnvAsBool("ENABLE_CACHE", false),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),
		CacheTTL:    time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 600)) * time.Second,

		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// CORS
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:8080")),

		// Rate Limiting
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 0),

		// Features
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		// Admin
		AdminToken: getEnv("ADMIN_TOKEN", ""),

		// Site Meta
		SiteName:        getEnv("SITE_NAME", "DEBASE Trading Bot"),
		SiteDescription: getEnv("SITE_DESCRIPTION", "AI-powered Telegram trading bot for the Base network."),
		SiteURL:         strings.TrimRight(getEnv("SITE_URL", "http://localhost:8080"), "/"),
	}
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if err := validator.Validate(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1"
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// JSONLogs reports whether logs should be structured JSON. Only local
// development keeps the coloured text output.
func (c *Config) JSONLogs() bool {
	return !c.IsDevelopment()
}
