// Package config loads the translation service configuration from
// environment variables. The .env file, if any, is loaded in cmd/server
// before Load is called.
package config

import (
	"os"
	"strconv"
	"time"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Config holds the translation service configuration.
type Config struct {
	Port   string
	LogEnv string

	// Backend selection: "phrase" (offline) or "gemini" (remote LLM).
	TranslatorMode string

	// Gemini configuration.
	GeminiAPIKey            string
	GeminiModel             string
	GeminiRequestTimeout    time.Duration
	GeminiRequestsPerSecond float64

	// Input validation limits.
	MaxTextLength int
	MaxBulkTexts  int

	// Supported-language catalog cache.
	CatalogTTL time.Duration

	// Activity recording.
	RecordTimeout time.Duration

	// Optional Redis result cache; disabled when RedisHost is empty.
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	ResultCacheTTL time.Duration

	EnableCORS bool
}

// Load reads configuration from environment variables, applying defaults.
func Load() *Config {
	return &Config{
		Port:   getEnvOrDefault("PORT", "8000"),
		LogEnv: getEnvOrDefault("LOG_ENV", "development"),

		TranslatorMode: getEnvOrDefault("TRANSLATOR_MODE", "phrase"),

		GeminiAPIKey:            getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:             getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiRequestTimeout:    getEnvAsDurationOrDefault("GEMINI_REQUEST_TIMEOUT", 30*time.Second),
		GeminiRequestsPerSecond: getEnvAsFloatOrDefault("GEMINI_REQUESTS_PER_SECOND", 5),

		MaxTextLength: getEnvAsIntOrDefault("MAX_TEXT_LENGTH", 1000),
		MaxBulkTexts:  getEnvAsIntOrDefault("MAX_BULK_TEXTS", 10),

		CatalogTTL: getEnvAsDurationOrDefault("LANGUAGE_CATALOG_TTL", time.Hour),

		RecordTimeout: getEnvAsDurationOrDefault("ACTIVITY_RECORD_TIMEOUT", 5*time.Second),

		RedisHost:      getEnvOrDefault("REDIS_HOST", ""),
		RedisPort:      getEnvOrDefault("REDIS_PORT", "6379"),
		RedisPassword:  getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:        getEnvAsIntOrDefault("REDIS_DB", 0),
		ResultCacheTTL: getEnvAsDurationOrDefault("RESULT_CACHE_TTL", 24*time.Hour),

		EnableCORS: getEnvAsBoolOrDefault("ENABLE_CORS", true),
	}
}

// getEnvOrDefault gets an environment variable or returns the default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault gets an environment variable as int or returns the default.
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault gets an environment variable as bool or returns the default.
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault gets an environment variable as float64 or returns the default.
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault gets an environment variable as a duration
// ("30s", "1h") or returns the default.
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
