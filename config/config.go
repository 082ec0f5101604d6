package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Public site identity
	AppURL          string
	AppName         string
	FrontendURL     string
	GAMeasurementID string
	// Resend transactional email configuration
	ResendAPIKey     string
	ContactEmailFrom string // Must be a verified sender in Resend
	ContactEmailTo   string
	// Logging
	LogLevel string
	// Redis/Upstash Configuration (optional, backs the rate limiter)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	ContactRateLimit         int
	ContactRateWindowSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env when present; ignored in production where env vars are set
	// by the platform.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		// Trim trailing slashes so URL joins never produce double slashes
		AppURL:          strings.TrimRight(getEnv("APP_URL", "https://wataugaedc.org"), "/"),
		AppName:         getEnv("APP_NAME", "Watauga County EDC"),
		FrontendURL:     strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		GAMeasurementID: getEnv("GA_MEASUREMENT_ID", ""),
		// Resend configuration
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		ContactEmailFrom: getEnv("CONTACT_EMAIL_FROM", "Watauga EDC Website <noreply@wataugaedc.org>"),
		ContactEmailTo:   getEnv("CONTACT_EMAIL_TO", "info@wataugaedc.org"),
		// Logging
		LogLevel: getEnvLogLevel("LOG_LEVEL", "info"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		ContactRateLimit:         getEnvInt("CONTACT_RATE_LIMIT", 5),           // 5 submissions
		ContactRateWindowSeconds: getEnvInt("CONTACT_RATE_WINDOW_SECONDS", 60), // per minute
	}

	// The API key is the one setting without a safe default. Its absence is
	// a degraded mode, not an error: the mailer logs and reports success.
	if cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Contact emails will be logged, not sent.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvLogLevel returns a validated log level or the fallback. Unknown
// values never fail startup.
func getEnvLogLevel(key, fallback string) string {
	value := strings.ToLower(getEnv(key, fallback))
	switch value {
	case "debug", "info", "warn", "error":
		return value
	}
	return fallback
}
