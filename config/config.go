package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment values for AppEnv
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port        string
	AppEnv      string
	DBUrl       string
	FrontendURL string
	// SMTP Configuration (Brevo)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string // Verified sender email (different from SMTP login)
	ContactEmailTo string
	// Bot mitigation (Cloudflare Turnstile)
	TurnstileSecretKey string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	// Admin API
	AdminJWTSecret string
}

func LoadConfig() (*Config, error) {
	// Load .env file (local only, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", EnvDevelopment),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", "noreply@brightforgestudio.com"), // Must be verified in Brevo
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "hello@brightforgestudio.com"),
		// Bot mitigation
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 600),  // 10 minute window
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5), // 5 submissions per window
		// Admin API
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
	}

	// Logged once for operators; the endpoint rejects per-request with a
	// configuration error until the secret is set.
	if cfg.IsProduction() && cfg.TurnstileSecretKey == "" {
		log.Println("WARNING: TURNSTILE_SECRET_KEY missing in production. All submissions will be rejected until it is set.")
	}
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL not configured. Submissions will not be archived.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether this deployment must require bot verification.
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
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
