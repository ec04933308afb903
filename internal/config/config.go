package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/arenaduna/booking-backend/internal/schedule"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	HTTPAddr          string
	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	BcryptCost        int

	UsersFile string

	CalendarID          string
	CredentialsFile     string
	CredentialsJSON     string
	VenueTimezone       string
	WeekendPolicy       schedule.WeekendPolicy
	UnknownEventPolicy  schedule.UnknownPolicy
	ClassifierRulesFile string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// JWT secret is required for signing tokens
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// JWT access token TTL, parse as time.Duration (e.g. "15m", "1h").
	ttlStr := getEnv("JWT_ACCESS_TOKEN_TTL", "15m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}
	cfg.JWTAccessTokenTTL = ttl

	// Bcrypt cost for password hashing (default: 12)
	cfg.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	// Flat account store (default: users.json next to the binary)
	cfg.UsersFile = getEnv("USERS_FILE", "users.json")

	// Calendar collaborator settings. The calendar ID is required; credentials
	// come from a file path or inline JSON, one of which must be set.
	cfg.CalendarID = os.Getenv("GOOGLE_CALENDAR_ID")
	if cfg.CalendarID == "" {
		return nil, fmt.Errorf("GOOGLE_CALENDAR_ID is required")
	}
	cfg.CredentialsFile = getEnv("GOOGLE_CREDENTIALS_FILE", "")
	cfg.CredentialsJSON = getEnv("GOOGLE_CREDENTIALS_JSON", "")
	if cfg.CredentialsFile == "" && cfg.CredentialsJSON == "" {
		return nil, fmt.Errorf("GOOGLE_CREDENTIALS_FILE or GOOGLE_CREDENTIALS_JSON is required")
	}

	cfg.VenueTimezone = getEnv("VENUE_TIMEZONE", "America/Sao_Paulo")

	weekend := getEnv("WEEKEND_POLICY", string(schedule.WeekendWindow))
	switch schedule.WeekendPolicy(weekend) {
	case schedule.WeekendWindow, schedule.WeekendClosed:
		cfg.WeekendPolicy = schedule.WeekendPolicy(weekend)
	default:
		return nil, fmt.Errorf("invalid WEEKEND_POLICY: %q", weekend)
	}

	unknown := getEnv("UNKNOWN_EVENT_POLICY", string(schedule.UnknownSingle))
	switch schedule.UnknownPolicy(unknown) {
	case schedule.UnknownSingle, schedule.UnknownBlock:
		cfg.UnknownEventPolicy = schedule.UnknownPolicy(unknown)
	default:
		return nil, fmt.Errorf("invalid UNKNOWN_EVENT_POLICY: %q", unknown)
	}

	cfg.ClassifierRulesFile = getEnv("CLASSIFIER_RULES_FILE", "")

	return cfg, nil
}

// CredentialsData returns the service-account credentials bytes from either
// the inline JSON or the configured file.
func (c *Config) CredentialsData() ([]byte, error) {
	if c.CredentialsJSON != "" {
		return []byte(c.CredentialsJSON), nil
	}
	data, err := os.ReadFile(c.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return data, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
