package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                  string
	APIBaseURL            string
	AppEnv                string
	ServiceEmail          string
	ServicePassword       string
	SalesPollInterval     time.Duration
	OccupancyPollInterval time.Duration
	EnableLivePush        bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	apiBaseURL, exists := os.LookupEnv("API_BASE_URL")
	if !exists || apiBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	return &Config{
		Port:                  getEnv("PORT", "8080"),
		APIBaseURL:            strings.TrimRight(apiBaseURL, "/"),
		AppEnv:                normalizeEnv(getEnv("APP_ENV", "production")),
		ServiceEmail:          getEnv("SERVICE_EMAIL", ""),
		ServicePassword:       getEnv("SERVICE_PASSWORD", ""),
		SalesPollInterval:     getEnvDuration("SALES_POLL_INTERVAL", 2*time.Second),
		OccupancyPollInterval: getEnvDuration("OCCUPANCY_POLL_INTERVAL", 5*time.Second),
		EnableLivePush:        getEnvBool("ENABLE_LIVE_PUSH", true),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		log.Printf("%s: invalid duration %q, using %s", key, value, fallback)
		return fallback
	}
	return parsed
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

// ServiceLoginConfigured reports whether the background pollers can sign in
// on their own instead of waiting for an admin session.
func (c *Config) ServiceLoginConfigured() bool {
	return c != nil && c.ServiceEmail != "" && c.ServicePassword != ""
}
