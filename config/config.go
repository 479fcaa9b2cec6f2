package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults for a local single-user deployment.
const (
	DefaultServerHost   = "localhost"
	DefaultServerPort   = "8080"
	DefaultDBPath       = "meal_logs.db"
	DefaultFontPath     = "NotoSansArabic-Regular.ttf"
	DefaultShareBaseURL = "https://renalplate.app/share"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Location of the sqlite meal log store
	DBPath string

	// Font file required for the PDF export. Absence degrades PDF export
	// only; the rest of the application stays usable.
	FontPath string

	// Base URL prepended to generated share tokens
	ShareBaseURL string

	// Origins allowed by the CORS middleware
	CORSOrigins []string
}

// LoadConfig creates a new Config instance with values from environment
// variables, falling back to local defaults. In development a .env file in
// the working directory is loaded first.
func LoadConfig() (*Config, error) {
	if IsDevelopment() {
		// A missing .env is fine, env vars may be set directly
		_ = godotenv.Load()
	}

	cfg := &Config{
		ServerHost:   getEnv("SERVER_HOST", DefaultServerHost),
		ServerPort:   getEnv("SERVER_PORT", DefaultServerPort),
		DBPath:       getEnv("DB_PATH", DefaultDBPath),
		FontPath:     getEnv("FONT_PATH", DefaultFontPath),
		ShareBaseURL: getEnv("SHARE_BASE_URL", DefaultShareBaseURL),
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
