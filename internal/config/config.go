package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr          string
	DatabaseURL       string
	MigrationsPath    string
	DefaultLocale     string
	GeminiAPIKey      string
	OpenWeatherAPIKey string
	JWTSecret         string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		HTTPAddr:          os.Getenv("HTTP_ADDR"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MigrationsPath:    os.Getenv("MIGRATIONS_PATH"),
		DefaultLocale:     os.Getenv("DEFAULT_LOCALE"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies the business rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET is required and cannot be empty")
	}

	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return fmt.Errorf("config: GEMINI_API_KEY is required and cannot be empty")
	}

	if strings.TrimSpace(c.OpenWeatherAPIKey) == "" {
		return fmt.Errorf("config: OPENWEATHER_API_KEY is required and cannot be empty")
	}

	if strings.TrimSpace(c.HTTPAddr) == "" {
		c.HTTPAddr = ":8080"
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful default for local development when DATABASE_URL is not set.
		c.DatabaseURL = "postgres://localhost:5432/cropguru?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	return nil
}
