// Package config loads the settings of the view service and the activities
// API from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Shivanand-hulikatti/activity-signup/internal/logging"
)

// Logging holds the slog settings shared by both binaries.
type Logging struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Logger converts the settings into a logging.Config.
func (l Logging) Logger() logging.Config {
	return logging.Config{Level: l.Level, Format: l.Format}
}

// View configures the sign-up view service.
type View struct {
	Port string `env:"PORT" envDefault:"8080"`
	// APIBaseURL is the root of the activities API.
	APIBaseURL string `env:"ACTIVITIES_API_URL" envDefault:"http://localhost:8000"`
	// APITimeout bounds each API call. Zero leaves the transport default.
	APITimeout time.Duration `env:"ACTIVITIES_API_TIMEOUT" envDefault:"0s"`
	// SessionIdleTimeout expires view sessions that saw no request.
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	Logging            Logging
}

// Database holds PostgreSQL connection settings.
type Database struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Name     string `env:"DB_NAME" envDefault:"activities"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN builds a libpq-compatible connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// API configures the activities API server.
type API struct {
	Port     string `env:"PORT" envDefault:"8000"`
	Database Database
	// Seed inserts the default activities when the table is empty.
	Seed bool `env:"SEED_ACTIVITIES" envDefault:"true"`
	// ViewURL is where GET / redirects; empty disables the redirect.
	ViewURL string `env:"VIEW_URL"`
	Logging Logging
}

// LoadView reads the view service configuration.
func LoadView() (View, error) {
	loadDotEnv()
	var cfg View
	if err := env.Parse(&cfg); err != nil {
		return View{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if cfg.APIBaseURL == "" {
		return View{}, errors.New("ACTIVITIES_API_URL is required")
	}
	if cfg.APITimeout < 0 {
		return View{}, errors.New("ACTIVITIES_API_TIMEOUT must not be negative")
	}
	return cfg, nil
}

// LoadAPI reads the activities API configuration.
func LoadAPI() (API, error) {
	loadDotEnv()
	var cfg API
	if err := env.Parse(&cfg); err != nil {
		return API{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// loadDotEnv honours a local .env file without overriding the real environment.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn(".env load warning", slog.Any("error", err))
	}
}
