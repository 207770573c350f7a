package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains server configuration parameters.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	IDTimezone      string        `env:"ID_TIMEZONE" envDefault:"Local"`
	Log             Log           `envPrefix:"LOG_"`
	Database        Database      `envPrefix:"DB_"`
	CORS            CORS          `envPrefix:"CORS_"`
	Auth            Auth          `envPrefix:"AUTH_"`
}

// Log contains logger parameters.
type Log struct {
	Level       string `env:"LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`
}

// Database contains database connection parameters.
type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	URL    string `env:"URL" envDefault:"flashcardi.db"`
}

// CORS lists the browser origins allowed to call the API.
type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// Auth contains bearer token parameters. An empty secret leaves the API open.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
	Issuer    string `env:"ISSUER" envDefault:"flashcardi"`
	Audience  string `env:"AUDIENCE" envDefault:"flashcardi-api"`
}

// Enabled reports whether write routes require a token.
func (a Auth) Enabled() bool {
	return a.JWTSecret != ""
}

// Location resolves IDTimezone for the deck date prefix.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.IDTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid ID_TIMEZONE %q: %w", c.IDTimezone, err)
	}
	return loc, nil
}

// LoadDotEnv loads a .env file outside of the hosted environment.
// A missing file is not an error.
func LoadDotEnv() error {
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") != "" {
		return nil
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
