package infra

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains every externally injected setting. Secrets are never
// hard-coded; they arrive via the environment (or a .env file in dev).
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	BaseURL       string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Env           string `env:"ENV" envDefault:"dev"`
	AutoMigrate   bool   `env:"AUTO_MIGRATE" envDefault:"false"`
	SessionSecret string `env:"SESSION_SECRET"`

	Database Database    `envPrefix:"DB_"`
	Google   OAuthClient `envPrefix:"GOOGLE_"`
	GitHub   OAuthClient `envPrefix:"GITHUB_"`
	Facebook OAuthClient `envPrefix:"FACEBOOK_"`
}

// Database contains relational store connection parameters. An empty Name
// selects the sqlite in-memory fallback.
type Database struct {
	Host     string `env:"HOST"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"`
	Port     string `env:"PORT"`
}

// OAuthClient holds one provider's client credential pair.
type OAuthClient struct {
	ID     string `env:"ID"`
	Secret string `env:"SECRET"`
}

// LoadConfig parses configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET must be set")
	}
	return &cfg, nil
}
