package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the explicit application configuration. It is loaded once at
// startup and passed to the components that need it; there is no
// process-wide mutable state.
type Config struct {
	OWMAPIKey  string `envconfig:"OWM_API_KEY" required:"true"`
	OWMBaseURL string `envconfig:"OWM_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`

	City    string `envconfig:"WEATHER_CITY" default:"Helsinki"`
	Country string `envconfig:"WEATHER_COUNTRY" default:"FI"`

	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"10m"`
	HTTPTimeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	Port string `envconfig:"PORT" default:"8080"`
}

// Load reads configuration from the environment, with a best-effort .env
// file load first.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.RefreshInterval <= 0 {
		return nil, fmt.Errorf("REFRESH_INTERVAL must be positive")
	}
	return &cfg, nil
}
