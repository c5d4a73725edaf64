package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime knob of the user directory example.
// Values come from environment variables with sensible defaults,
// so the demo runs without any setup.
type Config struct {
	// EndpointURL is the remote user endpoint to fetch from.
	EndpointURL string `env:"USERDIR_ENDPOINT_URL" envDefault:"https://jsonplaceholder.typicode.com/users"`

	// RequestTimeout bounds a single fetch request.
	RequestTimeout time.Duration `env:"USERDIR_REQUEST_TIMEOUT" envDefault:"10s"`

	// UserAgent is sent with every fetch request.
	UserAgent string `env:"USERDIR_USER_AGENT" envDefault:"userdirectory-demo/1.0"`

	// PostgresDSN enables the Postgres response cache when non-empty.
	PostgresDSN string `env:"USERDIR_POSTGRES_DSN"`

	// BoltPath enables the Bolt response cache when non-empty.
	// Ignored when PostgresDSN is set.
	BoltPath string `env:"USERDIR_BOLT_PATH"`

	// ObservabilityEnabled wires the OpenTelemetry adapters into the fetcher
	// and the view handler.
	ObservabilityEnabled bool `env:"USERDIR_OBSERVABILITY_ENABLED" envDefault:"false"`
}

// ParseEnv reads the configuration from the process environment.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
