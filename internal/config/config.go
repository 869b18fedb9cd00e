// Package config resolves adminctl settings from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds everything adminctl reads from the environment. The only
// required knob in practice is GRABLY_API_URL; everything else has a
// workable default.
type Config struct {
	// APIBaseURL selects the backend; the default points at a local
	// admin service.
	APIBaseURL string `env:"GRABLY_API_URL" envDefault:"http://localhost:5004"`
	// AuthFile overrides where the session is persisted.
	// Empty means ~/.grably/auth.json.
	AuthFile string `env:"GRABLY_AUTH_FILE"`
	// LogFile overrides where debug logs go. Empty means ~/.grably/adminctl.log.
	// The terminal itself belongs to the UI, so logs never go to stderr.
	LogFile string `env:"GRABLY_LOG_FILE"`
	// HTTPTimeout caps every API request.
	HTTPTimeout time.Duration `env:"GRABLY_HTTP_TIMEOUT" envDefault:"30s"`
	// Debug enables debug-level request logging.
	Debug bool `env:"GRABLY_DEBUG" envDefault:"false"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
