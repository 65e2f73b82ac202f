package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag parsed by ParseEnv.
const EnvPrefix = "SIMKIT_"

// ParseEnv loads configuration from SIMKIT_-prefixed environment variables.
// A field tagged `env:"COUNT"` is read from SIMKIT_COUNT.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
