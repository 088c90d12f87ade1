package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const EnvPrefix = "HRADMIN_"

// loadEnv overlays variables that are set. Unset ones keep earlier values.
func loadEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
