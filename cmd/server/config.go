package main

import (
	"fmt"

	"github.com/phrazzld/keysfinder-api/internal/config"
)

// loadAppConfig loads the application configuration from defaults, an
// optional config file, environment variables and flag overrides.
func loadAppConfig(opts ...config.Option) (*config.Config, error) {
	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
