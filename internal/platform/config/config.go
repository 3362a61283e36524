// Copyright (c) 2026 Commdominium. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into strongly-typed
Go structs, providing early validation and default values.

Usage:

	cfg, err := config.LoadAPI()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: once loaded, configuration is read-only.
  - DI-Friendly: passed to core components (DB, Redis, HTTP client) via constructors.
  - Zero Hidden State: no global variables store config.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # API Configuration

// APIConfig holds all runtime configuration for the REST backend.
type APIConfig struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"3333"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Session Store (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// LoadAPI parses environment variables into an [APIConfig].
func LoadAPI() (*APIConfig, error) {
	cfg := &APIConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *APIConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *APIConfig) IsProduction() bool {
	return c.Environment == "production"
}

// # Web Configuration

// WebConfig holds all runtime configuration for the server-rendered frontend.
//
// The frontend owns no storage; its only upstream is the REST backend named
// by APIBaseURL.
type WebConfig struct {
	ServerPort  string `env:"WEB_PORT"     envDefault:"3000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// APIBaseURL is the origin of the REST backend, e.g. http://localhost:3333.
	APIBaseURL string `env:"API_BASE_URL,required"`
}

// LoadWeb parses environment variables into a [WebConfig].
func LoadWeb() (*WebConfig, error) {
	cfg := &WebConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the frontend is running in development mode.
func (c *WebConfig) IsDevelopment() bool {
	return c.Environment == "development"
}
