// Package config holds the environment-driven application configuration.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config files for
// the available variables:
//   - http.go: HTTP server configuration
//   - upstream.go: upstream data service configuration
//   - database.go: local record store and cache configuration
//   - view.go: list view defaults
package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct composing the
// domain-specific sections.
type AppConfig struct {
	// IsDev controls development mode behavior (dev seeding, template
	// reloads). Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Upstream data service configuration. An empty base URL selects the
	// local record store instead.
	Upstream UpstreamConfig `envPrefix:"UPSTREAM_"`

	// Local record store configuration
	Postgres DBConfig `envPrefix:"DB_"`

	// Fetch cache configuration
	Cache CacheConfig

	// List view defaults
	View ViewConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.View.Sanitize()
	c.Upstream.Sanitize()
	c.detectDevMode()
}

// UseUpstream reports whether list data comes from the upstream REST
// layer rather than the local record store.
func (c *AppConfig) UseUpstream() bool {
	return strings.TrimSpace(c.Upstream.BaseURL) != ""
}

// detectDevMode checks the legacy APP_ENV variable as a fallback for DEV.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		appEnv := strings.ToLower(os.Getenv("APP_ENV"))
		c.IsDev = appEnv == "development" || appEnv == "dev"
	}
}
