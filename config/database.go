package config

import "time"

// DBConfig contains PostgreSQL configuration for the local record store.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"modelgrid"`
	Password string `env:"PASSWORD" envDefault:"modelgrid"`
	Name     string `env:"NAME"     envDefault:"modelgrid"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// CacheConfig contains the Redis-backed fetch cache configuration.
// An empty address disables caching entirely.
type CacheConfig struct {
	RedisAddr     string `env:"CACHE_REDIS_ADDR"     envDefault:""`
	RedisPassword string `env:"CACHE_REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"CACHE_REDIS_DB"       envDefault:"0"`

	// SchemaTTL is the TTL for cached schema documents. Schemas change
	// rarely, so this can be generous.
	SchemaTTL time.Duration `env:"CACHE_SCHEMA_TTL" envDefault:"10m"`

	// PageTTL is the TTL for cached record pages.
	PageTTL time.Duration `env:"CACHE_PAGE_TTL" envDefault:"30s"`
}

// Enabled reports whether a cache backend is configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}
