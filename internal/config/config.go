// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/albapepper/auf-analytics/internal/league"
)

// --------------------------------------------------------------------------
// Store drivers
// --------------------------------------------------------------------------

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Store
	StoreDriver    string        `envconfig:"STORE_DRIVER" default:"sqlite"`
	DatabaseURL    string        `envconfig:"DATABASE_URL"`
	SQLitePath     string        `envconfig:"SQLITE_PATH" default:"auf.db"`
	DBPoolMinConns int           `envconfig:"DB_POOL_MIN_CONNS" default:"2"`
	DBPoolMaxConns int           `envconfig:"DB_POOL_MAX_CONNS" default:"10"`
	DBPoolMaxLife  time.Duration `envconfig:"DB_POOL_MAX_LIFE" default:"30m"`

	// API server
	APIHost     string `envconfig:"API_HOST" default:"0.0.0.0"`
	APIPort     int    `envconfig:"API_PORT" default:"8000"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"` // development, staging, production
	Debug       bool   `envconfig:"DEBUG" default:"false"`

	// CORS
	CORSAllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`

	// Rate limiting
	RateLimitEnabled  bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"100"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"60s"`

	// League defaults
	DefaultSeason int    `envconfig:"DEFAULT_SEASON" default:"2024"`
	DefaultStage  string `envconfig:"DEFAULT_STAGE" default:"apertura"`

	// Seeding
	AllowReseed    bool          `envconfig:"ALLOW_RESEED" default:"false"`
	SeedDataDir    string        `envconfig:"SEED_DATA_DIR"`
	SeedSimulate   bool          `envconfig:"SEED_SIMULATE" default:"true"` // generate DEFAULT_SEASON when no CSV data exists
	ReloadSchedule string        `envconfig:"RELOAD_SCHEDULE"`              // crontab, e.g. "0 6 * * *"
	ReloadInterval time.Duration `envconfig:"RELOAD_INTERVAL"`
	Timezone       string        `envconfig:"TIMEZONE" default:"America/Montevideo"`

	// Free-query rules
	QueryRulesFile string `envconfig:"QUERY_RULES_FILE"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must be set when STORE_DRIVER=sqlite")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want %s or %s)", c.StoreDriver, DriverSQLite, DriverPostgres)
	}
	if !league.IsKnownStage(c.DefaultStage) {
		return fmt.Errorf("unknown DEFAULT_STAGE %q", c.DefaultStage)
	}
	if c.DBPoolMaxConns < c.DBPoolMinConns {
		return fmt.Errorf("DB_POOL_MAX_CONNS (%d) must be >= DB_POOL_MIN_CONNS (%d)", c.DBPoolMaxConns, c.DBPoolMinConns)
	}
	return nil
}

// Location resolves Timezone, falling back to UTC when the zone database
// does not know it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}
