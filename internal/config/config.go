// Package config provides configuration management for the challenge tracker.
package config

import (
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Pricing   PricingConfig   `mapstructure:"pricing" validate:"required"`
	Value     ValueConfig     `mapstructure:"value" validate:"required"`
	Ingestion IngestionConfig `mapstructure:"ingestion" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
	Venues    []VenueConfig   `mapstructure:"venues" validate:"dive"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// PricingConfig tunes the standings pricing model
type PricingConfig struct {
	OpportunityWeight float64 `mapstructure:"opportunity_weight" validate:"required,gt=0,lt=1"`
	WinRatePrior      float64 `mapstructure:"win_rate_prior" validate:"required,gt=0,lt=1"`
	MarginFactor      float64 `mapstructure:"margin_factor" validate:"required,gt=0,lte=1"`
	SentinelPrice     float64 `mapstructure:"sentinel_price" validate:"required,gt=0"`
	MarketMargin      float64 `mapstructure:"market_margin" validate:"gte=0,lt=1"`
}

// ValueConfig tunes value bet detection
type ValueConfig struct {
	MinEdgePercent float64 `mapstructure:"min_edge_percent" validate:"required,gt=0"`
}

// IngestionConfig represents spool ingestion configuration
type IngestionConfig struct {
	SpoolDir             string `mapstructure:"spool_dir" validate:"required"`
	PollSchedule         string `mapstructure:"poll_schedule" validate:"required"`
	VenueCacheTTLMinutes int    `mapstructure:"venue_cache_ttl_minutes" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// VenueConfig is one known venue for meeting name resolution
type VenueConfig struct {
	Name  string `mapstructure:"name" validate:"required"`
	State string `mapstructure:"state"`
	URL   string `mapstructure:"url" validate:"omitempty,url"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// VenueCacheTTL returns the venue resolution cache TTL as a duration
func (c *Config) VenueCacheTTL() time.Duration {
	return time.Duration(c.Ingestion.VenueCacheTTLMinutes) * time.Minute
}
