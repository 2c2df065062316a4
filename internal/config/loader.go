// Package config provides configuration management for the challenge tracker.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment variables
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the configuration (${VAR} syntax)
	expanded := os.ExpandEnv(string(data))

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	v.SetEnvPrefix("CHALLENGE_TRACKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional fields
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func LoadWithDefaults(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v.SetConfigType("yaml")

	v.SetEnvPrefix("CHALLENGE_TRACKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Reasonable defaults so a bare environment still starts
	v.SetDefault("app.name", "challenge-tracker")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("pricing.opportunity_weight", 0.3)
	v.SetDefault("pricing.win_rate_prior", 0.15)
	v.SetDefault("pricing.margin_factor", 0.95)
	v.SetDefault("pricing.sentinel_price", 999.0)
	v.SetDefault("pricing.market_margin", 0.05)
	v.SetDefault("value.min_edge_percent", 10.0)
	v.SetDefault("ingestion.spool_dir", "spool")
	v.SetDefault("ingestion.poll_schedule", "@every 30s")
	v.SetDefault("ingestion.venue_cache_ttl_minutes", 5)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")

	// Read and expand the configuration file if it exists
	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	// If file doesn't exist, continue with defaults and environment variables

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}
