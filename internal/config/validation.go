// Package config provides configuration management for the challenge tracker.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	// Register custom validation functions
	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	// Additional cross-field validations
	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	env := fl.Field().String()
	switch env {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	// A sentinel below any real price would flood value detection
	if cfg.Pricing.SentinelPrice < 100 {
		return fmt.Errorf("pricing sentinel_price must be at least 100, got %v", cfg.Pricing.SentinelPrice)
	}

	if cfg.Value.MinEdgePercent >= 100 {
		return fmt.Errorf("value min_edge_percent of %v would never trigger", cfg.Value.MinEdgePercent)
	}

	if cfg.IsProduction() && !cfg.Metrics.Enabled {
		return fmt.Errorf("metrics must be enabled in production")
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "url":
			errMsg += fmt.Sprintf("- Field '%s' must be a valid URL, got '%v'\n", field, value)
		case "min", "max":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
