// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/carllingstrom/AI-Delning-sub000/internal/schemas"
)

// EnvPrefix is the prefix for environment variables, e.g. VALUATION_PORT.
const EnvPrefix = "VALUATION"

// Defaults
const (
	DefaultPort         = 8080
	DefaultBatchWorkers = 4
)

// Config holds settings shared by the CLI commands and the HTTP server.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Port         int    `mapstructure:"port" json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	DatabaseURL  string `mapstructure:"database_url" json:"database_url,omitempty"` // PostgreSQL connection URL
	SQLitePath   string `mapstructure:"sqlite_path" json:"sqlite_path,omitempty"`   // Local SQLite database file
	BatchWorkers int    `mapstructure:"batch_workers" json:"batch_workers,omitempty" validate:"omitempty,min=1,max=64"`
	SchemaPath   string `mapstructure:"schema_path" json:"schema_path,omitempty"` // Override for the embedded project schema

	// LegacyMonthlyAnnualization reproduces historical figures that counted
	// annualized per_month effects twelve times too often.
	LegacyMonthlyAnnualization bool `mapstructure:"legacy_monthly_annualization" json:"legacy_monthly_annualization,omitempty"`
}

// Load reads configuration from an optional file and the environment.
// path may be empty; a missing default config file is not an error, but an
// explicitly named file that cannot be read is.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", DefaultPort)
	v.SetDefault("batch_workers", DefaultBatchWorkers)
	v.SetDefault("legacy_monthly_annualization", false)
	v.SetDefault("database_url", "")
	v.SetDefault("sqlite_path", "")
	v.SetDefault("schema_path", "")

	// Unprefixed DATABASE_URL and SQLITE_PATH are fallbacks for the prefixed names.
	_ = v.BindEnv("database_url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("sqlite_path", EnvPrefix+"_SQLITE_PATH", "SQLITE_PATH")

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("valuation")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here since CLI flags may still supply them.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("config error: '%s' failed on '%s'", fieldName(verrs[0].Field()), verrs[0].Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.SchemaPath != "" {
		if _, err := schemas.ResolveSchemaPath(c.SchemaPath); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SQLitePath == "" {
		result.SQLitePath = defaults.SQLitePath
	}
	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}

	if result.Port == 0 {
		result.Port = defaults.Port
		if result.Port == 0 {
			result.Port = DefaultPort
		}
	}
	if result.BatchWorkers == 0 {
		result.BatchWorkers = defaults.BatchWorkers
		if result.BatchWorkers == 0 {
			result.BatchWorkers = DefaultBatchWorkers
		}
	}

	// Bool fields: cannot distinguish unset from false, so a true on either side wins.
	result.LegacyMonthlyAnnualization = result.LegacyMonthlyAnnualization || defaults.LegacyMonthlyAnnualization

	return result
}

func fieldName(structField string) string {
	switch structField {
	case "Port":
		return "port"
	case "BatchWorkers":
		return "batch_workers"
	default:
		return strings.ToLower(structField)
	}
}
