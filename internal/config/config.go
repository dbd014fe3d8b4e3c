// Package config loads the application configuration from environment
// variables, with a .env file honored by the CLI bootstrap for local use.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// ExpensesDBPath is the SQLite database file location.
	// Environment variable: EXPENSES_DB_PATH
	ExpensesDBPath string `koanf:"EXPENSES_DB_PATH"`

	// LogLevel is one of debug, info, warn, error.
	// Environment variable: LOG_LEVEL
	LogLevel string `koanf:"LOG_LEVEL"`

	// LogFormat is "text" or "json".
	// Environment variable: LOG_FORMAT
	LogFormat string `koanf:"LOG_FORMAT"`

	// DefaultCategory labels records added without a category.
	// Environment variable: DEFAULT_CATEGORY
	DefaultCategory string `koanf:"DEFAULT_CATEGORY"`
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		ExpensesDBPath:  "./data/expenses.db",
		LogLevel:        "info",
		LogFormat:       "text",
		DefaultCategory: "uncategorized",
	}
}

// Load reads configuration from the environment on top of the defaults.
func Load() (*Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errors []string

	if c.ExpensesDBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if strings.TrimSpace(c.DefaultCategory) == "" {
		errors = append(errors, "default category cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}
