// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"fjacquet/finboard/internal/dateutils"
	"fjacquet/finboard/internal/models"
	"fjacquet/finboard/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "FINBOARD"

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig configures CSV import and export.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// StorageConfig selects the transaction repository.
type StorageConfig struct {
	Backend    string `mapstructure:"backend" yaml:"backend"`
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

// SeedConfig points at the dashboard seed file.
type SeedConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// DashboardConfig tunes the dashboard views.
type DashboardConfig struct {
	SpendingLimit string        `mapstructure:"spending_limit" yaml:"spending_limit"`
	LoadDelay     time.Duration `mapstructure:"load_delay" yaml:"load_delay"`
}

// DatesConfig sets the observer location calendar days are resolved in.
type DatesConfig struct {
	Timezone string `mapstructure:"timezone" yaml:"timezone"`
}

// Config represents the complete application configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	CSV       CSVConfig       `mapstructure:"csv" yaml:"csv"`
	Storage   StorageConfig   `mapstructure:"storage" yaml:"storage"`
	Seed      SeedConfig      `mapstructure:"seed" yaml:"seed"`
	Dashboard DashboardConfig `mapstructure:"dashboard" yaml:"dashboard"`
	Dates     DatesConfig     `mapstructure:"dates" yaml:"dates"`
	Currency  string          `mapstructure:"currency" yaml:"currency"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
// A non-empty configFile replaces the standard lookup and must exist.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.finboard")
		v.AddConfigPath(".finboard")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configFile != "":
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		case !errors.As(err, &notFound):
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration built from defaults alone.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Sprintf("default configuration is invalid: %v", err))
	}
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Storage defaults
	v.SetDefault("storage.backend", store.BackendMemory)
	v.SetDefault("storage.sqlite_path", ".finboard/finboard.db")

	// Seed defaults
	v.SetDefault("seed.file", "")

	// Dashboard defaults
	v.SetDefault("dashboard.spending_limit", "")
	v.SetDefault("dashboard.load_delay", "0s")

	// Dates defaults
	v.SetDefault("dates.timezone", "UTC")

	v.SetDefault("currency", models.DefaultCurrency)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// Validate storage
	switch config.Storage.Backend {
	case store.BackendMemory:
	case store.BackendSQLite:
		if strings.TrimSpace(config.Storage.SQLitePath) == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("invalid storage backend: %s (must be 'memory' or 'sqlite')", config.Storage.Backend)
	}

	// Validate dashboard
	if config.Dashboard.SpendingLimit != "" {
		if _, _, err := models.ParseAmount(config.Dashboard.SpendingLimit); err != nil {
			return fmt.Errorf("dashboard.spending_limit is not an amount: %s", config.Dashboard.SpendingLimit)
		}
	}
	if config.Dashboard.LoadDelay < 0 {
		return fmt.Errorf("dashboard.load_delay must not be negative, got: %s", config.Dashboard.LoadDelay)
	}

	// Validate timezone
	if _, err := dateutils.LoadLocation(config.Dates.Timezone); err != nil {
		return fmt.Errorf("invalid dates.timezone: %w", err)
	}

	if strings.TrimSpace(config.Currency) == "" {
		return fmt.Errorf("currency must not be empty")
	}

	return nil
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r := []rune(c.CSV.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}

// Location returns the observer location for calendar days.
func (c *Config) Location() (*time.Location, error) {
	return dateutils.LoadLocation(c.Dates.Timezone)
}

// SpendingLimit returns the configured limit and whether one is set.
func (c *Config) SpendingLimit() (decimal.Decimal, bool, error) {
	if c.Dashboard.SpendingLimit == "" {
		return decimal.Zero, false, nil
	}
	limit, _, err := models.ParseAmount(c.Dashboard.SpendingLimit)
	if err != nil {
		return decimal.Zero, false, err
	}
	return limit, true, nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
