package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Timezone string         `mapstructure:"timezone"`
	Output   OutputConfig   `mapstructure:"output"`
	Parse    ParseConfig    `mapstructure:"parse"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
}

// OutputConfig controls how Jalali dates are rendered
type OutputConfig struct {
	Layout string `mapstructure:"layout"` // Jalali output pattern (e.g. "yyyy/MM/dd HH:mm")
}

// ParseConfig controls how textual Gregorian input is parsed
type ParseConfig struct {
	Layout string `mapstructure:"layout"` // Go reference layout (e.g. "2006-01-02 15:04:05")
}

// HolidaysConfig represents the holiday lookup configuration
type HolidaysConfig struct {
	APIURL   string `mapstructure:"api_url"`
	CacheDir string `mapstructure:"cache_dir"`
	CacheTTL string `mapstructure:"cache_ttl"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing config file is not an error
// unless an explicit path was given; every field has a working default.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.persian-datetool")
		v.AddConfigPath("/etc/persian-datetool")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && errors.As(err, &notFound) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("timezone %q is not a valid IANA zone: %w", c.Timezone, err)
		}
	}

	if c.Holidays.CacheTTL != "" {
		if _, err := time.ParseDuration(c.Holidays.CacheTTL); err != nil {
			return fmt.Errorf("holidays.cache_ttl is not a valid duration: %w", err)
		}
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug/info/warn/error, got %q", c.Log.Level)
	}

	return nil
}

// Location returns the configured timezone, defaulting to Asia/Tehran.
func (c *Config) Location() (*time.Location, error) {
	name := c.Timezone
	if name == "" {
		name = "Asia/Tehran"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}

// GetLayout returns the output pattern, defaulting to a numeric date-time.
func (c *OutputConfig) GetLayout() string {
	if c.Layout == "" {
		return "yyyy/MM/dd HH:mm"
	}
	return c.Layout
}

// GetLayout returns the parse layout for textual input.
func (c *ParseConfig) GetLayout() string {
	if c.Layout == "" {
		return "2006-01-02 15:04:05"
	}
	return c.Layout
}

// GetCacheTTL returns the holiday cache TTL duration
func (c *HolidaysConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// GetCacheDir returns the holiday cache directory, defaulting to the user
// cache directory.
func (c *HolidaysConfig) GetCacheDir() string {
	if c.CacheDir != "" {
		return os.ExpandEnv(c.CacheDir)
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return ".persian-datetool-cache"
	}
	return filepath.Join(base, "persian-datetool")
}
