// Package config loads the rubik CLI configuration from ~/.rubik/config.json.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/SeamusWaldron/rubik/internal/logging"
)

// DefaultColors labels faces Up, Left, Front, Right, Back, Down.
var DefaultColors = []string{"W", "O", "G", "R", "B", "Y"}

// Config is the CLI configuration.
type Config struct {
	DefaultSize int      `json:"default_size" mapstructure:"default_size"`
	Colors      []string `json:"colors" mapstructure:"colors"`
	DBPath      string   `json:"db_path" mapstructure:"db_path"`
	LogLevel    string   `json:"log_level" mapstructure:"log_level"`
	Workers     int      `json:"workers" mapstructure:"workers"`
}

// Dir returns the rubik data directory, ~/.rubik.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rubik"
	}
	return filepath.Join(home, ".rubik")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.json")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultSize: 3,
		Colors:      append([]string(nil), DefaultColors...),
		DBPath:      filepath.Join(Dir(), "rubik.db"),
		LogLevel:    "warn",
		Workers:     0,
	}
}

// Load reads the configuration at path, or DefaultPath if path is empty.
// Missing files yield the defaults. Values can be overridden from the
// environment as RUBIK_<KEY>, e.g. RUBIK_DEFAULT_SIZE.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("default_size", def.DefaultSize)
	v.SetDefault("colors", def.Colors)
	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("workers", def.Workers)

	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("RUBIK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to path as indented JSON.
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DefaultSize < 2 {
		return &ConfigError{Field: "default_size", Message: "must be at least 2"}
	}
	if len(c.Colors) != 6 {
		return &ConfigError{Field: "colors", Message: "must list 6 colors"}
	}
	seen := make(map[string]bool, len(c.Colors))
	for _, col := range c.Colors {
		if seen[col] {
			return &ConfigError{Field: "colors", Message: "duplicate color " + col}
		}
		seen[col] = true
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "workers", Message: "must not be negative"}
	}
	if c.DBPath == "" {
		return &ConfigError{Field: "db_path", Message: "must not be empty"}
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	return logging.LevelFromString(c.LogLevel)
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
