// Package config provides configuration loading and validation for the
// diffloc CLI. Values come from an optional YAML file, DIFFLOC_*
// environment variables, and built-in defaults, in that order of
// precedence (file wins over defaults, env wins over file).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrInvalidTimeout  = errors.New("git timeout must not be negative")
	ErrEmptyGitBinary  = errors.New("git binary must not be empty")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Default configuration values.
const (
	defaultFormat   = "text"
	defaultColor    = true
	defaultBinary   = "git"
	defaultTimeout  = 0 * time.Second
	defaultLogLevel = "info"
)

// Config holds all configuration for the diffloc CLI.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Git    GitConfig    `mapstructure:"git"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	// Format is one of text, table, json.
	Format string `mapstructure:"format"`
	// Color enables ANSI styling. The NO_COLOR convention and the
	// --no-color flag both override it off.
	Color bool `mapstructure:"color"`
}

// GitConfig controls the diff subprocess.
type GitConfig struct {
	Binary  string        `mapstructure:"binary"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from an optional file path and the
// environment. A missing default config file is not an error; an
// explicitly given path must exist.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(".diffloc")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME")
	}

	viperCfg.SetEnvPrefix("DIFFLOC")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viperCfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viperCfg.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.format", defaultFormat)
	v.SetDefault("output.color", defaultColor)
	v.SetDefault("git.binary", defaultBinary)
	v.SetDefault("git.timeout", defaultTimeout)
	v.SetDefault("log.level", defaultLogLevel)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "table", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}

	if c.Git.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Git.Timeout)
	}

	if strings.TrimSpace(c.Git.Binary) == "" {
		return ErrEmptyGitBinary
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
}
