package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/thenoetrevino/eventreg/internal/models"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override (EVENTREG_DATABASE_PATH, ...)
const EnvPrefix = "EVENTREG"

// Default file locations, relative to the user's home directory
const (
	DefaultDatabasePath = "~/.eventreg/campus_events.db"
	DefaultLogFile      = "~/.eventreg/logs/eventreg.log"
)

// Config represents the application configuration
type Config struct {
	DatabasePath  string `yaml:"database_path" envconfig:"database_path"`
	LogFile       string `yaml:"log_file" envconfig:"log_file"`
	LogLevel      string `yaml:"log_level" envconfig:"log_level"`
	UpcomingLimit int    `yaml:"upcoming_limit" envconfig:"upcoming_limit"`
}

// Load loads config from the user's config directory.
// A missing file is not an error; defaults are used instead.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Still honour env overrides when we can't determine config path
		return LoadFrom("")
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit YAML file, then applies
// environment overrides and fills in defaults. An empty path skips the file.
func LoadFrom(configPath string) (*Config, error) {
	var config Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, &config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	if _, err := config.SlogLevel(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SlogLevel parses LogLevel (debug, info, warn, error)
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "eventreg", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "eventreg", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() error {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.UpcomingLimit <= 0 {
		c.UpcomingLimit = models.DefaultUpcomingLimit
	}
	if c.DatabasePath == "" {
		c.DatabasePath = DefaultDatabasePath
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}

	var err error
	if c.DatabasePath, err = expandHome(c.DatabasePath); err != nil {
		return err
	}
	c.LogFile, err = expandHome(c.LogFile)
	return err
}

// expandHome resolves a leading ~/ against the user's home directory
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
