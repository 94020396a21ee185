// Package config handles configuration loading and management for hilo.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for hilo.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	History HistoryConfig `mapstructure:"history"`
	TUI     TUIConfig     `mapstructure:"tui"`
}

// GameConfig holds the guessing-range and prompt settings.
type GameConfig struct {
	// Min is the inclusive lower bound of the target range.
	Min int `mapstructure:"min"`
	// Max is the inclusive upper bound of the target range.
	Max int `mapstructure:"max"`
	// Prompt is the text written before each guess is read.
	Prompt string `mapstructure:"prompt"`
}

// HistoryConfig holds round-history settings.
type HistoryConfig struct {
	// Enabled controls whether finished rounds are recorded.
	Enabled bool `mapstructure:"enabled"`
	// Retention is how long recorded rounds are kept before cleanup.
	Retention time.Duration `mapstructure:"retention"`
}

// TUIConfig holds TUI display settings.
type TUIConfig struct {
	RefreshRate time.Duration `mapstructure:"refresh_rate"`
}

// Validate checks that the configured range can produce a target.
func (c *Config) Validate() error {
	if c.Game.Min < 0 {
		return fmt.Errorf("game.min must be non-negative, got %d", c.Game.Min)
	}
	if c.Game.Min >= c.Game.Max {
		return fmt.Errorf("game.min %d must be below game.max %d", c.Game.Min, c.Game.Max)
	}
	return nil
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (HILO_*)
// 2. Project config (.hilo.yaml in current directory or parent)
// 3. User config (~/.config/hilo/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Load user config from XDG path
	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	// Load project config if present
	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			// Merge project config (takes precedence)
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	// Environment variable overrides
	v.AutomaticEnv()
	v.SetEnvPrefix("HILO")

	v.BindEnv("game.min", "HILO_GAME_MIN")
	v.BindEnv("game.max", "HILO_GAME_MAX")
	v.BindEnv("history.enabled", "HILO_HISTORY_ENABLED")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(userConfigDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configPath)

	v.Set("game.min", cfg.Game.Min)
	v.Set("game.max", cfg.Game.Max)
	v.Set("game.prompt", cfg.Game.Prompt)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.retention", cfg.History.Retention.String())
	v.Set("tui.refresh_rate", cfg.TUI.RefreshRate.String())

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.min", 1)
	v.SetDefault("game.max", 100)
	v.SetDefault("game.prompt", "Your guess: ")

	// History defaults: keep 90 days of rounds
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.retention", "2160h")

	// TUI defaults
	v.SetDefault("tui.refresh_rate", "100ms")
}

// getUserConfigDir returns the XDG config directory for hilo.
func getUserConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "hilo")
	}

	// Fall back to ~/.config/hilo
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "hilo")
	}
	return filepath.Join(home, ".config", "hilo")
}

// findProjectConfig searches for .hilo.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".hilo.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Min:    1,
			Max:    100,
			Prompt: "Your guess: ",
		},
		History: HistoryConfig{
			Enabled:   true,
			Retention: 2160 * time.Hour,
		},
		TUI: TUIConfig{
			RefreshRate: 100 * time.Millisecond,
		},
	}
}
