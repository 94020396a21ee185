package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/hilo/internal/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify hilo configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/hilo/config.yaml
Project-specific overrides can be placed in .hilo.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		switch len(args) {
		case 0:
			displayAllConfig(cfg)
		case 1:
			displayConfigKey(cfg, args[0])
		default:
			setConfigKey(cfg, args[0], args[1])
		}
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter user config file",
	Long: `Write a config file with default values to the user config path.

Refuses to overwrite an existing config file unless --force is given.

Examples:
  hilo config init
  hilo config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(os.Stdout, configInitForce)
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

// runConfigInit writes a default config to the user config path.
func runConfigInit(out io.Writer, force bool) error {
	path := config.GetUserConfigPath()
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := config.Save(config.Default()); err != nil {
		return fmt.Errorf("write starter config: %w", err)
	}

	fmt.Fprintf(out, "Wrote starter config to %s\n", path)
	return nil
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	fmt.Printf("game.min: %d\n", cfg.Game.Min)
	fmt.Printf("game.max: %d\n", cfg.Game.Max)
	fmt.Printf("game.prompt: %q\n", cfg.Game.Prompt)
	fmt.Printf("history.enabled: %t\n", cfg.History.Enabled)
	fmt.Printf("history.retention: %s\n", cfg.History.Retention)
	fmt.Printf("tui.refresh_rate: %s\n", cfg.TUI.RefreshRate)

	fmt.Printf("\nUser config: %s\n", config.GetUserConfigPath())
	if project := config.GetProjectConfigPath(); project != "" {
		fmt.Printf("Project config: %s\n", project)
	}
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) {
	value, err := getConfigValue(cfg, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(value)
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cfg *config.Config, key, value string) {
	if err := setConfigValue(cfg, key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Set %s = %s\n", key, value)
}

// getConfigValue returns the string form of a config key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch key {
	case "game.min":
		return strconv.Itoa(cfg.Game.Min), nil
	case "game.max":
		return strconv.Itoa(cfg.Game.Max), nil
	case "game.prompt":
		return cfg.Game.Prompt, nil
	case "history.enabled":
		return strconv.FormatBool(cfg.History.Enabled), nil
	case "history.retention":
		return cfg.History.Retention.String(), nil
	case "tui.refresh_rate":
		return cfg.TUI.RefreshRate.String(), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// setConfigValue parses and assigns a config value by key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "game.min":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("game.min must be an integer: %w", err)
		}
		cfg.Game.Min = n
	case "game.max":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("game.max must be an integer: %w", err)
		}
		cfg.Game.Max = n
	case "game.prompt":
		cfg.Game.Prompt = value
	case "history.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("history.enabled must be a boolean: %w", err)
		}
		cfg.History.Enabled = b
	case "history.retention":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("history.retention must be a duration: %w", err)
		}
		cfg.History.Retention = d
	case "tui.refresh_rate":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("tui.refresh_rate must be a duration: %w", err)
		}
		cfg.TUI.RefreshRate = d
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
