package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/hilo/internal/config"
	"github.com/ShayCichocki/hilo/internal/state"
)

var (
	cleanupOlderThan time.Duration
	cleanupDryRun    bool
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Purge old rounds from the history database",
	Long: `Delete recorded rounds older than the retention period.

The retention period comes from history.retention in the config
(default 2160h, i.e. 90 days) and can be overridden per invocation.

Examples:
  hilo cleanup                    # Purge rounds past the configured retention
  hilo cleanup --older-than 24h   # Purge rounds older than a day
  hilo cleanup --dry-run          # Show what would be purged`,
	RunE: runCleanup,
}

func init() {
	cleanupCmd.Flags().DurationVar(&cleanupOlderThan, "older-than", 0, "Override the retention period")
	cleanupCmd.Flags().BoolVar(&cleanupDryRun, "dry-run", false, "Show what would be purged without purging")
}

func runCleanup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	retention := cfg.History.Retention
	if cleanupOlderThan > 0 {
		retention = cleanupOlderThan
	}

	db, err := state.OpenDefault()
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrate history database: %w", err)
	}

	if cleanupDryRun {
		count, err := db.CountOldRounds(retention)
		if err != nil {
			return fmt.Errorf("count old rounds: %w", err)
		}
		fmt.Printf("Would purge %d round(s) older than %s\n", count, retention)
		return nil
	}

	count, err := db.PurgeOldRounds(retention)
	if err != nil {
		return fmt.Errorf("purge old rounds: %w", err)
	}

	if count == 0 {
		fmt.Printf("No rounds older than %s\n", retention)
		return nil
	}
	printStatus("✓", fmt.Sprintf("Purged %d round(s) older than %s", count, retention), color.FgGreen)
	return nil
}
