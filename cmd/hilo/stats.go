package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/hilo/internal/state"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics for recorded rounds",
	Long: `Show win/abandon counts, best and average attempts for won rounds,
and the current winning streak, computed from the local history database.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := state.OpenDefault()
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrate history database: %w", err)
	}

	stats, err := db.Stats()
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}

	if stats.TotalRounds == 0 {
		fmt.Println("No rounds recorded yet. Play one with 'hilo play'.")
		return nil
	}

	fmt.Printf("Rounds played:   %d\n", stats.TotalRounds)
	printStatus("✓", fmt.Sprintf("Won:             %d", stats.Wins), color.FgGreen)
	printStatus("✗", fmt.Sprintf("Abandoned:       %d", stats.Abandoned), color.FgRed)
	if stats.Wins > 0 {
		fmt.Printf("Best round:      %d attempts\n", stats.BestAttempts)
		fmt.Printf("Average:         %.1f attempts\n", stats.AvgAttempts)
	}
	if stats.CurrentStreak > 1 {
		printStatus("★", fmt.Sprintf("Current streak:  %d wins", stats.CurrentStreak), color.FgYellow)
	}

	return nil
}

// printStatus prints a colored status glyph followed by a message.
func printStatus(glyph, message string, attr color.Attribute) {
	c := color.New(attr)
	c.Printf("%s ", glyph)
	fmt.Println(message)
}
