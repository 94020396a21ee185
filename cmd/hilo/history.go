package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ShayCichocki/hilo/internal/state"
	"github.com/ShayCichocki/hilo/pkg/models"
)

var (
	historyLimit int
	historyYAML  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent rounds",
	Long: `List recorded rounds, newest first.

Examples:
  hilo history               # Last 20 rounds
  hilo history --limit 5
  hilo history --yaml        # Machine-readable output for scripting`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of rounds to list (0 for all)")
	historyCmd.Flags().BoolVar(&historyYAML, "yaml", false, "Emit rounds as YAML")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := state.OpenDefault()
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrate history database: %w", err)
	}

	rounds, err := db.ListRounds(historyLimit)
	if err != nil {
		return fmt.Errorf("list rounds: %w", err)
	}

	if historyYAML {
		return yaml.NewEncoder(os.Stdout).Encode(rounds)
	}

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	for _, r := range rounds {
		fmt.Println(formatRound(r))
	}
	return nil
}

// formatRound renders one history line.
func formatRound(r models.RoundRecord) string {
	status := "abandoned"
	if r.Outcome == models.OutcomeWon {
		status = fmt.Sprintf("won in %d attempts", r.Attempts)
	}
	return fmt.Sprintf("%s  [%d-%d]  %s  (%s)",
		r.StartedAt.Local().Format("2006-01-02 15:04"),
		r.RangeMin, r.RangeMax,
		status,
		r.Duration.Round(time.Second))
}
