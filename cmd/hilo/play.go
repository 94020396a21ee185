package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/hilo/internal/config"
	"github.com/ShayCichocki/hilo/internal/game"
	"github.com/ShayCichocki/hilo/internal/state"
	"github.com/ShayCichocki/hilo/internal/tui"
	"github.com/ShayCichocki/hilo/pkg/models"
)

var (
	playMin      int
	playMax      int
	playDebugLog string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round against stdin/stdout",
	Long: `Play a plain-stream round: a prompt is written for each guess and a
verdict for each valid one. Input that doesn't parse as a non-negative
integer is discarded and re-prompted without a verdict.

The round ends when the target is guessed. If stdin closes first, the
round is recorded as abandoned and the command exits with an error.

Examples:
  hilo play                  # Play with the configured range
  hilo play --min 1 --max 1000
  echo "50" | hilo play      # Works on piped input too
  hilo play --debug-log /tmp/hilo.log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlainRound(cmd)
	},
}

func init() {
	playCmd.Flags().IntVar(&playMin, "min", 0, "Override the lower bound of the target range")
	playCmd.Flags().IntVar(&playMax, "max", 0, "Override the upper bound of the target range")
	playCmd.Flags().StringVar(&playDebugLog, "debug-log", "", "Write loop transitions to this file")
}

// applyRangeOverrides applies flag overrides to the configured range.
// The Set booleans distinguish an explicitly passed value from a flag
// left at its default, so --min 0 is honored.
func applyRangeOverrides(cfg *config.Config, min, max int, minSet, maxSet bool) error {
	if minSet {
		cfg.Game.Min = min
	}
	if maxSet {
		cfg.Game.Max = max
	}
	return cfg.Validate()
}

// loadGameConfig loads the config and applies --min/--max overrides
// from the invoked command's flags.
func loadGameConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	minSet := cmd.Flags().Changed("min")
	maxSet := cmd.Flags().Changed("max")
	if err := applyRangeOverrides(cfg, playMin, playMax, minSet, maxSet); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runPlainRound runs the read-prompt loop against stdin/stdout.
func runPlainRound(cmd *cobra.Command) error {
	cfg, err := loadGameConfig(cmd)
	if err != nil {
		return err
	}

	round, err := game.NewRound(cfg.Game.Min, cfg.Game.Max)
	if err != nil {
		return fmt.Errorf("start round: %w", err)
	}

	logger, err := game.NewDebugLogger(playDebugLog)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	defer logger.Close()

	fmt.Printf("Guess the number between %d and %d.\n", cfg.Game.Min, cfg.Game.Max)

	startedAt := time.Now()
	result, runErr := game.NewLoop(round, cfg.Game.Prompt, logger).Run(os.Stdin, os.Stdout)

	recordResult(cfg, result, startedAt)

	if runErr != nil {
		if errors.Is(runErr, game.ErrInputClosed) {
			return fmt.Errorf("round abandoned: %w", runErr)
		}
		return runErr
	}
	return nil
}

// runTUIRound runs a round in the interactive TUI.
func runTUIRound(cmd *cobra.Command) error {
	cfg, err := loadGameConfig(cmd)
	if err != nil {
		return err
	}

	round, err := game.NewRound(cfg.Game.Min, cfg.Game.Max)
	if err != nil {
		return fmt.Errorf("start round: %w", err)
	}

	app := tui.NewApp(round, cfg.TUI.RefreshRate)
	startedAt := time.Now()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}

	result := app.Result()
	recordResult(cfg, result, startedAt)

	if result.Won {
		fmt.Printf("You win! Guessed in %d attempts.\n", result.Attempts)
	}
	return nil
}

// recordResult writes a finished round to the history database when
// history is enabled. Recording failures don't fail the round; the
// warning goes to stderr.
func recordResult(cfg *config.Config, result game.Result, startedAt time.Time) {
	if !cfg.History.Enabled {
		return
	}

	db, err := state.OpenDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not migrate history database: %v\n", err)
		return
	}

	outcome := models.OutcomeAbandoned
	if result.Won {
		outcome = models.OutcomeWon
	}

	record := &models.RoundRecord{
		ID:            uuid.New().String(),
		Target:        result.Target,
		Attempts:      result.Attempts,
		InvalidInputs: result.InvalidInputs,
		RangeMin:      cfg.Game.Min,
		RangeMax:      cfg.Game.Max,
		StartedAt:     startedAt,
		FinishedAt:    startedAt.Add(result.Duration),
		Duration:      result.Duration,
		Outcome:       outcome,
	}

	if err := db.RecordRound(record); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record round: %v\n", err)
	}
}
