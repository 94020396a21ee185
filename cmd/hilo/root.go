package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootPlain bool

var rootCmd = &cobra.Command{
	Use:   "hilo",
	Short: "A number-guessing game for the terminal",
	Long: `hilo draws a secret number and you guess it.

Every guess gets a verdict: too small, too big, or a win. Finished
rounds are recorded locally so you can track your stats over time.

With no arguments, launches an interactive TUI round. Use 'hilo play'
or --plain for a plain-stream round that reads guesses from stdin,
which also works in pipes and scripts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if rootPlain || !stdinIsTerminal() {
			return runPlainRound(cmd)
		}
		return runTUIRound(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// stdinIsTerminal reports whether stdin is attached to a terminal.
// Piped input falls back to the plain loop so the TUI never fights
// a non-interactive stream.
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func init() {
	rootCmd.Flags().BoolVar(&rootPlain, "plain", false, "Run the plain stdin loop instead of the TUI")
	rootCmd.Flags().IntVar(&playMin, "min", 0, "Override the lower bound of the target range")
	rootCmd.Flags().IntVar(&playMax, "max", 0, "Override the upper bound of the target range")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
