// Package tui implements the interactive terminal UI for hilo using
// bubbletea. It renders a header with the round's range and attempt
// count, a scrolling verdict log, and a text input for guesses. The
// comparison logic lives in internal/game; the TUI only routes input
// lines to the round and styles the verdicts.
package tui
