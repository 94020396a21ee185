package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShayCichocki/hilo/internal/game"
)

func newTestApp(t *testing.T, target int) *App {
	t.Helper()
	round, err := game.NewRoundWithTarget(target, 1, 100)
	if err != nil {
		t.Fatalf("create round: %v", err)
	}
	return NewApp(round, 100*time.Millisecond)
}

func TestAppGuessProducesVerdictLine(t *testing.T) {
	app := newTestApp(t, 50)

	model, _ := app.Update(GuessSubmittedMsg{Raw: "10"})
	app = model.(*App)

	if len(app.log) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(app.log))
	}
	if !strings.Contains(app.log[0], game.VerdictTooSmall.Message()) {
		t.Errorf("log line missing verdict: %q", app.log[0])
	}
	if app.won {
		t.Error("round marked won after a low guess")
	}
}

func TestAppWinEndsRound(t *testing.T) {
	app := newTestApp(t, 50)

	model, _ := app.Update(GuessSubmittedMsg{Raw: "50"})
	app = model.(*App)

	if !app.won {
		t.Fatal("round not marked won after exact guess")
	}

	view := app.View()
	if !strings.Contains(view, "Guessed in 1 attempts") {
		t.Errorf("win summary missing from view: %q", view)
	}

	result := app.Result()
	if !result.Won || result.Attempts != 1 || result.Target != 50 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestAppDiscardsUnparseableGuess(t *testing.T) {
	app := newTestApp(t, 50)

	model, _ := app.Update(GuessSubmittedMsg{Raw: "not-a-number"})
	app = model.(*App)

	if len(app.log) != 0 {
		t.Errorf("malformed input produced a verdict line: %v", app.log)
	}
	if app.won {
		t.Error("malformed input advanced the round")
	}
	if app.Result().InvalidInputs != 1 {
		t.Errorf("expected 1 invalid input, got %d", app.Result().InvalidInputs)
	}
}

func TestAppCtrlCQuits(t *testing.T) {
	app := newTestApp(t, 50)

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	app = model.(*App)

	if !app.quitting {
		t.Error("ctrl+c did not mark app as quitting")
	}
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected tea.QuitMsg, got %T", msg)
	}
	if app.Result().Won {
		t.Error("aborted round reported as won")
	}
}

func TestAppViewShowsRangeAndAttempts(t *testing.T) {
	app := newTestApp(t, 50)
	app.Update(GuessSubmittedMsg{Raw: "10"})
	app.Update(GuessSubmittedMsg{Raw: "90"})

	view := app.View()
	if !strings.Contains(view, "between 1 and 100") {
		t.Errorf("view missing range header: %q", view)
	}
	if !strings.Contains(view, "attempts: 2") {
		t.Errorf("view missing attempt count: %q", view)
	}
}

func TestAppRefreshRateFallback(t *testing.T) {
	round, err := game.NewRoundWithTarget(50, 1, 100)
	if err != nil {
		t.Fatalf("create round: %v", err)
	}

	app := NewApp(round, 0)
	if app.refreshRate != 100*time.Millisecond {
		t.Errorf("expected 100ms fallback refresh rate, got %v", app.refreshRate)
	}

	app = NewApp(round, 250*time.Millisecond)
	if app.refreshRate != 250*time.Millisecond {
		t.Errorf("expected configured refresh rate, got %v", app.refreshRate)
	}
}

func TestAppTickReschedulesWhileActive(t *testing.T) {
	app := newTestApp(t, 50)

	// An active round keeps the tick loop running.
	model, cmd := app.Update(tickMsg(time.Now()))
	app = model.(*App)
	if cmd == nil {
		t.Fatal("tick on active round did not reschedule")
	}

	// A won round stops it.
	model, _ = app.Update(GuessSubmittedMsg{Raw: "50"})
	app = model.(*App)
	if _, cmd = app.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("tick rescheduled after the round was won")
	}
}

func TestAppViewShowsElapsedTime(t *testing.T) {
	app := newTestApp(t, 50)

	app.Update(tickMsg(time.Now()))
	if !strings.Contains(app.View(), "elapsed:") {
		t.Errorf("view missing elapsed time: %q", app.View())
	}
}

func TestAppLogScrollsToFitHeight(t *testing.T) {
	app := newTestApp(t, 100)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 10})

	for _, g := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		app.Update(GuessSubmittedMsg{Raw: g})
	}

	visible := app.visibleLog()
	if len(visible) != 3 {
		t.Errorf("expected 3 visible lines at height 10, got %d", len(visible))
	}
	// The newest guesses must be the ones kept.
	if !strings.Contains(visible[len(visible)-1], "8") {
		t.Errorf("newest guess not visible: %v", visible)
	}
}
