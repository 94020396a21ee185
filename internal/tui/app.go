package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/hilo/internal/game"
)

// tickMsg drives the elapsed-time display in the header.
type tickMsg time.Time

// App is the bubbletea model for an interactive round.
type App struct {
	round       *game.Round
	inputField  *InputField
	width       int
	height      int
	refreshRate time.Duration

	// log holds rendered verdict lines, oldest first.
	log []string

	startedAt time.Time
	elapsed   time.Duration
	won       bool
	quitting  bool

	headerStyle   lipgloss.Style
	tooSmallStyle lipgloss.Style
	tooBigStyle   lipgloss.Style
	winStyle      lipgloss.Style
	mutedStyle    lipgloss.Style
}

// NewApp creates an App driving the given round. The refresh rate
// controls how often the elapsed-time display updates; zero or
// negative falls back to 100ms.
func NewApp(round *game.Round, refreshRate time.Duration) *App {
	if refreshRate <= 0 {
		refreshRate = 100 * time.Millisecond
	}
	return &App{
		round:       round,
		inputField:  NewInputField(),
		width:       80,
		height:      24,
		refreshRate: refreshRate,
		startedAt:   time.Now(),

		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true),

		tooSmallStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),

		tooBigStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),

		winStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),

		mutedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
	}
}

// Result summarizes the round once the program has exited.
func (a *App) Result() game.Result {
	return game.Result{
		Target:        a.round.Target(),
		Attempts:      a.round.Attempts(),
		InvalidInputs: a.round.InvalidInputs(),
		Duration:      time.Since(a.startedAt),
		Won:           a.round.Won(),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.inputField.Focus(), a.tick())
}

// tick schedules the next elapsed-time refresh.
func (a *App) tick() tea.Cmd {
	return tea.Tick(a.refreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			a.quitting = true
			return a, tea.Quit
		}

		if a.won {
			// Round is over; any other key exits.
			return a, tea.Quit
		}

		var cmd tea.Cmd
		a.inputField, cmd = a.inputField.Update(msg)
		return a, cmd

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.inputField.SetWidth(msg.Width)
		return a, nil

	case tickMsg:
		a.elapsed = time.Since(a.startedAt)
		if a.won || a.quitting {
			// The round is over; stop rescheduling.
			return a, nil
		}
		return a, a.tick()

	case GuessSubmittedMsg:
		verdict, err := a.round.Guess(msg.Raw)
		if err != nil {
			// Unparseable input is discarded without a verdict; the
			// cleared field is the only feedback.
			return a, nil
		}

		a.log = append(a.log, a.renderVerdict(msg.Raw, verdict))
		if verdict == game.VerdictWin {
			a.won = true
			a.inputField.Blur()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.inputField, cmd = a.inputField.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting && !a.won {
		return ""
	}

	var b strings.Builder

	min, max := a.round.Range()
	header := fmt.Sprintf("hilo: guess the number between %d and %d", min, max)
	b.WriteString(a.headerStyle.Render(header))
	b.WriteString("\n")
	status := fmt.Sprintf("attempts: %d   elapsed: %s", a.round.Attempts(), a.elapsed.Round(time.Second))
	b.WriteString(a.mutedStyle.Render(status))
	b.WriteString("\n\n")

	for _, line := range a.visibleLog() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.won {
		summary := fmt.Sprintf("Guessed in %d attempts. Press any key to exit.", a.round.Attempts())
		b.WriteString(a.winStyle.Render(summary))
		b.WriteString("\n")
	} else {
		b.WriteString(a.inputField.View())
		b.WriteString("\n")
		b.WriteString(a.mutedStyle.Render("enter: guess | ctrl+c: quit"))
	}

	return b.String()
}

// visibleLog returns the newest log lines that fit the terminal height,
// leaving room for the header and input field.
func (a *App) visibleLog() []string {
	reserved := 7
	available := a.height - reserved
	if available < 1 {
		available = 1
	}
	if len(a.log) <= available {
		return a.log
	}
	return a.log[len(a.log)-available:]
}

func (a *App) renderVerdict(raw string, verdict game.Verdict) string {
	guess := strings.TrimSpace(raw)
	switch verdict {
	case game.VerdictTooSmall:
		return fmt.Sprintf("%s  %s", a.mutedStyle.Render(guess), a.tooSmallStyle.Render(verdict.Message()))
	case game.VerdictTooBig:
		return fmt.Sprintf("%s  %s", a.mutedStyle.Render(guess), a.tooBigStyle.Render(verdict.Message()))
	case game.VerdictWin:
		return fmt.Sprintf("%s  %s", a.mutedStyle.Render(guess), a.winStyle.Render(verdict.Message()))
	default:
		return guess
	}
}
