package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrInputClosed is returned by Run when the input stream ends before a
// winning guess. It is the only fatal condition in the loop.
var ErrInputClosed = errors.New("input stream closed before a winning guess")

// Result summarizes a completed round.
type Result struct {
	Target        int
	Attempts      int
	InvalidInputs int
	Duration      time.Duration
	Won           bool
}

// Loop drives a Round against a line-oriented input stream, prompting on
// each iteration and printing a verdict for each valid guess.
type Loop struct {
	round  *Round
	prompt string
	logger *DebugLogger
}

// NewLoop creates a loop for the given round. An empty prompt falls back
// to a default. A nil logger disables debug logging.
func NewLoop(round *Round, prompt string, logger *DebugLogger) *Loop {
	if prompt == "" {
		prompt = "Your guess: "
	}
	return &Loop{
		round:  round,
		prompt: prompt,
		logger: logger,
	}
}

// Run reads guesses from in until the round is won or in is exhausted.
// Unparseable lines are discarded without a verdict and re-prompted.
// A read failure or end-of-stream before a win returns ErrInputClosed,
// wrapped with the underlying error when the scanner reports one. The
// partial Result is returned in both cases so the caller can record
// abandoned rounds.
func (l *Loop) Run(in io.Reader, out io.Writer) (Result, error) {
	scanner := bufio.NewScanner(in)
	start := time.Now()
	min, max := l.round.Range()
	l.logger.Log("round started: range [%d, %d]", min, max)

	for {
		fmt.Fprint(out, l.prompt)

		if !scanner.Scan() {
			result := l.result(start)
			if err := scanner.Err(); err != nil {
				l.logger.Log("read failed: %v", err)
				return result, fmt.Errorf("%w: %v", ErrInputClosed, err)
			}
			l.logger.Log("input exhausted after %d attempts", result.Attempts)
			return result, ErrInputClosed
		}

		verdict, err := l.round.Guess(scanner.Text())
		if err != nil {
			// Not a number: discard silently and re-prompt.
			l.logger.Log("discarded unparseable input")
			continue
		}

		l.logger.Log("attempt %d: %s", l.round.Attempts(), verdict)
		switch verdict {
		case VerdictWin:
			fmt.Fprintf(out, "%s Guessed in %d attempts.\n", verdict.Message(), l.round.Attempts())
			return l.result(start), nil
		default:
			fmt.Fprintln(out, verdict.Message())
		}
	}
}

func (l *Loop) result(start time.Time) Result {
	return Result{
		Target:        l.round.Target(),
		Attempts:      l.round.Attempts(),
		InvalidInputs: l.round.InvalidInputs(),
		Duration:      time.Since(start),
		Won:           l.round.Won(),
	}
}
