// Package game implements the guessing-game engine: a round with a fixed
// random target, guess parsing and the three-way verdict, and the plain
// read-prompt loop that drives a round against an input/output stream pair.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// ErrNotANumber is returned by Guess when the input does not parse as a
// non-negative integer. It is recoverable: callers re-prompt and move on.
var ErrNotANumber = errors.New("input is not a non-negative integer")

// Round is a single game round. The target is drawn once at construction
// and never changes for the lifetime of the round.
type Round struct {
	target        int
	min, max      int
	attempts      int
	invalidInputs int
	won           bool
	startedAt     time.Time
}

// NewRound creates a round with a target drawn uniformly from [min, max].
func NewRound(min, max int) (*Round, error) {
	if min < 0 {
		return nil, fmt.Errorf("range minimum must be non-negative, got %d", min)
	}
	if min >= max {
		return nil, fmt.Errorf("range minimum %d must be below maximum %d", min, max)
	}
	target := min + rand.Intn(max-min+1)
	return newRound(target, min, max), nil
}

// NewRoundWithTarget creates a round with a fixed target. Used by tests
// and replays; the target must lie within [min, max].
func NewRoundWithTarget(target, min, max int) (*Round, error) {
	if target < min || target > max {
		return nil, fmt.Errorf("target %d outside range [%d, %d]", target, min, max)
	}
	return newRound(target, min, max), nil
}

func newRound(target, min, max int) *Round {
	return &Round{
		target:    target,
		min:       min,
		max:       max,
		startedAt: time.Now(),
	}
}

// Guess trims the raw input, parses it as a non-negative integer, and
// compares it to the target. Parse failures return ErrNotANumber with no
// verdict; the round does not advance. A winning guess marks the round won.
func (r *Round) Guess(raw string) (Verdict, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		r.invalidInputs++
		return "", ErrNotANumber
	}

	r.attempts++
	switch {
	case n < r.target:
		return VerdictTooSmall, nil
	case n > r.target:
		return VerdictTooBig, nil
	default:
		r.won = true
		return VerdictWin, nil
	}
}

// Target returns the target value for the round.
func (r *Round) Target() int {
	return r.target
}

// Range returns the inclusive bounds the target was drawn from.
func (r *Round) Range() (min, max int) {
	return r.min, r.max
}

// Attempts returns the number of valid guesses made so far.
func (r *Round) Attempts() int {
	return r.attempts
}

// InvalidInputs returns the number of inputs discarded as unparseable.
func (r *Round) InvalidInputs() int {
	return r.invalidInputs
}

// Won returns true once a guess has matched the target.
func (r *Round) Won() bool {
	return r.won
}

// StartedAt returns when the round was created.
func (r *Round) StartedAt() time.Time {
	return r.startedAt
}
