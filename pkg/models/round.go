package models

import "time"

// Outcome represents how a round ended.
type Outcome string

const (
	// OutcomeWon means the player guessed the target exactly.
	OutcomeWon Outcome = "won"
	// OutcomeAbandoned means input ended before the target was guessed.
	OutcomeAbandoned Outcome = "abandoned"
)

// Valid returns true if the outcome is a known value.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeWon, OutcomeAbandoned:
		return true
	default:
		return false
	}
}

// RoundRecord is a finished round as stored in the history database.
type RoundRecord struct {
	ID            string        `json:"id" yaml:"id"`
	Target        int           `json:"target" yaml:"target"`
	Attempts      int           `json:"attempts" yaml:"attempts"`
	InvalidInputs int           `json:"invalid_inputs" yaml:"invalid_inputs"`
	RangeMin      int           `json:"range_min" yaml:"range_min"`
	RangeMax      int           `json:"range_max" yaml:"range_max"`
	StartedAt     time.Time     `json:"started_at" yaml:"started_at"`
	FinishedAt    time.Time     `json:"finished_at" yaml:"finished_at"`
	Duration      time.Duration `json:"duration" yaml:"duration"`
	Outcome       Outcome       `json:"outcome" yaml:"outcome"`
}
