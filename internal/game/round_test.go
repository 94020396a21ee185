package game

import (
	"errors"
	"testing"
)

func TestNewRoundValidation(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		max     int
		wantErr bool
	}{
		{"default range", 1, 100, false},
		{"single step range", 5, 6, false},
		{"negative minimum", -1, 100, true},
		{"inverted range", 100, 1, true},
		{"empty range", 50, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRound(tt.min, tt.max)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewRound(%d, %d) expected error, got nil", tt.min, tt.max)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRound(%d, %d) unexpected error: %v", tt.min, tt.max, err)
			}
			if r.Target() < tt.min || r.Target() > tt.max {
				t.Errorf("target %d outside range [%d, %d]", r.Target(), tt.min, tt.max)
			}
		})
	}
}

func TestNewRoundWithTargetValidation(t *testing.T) {
	if _, err := NewRoundWithTarget(0, 1, 100); err == nil {
		t.Error("expected error for target below range")
	}
	if _, err := NewRoundWithTarget(101, 1, 100); err == nil {
		t.Error("expected error for target above range")
	}
	r, err := NewRoundWithTarget(50, 1, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Target() != 50 {
		t.Errorf("expected target 50, got %d", r.Target())
	}
}

func TestGuessThreeWayComparison(t *testing.T) {
	tests := []struct {
		input string
		want  Verdict
	}{
		{"10", VerdictTooSmall},
		{"49", VerdictTooSmall},
		{"90", VerdictTooBig},
		{"51", VerdictTooBig},
		{"50", VerdictWin},
		{"  50  ", VerdictWin},
		{"\t49\n", VerdictTooSmall},
	}

	for _, tt := range tests {
		r, err := NewRoundWithTarget(50, 1, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := r.Guess(tt.input)
		if err != nil {
			t.Errorf("Guess(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Guess(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestGuessRejectsMalformedInput(t *testing.T) {
	r, err := NewRoundWithTarget(50, 1, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, input := range []string{"abc", "", "  ", "12.5", "-3", "1e3", "fifty"} {
		verdict, err := r.Guess(input)
		if !errors.Is(err, ErrNotANumber) {
			t.Errorf("Guess(%q) error = %v, want ErrNotANumber", input, err)
		}
		if verdict != "" {
			t.Errorf("Guess(%q) emitted verdict %s for malformed input", input, verdict)
		}
	}

	if r.Attempts() != 0 {
		t.Errorf("malformed input counted as attempts: %d", r.Attempts())
	}
	if r.InvalidInputs() != 7 {
		t.Errorf("expected 7 invalid inputs, got %d", r.InvalidInputs())
	}
	if r.Won() {
		t.Error("malformed input advanced the round to won")
	}
}

func TestTargetInvariantAcrossGuesses(t *testing.T) {
	r, err := NewRoundWithTarget(42, 1, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Repeated identical guesses must yield identical verdicts.
	for i := 0; i < 5; i++ {
		verdict, err := r.Guess("30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if verdict != VerdictTooSmall {
			t.Fatalf("guess %d: verdict changed to %s", i, verdict)
		}
		if r.Target() != 42 {
			t.Fatalf("guess %d: target drifted to %d", i, r.Target())
		}
	}
	if r.Attempts() != 5 {
		t.Errorf("expected 5 attempts, got %d", r.Attempts())
	}
}

func TestWinMarksRound(t *testing.T) {
	r, err := NewRoundWithTarget(1, 1, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	verdict, err := r.Guess("1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != VerdictWin {
		t.Errorf("expected win on first guess, got %s", verdict)
	}
	if !r.Won() {
		t.Error("round not marked won after winning guess")
	}
	if r.Attempts() != 1 {
		t.Errorf("expected 1 attempt, got %d", r.Attempts())
	}
}
