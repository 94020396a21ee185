package main

import (
	"strings"
	"testing"
	"time"

	"github.com/ShayCichocki/hilo/pkg/models"
)

func TestFormatRound(t *testing.T) {
	started := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)

	won := models.RoundRecord{
		RangeMin:  1,
		RangeMax:  100,
		Attempts:  6,
		StartedAt: started,
		Duration:  42 * time.Second,
		Outcome:   models.OutcomeWon,
	}
	line := formatRound(won)
	if !strings.Contains(line, "won in 6 attempts") {
		t.Errorf("missing win summary: %q", line)
	}
	if !strings.Contains(line, "[1-100]") {
		t.Errorf("missing range: %q", line)
	}
	if !strings.Contains(line, "42s") {
		t.Errorf("missing duration: %q", line)
	}

	abandoned := won
	abandoned.Outcome = models.OutcomeAbandoned
	line = formatRound(abandoned)
	if !strings.Contains(line, "abandoned") {
		t.Errorf("missing abandoned marker: %q", line)
	}
}
