package main

import (
	"testing"

	"github.com/ShayCichocki/hilo/internal/config"
)

func TestApplyRangeOverrides(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		max     int
		minSet  bool
		maxSet  bool
		wantMin int
		wantMax int
		wantErr bool
	}{
		{"no overrides", 0, 0, false, false, 1, 100, false},
		{"max only", 0, 1000, false, true, 1, 1000, false},
		{"min and max", 10, 20, true, true, 10, 20, false},
		{"explicit zero min", 0, 0, true, false, 0, 100, false},
		{"inverted range", 200, 0, true, false, 0, 0, true},
		{"negative min", -5, 0, true, false, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			err := applyRangeOverrides(cfg, tt.min, tt.max, tt.minSet, tt.maxSet)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Game.Min != tt.wantMin || cfg.Game.Max != tt.wantMax {
				t.Errorf("range [%d, %d], want [%d, %d]",
					cfg.Game.Min, cfg.Game.Max, tt.wantMin, tt.wantMax)
			}
		})
	}
}
