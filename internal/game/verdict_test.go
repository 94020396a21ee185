package game

import "testing"

func TestVerdictValid(t *testing.T) {
	for _, v := range []Verdict{VerdictTooSmall, VerdictTooBig, VerdictWin} {
		if !v.Valid() {
			t.Errorf("expected %s to be valid", v)
		}
	}
	if Verdict("close").Valid() {
		t.Error("unknown verdict reported valid")
	}
}

func TestVerdictMessage(t *testing.T) {
	tests := []struct {
		verdict Verdict
		want    string
	}{
		{VerdictTooSmall, "Too small!"},
		{VerdictTooBig, "Too big!"},
		{VerdictWin, "You win!"},
		{Verdict(""), ""},
	}

	for _, tt := range tests {
		if got := tt.verdict.Message(); got != tt.want {
			t.Errorf("Verdict(%q).Message() = %q, want %q", tt.verdict, got, tt.want)
		}
	}
}
