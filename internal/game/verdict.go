package game

// Verdict is the three-way result of comparing a guess to the target.
type Verdict string

const (
	// VerdictTooSmall means the guess is below the target.
	VerdictTooSmall Verdict = "too_small"
	// VerdictTooBig means the guess is above the target.
	VerdictTooBig Verdict = "too_big"
	// VerdictWin means the guess matched the target exactly.
	VerdictWin Verdict = "win"
)

// Valid returns true if the verdict is a known value.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictTooSmall, VerdictTooBig, VerdictWin:
		return true
	default:
		return false
	}
}

// Message returns the player-facing text for the verdict.
func (v Verdict) Message() string {
	switch v {
	case VerdictTooSmall:
		return "Too small!"
	case VerdictTooBig:
		return "Too big!"
	case VerdictWin:
		return "You win!"
	default:
		return ""
	}
}
