package player

import "time"

// A breathing cycle is inhale, hold, exhale, each phaseLength long.
const phaseLength = 4 * time.Second

type breathPhase int

const (
	phaseInhale breathPhase = iota
	phaseHold
	phaseExhale
)

func phaseAt(elapsed time.Duration) breathPhase {
	if elapsed < 0 {
		elapsed = 0
	}
	return breathPhase((elapsed / phaseLength) % 3)
}

func (p breathPhase) String() string {
	switch p {
	case phaseInhale:
		return "Breathe in"
	case phaseHold:
		return "Hold"
	case phaseExhale:
		return "Breathe out"
	default:
		return ""
	}
}
