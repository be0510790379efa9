package simulation

import "time"

// State is the two-valued simulation mode.
type State string

const (
	StateRunning State = "running"
	StateStopped State = "stopped"
)

func stateOf(running bool) State {
	if running {
		return StateRunning
	}
	return StateStopped
}

func (s State) String() string {
	return string(s)
}

// Event is delivered to subscribers after every toggle.
type Event struct {
	Running bool
	State   State
	Toggles uint64
	At      time.Time
}
