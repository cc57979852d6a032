package state

// Phase represents the current phase of a play session
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
