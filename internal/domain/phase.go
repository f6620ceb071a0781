package domain

// Phase identifies which part of the pomodoro cycle the timer is in.
// Exactly one phase is active at any time.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// DefaultLongBreakInterval is the number of completed focus sessions
// between long breaks.
const DefaultLongBreakInterval = 4

// DisplayName returns the banner label shown for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseFocus:
		return "FOCUS SESSION"
	case PhaseShortBreak:
		return "SHORT BREAK"
	case PhaseLongBreak:
		return "LONG BREAK"
	default:
		return string(p)
	}
}

// Valid reports whether p is one of the three known phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseFocus, PhaseShortBreak, PhaseLongBreak:
		return true
	}
	return false
}
