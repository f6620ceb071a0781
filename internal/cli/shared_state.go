package cli

import "github.com/alexanderramin/pomo/internal/timer"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	Engine *timer.Engine

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for the header (2 lines) and the status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 0 {
		return 0
	}
	return h
}
