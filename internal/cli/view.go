package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each tab in the TUI.
type ViewID int

const (
	ViewTimer ViewID = iota
	ViewSettings
)

// View is the interface both tabs implement.
// It extends tea.Model with tab and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // tab label
}
