package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingRows fixes the display order of the settings tab.
var settingRows = []domain.Setting{
	domain.SettingFocus,
	domain.SettingShortBreak,
	domain.SettingLongBreak,
}

// settingsView is the configuration tab: three duration rows with a
// movable cursor. Every mutation goes through the engine so the clamp
// and reset rules apply.
type settingsView struct {
	state *SharedState
}

func newSettingsView(state *SharedState) *settingsView {
	return &settingsView{state: state}
}

func (v *settingsView) ID() ViewID    { return ViewSettings }
func (v *settingsView) Title() string { return "Settings" }

func (v *settingsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "adjust")),
		key.NewBinding(key.WithKeys("H", "L"), key.WithHelp("H/L", "adjust ±5")),
	}
}

func (v *settingsView) Init() tea.Cmd { return nil }

func (v *settingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	eng := v.state.Engine

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			eng.SelectPrevSetting()
		case "down", "j":
			eng.SelectNextSetting()
		case "left", "h":
			eng.AdjustSelectedSetting(-1)
		case "right", "l":
			eng.AdjustSelectedSetting(1)
		case "shift+left", "H":
			eng.AdjustSelectedSetting(-5)
		case "shift+right", "L":
			eng.AdjustSelectedSetting(5)
		}
	}

	return v, nil
}

func (v *settingsView) View() string {
	eng := v.state.Engine

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("CONFIGURATION"))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("Adjusting any duration resets the timer."))
	b.WriteString("\n\n")

	for _, s := range settingRows {
		row := fmt.Sprintf(" %-22s < %3d min > ", s.Label(), eng.Config().Minutes(s))
		if s == eng.SelectedSetting() {
			b.WriteString(formatter.StyleSelected.Render("▸" + row))
		} else {
			b.WriteString(formatter.StyleFg.Render(" " + row))
		}
		b.WriteString("\n")
	}

	return v.centered(b.String())
}

func (v *settingsView) centered(content string) string {
	w := v.state.Width
	h := v.state.ContentHeight()
	if w <= 0 || h <= 0 {
		return content
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}
