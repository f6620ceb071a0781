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

// gaugeWidth is the character width of the remaining-time gauge.
const gaugeWidth = 40

// timerView is the countdown tab: phase banner, run state, big clock,
// remaining-time gauge and the pomodoro tally.
type timerView struct {
	state *SharedState
}

func newTimerView(state *SharedState) *timerView {
	return &timerView{state: state}
}

func (v *timerView) ID() ViewID    { return ViewTimer }
func (v *timerView) Title() string { return "Timer" }

func (v *timerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next phase")),
		key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "pick phase")),
	}
}

func (v *timerView) Init() tea.Cmd { return nil }

func (v *timerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	eng := v.state.Engine

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case " ":
			eng.ToggleRun()
		case "r":
			eng.Reset()
		case "n":
			eng.AdvancePhase()
		case "1":
			eng.SetPhase(domain.PhaseFocus)
		case "2":
			eng.SetPhase(domain.PhaseShortBreak)
		case "3":
			eng.SetPhase(domain.PhaseLongBreak)
		}
	}

	return v, nil
}

func (v *timerView) View() string {
	eng := v.state.Engine
	accent := formatter.PhaseStyle(eng.Phase())

	status := "PAUSED"
	if eng.Running() {
		status = "RUNNING"
	}

	// The big clock takes the accent color while running, plain white
	// while paused, so a glance tells the run state.
	clockStyle := formatter.StyleFg
	if eng.Running() {
		clockStyle = accent
	}
	bigClock := clockStyle.Render(formatter.BigClock(eng.Remaining()))

	ratio := 0.0
	if target := eng.TargetDuration(); target > 0 {
		ratio = float64(eng.Remaining()) / float64(target)
	}
	gauge := formatter.RenderGauge(ratio, gaugeWidth, accent)

	tally := fmt.Sprintf("Pomodoros completed: %d  ·  long break every %d",
		eng.Pomodoros(), eng.LongBreakInterval())

	lines := []string{
		formatter.PhaseBanner(eng.Phase()),
		formatter.Dim(fmt.Sprintf("[ %s ]", status)),
		"",
		bigClock,
		"",
		formatter.Dim("Time Remaining"),
		gauge,
		"",
		formatter.Dim(tally),
	}

	content := strings.Join(lines, "\n")
	return v.centered(content)
}

// centered places the content in the middle of the available area.
func (v *timerView) centered(content string) string {
	w := v.state.Width
	h := v.state.ContentHeight()
	if w <= 0 || h <= 0 {
		return content
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}
