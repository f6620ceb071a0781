package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// pollInterval is how often the TUI wakes up to redraw the countdown
// and run the engine's auto-completion check.
const pollInterval = 250 * time.Millisecond

// tickMsg is the poll heartbeat.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// appModel is the root bubbletea Model for the TUI.
// It owns the tab ring and drives the engine once per poll tick.
type appModel struct {
	state    *SharedState
	views    []View
	active   int
	quitting bool
}

func newAppModel(eng *timer.Engine) appModel {
	state := &SharedState{Engine: eng}
	return appModel{
		state: state,
		views: []View{newTimerView(state), newSettingsView(state)},
	}
}

// activeView returns the currently selected tab.
func (m *appModel) activeView() View {
	return m.views[m.active]
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	cmds = append(cmds, tickCmd())
	for _, v := range m.views {
		if cmd := v.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Forward to every view so both tabs stay sized.
		for i, v := range m.views {
			updated, _ := v.Update(msg)
			m.views[i] = updated.(View)
		}
		return m, nil

	case tickMsg:
		// The engine never schedules anything itself; this poll is the
		// only place the auto-completion rule runs.
		m.state.Engine.Tick()
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Forward other messages to the active view.
	updated, cmd := m.activeView().Update(msg)
	m.views[m.active] = updated.(View)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch {
	case msg.Type == tea.KeyCtrlC, msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyTab:
		m.active = (m.active + 1) % len(m.views)
		return m, nil

	case msg.Type == tea.KeyShiftTab:
		m.active = (m.active + len(m.views) - 1) % len(m.views)
		return m, nil
	}

	// Forward to active view
	updated, cmd := m.activeView().Update(msg)
	m.views[m.active] = updated.(View)
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.activeView().View())
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleHeader.Render("pomo")

	// Tab bar: active tab takes the phase accent, settings tab blue.
	var tabs []string
	for i, v := range m.views {
		label := " " + v.Title() + " "
		if i == m.active {
			style := formatter.StyleBlue
			if v.ID() == ViewTimer {
				style = formatter.PhaseStyle(m.state.Engine.Phase())
			}
			tabs = append(tabs, style.Bold(true).Render(label))
		} else {
			tabs = append(tabs, formatter.Dim(label))
		}
	}

	header := title + "  " + strings.Join(tabs, formatter.Dim("│"))
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.activeView().ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	hints = append(hints, formatter.Dim("tab: switch"), formatter.Dim("q: quit"))

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}
