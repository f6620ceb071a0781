package cli

import (
	"fmt"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/notify"
	"github.com/alexanderramin/pomo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the collaborators the CLI wires into the engine.
type App struct {
	Notifier timer.Notifier

	// IsInteractive reports whether stdin is attached to a terminal.
	// The TUI refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pomo" command.
func NewRootCmd(app *App) *cobra.Command {
	var (
		focusMin      int
		shortBreakMin int
		longBreakMin  int
		interval      int
		manualAdvance bool
		quiet         bool
	)

	root := &cobra.Command{
		Use:   "pomo",
		Short: "Terminal pomodoro timer",
		Long: `A keyboard-driven pomodoro timer for the terminal.
Cycles focus sessions and breaks, shows a live countdown, and sends a
desktop notification on every phase change.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("pomo needs an interactive terminal")
			}

			cfg := domain.Config{
				FocusMin:      focusMin,
				ShortBreakMin: shortBreakMin,
				LongBreakMin:  longBreakMin,
			}

			notifier := app.Notifier
			if quiet || notifier == nil {
				notifier = notify.Noop{}
			}

			opts := []timer.Option{
				timer.WithConfig(cfg),
				timer.WithLongBreakInterval(interval),
				timer.WithNotifier(notifier),
			}
			if manualAdvance {
				opts = append(opts, timer.WithManualAdvance())
			}

			return runTUI(timer.New(opts...))
		},
	}

	defaults := domain.DefaultConfig()
	flags := root.Flags()
	flags.IntVar(&focusMin, "focus", defaults.FocusMin, "focus session length in minutes (1-120)")
	flags.IntVar(&shortBreakMin, "short-break", defaults.ShortBreakMin, "short break length in minutes (1-60)")
	flags.IntVar(&longBreakMin, "long-break", defaults.LongBreakMin, "long break length in minutes (1-60)")
	flags.IntVar(&interval, "interval", domain.DefaultLongBreakInterval, "focus sessions between long breaks")
	flags.BoolVar(&manualAdvance, "manual-advance", false, "pause when a phase finishes instead of rolling into the next one")
	flags.BoolVar(&quiet, "quiet", false, "disable desktop notifications")

	return root
}

// runTUI starts the bubbletea program on the alternate screen and
// blocks until the user quits.
func runTUI(eng *timer.Engine) error {
	p := tea.NewProgram(newAppModel(eng), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running timer ui: %w", err)
	}
	return nil
}
