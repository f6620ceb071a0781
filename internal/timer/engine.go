// Package timer implements the pomodoro state machine: phase
// transitions, pause/resume elapsed-time accounting, pomodoro counting
// and settings mutation. It owns no I/O beyond firing notifications on
// phase changes, and it is driven entirely by its caller — the TUI poll
// loop calls Tick once per poll, and all reads are pure given the
// injected clock.
package timer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

// Notifier delivers desktop notifications on phase transitions.
// Delivery is fire-and-forget: implementations must not block, and the
// engine never observes a delivery failure.
type Notifier interface {
	Notify(title, body string)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, string) {}

// Engine is the pomodoro timer core. It is not safe for concurrent
// use; the TUI drives it from a single goroutine.
type Engine struct {
	phase   domain.Phase
	running bool

	// anchor is the instant the current running stretch started; its
	// value is meaningless while paused. accumulated banks the elapsed
	// time of all finished stretches since the last reset, so pausing
	// loses nothing.
	anchor      time.Time
	accumulated time.Duration

	cfg      domain.Config
	selected domain.Setting

	// pomodoros counts completed focus sessions. It only ever grows:
	// phase transitions and resets leave it alone.
	pomodoros int
	interval  int

	autoAdvance bool

	clock    Clock
	notifier Notifier
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithClock replaces the wall-clock source.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithNotifier sets the notification sink for phase transitions.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

// WithConfig sets the initial durations, clamped to their valid ranges.
func WithConfig(cfg domain.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg.Normalize()
	}
}

// WithLongBreakInterval sets how many focus completions separate long
// breaks. Non-positive values are ignored.
func WithLongBreakInterval(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.interval = n
		}
	}
}

// WithManualAdvance makes a finished timer pause and wait for the user
// to advance the phase, instead of rolling straight into the next one.
func WithManualAdvance() Option {
	return func(e *Engine) {
		e.autoAdvance = false
	}
}

// New creates an engine in its initial state: focus phase, paused,
// zero elapsed time, zero completed pomodoros.
func New(opts ...Option) *Engine {
	e := &Engine{
		phase:       domain.PhaseFocus,
		cfg:         domain.DefaultConfig(),
		selected:    domain.SettingFocus,
		interval:    domain.DefaultLongBreakInterval,
		autoAdvance: true,
		clock:       SystemClock,
		notifier:    noopNotifier{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ── read accessors ───────────────────────────────────────────────────────────

func (e *Engine) Phase() domain.Phase             { return e.phase }
func (e *Engine) Running() bool                   { return e.running }
func (e *Engine) Pomodoros() int                  { return e.pomodoros }
func (e *Engine) LongBreakInterval() int          { return e.interval }
func (e *Engine) Config() domain.Config           { return e.cfg }
func (e *Engine) SelectedSetting() domain.Setting { return e.selected }
func (e *Engine) AutoAdvance() bool               { return e.autoAdvance }

// TargetDuration returns the configured length of the current phase.
func (e *Engine) TargetDuration() time.Duration {
	return time.Duration(e.cfg.Minutes(domain.ForPhase(e.phase))) * time.Minute
}

// Elapsed returns the time spent in the current phase since its last
// reset: the banked total plus the current running stretch, if any.
func (e *Engine) Elapsed() time.Duration {
	if e.running {
		return e.accumulated + e.clock.Now().Sub(e.anchor)
	}
	return e.accumulated
}

// Remaining returns the time left in the current phase, never negative.
func (e *Engine) Remaining() time.Duration {
	rem := e.TargetDuration() - e.Elapsed()
	if rem < 0 {
		return 0
	}
	return rem
}

// ── mutators ─────────────────────────────────────────────────────────────────

// ToggleRun pauses a running timer, banking the current stretch into
// the accumulated total, or resumes a paused one from a fresh anchor.
func (e *Engine) ToggleRun() {
	if e.running {
		e.accumulated += e.clock.Now().Sub(e.anchor)
		e.running = false
		return
	}
	e.anchor = e.clock.Now()
	e.running = true
}

// Reset pauses the timer and zeroes the elapsed time for the current
// phase. The anchor is left stale; it is re-captured on the next resume.
func (e *Engine) Reset() {
	e.running = false
	e.accumulated = 0
}

// AdvancePhase moves to the next phase in the cycle. Leaving focus
// completes a pomodoro; every interval-th completion earns a long
// break, the rest earn short ones. Breaks always return to focus.
// The timer is reset and a notification names the new phase.
func (e *Engine) AdvancePhase() {
	switch e.phase {
	case domain.PhaseFocus:
		e.pomodoros++
		if e.interval > 0 && e.pomodoros%e.interval == 0 {
			e.phase = domain.PhaseLongBreak
		} else {
			e.phase = domain.PhaseShortBreak
		}
	default:
		e.phase = domain.PhaseFocus
	}
	e.Reset()
	e.notifier.Notify("Phase Changed", fmt.Sprintf("Starting %s", e.phase.DisplayName()))
}

// SetPhase force-selects a phase and resets the timer. The pomodoro
// count is untouched; unknown phases are ignored.
func (e *Engine) SetPhase(p domain.Phase) {
	if !p.Valid() {
		return
	}
	e.phase = p
	e.Reset()
}

// SelectNextSetting moves the settings cursor forward, wrapping around.
func (e *Engine) SelectNextSetting() {
	e.selected = e.selected.Next()
}

// SelectPrevSetting moves the settings cursor backward, wrapping around.
func (e *Engine) SelectPrevSetting() {
	e.selected = e.selected.Prev()
}

// AdjustSelectedSetting adds deltaMinutes to the selected duration,
// clamped to its valid range, then resets the timer — changing the
// active phase's target mid-run would invalidate the elapsed math.
func (e *Engine) AdjustSelectedSetting(deltaMinutes int) {
	e.cfg.SetMinutes(e.selected, e.cfg.Minutes(e.selected)+deltaMinutes)
	e.Reset()
}

// Tick is the auto-completion check, called by the driving loop once
// per poll. When a running phase has no time left it either rolls
// straight into the next phase (still running, zero elapsed) or, in
// manual-advance mode, banks the final stretch, pauses, and announces
// that the timer finished.
func (e *Engine) Tick() {
	if !e.running || e.Remaining() > 0 {
		return
	}
	if e.autoAdvance {
		e.AdvancePhase()
		e.ToggleRun()
		return
	}
	e.ToggleRun()
	e.notifier.Notify("Timer Finished!", "Time to switch phases.")
}
