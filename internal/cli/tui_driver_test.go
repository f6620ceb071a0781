package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/pomo/internal/teatest"
	"github.com/alexanderramin/pomo/internal/timer"
)

// testClock is a manually advanced timer.Clock for the TUI tests.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// stubNotifier records notifications fired through the engine.
type stubNotifier struct {
	titles []string
}

func (n *stubNotifier) Notify(title, body string) {
	n.titles = append(n.titles, title)
}

// TestDriver wraps teatest.Driver with pomo-specific inspection methods
// and a synthetic clock, so tests drive the countdown without sleeping.
type TestDriver struct {
	*teatest.Driver
	Clock    *testClock
	Notifier *stubNotifier
}

// NewTestDriver builds an appModel around a synthetic-clock engine,
// sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, opts ...timer.Option) *TestDriver {
	t.Helper()

	clock := newTestClock()
	notifier := &stubNotifier{}
	opts = append([]timer.Option{timer.WithClock(clock), timer.WithNotifier(notifier)}, opts...)

	m := newAppModel(timer.New(opts...))
	d := teatest.New(t, m, teatest.WithSize(100, 30))
	d.DrainInit()

	return &TestDriver{Driver: d, Clock: clock, Notifier: notifier}
}

// Tick injects one poll heartbeat, as the real program does every 250ms.
func (d *TestDriver) Tick() {
	d.T.Helper()
	d.Send(tickMsg(d.Clock.Now()))
}

// ── pomo-specific inspection ─────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// Engine returns the engine under the model for state assertions.
func (d *TestDriver) Engine() *timer.Engine {
	return d.appModel().state.Engine
}

// ActiveViewID returns the ViewID of the selected tab.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	return m.activeView().ID()
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
