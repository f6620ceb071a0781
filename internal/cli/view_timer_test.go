package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerView_SpaceTogglesRunState(t *testing.T) {
	d := NewTestDriver(t)

	d.PressKey(' ')
	assert.True(t, d.Engine().Running())

	d.PressKey(' ')
	assert.False(t, d.Engine().Running())
}

func TestTimerView_ResetKey(t *testing.T) {
	d := NewTestDriver(t)

	d.PressKey(' ')
	d.Clock.Advance(5 * time.Minute)
	d.PressKey('r')

	assert.False(t, d.Engine().Running())
	assert.Zero(t, d.Engine().Elapsed())
}

func TestTimerView_NextPhaseKey(t *testing.T) {
	d := NewTestDriver(t)

	d.PressKey('n')

	assert.Equal(t, domain.PhaseShortBreak, d.Engine().Phase())
	assert.Equal(t, 1, d.Engine().Pomodoros())
	require.Len(t, d.Notifier.titles, 1)
	assert.Equal(t, "Phase Changed", d.Notifier.titles[0])
}

func TestTimerView_NumberKeysForcePhase(t *testing.T) {
	d := NewTestDriver(t)

	d.PressKey('3')
	assert.Equal(t, domain.PhaseLongBreak, d.Engine().Phase())

	d.PressKey('2')
	assert.Equal(t, domain.PhaseShortBreak, d.Engine().Phase())

	d.PressKey('1')
	assert.Equal(t, domain.PhaseFocus, d.Engine().Phase())

	assert.Equal(t, 0, d.Engine().Pomodoros(), "manual phase select must not count pomodoros")
}

func TestTimerView_RendersPhaseAndStatus(t *testing.T) {
	d := NewTestDriver(t)

	out := d.View()
	assert.Contains(t, out, "FOCUS SESSION")
	assert.Contains(t, out, "[ PAUSED ]")
	assert.Contains(t, out, "Time Remaining")
	assert.Contains(t, out, "Pomodoros completed: 0")

	d.PressKey(' ')
	assert.Contains(t, d.View(), "[ RUNNING ]")
}

func TestTimerView_GaugeReflectsRemaining(t *testing.T) {
	d := NewTestDriver(t)

	assert.Contains(t, d.View(), "100%", "full gauge before the timer starts")

	d.PressKey(' ')
	d.Clock.Advance(25 * time.Minute)
	assert.Contains(t, d.View(), "  0%", "empty gauge once time is up")
}
