package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 25, c.FocusMin)
	assert.Equal(t, 5, c.ShortBreakMin)
	assert.Equal(t, 15, c.LongBreakMin)
}

func TestSettingCursor_WrapsForward(t *testing.T) {
	assert.Equal(t, SettingShortBreak, SettingFocus.Next())
	assert.Equal(t, SettingLongBreak, SettingShortBreak.Next())
	assert.Equal(t, SettingFocus, SettingLongBreak.Next())
}

func TestSettingCursor_WrapsBackward(t *testing.T) {
	assert.Equal(t, SettingLongBreak, SettingFocus.Prev())
	assert.Equal(t, SettingFocus, SettingShortBreak.Prev())
	assert.Equal(t, SettingShortBreak, SettingLongBreak.Prev())
}

func TestSettingCursor_FullCycleReturnsToStart(t *testing.T) {
	s := SettingFocus
	for i := 0; i < len(settingOrder); i++ {
		s = s.Next()
	}
	assert.Equal(t, SettingFocus, s)
}

func TestClampMinutes_FocusRange(t *testing.T) {
	assert.Equal(t, 1, ClampMinutes(SettingFocus, 0))
	assert.Equal(t, 1, ClampMinutes(SettingFocus, -1000))
	assert.Equal(t, 120, ClampMinutes(SettingFocus, 121))
	assert.Equal(t, 120, ClampMinutes(SettingFocus, 1<<30))
	assert.Equal(t, 25, ClampMinutes(SettingFocus, 25))
	assert.Equal(t, 1, ClampMinutes(SettingFocus, 1))
	assert.Equal(t, 120, ClampMinutes(SettingFocus, 120))
}

func TestClampMinutes_BreakRange(t *testing.T) {
	for _, s := range []Setting{SettingShortBreak, SettingLongBreak} {
		assert.Equal(t, 1, ClampMinutes(s, 0), "setting %s", s)
		assert.Equal(t, 60, ClampMinutes(s, 61), "setting %s", s)
		assert.Equal(t, 60, ClampMinutes(s, 1<<30), "setting %s", s)
		assert.Equal(t, 30, ClampMinutes(s, 30), "setting %s", s)
	}
}

func TestConfig_SetMinutesClamps(t *testing.T) {
	c := DefaultConfig()
	c.SetMinutes(SettingFocus, 500)
	assert.Equal(t, 120, c.FocusMin)
	c.SetMinutes(SettingShortBreak, -3)
	assert.Equal(t, 1, c.ShortBreakMin)
	c.SetMinutes(SettingLongBreak, 45)
	assert.Equal(t, 45, c.LongBreakMin)
}

func TestConfig_MinutesRoundTrip(t *testing.T) {
	c := Config{FocusMin: 40, ShortBreakMin: 10, LongBreakMin: 20}
	assert.Equal(t, 40, c.Minutes(SettingFocus))
	assert.Equal(t, 10, c.Minutes(SettingShortBreak))
	assert.Equal(t, 20, c.Minutes(SettingLongBreak))
}

func TestConfig_Normalize(t *testing.T) {
	c := Config{FocusMin: 0, ShortBreakMin: 999, LongBreakMin: 15}.Normalize()
	assert.Equal(t, 1, c.FocusMin)
	assert.Equal(t, 60, c.ShortBreakMin)
	assert.Equal(t, 15, c.LongBreakMin)
}

func TestForPhase(t *testing.T) {
	assert.Equal(t, SettingFocus, ForPhase(PhaseFocus))
	assert.Equal(t, SettingShortBreak, ForPhase(PhaseShortBreak))
	assert.Equal(t, SettingLongBreak, ForPhase(PhaseLongBreak))
}
