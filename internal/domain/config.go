package domain

// Setting is the cursor over the three configurable durations in the
// settings view.
type Setting string

const (
	SettingFocus      Setting = "focus"
	SettingShortBreak Setting = "short_break"
	SettingLongBreak  Setting = "long_break"
)

// settingOrder fixes the cyclic traversal order of the settings cursor.
var settingOrder = []Setting{SettingFocus, SettingShortBreak, SettingLongBreak}

// Next returns the setting after s, wrapping around at the end.
func (s Setting) Next() Setting {
	for i, cur := range settingOrder {
		if cur == s {
			return settingOrder[(i+1)%len(settingOrder)]
		}
	}
	return settingOrder[0]
}

// Prev returns the setting before s, wrapping around at the start.
func (s Setting) Prev() Setting {
	for i, cur := range settingOrder {
		if cur == s {
			return settingOrder[(i+len(settingOrder)-1)%len(settingOrder)]
		}
	}
	return settingOrder[0]
}

// Label returns the row label shown in the settings view.
func (s Setting) Label() string {
	switch s {
	case SettingFocus:
		return "Focus Duration"
	case SettingShortBreak:
		return "Short Break Duration"
	case SettingLongBreak:
		return "Long Break Duration"
	default:
		return string(s)
	}
}

// ForPhase returns the setting that configures the given phase's duration.
func ForPhase(p Phase) Setting {
	switch p {
	case PhaseShortBreak:
		return SettingShortBreak
	case PhaseLongBreak:
		return SettingLongBreak
	default:
		return SettingFocus
	}
}

// Duration bounds, in minutes. Focus sessions may run longer than breaks.
const (
	MinDurationMin = 1
	MaxFocusMin    = 120
	MaxBreakMin    = 60
)

// Config holds the three phase durations, stored in minutes.
type Config struct {
	FocusMin      int
	ShortBreakMin int
	LongBreakMin  int
}

// DefaultConfig returns the classic 25/5/15 pomodoro durations.
func DefaultConfig() Config {
	return Config{FocusMin: 25, ShortBreakMin: 5, LongBreakMin: 15}
}

// Minutes returns the configured minutes for the given setting.
func (c Config) Minutes(s Setting) int {
	switch s {
	case SettingShortBreak:
		return c.ShortBreakMin
	case SettingLongBreak:
		return c.LongBreakMin
	default:
		return c.FocusMin
	}
}

// SetMinutes stores a minute value for the given setting, clamped to
// its valid range.
func (c *Config) SetMinutes(s Setting, minutes int) {
	minutes = ClampMinutes(s, minutes)
	switch s {
	case SettingShortBreak:
		c.ShortBreakMin = minutes
	case SettingLongBreak:
		c.LongBreakMin = minutes
	default:
		c.FocusMin = minutes
	}
}

// Normalize returns a copy of c with every duration clamped to its
// valid range. Used to sanitize flag input.
func (c Config) Normalize() Config {
	c.FocusMin = ClampMinutes(SettingFocus, c.FocusMin)
	c.ShortBreakMin = ClampMinutes(SettingShortBreak, c.ShortBreakMin)
	c.LongBreakMin = ClampMinutes(SettingLongBreak, c.LongBreakMin)
	return c
}

// ClampMinutes clamps a minute value into the valid range for the
// setting: [1,120] for focus, [1,60] for either break.
func ClampMinutes(s Setting, minutes int) int {
	limit := MaxBreakMin
	if s == SettingFocus {
		limit = MaxFocusMin
	}
	if minutes < MinDurationMin {
		return MinDurationMin
	}
	if minutes > limit {
		return limit
	}
	return minutes
}
