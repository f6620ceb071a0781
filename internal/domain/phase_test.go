package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_DisplayName(t *testing.T) {
	assert.Equal(t, "FOCUS SESSION", PhaseFocus.DisplayName())
	assert.Equal(t, "SHORT BREAK", PhaseShortBreak.DisplayName())
	assert.Equal(t, "LONG BREAK", PhaseLongBreak.DisplayName())
}

func TestPhase_DisplayNameUnknownFallsBack(t *testing.T) {
	assert.Equal(t, "nap", Phase("nap").DisplayName())
}

func TestPhase_Valid(t *testing.T) {
	assert.True(t, PhaseFocus.Valid())
	assert.True(t, PhaseShortBreak.Valid())
	assert.True(t, PhaseLongBreak.Valid())
	assert.False(t, Phase("nap").Valid())
	assert.False(t, Phase("").Valid())
}
