package timer

import "time"

// Clock provides the current time. Injecting it lets tests drive the
// engine with synthetic time instead of sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
