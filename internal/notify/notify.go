// Package notify delivers desktop notifications for phase transitions.
package notify

import "github.com/gen2brain/beeep"

// Desktop sends notifications through the platform notification
// service. Delivery errors are discarded: notifications are a
// convenience, never a correctness requirement.
type Desktop struct{}

// Notify sends a fire-and-forget desktop notification.
func (Desktop) Notify(title, body string) {
	_ = beeep.Notify(title, body, "")
}

// Noop discards all notifications. Used by --quiet and in tests.
type Noop struct{}

// Notify does nothing.
func (Noop) Notify(title, body string) {}
