// Package notify provides a best-effort desktop notification side channel.
package notify

import "github.com/gen2brain/beeep"

// Notifier announces run completion to the operator. Implementations must
// never return an error: notification is a side channel and must not affect
// the run's exit status.
type Notifier interface {
	Notify(title, message string)
}

// Desktop sends a native desktop notification via beeep
type Desktop struct{}

// NewDesktop creates a Desktop notifier
func NewDesktop() *Desktop {
	return &Desktop{}
}

// Notify shows the notification, swallowing any failure unconditionally.
// Headless machines and locked-down sessions simply miss the notification.
func (d *Desktop) Notify(title, message string) {
	defer func() {
		_ = recover()
	}()
	_ = beeep.Notify(title, message, "")
}

// Noop discards notifications; used when the side channel is disabled
type Noop struct{}

// Notify does nothing
func (Noop) Notify(_, _ string) {}
