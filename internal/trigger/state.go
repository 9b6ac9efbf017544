// Package trigger implements the notification state machine: cooldown
// gating, the read-error-message speech step, audio playback with speech
// then bell fallback, and the entry points that gate and classify host
// events before they reach the coordinator.
package trigger

import "time"

// State is the process-wide mutable trigger state. It has a single owner
// (the Coordinator) and is passed in explicitly so tests construct
// isolated instances. Nothing persists: state resets on restart.
//
// LastTriggerAt is monotonically non-decreasing for the process
// lifetime; the cooldown measures from the start of the last successful
// trigger, not its completion.
type State struct {
	LastTriggerAt  time.Time
	LastErrorCount int
}
