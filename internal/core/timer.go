package core

import "time"

// Window is a one-shot armed time window.
//
// Arm opens the window at a given instant; IsArmed reports whether the window
// is still open; Consume closes it early. The jump buffer uses it as "bonus
// still available", sound cues use it as "still cooling down".
type Window struct {
	length  time.Duration
	started time.Time
	armed   bool
}

// NewWindow creates a disarmed window of the given length.
func NewWindow(length time.Duration) Window {
	return Window{length: length}
}

// Length returns the configured window length.
func (w *Window) Length() time.Duration {
	return w.length
}

// Arm opens the window at now, replacing any previous arming.
func (w *Window) Arm(now time.Time) {
	w.started = now
	w.armed = true
}

// IsArmed reports whether the window was armed and has not elapsed or been
// consumed. A window that has elapsed stays disarmed until armed again.
func (w *Window) IsArmed(now time.Time) bool {
	if !w.armed {
		return false
	}
	if now.Sub(w.started) > w.length {
		w.armed = false
		return false
	}
	return true
}

// Consume closes the window.
func (w *Window) Consume() {
	w.armed = false
}

// Gate fires at most once per window: it returns true and arms the window
// when it is not currently armed, false otherwise.
func (w *Window) Gate(now time.Time) bool {
	if w.IsArmed(now) {
		return false
	}
	w.Arm(now)
	return true
}
