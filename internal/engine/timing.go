package engine

import "time"

// Timing is the injectable delay policy for the engine. The host application
// gives no "redraw complete" signal, so every state-changing keystroke is
// followed by a fixed settle pause scaled from Unit. Tests swap Sleep for a
// recording stub to run with simulated time.
type Timing struct {
	// Unit is the base settle unit all host-specific delays scale from.
	Unit time.Duration

	// PollInterval is the pause between locate attempts in a find-first loop.
	PollInterval time.Duration

	// FindTimeout bounds a locate that follows a keystroke macro, covering
	// the host's redraw latency.
	FindTimeout time.Duration

	// CheckTimeout bounds the cheap "is the screen already open" pre-check.
	CheckTimeout time.Duration

	// PopupTimeout bounds the poll for an interruption dialog. Not finding
	// one within this window is a valid outcome, not a failure.
	PopupTimeout time.Duration

	// ResubmitSettle is the long pause after the invoice resubmission macro,
	// before the result is read back.
	ResubmitSettle time.Duration

	// Sleep overrides time.Sleep when non-nil.
	Sleep func(time.Duration)
}

// DefaultTiming reproduces the host application's observed latencies: a 100ms
// base unit, a 3s locate timeout, and a 2s settle after resubmission.
func DefaultTiming() Timing {
	const unit = 100 * time.Millisecond
	return Timing{
		Unit:           unit,
		PollInterval:   unit / 2,
		FindTimeout:    30 * unit,
		CheckTimeout:   5 * unit,
		PopupTimeout:   unit / 2,
		ResubmitSettle: 20 * unit,
	}
}

// Pause blocks for d using the configured sleep function.
func (t Timing) Pause(d time.Duration) {
	if d <= 0 {
		return
	}
	if t.Sleep != nil {
		t.Sleep(d)
		return
	}
	time.Sleep(d)
}
