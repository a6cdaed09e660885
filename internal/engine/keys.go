package engine

import (
	"time"

	"github.com/abctools/abcctl/internal/uia"
	"go.uber.org/zap"
)

// Step is one entry of a keystroke macro: either a literal key sequence or a
// modifier-held key, followed by a settle pause. Steps are write-only — they
// never read the UI back.
type Step struct {
	// Keys is the literal sequence (brace tokens for named keys). When Hold
	// is set, Keys is the single key pressed while the modifier is held.
	Keys string

	// Hold is the modifier held for the step (e.g. "{ctrl}"), or "".
	Hold string

	// KeyDelay is the pause between individual keys within the sequence.
	KeyDelay time.Duration

	// Settle is the pause after the step, letting the host redraw before the
	// next observation.
	Settle time.Duration
}

// Macro is an ordered keystroke sequence executed strictly sequentially.
type Macro []Step

// Dispatcher injects keystroke macros into host elements. It cannot know
// whether the host accepted the input — verifying that is the caller's job,
// via a subsequent locate.
type Dispatcher struct {
	timing Timing
	log    *zap.Logger
}

// NewDispatcher returns a Dispatcher. log may be nil.
func NewDispatcher(timing Timing, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{timing: timing, log: log}
}

// Send injects a literal key sequence into target.
func (d *Dispatcher) Send(target uia.Element, keys string, keyDelay time.Duration) error {
	d.log.Debug("send keys", zap.String("keys", keys))
	if err := target.SendKeys(keys, keyDelay); err != nil {
		return &uia.InjectionError{Keys: keys, Cause: err}
	}
	return nil
}

// SendHold injects key into target while holding modifier.
func (d *Dispatcher) SendHold(target uia.Element, modifier, key string, keyDelay time.Duration) error {
	d.log.Debug("send keys with modifier", zap.String("modifier", modifier), zap.String("key", key))
	if err := target.HoldSendKeys(modifier, key, keyDelay); err != nil {
		return &uia.InjectionError{Keys: modifier + "+" + key, Cause: err}
	}
	return nil
}

// Run executes the macro against target, pausing each step's settle delay
// before the next begins. The first injection failure aborts the remainder;
// already-sent steps are not rolled back, so the host may be left
// mid-navigation.
func (d *Dispatcher) Run(target uia.Element, m Macro) error {
	for _, step := range m {
		var err error
		if step.Hold != "" {
			err = d.SendHold(target, step.Hold, step.Keys, step.KeyDelay)
		} else {
			err = d.Send(target, step.Keys, step.KeyDelay)
		}
		if err != nil {
			return err
		}
		d.timing.Pause(step.Settle)
	}
	return nil
}
