package engine

import (
	"errors"

	"github.com/abctools/abcctl/internal/uia"
	"go.uber.org/zap"
)

// Navigator composes the Locator and Dispatcher into idempotent screen
// transitions. The check-act-confirm shape is deliberate and repeated for
// every transition: a keystroke macro is never assumed to have worked, the
// target screen is always re-located afterwards.
type Navigator struct {
	loc    *Locator
	keys   *Dispatcher
	timing Timing
	log    *zap.Logger
}

// NewNavigator returns a Navigator. log may be nil.
func NewNavigator(loc *Locator, keys *Dispatcher, timing Timing, log *zap.Logger) *Navigator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Navigator{loc: loc, keys: keys, timing: timing, log: log}
}

// EnsureScreen makes the screen identified by screen visible and returns its
// element. A cheap short-timeout locate runs first — the screen may already be
// open, in which case no keystroke is sent. Otherwise opening is dispatched to
// root and the locate retried with the long timeout to cover redraw latency.
func (n *Navigator) EnsureScreen(root uia.Element, screen uia.Query, opening Macro) (uia.Element, error) {
	check := screen
	check.Timeout = n.timing.CheckTimeout
	if el, err := n.loc.FindFirst(check); err == nil {
		n.log.Debug("screen already open", zap.String("screen", screen.String()))
		return el, nil
	}

	n.log.Info("opening screen", zap.String("screen", screen.String()))
	if err := n.keys.Run(root, opening); err != nil {
		return nil, err
	}

	confirm := screen
	confirm.Timeout = n.timing.FindTimeout
	return n.loc.FindFirst(confirm)
}

// ConfirmOrDiscard handles the unsaved-changes dialog that a new-record macro
// can raise. If the dialog appears within the popup timeout, save picks
// between accepting ({enter}) and selecting the discard option first
// ({right}{enter}). The dialog not appearing means there were no unsaved
// changes — the one place where not-found is success, with zero extra
// keystrokes sent.
func (n *Navigator) ConfirmOrDiscard(dialog uia.Query, save bool) error {
	q := dialog
	q.Timeout = n.timing.PopupTimeout
	popup, err := n.loc.FindFirst(q)
	if err != nil {
		var notFound *uia.NotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	n.log.Info("unsaved-changes dialog present", zap.Bool("save", save))
	if save {
		return n.keys.Send(popup, "{enter}", n.timing.Unit)
	}
	return n.keys.Send(popup, "{right}{enter}", n.timing.Unit)
}
