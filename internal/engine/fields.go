package engine

import (
	"github.com/abctools/abcctl/internal/uia"
	"go.uber.org/zap"
)

// Accessor reads and writes controls addressed purely by ordinal position
// among same-class siblings in tree order. There is nothing better to address
// by: the host exposes no IDs, so any layout change invalidates every index.
type Accessor struct {
	loc    *Locator
	keys   *Dispatcher
	timing Timing
	log    *zap.Logger
}

// NewAccessor returns an Accessor. log may be nil.
func NewAccessor(loc *Locator, keys *Dispatcher, timing Timing, log *zap.Logger) *Accessor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Accessor{loc: loc, keys: keys, timing: timing, log: log}
}

// nth resolves the index-th control of class under scope, validating the
// index against what is actually present.
func (a *Accessor) nth(scope uia.Element, class string, index int) (uia.Element, error) {
	els, err := a.loc.FindAll(uia.Query{Scope: scope, ClassName: class})
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(els) {
		return nil, &uia.FieldIndexError{Class: class, Index: index, Have: len(els)}
	}
	return els[index], nil
}

// Read returns the displayed value of the index-th control of class under
// scope. An empty string is a meaningful value (e.g. no payment recorded) and
// is distinct from the out-of-range error.
func (a *Accessor) Read(scope uia.Element, class string, index int) (string, error) {
	el, err := a.nth(scope, class, index)
	if err != nil {
		return "", err
	}
	return el.Value()
}

// Write focuses the index-th control of class under scope and types text
// followed by the confirm key. It does not read back: callers needing
// confirmation must Read explicitly.
func (a *Accessor) Write(scope uia.Element, class string, index int, text string) error {
	el, err := a.nth(scope, class, index)
	if err != nil {
		return err
	}
	if err := el.Focus(); err != nil {
		return err
	}
	return a.keys.Send(el, text+"{enter}", a.timing.Unit)
}
