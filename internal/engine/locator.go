package engine

import (
	"context"
	"errors"

	"github.com/abctools/abcctl/internal/uia"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// errNoMatchYet signals a single failed scan inside the retry loop.
var errNoMatchYet = errors.New("no match yet")

// Locator finds elements in the accessibility tree by structural predicates.
// Retry-with-timeout here is the only built-in resilience in the engine:
// screens redraw asynchronously after keystrokes, so a lookup that fails now
// may succeed a poll interval later.
type Locator struct {
	prov   uia.Provider
	timing Timing
	log    *zap.Logger
}

// NewLocator returns a Locator over prov. log may be nil.
func NewLocator(prov uia.Provider, timing Timing, log *zap.Logger) *Locator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Locator{prov: prov, timing: timing, log: log}
}

// FindFirst polls until the first depth-first match for q exists, then returns
// it. It fails with *uia.NotFoundError only once the query timeout (or the
// configured FindTimeout when the query carries none) has fully elapsed.
func (l *Locator) FindFirst(q uia.Query) (uia.Element, error) {
	timeout := q.Timeout
	if timeout <= 0 {
		timeout = l.timing.FindTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var found uia.Element
	attempt := func() error {
		el, err := l.scanFirst(q)
		if err != nil {
			return backoff.Permanent(err)
		}
		if el == nil {
			return errNoMatchYet
		}
		found = el
		return nil
	}

	bo := backoff.WithContext(backoff.NewConstantBackOff(l.timing.PollInterval), ctx)
	if err := backoff.Retry(attempt, bo); err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return nil, perm.Unwrap()
		}
		l.log.Debug("locate timed out", zap.String("query", q.String()), zap.Duration("timeout", timeout))
		return nil, &uia.NotFoundError{Query: q.String(), Timeout: timeout}
	}
	return found, nil
}

// FindAll returns every match for q present at the single instant of one
// traversal, in stable tree order. No retry loop: an empty result is a valid
// answer, and ordinal indexing must see the tree as it is right now.
func (l *Locator) FindAll(q uia.Query) ([]uia.Element, error) {
	scope, err := l.scope(q)
	if err != nil {
		return nil, err
	}
	var matches []uia.Element
	l.walk(scope, func(el uia.Element) bool {
		ok, err := q.Match(el)
		if err != nil {
			// Stale handle mid-redraw: skip it, the rest of the tree is fine.
			l.log.Debug("skipping unreadable element", zap.Error(err))
			return false
		}
		if ok {
			matches = append(matches, el)
		}
		return false
	})
	return matches, nil
}

func (l *Locator) scope(q uia.Query) (uia.Element, error) {
	if q.Scope != nil {
		return q.Scope, nil
	}
	return l.prov.Root()
}

// scanFirst runs one traversal and returns the first match, or nil if the
// tree currently holds none.
func (l *Locator) scanFirst(q uia.Query) (uia.Element, error) {
	scope, err := l.scope(q)
	if err != nil {
		return nil, err
	}
	var found uia.Element
	l.walk(scope, func(el uia.Element) bool {
		ok, err := q.Match(el)
		if err != nil {
			return false
		}
		if ok {
			found = el
			return true
		}
		return false
	})
	return found, nil
}

// walk visits el and its descendants depth-first in sibling order, stopping
// early when visit returns true. Walker errors at the tree edges end the
// branch; anything else (stale subtree) is skipped.
func (l *Locator) walk(el uia.Element, visit func(uia.Element) bool) bool {
	if visit(el) {
		return true
	}
	walker := l.prov.Walker()
	child, err := walker.FirstChild(el)
	if err != nil {
		return false
	}
	for {
		if l.walk(child, visit) {
			return true
		}
		next, err := walker.NextSibling(child)
		if err != nil {
			return false
		}
		child = next
	}
}
