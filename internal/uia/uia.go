package uia

import "time"

// Element is a borrowed handle into the host application's accessibility tree.
// Handles are only valid until the host redraws the screen they belong to, so
// they must never be cached across screen transitions — re-locate instead.
type Element interface {
	// Name returns the element's display name (window title, control label).
	Name() (string, error)

	// ClassName returns the element's control class (e.g. "ThunderRT6TextBox").
	ClassName() (string, error)

	// Value returns the element's current displayed value as text. An empty
	// string is a valid value, not an error.
	Value() (string, error)

	// Focus gives the element keyboard focus.
	Focus() error

	// SendKeys injects a literal key sequence into the element. Brace-wrapped
	// tokens ({enter}, {F10}, {esc}, {right}, {up}) are named keys; everything
	// else is typed verbatim. keyDelay is the pause between individual keys.
	SendKeys(keys string, keyDelay time.Duration) error

	// HoldSendKeys injects key while holding modifier (e.g. "{ctrl}", "N").
	HoldSendKeys(modifier, key string, keyDelay time.Duration) error
}

// TreeWalker traverses the accessibility tree in raw structural order.
// FirstChild and NextSibling return ErrNoChild / ErrNoSibling at the edges.
type TreeWalker interface {
	FirstChild(Element) (Element, error)
	NextSibling(Element) (Element, error)
}

// Provider is the externally supplied accessibility capability: it exposes the
// tree root and a walker. Concrete implementations live outside this engine
// (a platform binding registered via NewProviderFunc, or uiatest.Sim in tests).
type Provider interface {
	Root() (Element, error)
	Walker() TreeWalker
}
