// Package abc drives the ABC Accounting Client (Client4) through its
// accessibility tree: fixed keystroke recipes for navigating screens plus
// ordinal field positions for reading values back. The host exposes no stable
// identifiers, so everything here is matched by window-title substring and by
// position among ThunderRT6TextBox controls.
package abc

import (
	"io"

	"github.com/abctools/abcctl/internal/engine"
	"github.com/abctools/abcctl/internal/uia"
	"go.uber.org/zap"
)

const (
	// WindowTitle identifies the Client4 main window.
	WindowTitle = "ABC Accounting Client"

	// TextBoxClass is the VB6 text box control class every field on every
	// screen uses. Fields are distinguished only by tree-order position.
	TextBoxClass = "ThunderRT6TextBox"

	invoicesScreenTitle  = "Sales - Invoices (R)"
	customersScreenTitle = "Sales - Customers (C)"
	saveChangesDialog    = "Save changes before proceeding?"

	// Ordinal positions of value fields, zero-based among TextBoxClass
	// controls in tree order. Any host layout change invalidates these.
	paidFieldIndex       = 29
	totalFieldIndex      = 38
	jdfAccountFieldIndex = 28
)

// Client binds the engine components to one host application instance. All
// operations are synchronous and assume exclusive control of the single host
// window for their duration.
type Client struct {
	prov   uia.Provider
	timing engine.Timing
	log    *zap.Logger

	loc    *engine.Locator
	keys   *engine.Dispatcher
	fields *engine.Accessor
	nav    *engine.Navigator
}

// Option configures a Client.
type Option func(*Client)

// WithTiming replaces the default delay policy.
func WithTiming(t engine.Timing) Option {
	return func(c *Client) { c.timing = t }
}

// WithLogger attaches a logger to the client and every engine component.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a Client over the given accessibility provider.
func New(prov uia.Provider, opts ...Option) *Client {
	c := &Client{
		prov:   prov,
		timing: engine.DefaultTiming(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.loc = engine.NewLocator(prov, c.timing, c.log)
	c.keys = engine.NewDispatcher(c.timing, c.log)
	c.fields = engine.NewAccessor(c.loc, c.keys, c.timing, c.log)
	c.nav = engine.NewNavigator(c.loc, c.keys, c.timing, c.log)
	return c
}

// Window locates the already-running Client4 main window. Starting the host
// process is out of scope — if the window is not open this fails with
// *uia.NotFoundError.
func (c *Client) Window() (uia.Element, error) {
	return c.loc.FindFirst(uia.Query{NameContains: WindowTitle})
}

// InvoicesScreen ensures the Accounts Receivable invoices screen is visible
// and returns it. Idempotent: already open means zero keystrokes sent.
func (c *Client) InvoicesScreen(window uia.Element) (uia.Element, error) {
	return c.nav.EnsureScreen(window,
		uia.Query{NameContains: invoicesScreenTitle},
		engine.Macro{{Keys: "{F10}R", KeyDelay: 3 * c.timing.Unit}},
	)
}

// CustomersScreen ensures the customer records screen is visible and returns it.
func (c *Client) CustomersScreen(window uia.Element) (uia.Element, error) {
	return c.nav.EnsureScreen(window,
		uia.Query{NameContains: customersScreenTitle},
		engine.Macro{{Keys: "{F10}C", KeyDelay: 3 * c.timing.Unit}},
	)
}

// NewRecord sends Ctrl+N to the window and handles the unsaved-changes dialog
// if it appears: accept when save is true, select discard first otherwise. No
// dialog within the short poll means there was nothing to save.
func (c *Client) NewRecord(window uia.Element, save bool) error {
	if err := c.keys.SendHold(window, "{ctrl}", "N", c.timing.Unit); err != nil {
		return err
	}
	c.timing.Pause(c.timing.Unit)
	return c.nav.ConfirmOrDiscard(uia.Query{NameEquals: saveChangesDialog}, save)
}

// DumpTree writes the whole accessibility tree under the host root, for
// working out field ordinals against a live window.
func (c *Client) DumpTree(w io.Writer) error {
	root, err := c.prov.Root()
	if err != nil {
		return err
	}
	return uia.Dump(w, c.prov.Walker(), root, 0)
}
