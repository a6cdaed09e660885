package abc

import (
	"fmt"

	"github.com/abctools/abcctl/internal/engine"
	"github.com/abctools/abcctl/internal/uia"
)

// Report323 generates the CUSTOMER INVOICE PAYMENTS report for the invoice
// range. Fire-and-forget: the host renders the report itself, nothing is read
// back.
func (c *Client) Report323(window uia.Element, startInvoice, endInvoice uint64) error {
	return c.keys.Run(window, c.reportMacro("23{enter}", startInvoice, endInvoice))
}

// Report311 generates the CUSTOMER INVOICE LEDGER report for the invoice range.
func (c *Client) Report311(window uia.Element, startInvoice, endInvoice uint64) error {
	return c.keys.Run(window, c.reportMacro("11{enter}{enter}{enter}", startInvoice, endInvoice))
}

// reportMacro is the shared report recipe: open the reports menu, pick the
// report, then fill the invoice range and confirm with the terminal "t".
func (c *Client) reportMacro(pick string, startInvoice, endInvoice uint64) engine.Macro {
	unit := c.timing.Unit
	return engine.Macro{
		{Keys: "{F10}3", KeyDelay: 3 * unit, Settle: 5 * unit},
		{Keys: pick, KeyDelay: unit / 2, Settle: 5 * unit},
		{Keys: fmt.Sprintf("{enter}%d{enter}%d{enter}t", startInvoice, endInvoice), KeyDelay: unit / 2},
	}
}
