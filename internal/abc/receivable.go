package abc

import (
	"fmt"
	"strconv"

	"github.com/abctools/abcctl/internal/uia"
	"go.uber.org/zap"
)

// LoadInvoice makes the invoice identified by num the visible record on the
// invoices screen: focus the first text box (the invoice number entry field)
// and type the number plus the confirm key. There is no independent check that
// the right record loaded — the host gives nothing to check against.
func (c *Client) LoadInvoice(screen uia.Element, num uint64) error {
	box, err := c.loc.FindFirst(uia.Query{Scope: screen, ClassName: TextBoxClass})
	if err != nil {
		return fmt.Errorf("invoice number field: %w", err)
	}
	if err := box.Focus(); err != nil {
		return fmt.Errorf("focus invoice number field: %w", err)
	}
	return c.keys.Send(box, strconv.FormatUint(num, 10)+"{enter}", c.timing.Unit)
}

// IsInvoiceFullyPaid loads the invoice and compares the paid and total fields.
// Fully paid means the two displayed strings are byte-for-byte equal — the
// host formats both the same way, so string equality stands in for numeric
// comparison on purpose.
func (c *Client) IsInvoiceFullyPaid(screen uia.Element, num uint64) (bool, error) {
	if err := c.LoadInvoice(screen, num); err != nil {
		return false, err
	}
	paid, err := c.fields.Read(screen, TextBoxClass, paidFieldIndex)
	if err != nil {
		return false, fmt.Errorf("paid field: %w", err)
	}
	total, err := c.fields.Read(screen, TextBoxClass, totalFieldIndex)
	if err != nil {
		return false, fmt.Errorf("total field: %w", err)
	}
	return paid == total, nil
}

// SendInvoiceToJDF resubmits an invoice to John Deere Financial and reports
// whether it went through. The host never acknowledges a submission, so
// success is inferred from a navigation side effect: after the resubmission
// macro the host advances past the invoice iff it was accepted.
//
// Already-paid invoices short-circuit to true. When the displayed invoice
// number is unchanged after the macro, the submission did not go through: the
// pending dialog is acknowledged and escaped, the half-entered state is thrown
// away with a discard new-record sequence, and false is returned.
func (c *Client) SendInvoiceToJDF(screen uia.Element, num uint64) (bool, error) {
	if err := c.LoadInvoice(screen, num); err != nil {
		return false, err
	}

	paid, err := c.fields.Read(screen, TextBoxClass, paidFieldIndex)
	if err != nil {
		return false, fmt.Errorf("paid field: %w", err)
	}
	if paid != "" {
		c.log.Info("invoice already has payment posted", zap.Uint64("invoice", num))
		return true, nil
	}

	if err := c.keys.Send(screen, "{F9}7R", 3*c.timing.Unit); err != nil {
		return false, err
	}
	c.timing.Pause(c.timing.ResubmitSettle)

	box, err := c.loc.FindFirst(uia.Query{Scope: screen, ClassName: TextBoxClass})
	if err != nil {
		return false, fmt.Errorf("invoice number field after resubmit: %w", err)
	}
	shown, err := box.Value()
	if err != nil {
		return false, fmt.Errorf("read invoice number after resubmit: %w", err)
	}

	if shown == strconv.FormatUint(num, 10) {
		c.log.Warn("host did not advance past invoice, submission rejected", zap.Uint64("invoice", num))
		if err := c.keys.Send(screen, "{enter}{esc}", 3*c.timing.Unit); err != nil {
			return false, err
		}
		if err := c.keys.SendHold(screen, "{ctrl}", "n", 3*c.timing.Unit); err != nil {
			return false, err
		}
		if err := c.keys.Send(screen, "{right}{enter}", 3*c.timing.Unit); err != nil {
			return false, err
		}
		return false, nil
	}

	c.log.Info("invoice sent to JDF", zap.Uint64("invoice", num), zap.String("now showing", shown))
	return true, nil
}
