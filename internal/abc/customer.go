package abc

import (
	"errors"
	"fmt"

	"github.com/abctools/abcctl/internal/uia"
	"go.uber.org/zap"
)

// LoadCustomerRecord makes the customer identified by code (e.g. "DOEJO 0")
// the visible record on the customers screen.
func (c *Client) LoadCustomerRecord(screen uia.Element, code string) error {
	box, err := c.loc.FindFirst(uia.Query{Scope: screen, ClassName: TextBoxClass})
	if err != nil {
		return fmt.Errorf("customer code field: %w", err)
	}
	if err := box.Focus(); err != nil {
		return fmt.Errorf("focus customer code field: %w", err)
	}
	return c.keys.Send(box, code+"{enter}", c.timing.Unit)
}

// JDFAccountByCustomer returns the customer's John Deere Financial account
// number. The {up} prefix clears any partially typed code before the lookup.
// Customers with no JDF account simply lack the text box, so a missing ordinal
// maps to the empty string rather than an error.
func (c *Client) JDFAccountByCustomer(screen uia.Element, code string) (string, error) {
	if err := c.keys.Send(screen, "{up}"+code+"{enter}", c.timing.Unit/4); err != nil {
		return "", err
	}

	account, err := c.fields.Read(screen, TextBoxClass, jdfAccountFieldIndex)
	if err != nil {
		var idxErr *uia.FieldIndexError
		if errors.As(err, &idxErr) {
			c.log.Debug("no JDF account field on record", zap.String("customer", code))
			return "", nil
		}
		return "", fmt.Errorf("JDF account field: %w", err)
	}
	return account, nil
}
