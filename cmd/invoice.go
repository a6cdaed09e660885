package cmd

import (
	"fmt"
	"strconv"

	"github.com/abctools/abcctl/internal/abc"
	"github.com/abctools/abcctl/internal/output"
	"github.com/abctools/abcctl/internal/uia"
	"github.com/spf13/cobra"
)

// InvoiceResult is the output of the invoice subcommands.
type InvoiceResult struct {
	OK      bool   `yaml:"ok"              json:"ok"`
	Action  string `yaml:"action"          json:"action"`
	Invoice uint64 `yaml:"invoice"         json:"invoice"`
	Paid    *bool  `yaml:"paid,omitempty"  json:"paid,omitempty"`
	Sent    *bool  `yaml:"sent,omitempty"  json:"sent,omitempty"`
}

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Operate on invoices in the Accounts Receivable screen",
}

var invoiceLoadCmd = &cobra.Command{
	Use:   "load <number>",
	Short: "Load an invoice by number into the invoices screen",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceLoad,
}

var invoicePaidCmd = &cobra.Command{
	Use:   "paid <number>",
	Short: "Check whether an invoice is fully paid",
	Long:  "Load the invoice and compare its paid and total fields. Fully paid means the two displayed strings are exactly equal.",
	RunE:  runInvoicePaid,
	Args:  cobra.ExactArgs(1),
}

var invoiceSendJDFCmd = &cobra.Command{
	Use:   "send-jdf <number>",
	Short: "Resubmit an invoice to John Deere Financial",
	Long: "Load the invoice and, unless a payment is already posted, issue the JDF resubmission " +
		"macro. Success is inferred from the host advancing past the invoice afterwards.",
	Args: cobra.ExactArgs(1),
	RunE: runInvoiceSendJDF,
}

func init() {
	rootCmd.AddCommand(invoiceCmd)
	invoiceCmd.AddCommand(invoiceLoadCmd)
	invoiceCmd.AddCommand(invoicePaidCmd)
	invoiceCmd.AddCommand(invoiceSendJDFCmd)
}

// invoicesScreen resolves the client, host window, and invoices screen shared
// by every invoice subcommand.
func invoicesScreen() (*abc.Client, uia.Element, error) {
	client, err := newClient()
	if err != nil {
		return nil, nil, err
	}
	window, err := client.Window()
	if err != nil {
		return nil, nil, err
	}
	screen, err := client.InvoicesScreen(window)
	if err != nil {
		return nil, nil, err
	}
	return client, screen, nil
}

func parseInvoiceNumber(arg string) (uint64, error) {
	num, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid invoice number %q", arg)
	}
	return num, nil
}

func runInvoiceLoad(cmd *cobra.Command, args []string) error {
	num, err := parseInvoiceNumber(args[0])
	if err != nil {
		return err
	}
	client, screen, err := invoicesScreen()
	if err != nil {
		return err
	}
	if err := client.LoadInvoice(screen, num); err != nil {
		return err
	}
	return output.Print(InvoiceResult{OK: true, Action: "load", Invoice: num})
}

func runInvoicePaid(cmd *cobra.Command, args []string) error {
	num, err := parseInvoiceNumber(args[0])
	if err != nil {
		return err
	}
	client, screen, err := invoicesScreen()
	if err != nil {
		return err
	}
	paid, err := client.IsInvoiceFullyPaid(screen, num)
	if err != nil {
		return err
	}
	return output.Print(InvoiceResult{OK: true, Action: "paid", Invoice: num, Paid: &paid})
}

func runInvoiceSendJDF(cmd *cobra.Command, args []string) error {
	num, err := parseInvoiceNumber(args[0])
	if err != nil {
		return err
	}
	client, screen, err := invoicesScreen()
	if err != nil {
		return err
	}
	sent, err := client.SendInvoiceToJDF(screen, num)
	if err != nil {
		return err
	}
	return output.Print(InvoiceResult{OK: true, Action: "send-jdf", Invoice: num, Sent: &sent})
}
