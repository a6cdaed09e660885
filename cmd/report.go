package cmd

import (
	"fmt"

	"github.com/abctools/abcctl/internal/output"
	"github.com/spf13/cobra"
)

// ReportResult is the output of the report command.
type ReportResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Report string `yaml:"report" json:"report"`
	From   uint64 `yaml:"from"   json:"from"`
	To     uint64 `yaml:"to"     json:"to"`
}

var reportCmd = &cobra.Command{
	Use:   "report <311|323>",
	Short: "Generate a customer invoice report for an invoice range",
	Long: "Drive the host's report menu. 311 is the CUSTOMER INVOICE LEDGER, " +
		"323 is CUSTOMER INVOICE PAYMENTS. The host renders the report itself.",
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().Uint64("from", 0, "First invoice of the range")
	reportCmd.Flags().Uint64("to", 0, "Last invoice of the range")
	_ = reportCmd.MarkFlagRequired("from")
	_ = reportCmd.MarkFlagRequired("to")
}

func runReport(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetUint64("from")
	to, _ := cmd.Flags().GetUint64("to")

	client, err := newClient()
	if err != nil {
		return err
	}
	window, err := client.Window()
	if err != nil {
		return err
	}

	switch args[0] {
	case "311":
		err = client.Report311(window, from, to)
	case "323":
		err = client.Report323(window, from, to)
	default:
		return fmt.Errorf("unknown report %q (use 311 or 323)", args[0])
	}
	if err != nil {
		return err
	}
	return output.Print(ReportResult{OK: true, Action: "report", Report: args[0], From: from, To: to})
}
