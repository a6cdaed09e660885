package cmd

import (
	"github.com/abctools/abcctl/internal/abc"
	"github.com/abctools/abcctl/internal/output"
	"github.com/abctools/abcctl/internal/uia"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// CustomerResult is the output of the customer subcommands.
type CustomerResult struct {
	OK         bool   `yaml:"ok"                    json:"ok"`
	Action     string `yaml:"action"                json:"action"`
	Customer   string `yaml:"customer"              json:"customer"`
	JDFAccount string `yaml:"jdf_account,omitempty" json:"jdf_account,omitempty"`
	Copied     bool   `yaml:"copied,omitempty"      json:"copied,omitempty"`
}

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Operate on customer records",
}

var customerLoadCmd = &cobra.Command{
	Use:   "load <code>",
	Short: "Load a customer record by code (e.g. \"DOEJO 0\")",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerLoad,
}

var customerJDFCmd = &cobra.Command{
	Use:   "jdf-account <code>",
	Short: "Look up a customer's John Deere Financial account number",
	Long:  "Load the customer and read the JDF account field. Customers without a JDF account yield an empty result.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerJDF,
}

func init() {
	rootCmd.AddCommand(customerCmd)
	customerCmd.AddCommand(customerLoadCmd)
	customerCmd.AddCommand(customerJDFCmd)
	customerJDFCmd.Flags().Bool("copy", false, "Copy the account number to the clipboard")
}

func customersScreen() (*abc.Client, uia.Element, error) {
	client, err := newClient()
	if err != nil {
		return nil, nil, err
	}
	window, err := client.Window()
	if err != nil {
		return nil, nil, err
	}
	screen, err := client.CustomersScreen(window)
	if err != nil {
		return nil, nil, err
	}
	return client, screen, nil
}

func runCustomerLoad(cmd *cobra.Command, args []string) error {
	client, screen, err := customersScreen()
	if err != nil {
		return err
	}
	if err := client.LoadCustomerRecord(screen, args[0]); err != nil {
		return err
	}
	return output.Print(CustomerResult{OK: true, Action: "load", Customer: args[0]})
}

func runCustomerJDF(cmd *cobra.Command, args []string) error {
	client, screen, err := customersScreen()
	if err != nil {
		return err
	}
	account, err := client.JDFAccountByCustomer(screen, args[0])
	if err != nil {
		return err
	}

	result := CustomerResult{OK: true, Action: "jdf-account", Customer: args[0], JDFAccount: account}
	if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag && account != "" {
		if err := clipboard.WriteAll(account); err != nil {
			return err
		}
		result.Copied = true
	}
	return output.Print(result)
}
