package cmd

import (
	"github.com/abctools/abcctl/internal/output"
	"github.com/spf13/cobra"
)

// EnsureResult is the output of the ensure command.
type EnsureResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Window string `yaml:"window" json:"window"`
}

var ensureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Check that the ABC Accounting Client window is open",
	Long:  "Locate the running Client4 main window. Fails if the host application is not open; abcctl never starts the host itself.",
	RunE:  runEnsure,
}

func init() {
	rootCmd.AddCommand(ensureCmd)
}

func runEnsure(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	window, err := client.Window()
	if err != nil {
		return err
	}
	title, err := window.Name()
	if err != nil {
		return err
	}
	return output.Print(EnsureResult{OK: true, Action: "ensure", Window: title})
}
