package cmd

import (
	"github.com/abctools/abcctl/internal/output"
	"github.com/spf13/cobra"
)

// NewRecordResult is the output of the new-record command.
type NewRecordResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Save   bool   `yaml:"save"   json:"save"`
}

var newRecordCmd = &cobra.Command{
	Use:   "new-record",
	Short: "Start a new record (Ctrl+N), saving or discarding pending changes",
	Long: "Send Ctrl+N to the host window. If the \"Save changes before proceeding?\" dialog " +
		"appears it is answered according to --save; if it does not appear there was nothing to save.",
	RunE: runNewRecord,
}

func init() {
	rootCmd.AddCommand(newRecordCmd)
	newRecordCmd.Flags().Bool("save", false, "Save pending changes instead of discarding them")
}

func runNewRecord(cmd *cobra.Command, args []string) error {
	save, _ := cmd.Flags().GetBool("save")

	client, err := newClient()
	if err != nil {
		return err
	}
	window, err := client.Window()
	if err != nil {
		return err
	}
	if err := client.NewRecord(window, save); err != nil {
		return err
	}
	return output.Print(NewRecordResult{OK: true, Action: "new-record", Save: save})
}
