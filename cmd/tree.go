package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Dump the accessibility tree (classname, name, value per element)",
	Long: "Print the whole accessibility tree under the desktop root, indented by depth. " +
		"Useful for working out the ordinal position of a field on a live host window.",
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	return client.DumpTree(os.Stdout)
}
