package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Asks who to track and writes the answers to the config file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runSetup(stdinLines(cmd), cmd.OutOrStdout())
		return err
	},
}
