package cmd

import (
	"github.com/cloud-abstraction-layer/cal/internal/constants"
	"github.com/cloud-abstraction-layer/cal/internal/output"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version",
	Run: func(_ *cobra.Command, _ []string) {
		output.Printf("%s %s\n", output.Bold(constants.ProjectName), output.Gray(*constants.GetVersion()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
