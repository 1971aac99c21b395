package cmd

import (
	"github.com/cloud-abstraction-layer/cal/internal/output"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := getConfigFromContext(cmd)
		if err != nil {
			return err
		}

		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		output.Printf("%s", out)
		output.Printf("# resolved platform: %s\n", cfg.ResolvePlatform())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
