package cmd

import (
	"fmt"
	"strconv"

	"github.com/cloud-abstraction-layer/cal/internal/output"
	"github.com/cloud-abstraction-layer/cal/pkg/providers/gcp"

	"github.com/spf13/cobra"
)

var gcpCmd = &cobra.Command{
	Use:   "gcp",
	Short: "Run under the Google Cloud Functions Framework",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGCP(cmd)
	},
}

func init() {
	rootCmd.AddCommand(gcpCmd)
}

func runGCP(cmd *cobra.Command) error {
	cfg, err := getConfigFromContext(cmd)
	if err != nil {
		return err
	}

	gcp.Register(cfg.FunctionName, handler, gcp.WithLogger(getLoggerFromContext(cmd)))

	output.Infof("Serving function %s with the Functions Framework on %s",
		output.Bold(cfg.FunctionName), output.Bold(cfg.Addr()))
	if err = gcp.Start(strconv.Itoa(cfg.Port)); err != nil {
		return fmt.Errorf("functions framework failed: %w", err)
	}
	return nil
}
