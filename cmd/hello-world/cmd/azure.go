package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cloud-abstraction-layer/cal/internal/output"
	"github.com/cloud-abstraction-layer/cal/internal/server"
	"github.com/cloud-abstraction-layer/cal/pkg/providers/azure"

	"github.com/spf13/cobra"
)

var azureCmd = &cobra.Command{
	Use:   "azure",
	Short: "Run as an Azure Functions custom handler",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAzure(cmd)
	},
}

func init() {
	rootCmd.AddCommand(azureCmd)
}

func runAzure(cmd *cobra.Command) error {
	cfg, err := getConfigFromContext(cmd)
	if err != nil {
		return err
	}
	log := getLoggerFromContext(cmd)

	opts := []azure.Option{
		azure.WithLogger(log),
		azure.WithBindings(cfg.AzureRequestBinding, cfg.AzureResponseBinding),
	}
	if cfg.AzureErrorMapping {
		opts = append(opts, azure.WithErrorMapping())
	}
	handlerServer := azure.NewServer(cfg.FunctionName, handler, opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	output.Infof("Serving function %s as an Azure custom handler on %s",
		output.Bold(cfg.FunctionName), output.Bold(cfg.Addr()))
	return server.Run(ctx, server.New(cfg.Addr(), handlerServer.Handler()), log, cfg.ShutdownTimeout)
}
