package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cloud-abstraction-layer/cal/internal/output"
	"github.com/cloud-abstraction-layer/cal/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the function over plain HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command) error {
	cfg, err := getConfigFromContext(cmd)
	if err != nil {
		return err
	}
	log := getLoggerFromContext(cmd)

	router := server.NewRouter(handler, log, cfg.RequestTimeout)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	output.Infof("Starting local server on %s (Ctrl+C to stop)", output.Bold(cfg.Addr()))
	output.Infof("Health check: http://localhost%s%s", cfg.Addr(), server.HealthPath)
	if err = server.Run(ctx, server.New(cfg.Addr(), router.Handler()), log, cfg.ShutdownTimeout); err != nil {
		return err
	}
	output.Successf("Server stopped")
	return nil
}
