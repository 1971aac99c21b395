// Package cmd implements the hello-world command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/cloud-abstraction-layer/cal/cmd/hello-world/app"
	"github.com/cloud-abstraction-layer/cal/internal/config"
	"github.com/cloud-abstraction-layer/cal/internal/constants"
	"github.com/cloud-abstraction-layer/cal/internal/logger"
	"github.com/cloud-abstraction-layer/cal/internal/output"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"

	"github.com/spf13/cobra"
)

var (
	debug   bool
	verbose bool
)

// handler is the function every subcommand serves.
var handler httpcal.HandlerFunc = app.Hello

var rootCmd = &cobra.Command{
	Use:   "hello-world",
	Short: "Serve the hello-world function",
	Long: fmt.Sprintf(`hello-world - %s %s
Serves the hello-world function on the platform detected from the environment,
or on the one given as subcommand.

Supported platforms: %s`,
		constants.ProjectName, *constants.GetVersion(), constants.PlatformsString()),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		level := cfg.GetLogLevel()
		if debug {
			level = slog.LevelDebug
		}
		log := logger.Initialize(cfg.Environment, level)

		if verbose {
			output.Infof("Version: %s", output.Bold(*constants.GetVersion()))
			output.Infof("Environment: %s", output.Bold(string(cfg.Environment)))
		}

		ctx := context.WithValue(cmd.Context(), constants.ConfigCtxKey, cfg)
		ctx = context.WithValue(ctx, constants.LoggerCtxKey, log)
		cmd.SetContext(ctx)

		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := getConfigFromContext(cmd)
		if err != nil {
			return err
		}

		platform := cfg.ResolvePlatform()
		if cfg.Platform == "" && platform == constants.Local {
			output.Warningf("No platform configured or detected, serving locally")
		}
		if verbose {
			output.Infof("Platform: %s", output.Bold(string(platform)))
		}
		return runPlatform(cmd, platform)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Errorf("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debugging logs")
}

func runPlatform(cmd *cobra.Command, platform constants.Platform) error {
	switch platform {
	case constants.AWS:
		return runAWS(cmd)
	case constants.Azure:
		return runAzure(cmd)
	case constants.GCP:
		return runGCP(cmd)
	case constants.Local:
		return runServe(cmd)
	default:
		return fmt.Errorf("unsupported platform %q", platform)
	}
}

func getConfigFromContext(cmd *cobra.Command) (*config.Config, error) {
	cfg, ok := cmd.Context().Value(constants.ConfigCtxKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	return cfg, nil
}

func getLoggerFromContext(cmd *cobra.Command) *slog.Logger {
	if log, ok := cmd.Context().Value(constants.LoggerCtxKey).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}
