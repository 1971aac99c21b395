package cmd

import (
	"context"
	"log/slog"
	"testing"

	"github.com/cloud-abstraction-layer/cal/internal/config"
	"github.com/cloud-abstraction-layer/cal/internal/constants"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFromContext(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := getConfigFromContext(cmd)
	require.Error(t, err)

	cfg := &config.Config{FunctionName: "hello"}
	cmd.SetContext(context.WithValue(context.Background(), constants.ConfigCtxKey, cfg))

	got, err := getConfigFromContext(cmd)
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}

func TestGetLoggerFromContext(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	assert.Same(t, slog.Default(), getLoggerFromContext(cmd))

	log := slog.New(slog.DiscardHandler)
	cmd.SetContext(context.WithValue(context.Background(), constants.LoggerCtxKey, log))
	assert.Same(t, log, getLoggerFromContext(cmd))
}

func TestRunPlatform_Unsupported(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	err := runPlatform(cmd, constants.Platform("heroku"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "heroku")
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, expected := range []string{"aws", "aws-proxy", "azure", "gcp", "serve", "config", "version"} {
		assert.Contains(t, names, expected)
	}
}
