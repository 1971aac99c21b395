package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloud-abstraction-layer/cal/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_GetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected slog.Level
	}{
		{
			name:     "DEBUG level",
			logLevel: "DEBUG",
			expected: slog.LevelDebug,
		},
		{
			name:     "WARN level",
			logLevel: "WARN",
			expected: slog.LevelWarn,
		},
		{
			name:     "invalid level defaults to INFO",
			logLevel: "INVALID",
			expected: slog.LevelInfo,
		},
		{
			name:     "empty string defaults to INFO",
			logLevel: "",
			expected: slog.LevelInfo,
		},
		{
			name:     "lowercase level",
			logLevel: "debug",
			expected: slog.LevelDebug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			result := cfg.GetLogLevel()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, constants.Platform(""), cfg.Platform)
	assert.Equal(t, constants.Development, cfg.Environment)
	assert.Equal(t, constants.DefaultPort, cfg.Port)
	assert.Equal(t, constants.DefaultFunctionName, cfg.FunctionName)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.Equal(t, constants.ServerShutdownTimeout, cfg.ShutdownTimeout)
	assert.False(t, cfg.AzureErrorMapping)
	assert.Equal(t, "req", cfg.AzureRequestBinding)
	assert.Equal(t, "res", cfg.AzureResponseBinding)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CAL_PLATFORM", "AZURE")
	t.Setenv("CAL_ENVIRONMENT", "production")
	t.Setenv("CAL_LOG_LEVEL", "debug")
	t.Setenv("CAL_FUNCTION_NAME", "hello")
	t.Setenv("CAL_REQUEST_TIMEOUT", "30s")
	t.Setenv("CAL_AZURE_ERROR_MAPPING", "true")
	t.Setenv(constants.AzureCustomHandlerPortEnv, "7071")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, constants.Azure, cfg.Platform)
	assert.Equal(t, constants.Production, cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.GetLogLevel())
	assert.Equal(t, "hello", cfg.FunctionName)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.AzureErrorMapping)
	assert.Equal(t, 7071, cfg.Port)
}

func TestLoad_PortPrecedence(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("CAL_PORT", "9100")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := []byte("platform: gcp\nfunction_name: fromfile\nport: 8181\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cal.yaml"), content, 0o600))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, constants.GCP, cfg.Platform)
	assert.Equal(t, "fromfile", cfg.FunctionName)
	assert.Equal(t, 8181, cfg.Port)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown platform",
			env:  map[string]string{"CAL_PLATFORM": "heroku"},
		},
		{
			name: "unknown environment",
			env:  map[string]string{"CAL_ENVIRONMENT": "staging"},
		},
		{
			name: "port out of range",
			env:  map[string]string{"CAL_PORT": "70000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestConfig_YAML(t *testing.T) {
	cfg := &Config{
		Platform:     constants.AWS,
		Environment:  constants.Production,
		Port:         8080,
		FunctionName: "entrypoint",
	}

	out, err := cfg.YAML()

	require.NoError(t, err)
	assert.Contains(t, string(out), "platform: aws")
	assert.Contains(t, string(out), "function_name: entrypoint")
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected constants.Platform
	}{
		{name: "lambda", env: map[string]string{"AWS_LAMBDA_RUNTIME_API": "127.0.0.1:9001"}, expected: constants.AWS},
		{name: "azure custom handler", env: map[string]string{"FUNCTIONS_CUSTOMHANDLER_PORT": "7071"}, expected: constants.Azure},
		{name: "cloud functions", env: map[string]string{"FUNCTION_TARGET": "entrypoint"}, expected: constants.GCP},
		{name: "cloud run", env: map[string]string{"K_SERVICE": "hello"}, expected: constants.GCP},
		{name: "nothing set", env: map[string]string{}, expected: constants.Local},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			assert.Equal(t, tt.expected, DetectPlatform(getenv))
		})
	}
}

func TestResolvePlatform_PrefersConfigured(t *testing.T) {
	t.Setenv("AWS_LAMBDA_RUNTIME_API", "127.0.0.1:9001")

	cfg := &Config{Platform: constants.GCP}
	assert.Equal(t, constants.GCP, cfg.ResolvePlatform())

	cfg.Platform = ""
	assert.Equal(t, constants.AWS, cfg.ResolvePlatform())
}
