// Package config manages configuration for cal functions and the hello-world CLI.
// It uses Viper for unified configuration from an optional file and environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cloud-abstraction-layer/cal/internal/constants"
	"github.com/cloud-abstraction-layer/cal/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the configuration shared by every platform entry point.
type Config struct {
	Platform        constants.Platform    `mapstructure:"platform" yaml:"platform" validate:"omitempty,oneof=aws azure gcp local"`
	Environment     constants.Environment `mapstructure:"environment" yaml:"environment" validate:"oneof=development production"`
	LogLevel        string                `mapstructure:"log_level" yaml:"log_level"`
	Port            int                   `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`
	FunctionName    string                `mapstructure:"function_name" yaml:"function_name" validate:"required"`
	RequestTimeout  time.Duration         `mapstructure:"request_timeout" yaml:"request_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration         `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" validate:"min=0"`

	// AzureErrorMapping makes the Azure wrapper translate handler errors into replies
	// instead of failing the invocation.
	AzureErrorMapping bool `mapstructure:"azure_error_mapping" yaml:"azure_error_mapping"`
	// AzureRequestBinding and AzureResponseBinding name the trigger and output bindings.
	AzureRequestBinding  string `mapstructure:"azure_request_binding" yaml:"azure_request_binding" validate:"required"`
	AzureResponseBinding string `mapstructure:"azure_response_binding" yaml:"azure_response_binding" validate:"required"`
}

var validate = validator.New()

// Load loads the configuration using Viper.
// Values come from defaults, then ./cal.yaml when present, then CAL_* environment
// variables. Environment variables take precedence over config file values.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName(constants.ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Platform = constants.Platform(strings.ToLower(strings.TrimSpace(string(cfg.Platform))))
	cfg.Environment = constants.Environment(strings.ToLower(strings.TrimSpace(string(cfg.Environment))))

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// GetLogLevel returns the slog.Level from the string configuration.
// Defaults to INFO if the level string is invalid.
func (c *Config) GetLogLevel() slog.Level {
	return logger.ParseLevel(c.LogLevel)
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("error marshaling config: %w", err)
	}
	return out, nil
}

// Helper functions

func setDefaults(v *viper.Viper) {
	v.SetDefault("platform", "")
	v.SetDefault("environment", string(constants.Development))
	v.SetDefault("log_level", "INFO")
	v.SetDefault("port", constants.DefaultPort)
	v.SetDefault("function_name", constants.DefaultFunctionName)
	v.SetDefault("request_timeout", 0)
	v.SetDefault("shutdown_timeout", constants.ServerShutdownTimeout)
	v.SetDefault("azure_error_mapping", false)
	v.SetDefault("azure_request_binding", "req")
	v.SetDefault("azure_response_binding", "res")
}

func bindEnvVars(v *viper.Viper) {
	envVars := []string{
		"PLATFORM",
		"ENVIRONMENT",
		"LOG_LEVEL",
		"FUNCTION_NAME",
		"REQUEST_TIMEOUT",
		"SHUTDOWN_TIMEOUT",
		"AZURE_ERROR_MAPPING",
		"AZURE_REQUEST_BINDING",
		"AZURE_RESPONSE_BINDING",
	}

	for _, envVar := range envVars {
		// Convert to lowercase to match mapstructure tags (keep underscores)
		configKey := strings.ToLower(envVar)
		_ = v.BindEnv(configKey, constants.EnvPrefix+"_"+envVar)
	}

	// The platforms announce the port to listen on through their own variables.
	_ = v.BindEnv("port", constants.EnvPrefix+"_PORT", constants.AzureCustomHandlerPortEnv, "PORT")
}

// ResolvePlatform returns the configured platform, or the one inferred from the
// variables each runtime sets when none is configured.
func (c *Config) ResolvePlatform() constants.Platform {
	if c.Platform != "" {
		return c.Platform
	}
	return DetectPlatform(os.Getenv)
}

// DetectPlatform infers the hosting platform from its runtime environment variables.
func DetectPlatform(getenv func(string) string) constants.Platform {
	switch {
	case getenv("AWS_LAMBDA_RUNTIME_API") != "":
		return constants.AWS
	case getenv(constants.AzureCustomHandlerPortEnv) != "":
		return constants.Azure
	case getenv("FUNCTION_TARGET") != "", getenv("K_SERVICE") != "":
		return constants.GCP
	default:
		return constants.Local
	}
}
