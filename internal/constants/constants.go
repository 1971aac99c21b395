// Package constants defines global constants used throughout cal.
// It includes version information, environments, platforms and header names.
package constants

// ProjectName is the name of the CLI tool and library.
const ProjectName = "cal"

// EnvPrefix is the prefix of every environment variable read by the config package.
const EnvPrefix = "CAL"

// ConfigFileName is the base name (without extension) of the optional config file.
const ConfigFileName = "cal"

// DefaultFunctionName is the entry point name used when none is configured.
// GCP deployments reference it as the function target.
const DefaultFunctionName = "entrypoint"

// DefaultPort is the port used by the local and Azure custom handler servers.
const DefaultPort = 8080

// AzureCustomHandlerPortEnv is the variable the Azure Functions host uses to tell a
// custom handler which port to listen on.
const AzureCustomHandlerPortEnv = "FUNCTIONS_CUSTOMHANDLER_PORT"
