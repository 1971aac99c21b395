package constants

import "strings"

// Platform represents the serverless platform a function is deployed to.
type Platform string

const (
	// AWS is API Gateway v2 / Lambda.
	AWS Platform = "aws"
	// Azure is Azure Functions (custom handler).
	Azure Platform = "azure"
	// GCP is Google Cloud Functions.
	GCP Platform = "gcp"
	// Local is the development HTTP server.
	Local Platform = "local"
)

// Environment represents the execution environment used to configure logging.
type Environment string

// Environment types for logger configuration.
const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Platforms lists every platform the CLI can serve.
var Platforms = []Platform{AWS, Azure, GCP, Local}

// PlatformsString returns the platforms as a comma-separated list.
func PlatformsString() string {
	names := make([]string, len(Platforms))
	for i, p := range Platforms {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
