package cmd

import (
	"github.com/cloud-abstraction-layer/cal/pkg/providers/aws"

	"github.com/spf13/cobra"
)

var binaryContentTypes []string

var awsCmd = &cobra.Command{
	Use:   "aws",
	Short: "Run as an AWS Lambda function behind an API Gateway HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAWS(cmd)
	},
}

var awsProxyCmd = &cobra.Command{
	Use:   "aws-proxy",
	Short: "Run as an AWS Lambda function behind any proxy integration (REST API, ALB, Function URL)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		aws.StartProxy(handler,
			aws.WithLogger(getLoggerFromContext(cmd)),
			aws.WithBinaryContentTypes(binaryContentTypes...))
		return nil
	},
}

func init() {
	awsProxyCmd.Flags().StringSliceVar(&binaryContentTypes, "binary-content-types", nil,
		"Response content types to base64 encode")
	rootCmd.AddCommand(awsCmd)
	rootCmd.AddCommand(awsProxyCmd)
}

func runAWS(cmd *cobra.Command) error {
	aws.Start(handler, aws.WithLogger(getLoggerFromContext(cmd)))
	return nil
}
