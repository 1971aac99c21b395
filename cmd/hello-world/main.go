// Package main implements the hello-world function, deployable unchanged to AWS
// Lambda, Azure Functions, Google Cloud Functions or a plain HTTP server.
package main

import "github.com/cloud-abstraction-layer/cal/cmd/hello-world/cmd"

func main() {
	cmd.Execute()
}
