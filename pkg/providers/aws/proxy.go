package aws

import (
	"net/http"

	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"
	"github.com/cloud-abstraction-layer/cal/pkg/providers/nethttp"

	"github.com/akrylysov/algnhsa"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// NewProxyHandler serves fn behind any event source algnhsa understands: REST API
// (v1) and HTTP API (v2) proxy events, ALB target groups and Function URLs. Requests
// go through the net/http normalizer instead of the HTTP API one.
func NewProxyHandler(fn httpcal.HandlerFunc, opts ...Option) lambda.Handler {
	o := newOptions(opts)
	handler := nethttp.Wrap(fn,
		nethttp.WithLogger(o.log),
		nethttp.WithTraceID(lambdaRequestID))

	return algnhsa.New(handler, &algnhsa.Options{
		BinaryContentTypes: o.binaryContentTypes,
	})
}

// StartProxy runs fn through NewProxyHandler. It does not return.
func StartProxy(fn httpcal.HandlerFunc, opts ...Option) {
	lambda.Start(NewProxyHandler(fn, opts...))
}

func lambdaRequestID(r *http.Request) string {
	if lc, ok := lambdacontext.FromContext(r.Context()); ok {
		return lc.AwsRequestID
	}
	return ""
}
