// Package gcp adapts Google Cloud Functions HTTP invocations, served by the Functions
// Framework, to the canonical request and response contract.
package gcp

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cloud-abstraction-layer/cal/internal/constants"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"
	"github.com/cloud-abstraction-layer/cal/pkg/providers/nethttp"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// DefaultEntryPoint is the function name deployments target by default.
const DefaultEntryPoint = constants.DefaultFunctionName

// Option configures the adapter.
type Option = nethttp.Option

// WithLogger sets the logger used for handler failures.
func WithLogger(log *slog.Logger) Option {
	return nethttp.WithLogger(log)
}

// Wrap adapts fn to the Cloud Functions signature. The reply is buffered and written
// to the ResponseWriter once, after fn returns; errors never reach the framework.
func Wrap(fn httpcal.HandlerFunc, opts ...Option) http.HandlerFunc {
	return nethttp.Wrap(fn, append([]Option{nethttp.WithTraceID(TraceID)}, opts...)...)
}

// Register registers fn with the Functions Framework under name.
func Register(name string, fn httpcal.HandlerFunc, opts ...Option) {
	if name == "" {
		name = DefaultEntryPoint
	}
	functions.HTTP(name, Wrap(fn, opts...))
}

// Start serves the registered functions on port. It blocks until the server stops.
func Start(port string) error {
	return funcframework.Start(port)
}

// TraceID extracts the trace ID Cloud Run attaches to the request, from
// X-Cloud-Trace-Context ("TRACE/SPAN;o=1") or from a W3C traceparent header.
func TraceID(r *http.Request) string {
	if header := r.Header.Get(constants.HeaderCloudTraceContext); header != "" {
		traceID, _, _ := strings.Cut(header, "/")
		if traceID = strings.TrimSpace(traceID); traceID != "" {
			return traceID
		}
	}

	// version-traceid-parentid-flags
	if header := r.Header.Get(constants.HeaderTraceParent); header != "" {
		if fields := strings.Split(header, "-"); len(fields) == 4 && fields[1] != "" {
			return fields[1]
		}
	}

	return ""
}
