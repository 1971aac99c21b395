package constants

import "time"

// Header names read by the adapters.
const (
	HeaderHost              = "Host"
	HeaderContentType       = "Content-Type"
	HeaderCookie            = "Cookie"
	HeaderSetCookie         = "Set-Cookie"
	HeaderXForwardedFor     = "X-Forwarded-For"
	HeaderXForwardedProto   = "X-Forwarded-Proto"
	HeaderXRequestedWith    = "X-Requested-With"
	HeaderXRequestID        = "X-Request-Id"
	HeaderCloudTraceContext = "X-Cloud-Trace-Context"
	HeaderTraceParent       = "Traceparent"
	HeaderAzureInvocationID = "X-Azure-Functions-InvocationId"
)

// MaxRequestBodyBytes bounds how much of a request body the net/http adapter reads.
// Matches the synchronous Lambda payload limit.
const MaxRequestBodyBytes = 6 << 20

// ServerReadTimeout is the HTTP server read timeout
const ServerReadTimeout = 15 * time.Second

// ServerWriteTimeout is the HTTP server write timeout
const ServerWriteTimeout = 15 * time.Second

// ServerIdleTimeout is the HTTP server idle timeout
const ServerIdleTimeout = 60 * time.Second

// ServerShutdownTimeout is the timeout for graceful server shutdown
const ServerShutdownTimeout = 5 * time.Second
