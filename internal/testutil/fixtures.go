// Package testutil provides shared testing utilities and helpers.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// APIGatewayV2EventBuilder provides a fluent interface for building HTTP API events.
type APIGatewayV2EventBuilder struct {
	event events.APIGatewayV2HTTPRequest
}

// NewAPIGatewayV2Event creates a GET / event with sensible defaults.
func NewAPIGatewayV2Event() *APIGatewayV2EventBuilder {
	return &APIGatewayV2EventBuilder{
		event: events.APIGatewayV2HTTPRequest{
			Version:  "2.0",
			RouteKey: "$default",
			RawPath:  "/",
			Headers: map[string]string{
				"host":              "api.example.com",
				"x-forwarded-proto": "https",
			},
			RequestContext: events.APIGatewayV2HTTPRequestContext{
				RouteKey:   "$default",
				Stage:      "$default",
				RequestID:  "req-test-123",
				DomainName: "api.example.com",
				HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
					Method:   "GET",
					Path:     "/",
					Protocol: "HTTP/1.1",
					SourceIP: "203.0.113.10",
				},
			},
		},
	}
}

// WithMethod sets the HTTP method.
func (b *APIGatewayV2EventBuilder) WithMethod(method string) *APIGatewayV2EventBuilder {
	b.event.RequestContext.HTTP.Method = method
	return b
}

// WithPath sets the raw path.
func (b *APIGatewayV2EventBuilder) WithPath(path string) *APIGatewayV2EventBuilder {
	b.event.RawPath = path
	b.event.RequestContext.HTTP.Path = path
	return b
}

// WithHeader sets a header using the given name verbatim.
func (b *APIGatewayV2EventBuilder) WithHeader(name, value string) *APIGatewayV2EventBuilder {
	b.event.Headers[name] = value
	return b
}

// WithoutHeader removes a header.
func (b *APIGatewayV2EventBuilder) WithoutHeader(name string) *APIGatewayV2EventBuilder {
	delete(b.event.Headers, name)
	return b
}

// WithCookies sets the raw cookie list.
func (b *APIGatewayV2EventBuilder) WithCookies(cookies ...string) *APIGatewayV2EventBuilder {
	b.event.Cookies = cookies
	return b
}

// WithRawQuery sets the raw query string.
func (b *APIGatewayV2EventBuilder) WithRawQuery(query string) *APIGatewayV2EventBuilder {
	b.event.RawQueryString = query
	return b
}

// WithBody sets the body.
func (b *APIGatewayV2EventBuilder) WithBody(body string, base64Encoded bool) *APIGatewayV2EventBuilder {
	b.event.Body = body
	b.event.IsBase64Encoded = base64Encoded
	return b
}

// WithPathParameters sets the path parameters.
func (b *APIGatewayV2EventBuilder) WithPathParameters(params map[string]string) *APIGatewayV2EventBuilder {
	b.event.PathParameters = params
	return b
}

// Build returns the constructed event.
func (b *APIGatewayV2EventBuilder) Build() events.APIGatewayV2HTTPRequest {
	return b.event
}

// ReplyRecorder is a completion callback stub that counts invocations.
type ReplyRecorder struct {
	mu    sync.Mutex
	calls int
	err   error
	reply events.APIGatewayV2HTTPResponse
}

// Callback records one reply.
func (r *ReplyRecorder) Callback(err error, reply events.APIGatewayV2HTTPResponse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.err = err
	r.reply = reply
}

// Calls returns how many times Callback ran.
func (r *ReplyRecorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// Reply returns the last recorded reply and error.
func (r *ReplyRecorder) Reply() (events.APIGatewayV2HTTPResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reply, r.err
}

// TestContext returns a context with a reasonable timeout for tests.
func TestContext() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	_ = cancel // Caller should handle cleanup if needed
	return ctx
}

// SilentLogger returns a logger that discards all output.
func SilentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
