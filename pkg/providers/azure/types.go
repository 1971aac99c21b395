// Package azure adapts Azure Functions HTTP triggers, served through the custom
// handler protocol, to the canonical request and response contract.
package azure

import (
	"context"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
)

// Default binding names of an HTTP-triggered function with an HTTP output.
const (
	DefaultRequestBinding  = "req"
	DefaultResponseBinding = "res"
)

// InvokeRequest is the payload the Functions host posts to a custom handler.
type InvokeRequest struct {
	Data     map[string]json.RawMessage `json:"Data"`
	Metadata map[string]json.RawMessage `json:"Metadata"`
}

// InvokeResponse is the payload a custom handler returns to the Functions host.
type InvokeResponse struct {
	Outputs     map[string]any `json:"Outputs"`
	Logs        []string       `json:"Logs"`
	ReturnValue any            `json:"ReturnValue"`
}

// HTTPRequest is the HTTP trigger binding data.
type HTTPRequest struct {
	URL        string              `json:"Url"`
	Method     string              `json:"Method"`
	Query      map[string]string   `json:"Query"`
	Headers    map[string][]string `json:"Headers"`
	Params     map[string]string   `json:"Params"`
	Body       json.RawMessage     `json:"Body"`
	Identities []json.RawMessage   `json:"Identities"`
}

// RawBody returns the request body. The host delivers textual bodies as a JSON
// string, which is unquoted; anything else is returned as sent.
func (r *HTTPRequest) RawBody() []byte {
	if len(r.Body) == 0 || string(r.Body) == "null" {
		return nil
	}
	var text string
	if r.Body[0] == '"' && json.Unmarshal(r.Body, &text) == nil {
		return []byte(text)
	}
	return []byte(r.Body)
}

// HTTPResponse is the HTTP output binding data.
type HTTPResponse struct {
	StatusCode int               `json:"statusCode"`
	Body       string            `json:"body"`
	Headers    map[string]string `json:"headers,omitempty"`
}

// Context carries the invocation metadata and receives the reply.
type Context struct {
	InvocationID string
	FunctionName string
	Metadata     map[string]json.RawMessage
	// Res is set by the wrapped function once the invocation completes successfully.
	Res *HTTPResponse

	mu   sync.Mutex
	logs []string
}

// Log appends a line to the logs forwarded to the Functions host.
func (c *Context) Log(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logs = append(c.logs, fmt.Sprintf(format, args...))
}

// Logs returns the lines recorded with Log.
func (c *Context) Logs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.logs...)
}

type contextKey struct{}

// WithContext returns ctx carrying the invocation context c.
func WithContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// ContextFrom returns the invocation context of the running function, which handlers
// use to forward log lines to the Functions host.
func ContextFrom(ctx context.Context) (*Context, bool) {
	c, ok := ctx.Value(contextKey{}).(*Context)
	return c, ok && c != nil
}
