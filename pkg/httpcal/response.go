package httpcal

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
)

// Response accumulates the reply of one invocation.
type Response interface {
	// Set replaces a header. Header names are case-insensitive.
	Set(header string, values ...string)
	// Status sets the status code.
	Status(statusCode int)
	// Send sets the body. At most one body write succeeds per invocation.
	Send(body string) error
	// JSON serializes v and sets it as the body.
	JSON(v any) error
}

// ResponseBuilder is the Response every adapter hands to handlers. Adapters read it
// back once after the handler returns to produce the native reply.
type ResponseBuilder struct {
	headers    map[string][]string
	statusCode int
	body       string
	bodySet    bool
}

var _ Response = (*ResponseBuilder)(nil)

// NewResponseBuilder returns an empty response with status 200.
func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{
		headers:    map[string][]string{},
		statusCode: http.StatusOK,
	}
}

// Set replaces the values of header. Calling it with no values removes the header.
func (b *ResponseBuilder) Set(header string, values ...string) {
	key := strings.ToLower(header)
	if len(values) == 0 {
		delete(b.headers, key)
		return
	}
	b.headers[key] = slices.Clone(values)
}

// Status sets the status code.
func (b *ResponseBuilder) Status(statusCode int) {
	b.statusCode = statusCode
}

// Send stores body, or returns ErrBodyAlreadySet if a body was already written.
func (b *ResponseBuilder) Send(body string) error {
	if b.bodySet {
		return ErrBodyAlreadySet
	}
	b.body = body
	b.bodySet = true
	return nil
}

// JSON serializes v and stores it as the body. A content-type of application/json is
// added unless the handler already set one.
func (b *ResponseBuilder) JSON(v any) error {
	if b.bodySet {
		return ErrBodyAlreadySet
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode response body: %w", err)
	}
	if _, ok := b.headers["content-type"]; !ok {
		b.headers["content-type"] = []string{"application/json"}
	}
	return b.Send(string(encoded))
}

// Fail replaces status and body with the outcome of a failed invocation, regardless of
// what the handler wrote before failing.
func (b *ResponseBuilder) Fail(statusCode int, body string) {
	b.statusCode = statusCode
	b.body = body
	b.bodySet = true
}

// StatusCode returns the current status code.
func (b *ResponseBuilder) StatusCode() int {
	return b.statusCode
}

// Body returns the body and whether one was written.
func (b *ResponseBuilder) Body() (string, bool) {
	return b.body, b.bodySet
}

// Header returns the values stored for header.
func (b *ResponseBuilder) Header(header string) []string {
	return slices.Clone(b.headers[strings.ToLower(header)])
}

// Headers returns a copy of every header, keyed by lowercase name.
func (b *ResponseBuilder) Headers() map[string][]string {
	return copyMultiMap(b.headers)
}

// FlatHeaders returns the headers with multiple values joined by commas, skipping the
// names listed in except.
func (b *ResponseBuilder) FlatHeaders(except ...string) map[string]string {
	out := make(map[string]string, len(b.headers))
	for _, name := range slices.Sorted(maps.Keys(b.headers)) {
		if slices.Contains(except, name) {
			continue
		}
		out[name] = strings.Join(b.headers[name], ",")
	}
	return out
}
