// Package httpcal defines the platform-neutral contract that HTTP functions are
// written against: a read-only Request, a Response accumulator, the Integration
// pairing them, and the HTTPError domain error. Platform adapters live under
// pkg/providers and translate native events into these types.
package httpcal

import (
	"maps"
	"slices"
	"strings"
)

// Request is a read-only snapshot of one inbound HTTP call. Accessors return copies;
// nothing a handler does to a returned map or slice changes the request.
type Request interface {
	// BaseURL is the base address the request was received on.
	BaseURL() string
	// Body is the parsed body (JSON value or form map), nil when absent or unparsed.
	Body() any
	// RawBody is the undecoded request payload.
	RawBody() []byte
	Cookies() map[string][]string
	Cookie(name string) (string, bool)
	Host() string
	Hostname() string
	IP() string
	IPs() []string
	Method() Method
	Params() map[string]string
	Param(name string) string
	Path() string
	Protocol() string
	// Query holds string, []any or map[string]any values.
	Query() map[string]any
	// QueryValue returns the first scalar value for name.
	QueryValue(name string) string
	Secure() bool
	Subdomains() []string
	XHR() bool
	Headers() map[string][]string
	// Get returns the first value of a header. Lookup is case-insensitive.
	Get(header string) string
	// Values returns every value of a header. Lookup is case-insensitive.
	Values(header string) []string
	TraceID() string
	// Native is the untouched platform event, for escape-hatch access.
	Native() any
}

// RequestData carries the fields an adapter derived from a native event.
// NewRequest copies it, so adapters may reuse the value afterwards.
type RequestData struct {
	BaseURL    string
	Body       any
	RawBody    []byte
	Cookies    map[string][]string
	Host       string
	Hostname   string
	IP         string
	IPs        []string
	Method     Method
	Params     map[string]string
	Path       string
	Protocol   string
	Query      map[string]any
	Secure     bool
	Subdomains []string
	XHR        bool
	Headers    map[string][]string
	TraceID    string
	Native     any
}

type request struct {
	data RequestData
}

// NewRequest freezes data into a Request. Header names are lowercased; values of
// names differing only in case are merged in iteration order of sorted names.
func NewRequest(data RequestData) Request {
	frozen := data
	frozen.Body = copyValue(data.Body)
	frozen.RawBody = slices.Clone(data.RawBody)
	frozen.Cookies = copyMultiMap(data.Cookies)
	frozen.IPs = slices.Clone(data.IPs)
	frozen.Params = maps.Clone(data.Params)
	frozen.Query = copyQuery(data.Query)
	frozen.Subdomains = slices.Clone(data.Subdomains)
	frozen.Headers = LowercaseHeaders(data.Headers)
	return &request{data: frozen}
}

// LowercaseHeaders returns a copy of headers keyed by lowercase names.
func LowercaseHeaders(headers map[string][]string) map[string][]string {
	if headers == nil {
		return map[string][]string{}
	}
	out := make(map[string][]string, len(headers))
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		key := strings.ToLower(name)
		out[key] = append(out[key], headers[name]...)
	}
	return out
}

func (r *request) BaseURL() string { return r.data.BaseURL }
func (r *request) Body() any { return copyValue(r.data.Body) }
func (r *request) RawBody() []byte { return slices.Clone(r.data.RawBody) }

func (r *request) Cookies() map[string][]string { return copyMultiMap(r.data.Cookies) }

func (r *request) Cookie(name string) (string, bool) {
	values := r.data.Cookies[name]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (r *request) Host() string { return r.data.Host }
func (r *request) Hostname() string { return r.data.Hostname }
func (r *request) IP() string { return r.data.IP }
func (r *request) IPs() []string { return slices.Clone(r.data.IPs) }
func (r *request) Method() Method { return r.data.Method }

func (r *request) Params() map[string]string { return maps.Clone(r.data.Params) }
func (r *request) Param(name string) string { return r.data.Params[name] }

func (r *request) Path() string { return r.data.Path }
func (r *request) Protocol() string { return r.data.Protocol }
func (r *request) Query() map[string]any { return copyQuery(r.data.Query) }

func (r *request) QueryValue(name string) string {
	switch v := r.data.Query[name].(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func (r *request) Secure() bool { return r.data.Secure }
func (r *request) Subdomains() []string { return slices.Clone(r.data.Subdomains) }
func (r *request) XHR() bool { return r.data.XHR }
func (r *request) TraceID() string { return r.data.TraceID }
func (r *request) Native() any { return r.data.Native }
func (r *request) Headers() map[string][]string { return copyMultiMap(r.data.Headers) }

func (r *request) Get(header string) string {
	values := r.data.Headers[strings.ToLower(header)]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (r *request) Values(header string) []string {
	return slices.Clone(r.data.Headers[strings.ToLower(header)])
}

func copyMultiMap(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

func copyQuery(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return copyValue(m).(map[string]any)
}

// copyValue deep-copies the JSON-like values produced by body and query parsing.
func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = copyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = copyValue(item)
		}
		return out
	case []string:
		return slices.Clone(t)
	default:
		return v
	}
}
