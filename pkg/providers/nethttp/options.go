// Package nethttp normalizes net/http requests into the canonical request contract
// and flushes canonical responses back onto an http.ResponseWriter.
package nethttp

import (
	"log/slog"
	"net/http"

	"github.com/cloud-abstraction-layer/cal/internal/constants"
)

// Option configures the normalizer and the handler wrapper.
type Option func(*options)

type options struct {
	log          *slog.Logger
	traceID      func(*http.Request) string
	maxBodyBytes int64
}

// WithLogger sets the logger used for handler failures.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithTraceID sets a platform-specific trace ID extractor. When it returns "" the
// default lookup is used.
func WithTraceID(fn func(*http.Request) string) Option {
	return func(o *options) {
		o.traceID = fn
	}
}

// WithMaxBodyBytes caps the number of body bytes read per request.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		log:          slog.Default(),
		maxBodyBytes: constants.MaxRequestBodyBytes,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
