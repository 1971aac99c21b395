package azure

import (
	"context"
	"log/slog"

	"github.com/cloud-abstraction-layer/cal/internal/logger"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"
)

// Func is the native signature produced by Wrap.
type Func func(ctx context.Context, c *Context, req *HTTPRequest) error

// Option configures the adapter.
type Option func(*options)

type options struct {
	log             *slog.Logger
	mapErrors       bool
	requestBinding  string
	responseBinding string
}

// WithLogger sets the logger used by the wrapper and the custom handler server.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithErrorMapping makes the wrapper translate handler errors into a reply, the same
// way the other adapters do, instead of returning them to the host.
func WithErrorMapping() Option {
	return func(o *options) {
		o.mapErrors = true
	}
}

// WithBindings overrides the names of the trigger and output bindings.
func WithBindings(request, response string) Option {
	return func(o *options) {
		if request != "" {
			o.requestBinding = request
		}
		if response != "" {
			o.responseBinding = response
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		log:             slog.Default(),
		requestBinding:  DefaultRequestBinding,
		responseBinding: DefaultResponseBinding,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Wrap adapts fn to the Azure function signature. On success c.Res holds the reply.
// On failure the error is returned and c.Res is left unset so the host produces its
// default failure response, unless WithErrorMapping is given.
func Wrap(fn httpcal.HandlerFunc, opts ...Option) Func {
	o := newOptions(opts)

	return func(ctx context.Context, c *Context, req *HTTPRequest) error {
		ctx = WithContext(logger.WithTraceID(ctx, c.InvocationID), c)
		log := logger.DeriveRequestLogger(ctx, o.log)
		res := httpcal.NewResponseBuilder()

		r, err := newRequest(req, c.InvocationID)
		if err == nil {
			err = httpcal.Invoke(ctx, fn, &httpcal.Integration{Request: r, Response: res})
		}
		if err != nil {
			if !o.mapErrors {
				log.Error("function failed", "function", c.FunctionName, "error", err)
				return err
			}
			httpcal.ApplyError(res, err, log)
		}

		c.Res = FormatResponse(res)
		return nil
	}
}
