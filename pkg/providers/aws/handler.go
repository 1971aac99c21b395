package aws

import (
	"context"
	"log/slog"

	"github.com/cloud-abstraction-layer/cal/internal/logger"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// Callback receives the reply of one invocation.
type Callback func(err error, reply events.APIGatewayV2HTTPResponse)

// Handler is the callback-style native signature produced by Wrap.
type Handler func(ctx context.Context, event events.APIGatewayV2HTTPRequest, callback Callback)

// Option configures the adapter.
type Option func(*options)

type options struct {
	log                *slog.Logger
	binaryContentTypes []string
}

// WithLogger sets the logger used for handler failures.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithBinaryContentTypes lists response content types the proxy handler base64
// encodes.
func WithBinaryContentTypes(types ...string) Option {
	return func(o *options) {
		o.binaryContentTypes = append(o.binaryContentTypes, types...)
	}
}

func newOptions(opts []Option) *options {
	o := &options{log: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Wrap adapts fn to the callback-style Lambda signature. The callback is invoked
// exactly once per invocation, after fn returns or panics, and never with an error:
// handler failures are mapped to a status and body.
func Wrap(fn httpcal.HandlerFunc, opts ...Option) Handler {
	o := newOptions(opts)

	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest, callback Callback) {
		res := httpcal.NewResponseBuilder()
		defer func() {
			callback(nil, FormatResponse(res))
		}()

		ctx = logger.WithTraceID(ctx, event.RequestContext.RequestID)
		log := logger.DeriveRequestLogger(ctx, o.log)

		lc, _ := lambdacontext.FromContext(ctx)
		req, err := NewRequest(event, lc)
		if err != nil {
			httpcal.ApplyError(res, err, log)
			return
		}

		log.Debug("dispatching request",
			append([]any{"method", req.Method(), "path", req.Path()}, logger.GetDeadlineInfo(ctx)...)...)
		in := &httpcal.Integration{Request: req, Response: res}
		_ = httpcal.Dispatch(ctx, fn, in, res, log)
	}
}

// NewHandler adapts fn to the return-value signature accepted by lambda.Start.
func NewHandler(
	fn httpcal.HandlerFunc,
	opts ...Option,
) func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	wrapped := Wrap(fn, opts...)

	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		var (
			reply    events.APIGatewayV2HTTPResponse
			replyErr error
		)
		wrapped(ctx, event, func(err error, r events.APIGatewayV2HTTPResponse) {
			reply, replyErr = r, err
		})
		return reply, replyErr
	}
}

// Start runs fn as the Lambda function of the current process. It does not return.
func Start(fn httpcal.HandlerFunc, opts ...Option) {
	lambda.Start(NewHandler(fn, opts...))
}
