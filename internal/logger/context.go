package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloud-abstraction-layer/cal/internal/constants"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

type contextKey string

const (
	requestIDContextKey contextKey = "requestID"
	traceIDContextKey   contextKey = "traceID"
)

// GetRequestID extracts the request ID from the context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDContextKey).(string); ok {
		return requestID
	}

	return ""
}

// WithRequestID returns a context carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// GetTraceID extracts the trace ID of the current invocation from the context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDContextKey).(string); ok {
		return traceID
	}

	return ""
}

// WithTraceID returns a context carrying the trace ID of the current invocation.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDContextKey, traceID)
}

// DeriveRequestLogger returns a logger enriched with request-scoped fields
// available in the provided context: the explicit request ID, or the AWS Lambda
// request ID, plus the trace ID when set.
func DeriveRequestLogger(ctx context.Context, base *slog.Logger) *slog.Logger {
	if base == nil {
		base = slog.Default()
	}

	logger := base
	if requestID := GetRequestID(ctx); requestID != "" {
		logger = logger.With(constants.RequestIDLogField, requestID)
	} else if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		logger = logger.With(constants.RequestIDLogField, lc.AwsRequestID)
	}

	if traceID := GetTraceID(ctx); traceID != "" {
		logger = logger.With(constants.TraceIDLogField, traceID)
	}

	return logger
}

// GetDeadlineInfo returns logging attributes for context deadline information.
// Returns the absolute deadline time and remaining duration if set, or "none" if no deadline.
func GetDeadlineInfo(ctx context.Context) []any {
	deadline, ok := ctx.Deadline()
	if !ok {
		return []any{"deadline", "none", "deadline_remaining", "none"}
	}

	remaining := time.Until(deadline)
	return []any{
		"deadline", deadline.Format(time.RFC3339),
		"deadline_remaining", remaining.String(),
	}
}
