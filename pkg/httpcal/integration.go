package httpcal

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// Integration pairs the request and response of a single invocation. It is never
// shared between invocations.
type Integration struct {
	Request  Request
	Response Response
}

// HandlerFunc is a platform-agnostic HTTP function.
type HandlerFunc func(ctx context.Context, in *Integration) error

// Invoke runs fn to completion. A panic inside fn is returned as an error wrapping
// ErrHandlerPanic.
func Invoke(ctx context.Context, fn HandlerFunc, in *Integration) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return fn(ctx, in)
}

// Dispatch invokes fn and, when it fails, logs the error and rewrites res with the
// status and body chosen by NormalizeError. The handler error is returned for callers
// that want to observe it; the reply in res is already final either way.
func Dispatch(ctx context.Context, fn HandlerFunc, in *Integration, res *ResponseBuilder, log *slog.Logger) error {
	err := Invoke(ctx, fn, in)
	if err != nil {
		ApplyError(res, err, log)
	}
	return err
}

// ApplyError logs err and writes its mapped status and body into res.
func ApplyError(res *ResponseBuilder, err error, log *slog.Logger) {
	statusCode, body := NormalizeError(err)
	if log != nil {
		if statusCode < http.StatusInternalServerError {
			log.Warn("handler returned client error", "status", statusCode, "error", err)
		} else {
			log.Error("handler failed", "status", statusCode, "error", err)
		}
	}
	res.Fail(statusCode, body)
}
