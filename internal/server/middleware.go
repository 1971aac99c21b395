package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cloud-abstraction-layer/cal/internal/constants"
	loggerPkg "github.com/cloud-abstraction-layer/cal/internal/logger"

	"github.com/go-chi/chi/v5/middleware"
)

// requestLoggerMiddleware stores the request ID assigned by chi in the context and
// logs one line per completed request.
func (r *Router) requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		requestID := middleware.GetReqID(req.Context())
		ctx := loggerPkg.WithRequestID(req.Context(), requestID)

		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		r.log.Info("request completed",
			constants.RequestIDLogField, requestID,
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String())
	})
}

// requestTimeoutMiddleware creates a context with timeout for each request.
// The timeout starts when the request is received, ensuring each request has
// a fair timeout regardless of connection reuse.
func (r *Router) requestTimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx, cancel := context.WithTimeout(req.Context(), timeout)
			defer cancel()

			req = req.WithContext(ctx)

			next.ServeHTTP(w, req)

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				loggerPkg.DeriveRequestLogger(ctx, r.log).Warn("request timeout exceeded", "request", map[string]any{
					"method":  req.Method,
					"path":    req.URL.Path,
					"timeout": timeout,
				})
			}
		})
	}
}
