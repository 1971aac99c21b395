package nethttp

import (
	"io"
	"net/http"

	"github.com/cloud-abstraction-layer/cal/internal/constants"
	"github.com/cloud-abstraction-layer/cal/internal/logger"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"
)

// Write flushes res onto w. Status and headers are written before the body.
func Write(w http.ResponseWriter, res *httpcal.ResponseBuilder) error {
	header := w.Header()
	for name, values := range res.Headers() {
		for _, value := range values {
			header.Add(name, value)
		}
	}
	w.WriteHeader(res.StatusCode())

	body, ok := res.Body()
	if !ok || body == "" {
		return nil
	}
	_, err := io.WriteString(w, body)
	return err
}

// Wrap adapts fn to an http.HandlerFunc. The handler writes into a buffer which is
// flushed onto the ResponseWriter once, after fn returns. Handler errors and panics
// are mapped to a status and body, never propagated.
func Wrap(fn httpcal.HandlerFunc, opts ...Option) http.HandlerFunc {
	o := newOptions(opts)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.DeriveRequestLogger(ctx, o.log)
		res := httpcal.NewResponseBuilder()

		req, err := newRequest(r, o)
		if err != nil {
			httpcal.ApplyError(res, err, log)
		} else {
			log = log.With(constants.TraceIDLogField, req.TraceID())
			ctx = logger.WithTraceID(ctx, req.TraceID())
			in := &httpcal.Integration{Request: req, Response: res}
			_ = httpcal.Dispatch(ctx, fn, in, res, log)
		}

		if err = Write(w, res); err != nil {
			log.Debug("failed to write response", "error", err)
		}
	}
}
