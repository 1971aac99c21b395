// Package server serves a canonical handler over plain HTTP for local development
// and container platforms.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"
	"github.com/cloud-abstraction-layer/cal/pkg/providers/nethttp"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HealthPath is reserved for the liveness probe and never reaches the handler.
const HealthPath = "/_cal/health"

// Router routes every request except the health probe to a single handler.
type Router struct {
	router *chi.Mux
	log    *slog.Logger
}

// NewRouter creates a chi router serving fn. A non-positive requestTimeout disables
// the per-request deadline.
func NewRouter(fn httpcal.HandlerFunc, log *slog.Logger, requestTimeout time.Duration) *Router {
	if log == nil {
		log = slog.Default()
	}
	r := chi.NewRouter()
	router := &Router{
		router: r,
		log:    log,
	}

	r.Use(middleware.RequestID)
	r.Use(router.requestLoggerMiddleware)
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(router.requestTimeoutMiddleware(requestTimeout))
	}

	r.Get(HealthPath, router.handleHealth)
	r.Handle("/*", nethttp.Wrap(fn, nethttp.WithLogger(log)))

	return router
}

// ServeHTTP implements http.Handler for use with chi router
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// Handler returns an http.Handler for the router
func (r *Router) Handler() http.Handler {
	return r.router
}
