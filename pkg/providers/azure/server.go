package azure

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/cloud-abstraction-layer/cal/internal/constants"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Server is an Azure Functions custom handler serving a single HTTP function.
type Server struct {
	name   string
	fn     Func
	opts   *options
	router *chi.Mux
}

// NewServer creates a custom handler that answers host invocations of the function
// called name by running fn.
func NewServer(name string, fn httpcal.HandlerFunc, opts ...Option) *Server {
	o := newOptions(opts)
	s := &Server{
		name:   name,
		fn:     Wrap(fn, opts...),
		opts:   o,
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.Recoverer)
	s.router.Post("/{function}", s.handleInvoke)

	return s
}

// Handler returns the http.Handler to serve on the port given by the host.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	log := s.opts.log

	function := chi.URLParam(r, "function")
	if function != s.name {
		writeInvokeResponse(w, log, http.StatusNotFound, &InvokeResponse{
			Logs: []string{fmt.Sprintf("unknown function %q", function)},
		})
		return
	}

	defer func() {
		_ = r.Body.Close()
	}()
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeInvokeResponse(w, log, http.StatusBadRequest, &InvokeResponse{
			Logs: []string{"failed to read invocation: " + err.Error()},
		})
		return
	}

	var invoke InvokeRequest
	if err = json.Unmarshal(payload, &invoke); err != nil {
		writeInvokeResponse(w, log, http.StatusBadRequest, &InvokeResponse{
			Logs: []string{"invalid invocation payload: " + err.Error()},
		})
		return
	}

	var req HTTPRequest
	data, ok := invoke.Data[s.opts.requestBinding]
	if !ok {
		writeInvokeResponse(w, log, http.StatusBadRequest, &InvokeResponse{
			Logs: []string{fmt.Sprintf("missing %q binding", s.opts.requestBinding)},
		})
		return
	}
	if err = json.Unmarshal(data, &req); err != nil {
		writeInvokeResponse(w, log, http.StatusBadRequest, &InvokeResponse{
			Logs: []string{"invalid http trigger data: " + err.Error()},
		})
		return
	}

	invocationID := r.Header.Get(constants.HeaderAzureInvocationID)
	if invocationID == "" {
		invocationID = uuid.NewString()
	}
	c := &Context{
		InvocationID: invocationID,
		FunctionName: function,
		Metadata:     invoke.Metadata,
	}

	if err = s.fn(r.Context(), c, &req); err != nil {
		writeInvokeResponse(w, log, http.StatusInternalServerError, &InvokeResponse{
			Logs: append(c.Logs(), "function failed: "+err.Error()),
		})
		return
	}

	writeInvokeResponse(w, log, http.StatusOK, &InvokeResponse{
		Outputs: map[string]any{s.opts.responseBinding: c.Res},
		Logs:    c.Logs(),
	})
}

func writeInvokeResponse(w http.ResponseWriter, log *slog.Logger, statusCode int, res *InvokeResponse) {
	if res.Logs == nil {
		res.Logs = []string{}
	}
	w.Header().Set(constants.HeaderContentType, "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Error("failed to encode invocation response", "error", err)
	}
}
