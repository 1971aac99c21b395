package nethttp

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/cloud-abstraction-layer/cal/internal/constants"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// NewRequest builds a canonical request from r. The body is consumed.
func NewRequest(r *http.Request, opts ...Option) (httpcal.Request, error) {
	return newRequest(r, newOptions(opts))
}

func newRequest(r *http.Request, o *options) (httpcal.Request, error) {
	method := httpcal.ParseMethod(r.Method)
	if !method.Valid() {
		return nil, httpcal.ErrMethodNotAllowed(method)
	}

	headers := httpcal.LowercaseHeaders(r.Header)
	hostKey := strings.ToLower(constants.HeaderHost)
	if _, ok := headers[hostKey]; !ok && r.Host != "" {
		headers[hostKey] = []string{r.Host}
	}

	raw, err := readBody(r, o.maxBodyBytes)
	if err != nil {
		return nil, err
	}

	var body any
	if len(raw) > 0 {
		body, err = httpcal.ParseBody(r.Header.Get(constants.HeaderContentType), raw)
		if err != nil {
			return nil, err
		}
	}

	protocol := scheme(r)
	ips := httpcal.ParseForwardedFor(strings.Join(r.Header.Values(constants.HeaderXForwardedFor), ","))
	ip := httpcal.FirstValue(ips)
	if ip == "" {
		ip = remoteIP(r.RemoteAddr)
		if ip != "" {
			ips = []string{ip}
		}
	}

	return httpcal.NewRequest(httpcal.RequestData{
		BaseURL:    protocol + "://" + r.Host,
		Body:       body,
		RawBody:    raw,
		Cookies:    cookies(r),
		Host:       r.Host,
		Hostname:   httpcal.Hostname(r.Host),
		IP:         ip,
		IPs:        ips,
		Method:     method,
		Params:     pathParams(r),
		Path:       r.URL.Path,
		Protocol:   protocol,
		Query:      httpcal.ParseQuery(r.URL.RawQuery),
		Secure:     protocol == "https",
		Subdomains: httpcal.Subdomains(r.Host),
		XHR:        httpcal.IsXHR(r.Header.Get(constants.HeaderXRequestedWith)),
		Headers:    headers,
		TraceID:    traceID(r, o),
		Native:     r,
	}), nil
}

func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	defer r.Body.Close()

	raw, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, httpcal.NewHTTPError(
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
				http.StatusText(http.StatusRequestEntityTooLarge),
				http.StatusRequestEntityTooLarge)
		}
		return nil, httpcal.ErrBadRequest("failed to read request body", err)
	}
	return raw, nil
}

func scheme(r *http.Request) string {
	if proto := r.Header.Get(constants.HeaderXForwardedProto); proto != "" {
		first, _, _ := strings.Cut(proto, ",")
		return strings.ToLower(strings.TrimSpace(first))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func remoteIP(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

func cookies(r *http.Request) map[string][]string {
	list := r.Cookies()
	if len(list) == 0 {
		return nil
	}
	out := make(map[string][]string, len(list))
	for _, c := range list {
		out[c.Name] = append(out[c.Name], c.Value)
	}
	return out
}

func pathParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || len(rctx.URLParams.Keys) == 0 {
		return nil
	}
	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if key == "" || key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}

func traceID(r *http.Request, o *options) string {
	if o.traceID != nil {
		if id := o.traceID(r); id != "" {
			return id
		}
	}
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	if id := r.Header.Get(constants.HeaderXRequestID); id != "" {
		return id
	}
	return uuid.NewString()
}
