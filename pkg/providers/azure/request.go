package azure

import (
	"net/url"
	"strings"

	"github.com/cloud-abstraction-layer/cal/internal/constants"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"

	"github.com/google/uuid"
)

// NewRequest builds a canonical request from HTTP trigger data.
func NewRequest(req *HTTPRequest) (httpcal.Request, error) {
	return newRequest(req, "")
}

func newRequest(req *HTTPRequest, invocationID string) (httpcal.Request, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, httpcal.ErrBadRequest("invalid request url", err)
	}

	method := httpcal.ParseMethod(req.Method)
	if !method.Valid() {
		return nil, httpcal.ErrMethodNotAllowed(method)
	}

	headers := httpcal.LowercaseHeaders(req.Headers)
	get := func(name string) string {
		return httpcal.FirstValue(headers[strings.ToLower(name)])
	}

	var body any
	raw := req.RawBody()
	if len(raw) > 0 {
		body, err = httpcal.ParseBody(get(constants.HeaderContentType), raw)
		if err != nil {
			return nil, err
		}
	}

	secure := strings.HasPrefix(req.URL, "https")
	protocol := "http"
	if secure {
		protocol = "https"
	}

	ips := httpcal.ParseForwardedFor(strings.Join(headers[strings.ToLower(constants.HeaderXForwardedFor)], ","))
	if ips == nil {
		ips = []string{}
	}

	traceID := invocationID
	if traceID == "" {
		traceID = get(constants.HeaderAzureInvocationID)
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	return httpcal.NewRequest(httpcal.RequestData{
		BaseURL:    protocol + "://" + u.Host,
		Body:       body,
		RawBody:    raw,
		Cookies:    httpcal.ParseCookieHeader(strings.Join(headers[strings.ToLower(constants.HeaderCookie)], "; ")),
		Host:       u.Host,
		Hostname:   httpcal.Hostname(u.Host),
		IP:         httpcal.FirstValue(ips),
		IPs:        ips,
		Method:     method,
		Params:     req.Params,
		Path:       routePath(req.URL),
		Protocol:   protocol,
		Query:      httpcal.FlatQuery(req.Query),
		Secure:     secure,
		Subdomains: httpcal.Subdomains(u.Host),
		XHR:        httpcal.IsXHR(get(constants.HeaderXRequestedWith)),
		Headers:    headers,
		TraceID:    traceID,
		Native:     req,
	}), nil
}

// routePath returns the path of rawURL without its query, fragment and first segment,
// which is the function route prefix ("api" unless reconfigured on the host).
func routePath(rawURL string) string {
	path := rawURL
	if i := strings.Index(path, "://"); i >= 0 {
		path = path[i+3:]
		if j := strings.IndexByte(path, '/'); j >= 0 {
			path = path[j:]
		} else {
			path = "/"
		}
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	_, rest, found := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if !found {
		return "/"
	}
	return "/" + rest
}
