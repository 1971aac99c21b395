package nethttp

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "http://shop.eu.example.com:8080/items?tags[]=a&tags[]=b&q=x",
		strings.NewReader(`{"name":"widget"}`))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("X-Forwarded-For", "203.0.113.1, 10.0.0.2")
	r.Header.Set("X-Forwarded-Proto", "https")
	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	r.Header.Add("Cookie", "session=abc=def; theme=dark")

	req, err := NewRequest(r, WithTraceID(func(*http.Request) string { return "trace-1" }))
	require.NoError(t, err)

	assert.Equal(t, httpcal.MethodPost, req.Method())
	assert.Equal(t, "https://shop.eu.example.com:8080", req.BaseURL())
	assert.Equal(t, "shop.eu.example.com:8080", req.Host())
	assert.Equal(t, "shop.eu.example.com", req.Hostname())
	assert.Equal(t, []string{"shop", "eu"}, req.Subdomains())
	assert.Equal(t, "203.0.113.1", req.IP())
	assert.Equal(t, []string{"203.0.113.1", "10.0.0.2"}, req.IPs())
	assert.Equal(t, "https", req.Protocol())
	assert.True(t, req.Secure())
	assert.True(t, req.XHR())
	assert.Equal(t, "/items", req.Path())
	assert.Equal(t, map[string]any{"tags": []any{"a", "b"}, "q": "x"}, req.Query())
	assert.Equal(t, map[string]any{"name": "widget"}, req.Body())
	assert.Equal(t, "trace-1", req.TraceID())
	assert.Equal(t, "application/json", req.Get("CONTENT-TYPE"))
	assert.Equal(t, "shop.eu.example.com:8080", req.Get("host"))
	assert.Same(t, r, req.Native())

	session, ok := req.Cookie("session")
	require.True(t, ok)
	assert.Equal(t, "abc=def", session)
}

func TestNewRequest_Defaults(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.7:51234"

	req, err := NewRequest(r)
	require.NoError(t, err)

	assert.Equal(t, "192.0.2.7", req.IP())
	assert.Equal(t, []string{"192.0.2.7"}, req.IPs())
	assert.Equal(t, "http", req.Protocol())
	assert.False(t, req.Secure())
	assert.False(t, req.XHR())
	assert.Nil(t, req.Body())
	assert.Nil(t, req.Cookies())
	assert.Empty(t, req.Query())
	assert.NotEmpty(t, req.TraceID())
}

func TestNewRequest_TLS(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	r.TLS = &tls.ConnectionState{}

	req, err := NewRequest(r)
	require.NoError(t, err)

	assert.Equal(t, "https", req.Protocol())
	assert.True(t, req.Secure())
}

func TestNewRequest_TraceIDFallbacks(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-Id", "from-header")

	req, err := NewRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "from-header", req.TraceID())

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), middleware.RequestIDKey, "from-middleware"))
	r.Header.Set("X-Request-Id", "from-header")

	req, err = NewRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "from-middleware", req.TraceID())
}

func TestNewRequest_PathParams(t *testing.T) {
	var got map[string]string
	router := chi.NewRouter()
	router.Get("/users/{id}/posts/{slug}", func(_ http.ResponseWriter, r *http.Request) {
		req, err := NewRequest(r)
		require.NoError(t, err)
		got = req.Params()
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/42/posts/hello", nil))

	assert.Equal(t, map[string]string{"id": "42", "slug": "hello"}, got)
}

func TestNewRequest_UnsupportedMethod(t *testing.T) {
	r := httptest.NewRequest("BREW", "/", nil)

	req, err := NewRequest(r)

	require.Error(t, err)
	assert.Nil(t, req)
	assert.Equal(t, http.StatusMethodNotAllowed, httpcal.GetStatusCode(err))
}

func TestNewRequest_BodyErrors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		opts           []Option
		expectedStatus int
	}{
		{name: "invalid json", body: "{oops", expectedStatus: http.StatusBadRequest},
		{name: "too large", body: `{"a":"0123456789"}`, opts: []Option{WithMaxBodyBytes(4)}, expectedStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")

			req, err := NewRequest(r, tt.opts...)

			require.Error(t, err)
			assert.Nil(t, req)
			assert.Equal(t, tt.expectedStatus, httpcal.GetStatusCode(err))
		})
	}
}
