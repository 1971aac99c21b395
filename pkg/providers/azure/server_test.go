package azure

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloud-abstraction-layer/cal/internal/testutil"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invokeResult struct {
	Outputs map[string]HTTPResponse `json:"Outputs"`
	Logs    []string                `json:"Logs"`
}

func postInvocation(t *testing.T, s *Server, path string, payload []byte) (*httptest.ResponseRecorder, invokeResult) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	r.Header.Set("X-Azure-Functions-InvocationId", "inv-42")
	w := httptest.NewRecorder()

	s.Handler().ServeHTTP(w, r)

	var result invokeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return w, result
}

func invocationPayload(t *testing.T, req *HTTPRequest) []byte {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	payload, err := json.Marshal(InvokeRequest{
		Data:     map[string]json.RawMessage{"req": data},
		Metadata: map[string]json.RawMessage{"sys": json.RawMessage(`{"MethodName":"hello"}`)},
	})
	require.NoError(t, err)
	return payload
}

func TestServer_RoundTrip(t *testing.T) {
	var traceID string
	s := NewServer("hello", func(_ context.Context, in *httpcal.Integration) error {
		traceID = in.Request.TraceID()
		in.Response.Status(http.StatusCreated)
		return in.Response.JSON(map[string]string{"path": in.Request.Path()})
	}, WithLogger(testutil.SilentLogger()))

	w, result := postInvocation(t, s, "/hello", invocationPayload(t, newHTTPRequest()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	res, ok := result.Outputs["res"]
	require.True(t, ok)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.JSONEq(t, `{"path":"/hello/world"}`, res.Body)
	assert.Equal(t, "application/json", res.Headers["content-type"])
	assert.Equal(t, "inv-42", traceID)
}

func TestServer_ForwardsHandlerLogs(t *testing.T) {
	s := NewServer("hello", func(ctx context.Context, in *httpcal.Integration) error {
		if c, ok := ContextFrom(ctx); ok {
			c.Log("handled %s", in.Request.Path())
		}
		return in.Response.Send("ok")
	}, WithLogger(testutil.SilentLogger()))

	w, result := postInvocation(t, s, "/hello", invocationPayload(t, newHTTPRequest()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"handled /hello/world"}, result.Logs)
}

func TestServer_HandlerErrorKeepsLogs(t *testing.T) {
	s := NewServer("hello", func(ctx context.Context, _ *httpcal.Integration) error {
		if c, ok := ContextFrom(ctx); ok {
			c.Log("about to fail")
		}
		return errors.New("exploded")
	}, WithLogger(testutil.SilentLogger()))

	w, result := postInvocation(t, s, "/hello", invocationPayload(t, newHTTPRequest()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, []string{"about to fail", "function failed: exploded"}, result.Logs)
}

func TestServer_HandlerErrorAnswers500(t *testing.T) {
	s := NewServer("hello", func(context.Context, *httpcal.Integration) error {
		return errors.New("exploded")
	}, WithLogger(testutil.SilentLogger()))

	w, result := postInvocation(t, s, "/hello", invocationPayload(t, newHTTPRequest()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, result.Outputs)
	assert.Contains(t, result.Logs, "function failed: exploded")
}

func TestServer_CustomBindings(t *testing.T) {
	s := NewServer("hello", func(_ context.Context, in *httpcal.Integration) error {
		return in.Response.Send("ok")
	}, WithLogger(testutil.SilentLogger()), WithBindings("request", "$return"))

	data, err := json.Marshal(newHTTPRequest())
	require.NoError(t, err)
	payload, err := json.Marshal(InvokeRequest{Data: map[string]json.RawMessage{"request": data}})
	require.NoError(t, err)

	w, result := postInvocation(t, s, "/hello", payload)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", result.Outputs["$return"].Body)
}

func TestServer_BadInvocations(t *testing.T) {
	s := NewServer("hello", func(context.Context, *httpcal.Integration) error { return nil },
		WithLogger(testutil.SilentLogger()))

	tests := []struct {
		name           string
		path           string
		payload        []byte
		expectedStatus int
	}{
		{name: "unknown function", path: "/other", payload: []byte(`{}`), expectedStatus: http.StatusNotFound},
		{name: "malformed payload", path: "/hello", payload: []byte(`{`), expectedStatus: http.StatusBadRequest},
		{name: "missing binding", path: "/hello", payload: []byte(`{"Data":{}}`), expectedStatus: http.StatusBadRequest},
		{name: "malformed binding", path: "/hello", payload: []byte(`{"Data":{"req":42}}`), expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, result := postInvocation(t, s, tt.path, tt.payload)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, result.Logs)
		})
	}
}
