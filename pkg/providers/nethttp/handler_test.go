package nethttp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloud-abstraction-layer/cal/internal/testutil"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name           string
		handler        httpcal.HandlerFunc
		body           string
		expectedStatus int
		expectedBody   string
		expectedHeader map[string]string
	}{
		{
			name: "writes handler reply",
			handler: func(_ context.Context, in *httpcal.Integration) error {
				in.Response.Set("X-Multi", "a", "b")
				in.Response.Status(http.StatusAccepted)
				return in.Response.Send("hi " + in.Request.QueryValue("name"))
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   "hi bob",
		},
		{
			name: "json reply",
			handler: func(_ context.Context, in *httpcal.Integration) error {
				return in.Response.JSON(map[string]string{"ok": "yes"})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":"yes"}`,
			expectedHeader: map[string]string{"Content-Type": "application/json"},
		},
		{
			name: "domain error",
			handler: func(context.Context, *httpcal.Integration) error {
				return httpcal.ErrNotFound("no such thing", nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Not Found",
		},
		{
			name: "unexpected error is hidden",
			handler: func(context.Context, *httpcal.Integration) error {
				return errors.New("dial tcp 10.0.0.1:5432: refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
		{
			name: "panic is hidden",
			handler: func(context.Context, *httpcal.Integration) error {
				panic("boom")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
		{
			name: "normalization failure never reaches handler",
			handler: func(_ context.Context, in *httpcal.Integration) error {
				return in.Response.Send("ran")
			},
			body:           "{bad",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r *http.Request
			if tt.body != "" {
				r = httptest.NewRequest(http.MethodPost, "/?name=bob", strings.NewReader(tt.body))
				r.Header.Set("Content-Type", "application/json")
			} else {
				r = httptest.NewRequest(http.MethodGet, "/?name=bob", nil)
			}
			w := httptest.NewRecorder()

			Wrap(tt.handler, WithLogger(testutil.SilentLogger()))(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
			for name, value := range tt.expectedHeader {
				assert.Equal(t, value, w.Header().Get(name))
			}
		})
	}
}

func TestWrap_MultiValueHeader(t *testing.T) {
	w := httptest.NewRecorder()

	Wrap(func(_ context.Context, in *httpcal.Integration) error {
		in.Response.Set("Vary", "a", "b")
		return nil
	}, WithLogger(testutil.SilentLogger()))(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"a", "b"}, w.Header().Values("Vary"))
	assert.Empty(t, w.Body.String())
}

func TestWrite(t *testing.T) {
	res := httpcal.NewResponseBuilder()
	res.Status(http.StatusCreated)
	res.Set("Location", "/items/1")
	_ = res.Send("created")
	w := httptest.NewRecorder()

	err := Write(w, res)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/items/1", w.Header().Get("Location"))
	assert.Equal(t, "created", w.Body.String())
}
