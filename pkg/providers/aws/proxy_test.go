package aws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloud-abstraction-layer/cal/internal/testutil"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
)

func TestNewProxyHandler(t *testing.T) {
	handler := NewProxyHandler(func(context.Context, *httpcal.Integration) error { return nil },
		WithLogger(testutil.SilentLogger()),
		WithBinaryContentTypes("image/png"))

	assert.NotNil(t, handler)
}

func TestLambdaRequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, lambdaRequestID(r))

	ctx := lambdacontext.NewContext(r.Context(), &lambdacontext.LambdaContext{AwsRequestID: "abc-123"})
	assert.Equal(t, "abc-123", lambdaRequestID(r.WithContext(ctx)))
}
