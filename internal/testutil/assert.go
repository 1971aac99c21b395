package testutil

import (
	stderrors "errors"
	"testing"

	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"

	"github.com/stretchr/testify/assert"
)

// AssertErrorType checks if the error is of a specific type using errors.Is.
func AssertErrorType(t *testing.T, err, target error, _ ...any) bool {
	t.Helper()
	if !stderrors.Is(err, target) {
		return assert.Fail(t, "Error type mismatch", "Expected error type %T, got %T", target, err)
	}
	return true
}

// AssertHTTPErrorCode checks if the error has a specific error code.
func AssertHTTPErrorCode(t *testing.T, err error, expectedCode string, _ ...any) bool {
	t.Helper()
	code := httpcal.GetErrorCode(err)
	if code != expectedCode {
		return assert.Fail(t, "Error code mismatch", "Expected error code %q, got %q", expectedCode, code)
	}
	return true
}

// AssertHTTPErrorStatus checks if the error has a specific HTTP status code.
func AssertHTTPErrorStatus(t *testing.T, err error, expectedStatus int, _ ...any) bool {
	t.Helper()
	status := httpcal.GetStatusCode(err)
	if status != expectedStatus {
		return assert.Fail(t, "Status code mismatch", "Expected status %d, got %d", expectedStatus, status)
	}
	return true
}

// AssertReply checks the status and body accumulated in a response builder.
func AssertReply(t *testing.T, res *httpcal.ResponseBuilder, expectedStatus int, expectedBody string) bool {
	t.Helper()
	body, _ := res.Body()
	ok := assert.Equal(t, expectedStatus, res.StatusCode(), "status code")
	return assert.Equal(t, expectedBody, body, "body") && ok
}
