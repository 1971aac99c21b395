package httpcal

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is a domain error raised by handler code to short-circuit a response.
// Message is diagnostic only and is never sent to the caller; UserMessage and
// StatusCode become the reply body and status.
type HTTPError struct {
	// Message is the internal diagnostic message
	Message string
	// UserMessage is the caller-safe message used as the reply body
	UserMessage string
	// StatusCode is the HTTP status code to return
	StatusCode int
	// Code is an optional error code string for programmatic handling
	Code string
	// Cause is the underlying error (for error wrapping)
	Cause error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *HTTPError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is to match HTTPErrors carrying the same code.
func (e *HTTPError) Is(target error) bool {
	if t, ok := target.(*HTTPError); ok {
		return e.Code != "" && e.Code == t.Code
	}
	return false
}

// Predefined error codes.
const (
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeBodyAlreadySet     = "BODY_ALREADY_SET"
)

// GenericFailureMessage is the reply body used for every unrecognized error.
const GenericFailureMessage = "Internal Server Error"

var (
	// ErrBodyAlreadySet is returned by Send and JSON when a body has already been written.
	ErrBodyAlreadySet = &HTTPError{
		Message:     "cannot set body after it has been already set",
		UserMessage: GenericFailureMessage,
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrCodeBodyAlreadySet,
	}

	// ErrHandlerPanic wraps the value recovered from a panicking handler.
	ErrHandlerPanic = errors.New("handler panicked")
)

// NewHTTPError creates a domain error with the given diagnostic message, caller-safe
// message and status code.
func NewHTTPError(message, userMessage string, statusCode int) *HTTPError {
	return &HTTPError{
		Message:     message,
		UserMessage: userMessage,
		StatusCode:  statusCode,
	}
}

func newStatusError(statusCode int, code, message string, cause error) *HTTPError {
	return &HTTPError{
		Code:        code,
		Message:     message,
		UserMessage: http.StatusText(statusCode),
		StatusCode:  statusCode,
		Cause:       cause,
	}
}

// ErrBadRequest creates a bad request error (400).
func ErrBadRequest(message string, cause error) *HTTPError {
	return newStatusError(http.StatusBadRequest, ErrCodeInvalidRequest, message, cause)
}

// ErrUnauthorized creates an unauthorized error (401).
func ErrUnauthorized(message string, cause error) *HTTPError {
	return newStatusError(http.StatusUnauthorized, ErrCodeUnauthorized, message, cause)
}

// ErrForbidden creates a forbidden error (403).
func ErrForbidden(message string, cause error) *HTTPError {
	return newStatusError(http.StatusForbidden, ErrCodeForbidden, message, cause)
}

// ErrNotFound creates a not found error (404).
func ErrNotFound(message string, cause error) *HTTPError {
	return newStatusError(http.StatusNotFound, ErrCodeNotFound, message, cause)
}

// ErrConflict creates a conflict error (409).
func ErrConflict(message string, cause error) *HTTPError {
	return newStatusError(http.StatusConflict, ErrCodeConflict, message, cause)
}

// ErrInternalError creates an internal server error (500).
func ErrInternalError(message string, cause error) *HTTPError {
	return newStatusError(http.StatusInternalServerError, ErrCodeInternalError, message, cause)
}

// ErrServiceUnavailable creates a service unavailable error (503).
func ErrServiceUnavailable(message string, cause error) *HTTPError {
	return newStatusError(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message, cause)
}

// GetStatusCode extracts the HTTP status code from an error.
// Returns 500 if the error is not an HTTPError.
func GetStatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return http.StatusInternalServerError
}

// GetErrorCode extracts the error code from an error.
// Returns empty string if the error is not an HTTPError.
func GetErrorCode(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return ""
}

// GetUserMessage extracts the caller-safe message from an error. Anything that is
// not an HTTPError yields GenericFailureMessage, never the error text.
func GetUserMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.UserMessage
	}
	return GenericFailureMessage
}

// NormalizeError maps a handler error to the reply status and body. It is the single
// error mapping shared by every dispatch wrapper.
func NormalizeError(err error) (statusCode int, body string) {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return http.StatusInternalServerError, GenericFailureMessage
	}

	statusCode = httpErr.StatusCode
	if statusCode < 100 || statusCode > 599 {
		return http.StatusInternalServerError, GenericFailureMessage
	}

	body = httpErr.UserMessage
	if body == "" {
		body = http.StatusText(statusCode)
	}
	return statusCode, body
}
