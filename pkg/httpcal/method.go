package httpcal

import (
	"fmt"
	"net/http"
	"strings"
)

// Method is an HTTP request method.
type Method string

// Supported request methods.
const (
	MethodOptions Method = "OPTIONS"
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodTrace   Method = "TRACE"
	MethodConnect Method = "CONNECT"
	MethodPatch   Method = "PATCH"
)

// ParseMethod normalizes a method name to upper case.
func ParseMethod(s string) Method {
	return Method(strings.ToUpper(strings.TrimSpace(s)))
}

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool {
	switch m {
	case MethodOptions, MethodGet, MethodHead, MethodPost, MethodPut,
		MethodDelete, MethodTrace, MethodConnect, MethodPatch:
		return true
	}
	return false
}

// ErrMethodNotAllowed reports a request method outside the supported set.
func ErrMethodNotAllowed(m Method) *HTTPError {
	return newStatusError(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
		fmt.Sprintf("unsupported method %q", m), nil)
}

func (m Method) String() string {
	return string(m)
}
