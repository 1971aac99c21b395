// Package app holds the platform-agnostic hello-world handler.
package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"
)

const (
	defaultName   = "World"
	maxNameLength = 64
)

// Hello greets the caller, by the "name" query parameter when given.
func Hello(_ context.Context, in *httpcal.Integration) error {
	name := strings.TrimSpace(in.Request.QueryValue("name"))
	if name == "" {
		name = defaultName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return httpcal.ErrBadRequest(fmt.Sprintf("name exceeds %d characters", maxNameLength), nil)
	}

	in.Response.Set("Content-Type", "text/plain; charset=utf-8")
	in.Response.Status(http.StatusOK)
	return in.Response.Send(fmt.Sprintf("Hello %s!", name))
}
