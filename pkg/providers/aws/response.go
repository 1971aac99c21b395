package aws

import (
	"strings"

	"github.com/cloud-abstraction-layer/cal/internal/constants"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"

	"github.com/aws/aws-lambda-go/events"
)

// FormatResponse converts an accumulated reply into the HTTP API response shape.
// Multi-valued headers are joined with ","; Set-Cookie values are returned through
// Cookies so that each one is emitted on its own line.
func FormatResponse(res *httpcal.ResponseBuilder) events.APIGatewayV2HTTPResponse {
	setCookie := strings.ToLower(constants.HeaderSetCookie)
	body, _ := res.Body()

	return events.APIGatewayV2HTTPResponse{
		StatusCode: res.StatusCode(),
		Headers:    res.FlatHeaders(setCookie),
		Body:       body,
		Cookies:    res.Header(setCookie),
	}
}
