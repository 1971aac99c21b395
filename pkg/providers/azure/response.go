package azure

import "github.com/cloud-abstraction-layer/cal/pkg/httpcal"

// FormatResponse converts an accumulated reply into the HTTP output binding shape.
func FormatResponse(res *httpcal.ResponseBuilder) *HTTPResponse {
	body, _ := res.Body()
	return &HTTPResponse{
		StatusCode: res.StatusCode(),
		Body:       body,
		Headers:    res.FlatHeaders(),
	}
}
