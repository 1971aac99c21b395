// Package aws adapts API Gateway HTTP API (payload v2) Lambda invocations to the
// canonical request and response contract.
package aws

import (
	"encoding/base64"
	"strings"

	"github.com/cloud-abstraction-layer/cal/internal/constants"
	"github.com/cloud-abstraction-layer/cal/pkg/httpcal"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// Input is the native value exposed through Request.Native.
type Input struct {
	Event  events.APIGatewayV2HTTPRequest
	Lambda *lambdacontext.LambdaContext
}

// NewRequest builds a canonical request from an HTTP API event.
func NewRequest(event events.APIGatewayV2HTTPRequest, lc *lambdacontext.LambdaContext) (httpcal.Request, error) {
	method := httpcal.ParseMethod(event.RequestContext.HTTP.Method)
	if !method.Valid() {
		return nil, httpcal.ErrMethodNotAllowed(method)
	}

	headers := make(map[string][]string, len(event.Headers))
	for name, value := range event.Headers {
		headers[name] = []string{value}
	}
	headers = httpcal.LowercaseHeaders(headers)
	get := func(name string) string {
		return httpcal.FirstValue(headers[strings.ToLower(name)])
	}

	raw, body, err := decodeBody(event, get(constants.HeaderContentType))
	if err != nil {
		return nil, err
	}

	host := get(constants.HeaderHost)
	if host == "" {
		host = event.RequestContext.DomainName
	}

	cookies := httpcal.ParseCookieList(event.Cookies)
	if cookies == nil {
		cookies = httpcal.ParseCookieHeader(get(constants.HeaderCookie))
	}

	query := httpcal.ParseQuery(event.RawQueryString)
	if event.RawQueryString == "" {
		query = httpcal.FlatQuery(event.QueryStringParameters)
	}

	protocol := strings.ToLower(get(constants.HeaderXForwardedProto))

	var ips []string
	if ip := event.RequestContext.HTTP.SourceIP; ip != "" {
		ips = []string{ip}
	}

	return httpcal.NewRequest(httpcal.RequestData{
		BaseURL:    event.RequestContext.DomainName,
		Body:       body,
		RawBody:    raw,
		Cookies:    cookies,
		Host:       host,
		Hostname:   httpcal.Hostname(host),
		IP:         event.RequestContext.HTTP.SourceIP,
		IPs:        ips,
		Method:     method,
		Params:     event.PathParameters,
		Path:       event.RawPath,
		Protocol:   protocol,
		Query:      query,
		Secure:     protocol == "https",
		Subdomains: httpcal.Subdomains(host),
		XHR:        httpcal.IsXHR(get(constants.HeaderXRequestedWith)),
		Headers:    headers,
		TraceID:    event.RequestContext.RequestID,
		Native:     &Input{Event: event, Lambda: lc},
	}), nil
}

func decodeBody(event events.APIGatewayV2HTTPRequest, contentType string) ([]byte, any, error) {
	if event.Body == "" {
		return nil, nil, nil
	}

	raw := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, nil, httpcal.ErrBadRequest("invalid base64 request body", err)
		}
		raw = decoded
	}

	body, err := httpcal.ParseBody(contentType, raw)
	if err != nil {
		return nil, nil, err
	}
	return raw, body, nil
}
