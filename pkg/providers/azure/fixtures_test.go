package azure

import (
	json "github.com/goccy/go-json"
)

func newHTTPRequest() *HTTPRequest {
	return &HTTPRequest{
		URL:    "https://myapp.azurewebsites.net/api/hello/world?name=ada#top",
		Method: "GET",
		Query:  map[string]string{"name": "ada"},
		Headers: map[string][]string{
			"Host":            {"myapp.azurewebsites.net"},
			"X-Forwarded-For": {"198.51.100.4:61324, 10.0.0.1"},
		},
		Params: map[string]string{"rest": "world"},
	}
}

func jsonBody(s string) json.RawMessage {
	encoded, _ := json.Marshal(s)
	return encoded
}
