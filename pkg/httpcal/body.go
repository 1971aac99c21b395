package httpcal

import (
	"mime"
	"strings"

	json "github.com/goccy/go-json"
)

// ParseBody decodes raw according to contentType. JSON (or a missing content type)
// is unmarshaled, URL-encoded forms go through ParseQuery, and anything else is left
// unparsed (nil). An empty payload yields nil. Malformed JSON is a 400 HTTPError.
func ParseBody(contentType string, raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	mediaType := ""
	if contentType != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			parsed = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
		}
		mediaType = parsed
	}

	switch {
	case mediaType == "" || mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		var body any
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, ErrBadRequest("invalid JSON request body", err)
		}
		return body, nil
	case mediaType == "application/x-www-form-urlencoded":
		if form := ParseQuery(string(raw)); form != nil {
			return form, nil
		}
		return nil, nil
	default:
		return nil, nil
	}
}
