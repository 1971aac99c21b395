package httpcal

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	// maxQueryDepth bounds bracket nesting; deeper groups are kept as a literal key.
	maxQueryDepth = 5
	// maxQueryArrayIndex is the highest numeric key still turned into an array slot.
	maxQueryArrayIndex = 20
)

// ParseQuery parses a raw query string into a nested structure. Repeated keys become
// arrays, "a[b]=1" becomes {"a": {"b": "1"}}, "a[]=1&a[]=2" and "a[0]=1&a[1]=2"
// become arrays. Values are string, []any or map[string]any. Returns nil for an empty
// query.
func ParseQuery(raw string) map[string]any {
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return nil
	}

	root := map[string]any{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = unescapeQuery(key)
		if key == "" {
			continue
		}
		segments := splitQueryKey(key)
		root[segments[0]] = assignQuery(root[segments[0]], segments[1:], unescapeQuery(value))
	}

	if len(root) == 0 {
		return nil
	}
	for k, v := range root {
		root[k] = compactQuery(v)
	}
	return root
}

// FlatQuery converts single-valued parameters into a query map.
func FlatQuery(params map[string]string) map[string]any {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}

func unescapeQuery(s string) string {
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}
	return s
}

// splitQueryKey turns "a[b][c]" into ["a", "b", "c"]. A key whose first bracket
// group does not close is returned whole.
func splitQueryKey(key string) []string {
	open := strings.IndexByte(key, '[')
	if open <= 0 {
		return []string{key}
	}

	segments := []string{key[:open]}
	rest := key[open:]
	for rest != "" && rest[0] == '[' && len(segments) <= maxQueryDepth {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			break
		}
		segments = append(segments, rest[1:end])
		rest = rest[end+1:]
	}

	if len(segments) == 1 {
		return []string{key}
	}
	if rest != "" {
		segments = append(segments, rest)
	}
	return segments
}

func assignQuery(current any, segments []string, value string) any {
	if len(segments) == 0 {
		return mergeQueryValue(current, value)
	}

	segment := segments[0]
	if segment == "" {
		list := toQueryList(current)
		return append(list, assignQuery(nil, segments[1:], value))
	}

	var node map[string]any
	switch c := current.(type) {
	case nil:
		node = map[string]any{}
	case map[string]any:
		node = c
	case []any:
		node = make(map[string]any, len(c))
		for i, item := range c {
			node[strconv.Itoa(i)] = item
		}
	default:
		return []any{c, assignQuery(nil, segments, value)}
	}
	node[segment] = assignQuery(node[segment], segments[1:], value)
	return node
}

func mergeQueryValue(current any, value string) any {
	switch c := current.(type) {
	case nil:
		return value
	case []any:
		return append(c, value)
	default:
		return []any{c, value}
	}
}

func toQueryList(current any) []any {
	switch c := current.(type) {
	case nil:
		return []any{}
	case []any:
		return c
	default:
		return []any{c}
	}
}

// compactQuery turns maps whose keys are all small array indexes into arrays, ordered
// by index with gaps removed.
func compactQuery(v any) any {
	switch t := v.(type) {
	case map[string]any:
		indexes := make([]int, 0, len(t))
		for k, item := range t {
			t[k] = compactQuery(item)
			if idx, ok := queryIndex(k); ok && indexes != nil {
				indexes = append(indexes, idx)
			} else {
				indexes = nil
			}
		}
		if len(indexes) == 0 || len(indexes) != len(t) {
			return t
		}
		slices.Sort(indexes)
		list := make([]any, 0, len(indexes))
		for _, idx := range indexes {
			list = append(list, t[strconv.Itoa(idx)])
		}
		return list
	case []any:
		for i, item := range t {
			t[i] = compactQuery(item)
		}
		return t
	default:
		return v
	}
}

func queryIndex(key string) (int, bool) {
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 || idx > maxQueryArrayIndex || strconv.Itoa(idx) != key {
		return 0, false
	}
	return idx, true
}
