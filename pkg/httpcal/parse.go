package httpcal

import (
	"net"
	"strings"
)

// XMLHttpRequest is the X-Requested-With value that marks an XHR request.
const XMLHttpRequest = "XMLHttpRequest"

// ParseCookieList parses raw "name=value" entries. Each entry is split at the first
// '=' only, so the value keeps any further '=' characters. Repeated names keep every
// value in order. Returns nil when no cookie could be parsed.
func ParseCookieList(raw []string) map[string][]string {
	var cookies map[string][]string
	for _, entry := range raw {
		name, value, _ := strings.Cut(strings.TrimSpace(entry), "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if cookies == nil {
			cookies = map[string][]string{}
		}
		cookies[name] = append(cookies[name], value)
	}
	return cookies
}

// ParseCookieHeader parses a Cookie request header ("a=1; b=2").
func ParseCookieHeader(header string) map[string][]string {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	return ParseCookieList(strings.Split(header, ";"))
}

// Hostname strips an optional ":port" suffix (and IPv6 brackets) from host.
func Hostname(host string) string {
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
}

// Subdomains splits the hostname of host on '.' and drops the last two labels, which
// are assumed to be "domain.tld". An empty host or an IP address yields nil.
func Subdomains(host string) []string {
	hostname := Hostname(host)
	if hostname == "" || net.ParseIP(hostname) != nil {
		return nil
	}
	labels := strings.Split(hostname, ".")
	if len(labels) <= 2 {
		return []string{}
	}
	return labels[:len(labels)-2]
}

// ParseForwardedFor splits an X-Forwarded-For value into its trimmed entries.
func ParseForwardedFor(header string) []string {
	var ips []string
	for _, part := range strings.Split(header, ",") {
		if ip := strings.TrimSpace(part); ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

// IsXHR reports whether an X-Requested-With value marks an XHR request.
func IsXHR(requestedWith string) bool {
	return requestedWith == XMLHttpRequest
}

// FirstValue returns the first element of values, or "".
func FirstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
