package manifest

import (
	"net/http"
	"net/url"
	"strings"
)

const redactedMask = "[REDACTED]"

var sensitiveHeaders = []string{"authorization", "cookie", "token", "secret", "key", "password"}

// redactHeaders flattens h for logging, masking values of sensitive headers.
func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if isSensitive(name) {
			out[name] = redactedMask
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

func isSensitive(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range sensitiveHeaders {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// redactURL masks any password in the URL's userinfo.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Redacted()
}
