package dashboard

import (
	"net/url"
	"strings"
)

// ImageHostAllowed reports whether rawURL is an http(s) URL whose host is on
// the allowlist. Matching is exact and case-insensitive.
func ImageHostAllowed(rawURL string, hosts []string) bool {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return false
	}
	host := parsed.Hostname()
	if host == "" {
		return false
	}
	for _, allowed := range hosts {
		if strings.EqualFold(strings.TrimSpace(allowed), host) {
			return true
		}
	}
	return false
}
