package extract

import (
	"regexp"
	"strings"
)

// validURLRegex is a shape check, not an RFC parser: scheme, a dotted host,
// optional path.
var validURLRegex = regexp.MustCompile(`^https?://[a-zA-Z0-9][-a-zA-Z0-9]*(\.[a-zA-Z0-9][-a-zA-Z0-9]*)+(/.*)?$`)

// IsAbsoluteURL reports whether url carries an explicit http(s) scheme.
func IsAbsoluteURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// IsValidURL reports whether url is an absolute URL of plausible shape.
// SEO surfaces require absolute URLs; relative paths always fail.
func IsValidURL(url string) bool {
	if url == "" {
		return false
	}
	if !IsAbsoluteURL(url) {
		return false
	}
	return validURLRegex.MatchString(url)
}
