package utils

import (
	"net/url"
	"strings"
)

// ResolveURL joins base and candidate into a final absolute URL. An already
// absolute candidate passes through untouched; a relative one is resolved
// against base treated as a directory. Empty candidates stay empty.
func ResolveURL(base, candidate string) string {
	c := strings.TrimSpace(candidate)
	if c == "" {
		return ""
	}
	if strings.HasPrefix(c, "http://") || strings.HasPrefix(c, "https://") {
		return c
	}

	b, err := url.Parse(strings.TrimRight(base, "/") + "/")
	if err != nil {
		return ""
	}
	ref, err := url.Parse(strings.TrimLeft(c, "/"))
	if err != nil {
		return ""
	}
	return b.ResolveReference(ref).String()
}
