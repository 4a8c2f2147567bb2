package utils

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

var (
	unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_. -]+`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// SafeFilename turns a display title into a name usable on any filesystem.
// Runs of characters other than letters, digits, underscore, hyphen, period
// or space collapse into a single underscore.
func SafeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimSpace(whitespace.ReplaceAllString(name, " "))
	if name == "" {
		return "file"
	}
	return name
}

// ExtFromURL returns the file extension of the URL's path component,
// including the dot, or fallback when the path has none or the URL does not
// parse.
func ExtFromURL(rawURL, fallback string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fallback
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return fallback
}
