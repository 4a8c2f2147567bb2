package catalog

import (
	"strings"

	"github.com/tikey/worlds/pkg/utils"
)

// The index schema drifted over time, so every field is read through an
// ordered list of historical key aliases. First present, non-empty alias
// wins.
var (
	listKeys    = []string{"items", "worlds", "data"}
	titleKeys   = []string{"name", "title", "world", "id"}
	fileKeys    = []string{"file", "json", "path", "url", "json_url"}
	previewKeys = []string{"preview", "image", "thumb", "thumbnail", "preview_url", "image_url"}
	descKeys    = []string{"description", "desc", "about", "notes"}
	updatedKeys = []string{"updated", "date", "modified"}
	tagKeys     = []string{"tags", "tag", "keywords", "labels"}
)

// Parse normalizes an arbitrary parsed index document into catalog entries.
// Relative file and preview paths resolve against baseURL. Elements that are
// not objects are skipped, and elements without a resolvable JSON location
// are dropped. Output order follows input order.
func Parse(raw any, baseURL string) []Entry {
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	var list []any
	for _, key := range listKeys {
		if l, ok := doc[key].([]any); ok {
			list = l
			break
		}
	}

	out := make([]Entry, 0, len(list))
	for _, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}

		jsonURL := utils.ResolveURL(baseURL, firstString(obj, fileKeys))
		if jsonURL == "" {
			continue
		}

		title := firstString(obj, titleKeys)
		if title == "" {
			title = "(untitled)"
		}

		out = append(out, Entry{
			Title:       title,
			JSONURL:     jsonURL,
			PreviewURL:  utils.ResolveURL(baseURL, firstString(obj, previewKeys)),
			Description: firstString(obj, descKeys),
			Tags:        parseTags(obj),
			Updated:     firstString(obj, updatedKeys),
		})
	}

	return out
}

func firstString(obj map[string]any, keys []string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// parseTags accepts either a list of strings or a single comma-separated
// string. A list is used as-is even when it filters down to nothing, while
// any other value type falls through to the next alias.
func parseTags(obj map[string]any) []string {
	for _, key := range tagKeys {
		switch v := obj[key].(type) {
		case []any:
			tags := make([]string, 0, len(v))
			for _, el := range v {
				if s, ok := el.(string); ok {
					if trimmed := strings.TrimSpace(s); trimmed != "" {
						tags = append(tags, trimmed)
					}
				}
			}
			return tags
		case string:
			if strings.TrimSpace(v) == "" {
				continue
			}
			var tags []string
			for _, piece := range strings.Split(v, ",") {
				if trimmed := strings.TrimSpace(piece); trimmed != "" {
					tags = append(tags, trimmed)
				}
			}
			return tags
		}
	}
	return nil
}
