package services

import (
	"slices"
	"strings"

	"github.com/tikey/worlds/pkg/catalog"
)

// Filter returns the entries matching the free-text query and tag,
// preserving catalog order. An empty tag means no tag constraint; an empty
// query matches everything. The query is a case-insensitive substring match
// over title, description, tags and the updated stamp.
func Filter(entries []catalog.Entry, query, tag string) []catalog.Entry {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if tag != "" && !slices.Contains(e.Tags, tag) {
			continue
		}
		if q != "" {
			blob := strings.ToLower(strings.Join([]string{
				e.Title,
				e.Description,
				strings.Join(e.Tags, " "),
				e.Updated,
			}, " "))
			if !strings.Contains(blob, q) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// Tags returns the distinct tags of the catalog, sorted case-insensitively.
func Tags(entries []catalog.Entry) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, e := range entries {
		for _, t := range e.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	slices.SortFunc(tags, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return tags
}
