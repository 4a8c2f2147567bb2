package catalog

// Entry is one item of the remote worlds catalog. Entries are created in
// bulk by Parse and never mutated afterwards; a refetch replaces the whole
// slice.
type Entry struct {
	Title       string
	JSONURL     string
	PreviewURL  string
	Description string
	Tags        []string
	Updated     string
}
