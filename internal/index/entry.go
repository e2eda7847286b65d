// Package index builds the chronological and categorical article indexes.
// Both are rebuilt from scratch on every build and are append-only while a
// build runs.
package index

// Entry is one index record: display title, entry subtype, owning document,
// anchor target, plus the extra, qualifier, and description columns index
// pages render.
type Entry struct {
	Title       string
	Subtype     int
	Docname     string
	Target      string
	Extra       string
	Qualifier   string
	Description string
}

// Group is one index section ready for rendering: the bucket key (a YYYY-MM
// month or a category tag), an anchor-safe slug, and the entries newest
// first.
type Group struct {
	Key     string
	Slug    string
	Entries []Entry
}
