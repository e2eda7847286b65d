// Package domain holds the per-build state shared between the article
// aggregator, the feed assembler, and the build host.
package domain

import (
	"time"

	"github.com/goliatone/go-blog/internal/index"
)

// Name identifies the article domain. Reference targets and the generated
// index pages are prefixed with it.
const Name = "blog"

// TargetHTML is the builder target that renders pages and writes the feed.
const TargetHTML = "html"

// Targets of the generated index pages.
const (
	ByDateTarget     = Name + "-" + index.ChronologicalName
	ByCategoryTarget = Name + "-" + index.CategoricalName
)

// Metadata keys the aggregator records for article documents.
const (
	MetaOrphan      = "orphan"
	MetaIsArticle   = "is_article"
	MetaDescription = "description"
	MetaUpdated     = "updated"
)

// Environment is the state of one build. The host constructs it at
// builder-init and hands it to the domain services; everything in it is
// discarded when the build ends.
type Environment struct {
	// Builder is the active builder target name.
	Builder string
	// Articles maps docname to its index entry, one entry per marked
	// document.
	Articles map[string]index.Entry
	// Metadata is the per-document side channel (orphan, is_article, marker
	// attributes, derived description).
	Metadata map[string]map[string]any
	// Chronological and Categorical are rebuilt from scratch every build.
	Chronological *index.Chronological
	Categorical   *index.Categorical
	// Feed holds the feed container and collected items for this build. It
	// stays nil until the feed assembler begins the build.
	Feed *FeedState
}

// NewEnvironment returns a fresh environment for the given builder target.
func NewEnvironment(builder string) *Environment {
	return &Environment{
		Builder:       builder,
		Articles:      map[string]index.Entry{},
		Metadata:      map[string]map[string]any{},
		Chronological: index.NewChronological(),
		Categorical:   index.NewCategorical(),
	}
}

// SetMetadata stores one metadata value for a document.
func (e *Environment) SetMetadata(docname, key string, value any) {
	meta, ok := e.Metadata[docname]
	if !ok {
		meta = map[string]any{}
		e.Metadata[docname] = meta
	}
	meta[key] = value
}

// MetadataFor returns the metadata recorded for a document, nil when the
// document has none.
func (e *Environment) MetadataFor(docname string) map[string]any {
	return e.Metadata[docname]
}

// IsArticle reports whether the document registered an index entry.
func (e *Environment) IsArticle(docname string) bool {
	_, ok := e.Articles[docname]
	return ok
}

// FeedState carries the feed container seeded at builder-init plus the items
// collected from rendered pages, keyed by docname.
type FeedState struct {
	Title       string
	Link        string
	Description string
	Author      string
	Copyright   string
	Items       map[string]FeedItem
}

// NewFeedState returns an empty feed state.
func NewFeedState() *FeedState {
	return &FeedState{Items: map[string]FeedItem{}}
}

// FeedItem is one collected page in feed shape.
type FeedItem struct {
	Title     string
	URL       string
	Content   string
	Author    string
	Updated   time.Time
	Published time.Time
}

// PageContext is what the host knows about a rendered page when it offers it
// to the feed collector.
type PageContext struct {
	Docname    string
	Title      string
	Body       string
	FileSuffix string
	RSSLink    string
}

// Reference is a resolved cross reference: display title plus link target.
type Reference struct {
	Title string
	Href  string
}
