package domain

import internaldomain "github.com/goliatone/go-blog/internal/domain"

// Environment is the per-build state shared between the host and the domain
// services.
type Environment = internaldomain.Environment

// FeedState carries the feed container and the items collected during a build.
type FeedState = internaldomain.FeedState

// FeedItem is one collected page in feed shape.
type FeedItem = internaldomain.FeedItem

// PageContext describes a rendered page offered to the feed collector.
type PageContext = internaldomain.PageContext

// Reference is a resolved cross reference.
type Reference = internaldomain.Reference

const (
	// Name identifies the article domain.
	Name = internaldomain.Name
	// TargetHTML is the builder target that renders pages and writes the feed.
	TargetHTML = internaldomain.TargetHTML
	// ByDateTarget addresses the chronological index page.
	ByDateTarget = internaldomain.ByDateTarget
	// ByCategoryTarget addresses the categorical index page.
	ByCategoryTarget = internaldomain.ByCategoryTarget
)

// NewEnvironment returns a fresh environment for the given builder target.
func NewEnvironment(builder string) *Environment {
	return internaldomain.NewEnvironment(builder)
}
