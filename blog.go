// Package blog turns a tree of markdown sources into a static site with
// chronological and categorical archive pages and an Atom feed of recent
// articles. Hosts construct a Module from a Config, optionally override
// bindings through di options, and drive builds through the Builder service
// or the exported command handlers.
package blog

import (
	"github.com/goliatone/go-blog/internal/articles"
	"github.com/goliatone/go-blog/internal/builder"
	sitecmd "github.com/goliatone/go-blog/internal/commands/site"
	"github.com/goliatone/go-blog/internal/di"
	"github.com/goliatone/go-blog/internal/feed"
	"github.com/goliatone/go-blog/internal/markdown"
)

// ArticlesService exports the article aggregation contract for consumers of
// the blog package.
type ArticlesService = articles.Service

// FeedService exports the Atom feed assembler contract.
type FeedService = feed.Service

// BuilderService exports the site build pipeline contract.
type BuilderService = builder.Service

// MarkdownService exports the markdown loading and rendering service.
type MarkdownService = *markdown.Service

// BuildOptions exports the per-build overrides accepted by the builder.
type BuildOptions = builder.BuildOptions

// BuildResult exports the summary returned by a completed build.
type BuildResult = builder.BuildResult

// Commands exports the wired command handlers.
type Commands = di.Commands

// BuildSiteCommand exports the build command message for host dispatchers.
type BuildSiteCommand = sitecmd.BuildSiteCommand

// CleanSiteCommand exports the clean command message for host dispatchers.
type CleanSiteCommand = sitecmd.CleanSiteCommand

// BuildResultEnvelope exports the payload delivered to build result callbacks.
type BuildResultEnvelope = sitecmd.ResultEnvelope

// Module represents the top level blog runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a blog module using the provided configuration and optional
// DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Articles returns the configured article aggregator.
func (m *Module) Articles() ArticlesService {
	return m.container.ArticlesService()
}

// Feed returns the configured feed assembler.
func (m *Module) Feed() FeedService {
	return m.container.FeedService()
}

// Builder returns the configured build pipeline.
func (m *Module) Builder() BuilderService {
	return m.container.BuilderService()
}

// Markdown returns the configured markdown service.
func (m *Module) Markdown() MarkdownService {
	return m.container.MarkdownService()
}

// Commands returns the wired command handlers.
func (m *Module) Commands() *Commands {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.CommandHandlers()
}
