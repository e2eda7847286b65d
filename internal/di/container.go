// Package di wires the module services from one validated configuration.
// Every binding can be overridden before the container finalises, which is
// how tests inject in-memory filesystems, writers, and clocks.
package di

import (
	"strings"
	"time"

	"github.com/goliatone/go-blog/internal/articles"
	"github.com/goliatone/go-blog/internal/builder"
	"github.com/goliatone/go-blog/internal/commands"
	sitecmd "github.com/goliatone/go-blog/internal/commands/site"
	"github.com/goliatone/go-blog/internal/feed"
	"github.com/goliatone/go-blog/internal/logging/console"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/internal/storage"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Container holds the wired module services.
type Container struct {
	Config runtimeconfig.Config

	provider interfaces.LoggerProvider
	writer   storage.Writer
	clock    func() time.Time

	markdownSvc *markdown.Service
	articlesSvc articles.Service
	feedSvc     feed.Service
	builderSvc  builder.Service

	commands *Commands
}

// Commands bundles the wired command handlers exposed to hosts.
type Commands struct {
	BuildSite *sitecmd.BuildSiteHandler
	CleanSite *sitecmd.CleanSiteHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.provider = provider
	}
}

// WithWriter overrides the artifact writer used by the feed and builder.
func WithWriter(writer storage.Writer) Option {
	return func(c *Container) {
		c.writer = writer
	}
}

// WithClock overrides the time source used for feed stamps and build timing.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// WithMarkdownService overrides the default markdown service binding.
func WithMarkdownService(svc *markdown.Service) Option {
	return func(c *Container) {
		c.markdownSvc = svc
	}
}

// WithArticlesService overrides the default article aggregator binding.
func WithArticlesService(svc articles.Service) Option {
	return func(c *Container) {
		c.articlesSvc = svc
	}
}

// WithFeedService overrides the default feed service binding.
func WithFeedService(svc feed.Service) Option {
	return func(c *Container) {
		c.feedSvc = svc
	}
}

// WithBuilderService overrides the default builder binding.
func WithBuilderService(svc builder.Service) Option {
	return func(c *Container) {
		c.builderSvc = svc
	}
}

// NewContainer validates the configuration and wires the services, applying
// any overrides first.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.provider == nil {
		provider, err := providerFor(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.provider = provider
	}
	if c.writer == nil {
		c.writer = storage.NewOSWriter()
	}
	if c.clock == nil {
		c.clock = time.Now
	}

	if c.markdownSvc == nil {
		svc, err := markdown.NewService(markdownConfig(cfg))
		if err != nil {
			return nil, err
		}
		c.markdownSvc = svc
	}

	if c.articlesSvc == nil {
		svc, err := articles.NewService(cfg, articles.Dependencies{Logger: c.provider})
		if err != nil {
			return nil, err
		}
		c.articlesSvc = svc
	}

	if c.feedSvc == nil {
		svc, err := feed.NewService(cfg, feed.Dependencies{
			Logger: c.provider,
			Writer: c.writer,
			Clock:  c.clock,
		})
		if err != nil {
			return nil, err
		}
		c.feedSvc = svc
	}

	if c.builderSvc == nil {
		svc, err := builder.NewService(cfg, builder.Dependencies{
			Markdown: c.markdownSvc,
			Articles: c.articlesSvc,
			Feed:     c.feedSvc,
			Logger:   c.provider,
			Writer:   c.writer,
			Clock:    c.clock,
		})
		if err != nil {
			return nil, err
		}
		c.builderSvc = svc
	}

	siteLogger := commands.CommandLogger(c.provider, "site")
	c.commands = &Commands{
		BuildSite: sitecmd.NewBuildSiteHandler(c.builderSvc, siteLogger),
		CleanSite: sitecmd.NewCleanSiteHandler(c.builderSvc, siteLogger),
	}

	return c, nil
}

// LoggerProvider returns the provider the services log through.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.provider
}

// MarkdownService returns the configured markdown service.
func (c *Container) MarkdownService() *markdown.Service {
	return c.markdownSvc
}

// ArticlesService returns the configured article aggregator.
func (c *Container) ArticlesService() articles.Service {
	return c.articlesSvc
}

// FeedService returns the configured feed assembler.
func (c *Container) FeedService() feed.Service {
	return c.feedSvc
}

// BuilderService returns the configured build pipeline.
func (c *Container) BuilderService() builder.Service {
	return c.builderSvc
}

// CommandHandlers returns the wired command handlers.
func (c *Container) CommandHandlers() *Commands {
	return c.commands
}

// providerFor selects the logger backend named in the logging config.
func providerFor(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		opts := console.Options{}
		if level, ok := consoleLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	}
}

func consoleLevel(level string) (console.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace, true
	case "debug":
		return console.LevelDebug, true
	case "info":
		return console.LevelInfo, true
	case "warn", "warning":
		return console.LevelWarn, true
	case "error":
		return console.LevelError, true
	case "fatal":
		return console.LevelFatal, true
	default:
		return 0, false
	}
}

func markdownConfig(cfg runtimeconfig.Config) markdown.Config {
	return markdown.Config{
		ContentDir: cfg.Markdown.ContentDir,
		Pattern:    cfg.Markdown.Pattern,
		Recursive:  cfg.Markdown.Recursive,
		Parser: markdown.ParseOptions{
			Extensions: cfg.Markdown.Parser.Extensions,
			Sanitize:   cfg.Markdown.Parser.Sanitize,
			HardWraps:  cfg.Markdown.Parser.HardWraps,
			SafeMode:   cfg.Markdown.Parser.SafeMode,
		},
	}
}
