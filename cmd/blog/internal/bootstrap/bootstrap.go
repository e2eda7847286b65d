package bootstrap

import (
	"fmt"
	"strings"

	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/di"
	"github.com/goliatone/go-blog/internal/util"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Options captures configuration for blog CLI bootstraps.
type Options struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	OutputDir      string
	BaseURL        string
	Title          string
	Description    string
	Author         string
	FeedFilename   string
	CleanBuild     bool
	LogLevel       string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the blog module and the wired command handlers.
type Module struct {
	Module   *blog.Module
	Handlers *blog.Commands
	Logger   interfaces.Logger
}

// BuildModule constructs a blog module configured for CLI builds.
func BuildModule(opts Options) (*Module, error) {
	cfg := blog.DefaultConfig()
	cfg.Markdown.ContentDir = util.FirstNonEmpty(strings.TrimSpace(opts.ContentDir), "content")
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Markdown.Pattern = trimmed
	}
	cfg.Markdown.Recursive = opts.Recursive

	if trimmed := strings.TrimSpace(opts.OutputDir); trimmed != "" {
		cfg.Builder.OutputDir = trimmed
	}
	cfg.Builder.CleanBuild = opts.CleanBuild

	cfg.Site.BaseURL = strings.TrimSpace(opts.BaseURL)
	cfg.Site.Title = strings.TrimSpace(opts.Title)
	cfg.Site.Description = strings.TrimSpace(opts.Description)
	cfg.Feed.Author = strings.TrimSpace(opts.Author)

	// Feed urls need an absolute base; without one the feed is disabled.
	if cfg.Site.BaseURL == "" {
		cfg.Feed.Filename = ""
	} else if trimmed := strings.TrimSpace(opts.FeedFilename); trimmed != "" {
		cfg.Feed.Filename = trimmed
	} else {
		cfg.Feed.Filename = ""
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := blog.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise blog module: %w", err)
	}

	return &Module{
		Module:   module,
		Handlers: module.Commands(),
		Logger:   commands.CommandLogger(module.Container().LoggerProvider(), "cli"),
	}, nil
}
