// Package builder drives the reference build: it loads the document tree,
// runs article aggregation, renders every page, emits the domain index
// pages, and finishes the feed. The sequence is strictly sequential so the
// environment mutates in document order.
package builder

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-blog/internal/articles"
	"github.com/goliatone/go-blog/internal/domain"
	"github.com/goliatone/go-blog/internal/feed"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/internal/storage"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

var (
	// ErrMarkdownRequired indicates the builder was wired without a markdown service.
	ErrMarkdownRequired = errors.New("builder: markdown service is required")
	// ErrArticlesRequired indicates the builder was wired without an article aggregator.
	ErrArticlesRequired = errors.New("builder: articles service is required")
	// ErrFeedRequired indicates the builder was wired without a feed assembler.
	ErrFeedRequired = errors.New("builder: feed service is required")
)

// Service describes the build pipeline contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	Clean(ctx context.Context) error
}

// BuildOptions narrows the scope of one build run. Zero values fall back to
// the configured content and output directories.
type BuildOptions struct {
	SourceDir string
	OutputDir string
	DryRun    bool
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	ID          string
	StartedAt   time.Time
	Duration    time.Duration
	Pages       int
	Articles    int
	FeedWritten bool
	OutputDir   string
	DryRun      bool
}

// Dependencies lists the services required by the builder.
type Dependencies struct {
	Markdown *markdown.Service
	Articles articles.Service
	Feed     feed.Service
	Logger   interfaces.LoggerProvider
	Writer   storage.Writer
	Clock    func() time.Time
}

// NewService wires a builder with the provided configuration and dependencies.
func NewService(cfg runtimeconfig.Config, deps Dependencies) (Service, error) {
	if deps.Markdown == nil {
		return nil, ErrMarkdownRequired
	}
	if deps.Articles == nil {
		return nil, ErrArticlesRequired
	}
	if deps.Feed == nil {
		return nil, ErrFeedRequired
	}

	svc := &service{
		cfg:    cfg,
		deps:   deps,
		logger: logging.BuilderLogger(deps.Logger),
		writer: deps.Writer,
		now:    deps.Clock,
	}
	if svc.writer == nil {
		svc.writer = storage.NewOSWriter()
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc, nil
}

type service struct {
	cfg    runtimeconfig.Config
	deps   Dependencies
	logger interfaces.Logger
	writer storage.Writer
	now    func() time.Time
}

// Build runs the full pipeline once. Aggregation and rendering errors abort
// the run; dry runs execute everything except writes.
func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := s.now()
	outdir := strings.TrimSpace(opts.OutputDir)
	if outdir == "" {
		outdir = s.cfg.Builder.OutputDir
	}

	result := &BuildResult{
		ID:        uuid.NewString(),
		StartedAt: start,
		OutputDir: outdir,
		DryRun:    opts.DryRun,
	}

	source, err := s.sourceService(opts)
	if err != nil {
		return nil, err
	}

	if s.cfg.Builder.CleanBuild && !opts.DryRun {
		if err := s.writer.RemoveAll(ctx, outdir); err != nil {
			return nil, fmt.Errorf("builder: clean output dir %s: %w", outdir, err)
		}
	}

	env := domain.NewEnvironment(domain.TargetHTML)
	s.deps.Feed.Begin(env)

	docs, err := source.LoadTree(ctx)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if err := s.deps.Articles.ProcessDocument(env, doc); err != nil {
			return nil, err
		}
	}
	result.Articles = len(env.Articles)

	if !opts.DryRun {
		if err := s.writer.EnsureDir(ctx, outdir); err != nil {
			return nil, fmt.Errorf("builder: ensure output dir %s: %w", outdir, err)
		}
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.buildPage(ctx, env, source, doc, outdir, opts.DryRun, result); err != nil {
			return nil, err
		}
	}

	if s.cfg.Builder.IndexPages {
		if err := s.buildIndexPages(ctx, env, outdir, opts.DryRun, result); err != nil {
			return nil, err
		}
		if err := s.buildHomePage(ctx, env, docs, outdir, opts.DryRun, result); err != nil {
			return nil, err
		}
	}

	if !opts.DryRun {
		if err := s.deps.Feed.Finish(ctx, env, outdir); err != nil {
			return nil, err
		}
		result.FeedWritten = s.deps.Feed.Enabled()
	}

	result.Duration = s.now().Sub(start)
	s.logger.Info("build finished",
		"id", result.ID,
		"pages", result.Pages,
		"articles", result.Articles,
		"dry_run", result.DryRun,
		"duration", result.Duration,
	)
	return result, nil
}

// Clean removes the configured output directory.
func (s *service) Clean(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	outdir := strings.TrimSpace(s.cfg.Builder.OutputDir)
	if outdir == "" {
		return nil
	}
	if err := s.writer.RemoveAll(ctx, outdir); err != nil {
		return fmt.Errorf("builder: clean output dir %s: %w", outdir, err)
	}
	s.logger.Info("output cleaned", "dir", outdir)
	return nil
}

func (s *service) buildPage(ctx context.Context, env *domain.Environment, source *markdown.Service, doc *markdown.Document, outdir string, dryRun bool, result *BuildResult) error {
	body, err := source.Render(ctx, doc)
	if err != nil {
		return err
	}

	page := domain.PageContext{
		Docname:    doc.Docname,
		Title:      pageTitle(doc),
		Body:       string(body),
		FileSuffix: s.cfg.Builder.Suffix(),
		RSSLink:    s.deps.Feed.FeedURL(),
	}
	if err := s.deps.Feed.CollectPage(env, page); err != nil {
		return err
	}

	result.Pages++
	if dryRun {
		return nil
	}
	return s.writePage(ctx, page, outdir)
}

func (s *service) writePage(ctx context.Context, page domain.PageContext, outdir string) error {
	content, err := renderPage(page)
	if err != nil {
		return err
	}
	target := path.Join(outdir, page.Docname+page.FileSuffix)
	if err := s.writer.WriteFile(ctx, target, content); err != nil {
		return fmt.Errorf("builder: write page %s: %w", target, err)
	}
	return nil
}

// sourceService returns the configured markdown service, or a fresh one
// rooted at the override directory.
func (s *service) sourceService(opts BuildOptions) (*markdown.Service, error) {
	dir := strings.TrimSpace(opts.SourceDir)
	if dir == "" || dir == s.cfg.Markdown.ContentDir {
		return s.deps.Markdown, nil
	}
	return markdown.NewService(markdownConfig(s.cfg, dir))
}

func markdownConfig(cfg runtimeconfig.Config, contentDir string) markdown.Config {
	return markdown.Config{
		ContentDir: contentDir,
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
