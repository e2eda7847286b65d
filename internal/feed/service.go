// Package feed collects article pages during a build and writes the Atom
// feed at build-finish.
package feed

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-blog/internal/articles"
	"github.com/goliatone/go-blog/internal/domain"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/internal/storage"
	"github.com/goliatone/go-blog/internal/util"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ErrNotStarted indicates a collect or finish call before Begin seeded the
// environment.
var ErrNotStarted = errors.New("feed: build environment has no feed state")

// Service assembles the site feed across the build lifecycle: Begin at
// builder-init, CollectPage per rendered page, Finish at build-finished.
type Service interface {
	Begin(env *domain.Environment)
	CollectPage(env *domain.Environment, page domain.PageContext) error
	Finish(ctx context.Context, env *domain.Environment, outdir string) error
	FeedURL() string
	Enabled() bool
}

// Dependencies lists the collaborators the feed assembler needs.
type Dependencies struct {
	Logger interfaces.LoggerProvider
	Writer storage.Writer
	Clock  func() time.Time
}

// NewService wires a feed assembler with the provided configuration and
// dependencies.
func NewService(cfg runtimeconfig.Config, deps Dependencies) (Service, error) {
	loc, err := cfg.Site.Location()
	if err != nil {
		return nil, err
	}

	svc := &service{
		cfg:      cfg,
		loc:      loc,
		logger:   logging.FeedLogger(deps.Logger),
		writer:   deps.Writer,
		now:      deps.Clock,
		sanitize: bluemonday.UGCPolicy(),
		urls:     newURLSpace(cfg.Site.NormalizedBaseURL()),
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
	cfg      runtimeconfig.Config
	loc      *time.Location
	logger   interfaces.Logger
	writer   storage.Writer
	now      func() time.Time
	sanitize *bluemonday.Policy
	urls     *urlSpace
}

// Begin seeds the feed container from configuration and resets the item map.
func (s *service) Begin(env *domain.Environment) {
	if env == nil {
		return
	}

	state := domain.NewFeedState()
	state.Title = s.cfg.Site.Title
	state.Link = s.cfg.Site.NormalizedBaseURL()
	state.Description = s.cfg.Site.Description
	state.Author = s.cfg.Feed.Author
	state.Copyright = s.cfg.Site.Copyright
	env.Feed = state
}

// CollectPage captures one rendered page as a feed item. Pages whose
// metadata lacks the article flag are ignored.
func (s *service) CollectPage(env *domain.Environment, page domain.PageContext) error {
	if env == nil || env.Feed == nil {
		return ErrNotStarted
	}

	meta := env.MetadataFor(page.Docname)
	if meta == nil || meta[domain.MetaIsArticle] != true {
		return nil
	}

	published, updated, err := s.itemDates(meta)
	if err != nil {
		return fmt.Errorf("page %s: %w", page.Docname, err)
	}

	item := domain.FeedItem{
		Title:     page.Title,
		URL:       s.cfg.Site.NormalizedBaseURL() + "/" + page.Docname + page.FileSuffix,
		Content:   s.sanitize.Sanitize(page.Body),
		Published: published,
		Updated:   updated,
	}
	if authors, ok := meta["author"].([]string); ok && len(authors) > 0 {
		item.Author = strings.Join(authors, ", ")
	}

	env.Feed.Items[page.Docname] = item
	return nil
}

// Finish serializes and writes the feed. Only the HTML builder target writes
// a feed, and an empty filename disables the feature silently.
func (s *service) Finish(ctx context.Context, env *domain.Environment, outdir string) error {
	if env == nil || env.Feed == nil {
		return ErrNotStarted
	}
	if env.Builder != domain.TargetHTML {
		return nil
	}
	filename := strings.TrimSpace(s.cfg.Feed.Filename)
	if filename == "" {
		return nil
	}

	state := env.Feed
	atom := &feeds.Feed{
		Title:       state.Title,
		Link:        &feeds.Link{Href: state.Link},
		Description: state.Description,
		Copyright:   state.Copyright,
		Updated:     s.now(),
	}
	if state.Author != "" {
		atom.Author = &feeds.Author{Name: state.Author}
	}

	for _, entry := range env.Chronological.Recent(s.cfg.Feed.Limit()) {
		item, ok := state.Items[entry.Docname]
		if !ok {
			s.logger.Warn("article missing from collected pages", "docname", entry.Docname)
			continue
		}
		atom.Add(&feeds.Item{
			Id:      item.URL,
			Title:   item.Title,
			Link:    &feeds.Link{Href: item.URL},
			Content: item.Content,
			Author:  feedAuthor(item.Author),
			Created: item.Published,
			Updated: item.Updated,
		})
	}

	payload, err := atom.ToAtom()
	if err != nil {
		return fmt.Errorf("feed: serialize atom: %w", err)
	}

	if err := s.writer.EnsureDir(ctx, outdir); err != nil {
		return fmt.Errorf("feed: ensure output dir %s: %w", outdir, err)
	}
	target := path.Join(outdir, filename)
	if err := s.writer.WriteFile(ctx, target, []byte(payload)); err != nil {
		return fmt.Errorf("feed: write %s: %w", target, err)
	}

	s.logger.Info("feed written", "path", target, "items", len(atom.Items))
	return nil
}

// FeedURL returns the public feed address pages advertise as rss_link.
func (s *service) FeedURL() string {
	filename := strings.TrimSpace(s.cfg.Feed.Filename)
	if filename == "" {
		return ""
	}
	return s.urls.FeedURL(filename)
}

// Enabled reports whether a feed will be written for HTML builds.
func (s *service) Enabled() bool {
	return strings.TrimSpace(s.cfg.Feed.Filename) != ""
}

// itemDates derives the published and updated instants: the marker date is
// the publication time, the front-matter updated value wins for recency.
// Either value missing falls back to the other.
func (s *service) itemDates(meta map[string]any) (time.Time, time.Time, error) {
	rawDate, _ := meta["date"].(string)
	rawUpdated, _ := meta[domain.MetaUpdated].(string)

	primary := util.FirstNonEmpty(strings.TrimSpace(rawDate), strings.TrimSpace(rawUpdated))
	published, err := articles.ParsePubdate(primary, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	updated := published
	if value := strings.TrimSpace(rawUpdated); value != "" {
		updated, err = articles.ParsePubdate(value, s.loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return published, updated, nil
}

func feedAuthor(name string) *feeds.Author {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	return &feeds.Author{Name: name}
}
