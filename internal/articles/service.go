// Package articles aggregates marked documents into the build environment:
// it extracts index entries from article markers, maintains the per-document
// metadata side channel, and resolves article cross references.
package articles

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-blog/internal/domain"
	"github.com/goliatone/go-blog/internal/index"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

var (
	// ErrEnvironmentRequired indicates a nil build environment.
	ErrEnvironmentRequired = errors.New("articles: build environment is required")
	// ErrDocumentRequired indicates a nil document.
	ErrDocumentRequired = errors.New("articles: document is required")
)

// Service exposes the article domain: marker extraction, index bookkeeping,
// and cross-reference resolution.
type Service interface {
	ProcessDocument(env *domain.Environment, doc *markdown.Document) error
	ResolveReference(env *domain.Environment, role, fromdoc, target string) (domain.Reference, bool)
	Roles() []string
	PageURL(docname string) string
}

// Dependencies lists the collaborators the aggregator needs.
type Dependencies struct {
	Logger interfaces.LoggerProvider
}

// NewService wires an article aggregator with the provided configuration and
// dependencies.
func NewService(cfg runtimeconfig.Config, deps Dependencies) (Service, error) {
	loc, err := cfg.Site.Location()
	if err != nil {
		return nil, err
	}
	return &service{
		cfg:    cfg,
		loc:    loc,
		logger: logging.ArticlesLogger(deps.Logger),
	}, nil
}

type service struct {
	cfg    runtimeconfig.Config
	loc    *time.Location
	logger interfaces.Logger
}

// ProcessDocument inspects one parsed document. Documents without an article
// marker are left untouched. Marked documents contribute an index entry, the
// metadata side channel, and their publication date; the marker itself is
// erased from the tree with its children hoisted in place.
func (s *service) ProcessDocument(env *domain.Environment, doc *markdown.Document) error {
	if env == nil {
		return ErrEnvironmentRequired
	}
	if doc == nil {
		return ErrDocumentRequired
	}

	marker := doc.Article()
	if marker == nil {
		return nil
	}

	title, err := doc.Title()
	if err != nil {
		return err
	}
	target, err := doc.FirstSectionID()
	if err != nil {
		return err
	}

	entry := index.Entry{
		Title:       title,
		Docname:     doc.Docname,
		Target:      target,
		Description: describe(doc),
	}

	published, err := s.publicationDate(doc, marker)
	if err != nil {
		return err
	}

	if _, exists := env.Articles[doc.Docname]; !exists {
		env.Articles[doc.Docname] = entry
		env.Chronological.Add(entry, published)
		for _, category := range marker.Categories {
			env.Categorical.Add(category, entry, published)
		}
	}

	for key, value := range marker.Attributes() {
		env.SetMetadata(doc.Docname, key, value)
	}
	env.SetMetadata(doc.Docname, domain.MetaOrphan, true)
	env.SetMetadata(doc.Docname, domain.MetaIsArticle, true)
	if entry.Description != "" {
		env.SetMetadata(doc.Docname, domain.MetaDescription, entry.Description)
	}
	if updated := strings.TrimSpace(doc.Front.Updated); updated != "" {
		env.SetMetadata(doc.Docname, domain.MetaUpdated, updated)
	}

	markdown.Unwrap(marker)

	logging.WithDocumentContext(s.logger, doc.Docname, doc.Path).
		Debug("article indexed", "published", published)
	return nil
}

// publicationDate picks the front-matter updated value over the marker date.
// Both go through the shared two-layout parser in the site timezone.
func (s *service) publicationDate(doc *markdown.Document, marker *markdown.ArticleNode) (time.Time, error) {
	value := strings.TrimSpace(doc.Front.Updated)
	if value == "" {
		value = strings.TrimSpace(marker.Date)
	}
	when, err := ParsePubdate(value, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("document %s: %w", doc.Docname, err)
	}
	return when, nil
}

const descriptionLimit = 200

// describe derives the index description: the front-matter summary when
// present, otherwise the first paragraph truncated on a word boundary.
func describe(doc *markdown.Document) string {
	if summary := strings.TrimSpace(doc.Front.Summary); summary != "" {
		return summary
	}
	return truncateWords(strings.TrimSpace(doc.FirstParagraphText()), descriptionLimit)
}

func truncateWords(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	for _, word := range words {
		next := len(word)
		if b.Len() > 0 {
			next++
		}
		if b.Len()+next > limit {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	if b.Len() == 0 {
		return words[0]
	}
	return b.String()
}
