package articles

import (
	"github.com/goliatone/go-blog/internal/domain"
	"github.com/goliatone/go-blog/internal/index"
	"github.com/goliatone/go-blog/internal/logging"
)

// Role names the domain answers to.
const (
	RoleArticle = "article"
	RoleArchive = "archive"
)

// Roles returns the reference role names the domain registers.
func (s *service) Roles() []string {
	return []string{RoleArticle, RoleArchive}
}

// ResolveReference resolves an article or archive reference. Known article
// docnames link to the article page with the stored title; the two index
// targets link to the generated index pages with their display titles.
// Anything else is logged at debug and reported unresolved, never an error.
func (s *service) ResolveReference(env *domain.Environment, role, fromdoc, target string) (domain.Reference, bool) {
	if env != nil {
		if entry, ok := env.Articles[target]; ok {
			return domain.Reference{Title: entry.Title, Href: s.PageURL(entry.Docname)}, true
		}
	}

	switch target {
	case domain.ByDateTarget:
		return domain.Reference{Title: index.ChronologicalTitle, Href: s.PageURL(domain.ByDateTarget)}, true
	case domain.ByCategoryTarget:
		return domain.Reference{Title: index.CategoricalTitle, Href: s.PageURL(domain.ByCategoryTarget)}, true
	}

	logging.WithReferenceContext(s.logger, role, fromdoc).
		Debug("unresolved reference", "target", target)
	return domain.Reference{}, false
}

// PageURL returns the absolute address of a page: the normalized site base,
// the docname, and the configured file suffix.
func (s *service) PageURL(docname string) string {
	return s.cfg.Site.NormalizedBaseURL() + "/" + docname + s.cfg.Builder.Suffix()
}
