package builder

import (
	"context"

	"github.com/goliatone/go-blog/internal/domain"
	"github.com/goliatone/go-blog/internal/index"
	"github.com/goliatone/go-blog/internal/markdown"
)

const homeDocname = "index"

// buildIndexPages renders the two generated archive pages: articles grouped
// by month and by category.
func (s *service) buildIndexPages(ctx context.Context, env *domain.Environment, outdir string, dryRun bool, result *BuildResult) error {
	listings := []struct {
		docname string
		title   string
		groups  []index.Group
	}{
		{domain.ByDateTarget, index.ChronologicalTitle, env.Chronological.Generate()},
		{domain.ByCategoryTarget, index.CategoricalTitle, env.Categorical.Generate()},
	}

	for _, listing := range listings {
		if err := ctx.Err(); err != nil {
			return err
		}

		body, err := renderListing(s.listingFor(listing.title, listing.docname, listing.groups))
		if err != nil {
			return err
		}

		page := domain.PageContext{
			Docname:    listing.docname,
			Title:      listing.title,
			Body:       body,
			FileSuffix: s.cfg.Builder.Suffix(),
			RSSLink:    s.deps.Feed.FeedURL(),
		}
		if err := s.deps.Feed.CollectPage(env, page); err != nil {
			return err
		}

		result.Pages++
		if dryRun {
			continue
		}
		if err := s.writePage(ctx, page, outdir); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) listingFor(title, docname string, groups []index.Group) listingData {
	data := listingData{Title: title, Anchor: docname}
	for _, group := range groups {
		section := listingGroup{Heading: group.Key, Anchor: group.Slug}
		for _, entry := range group.Entries {
			href := s.deps.Articles.PageURL(entry.Docname)
			if entry.Target != "" {
				href += "#" + entry.Target
			}
			section.Items = append(section.Items, listingItem{
				Title:       entry.Title,
				Href:        href,
				Description: entry.Description,
			})
		}
		data.Groups = append(data.Groups, section)
	}
	return data
}

// buildHomePage emits a site landing page linking the archive pages and
// every non-orphan document. Articles carry the orphan flag, so they surface
// through the archives rather than the landing nav. An authored document
// named index wins over the generated one.
func (s *service) buildHomePage(ctx context.Context, env *domain.Environment, docs []*markdown.Document, outdir string, dryRun bool, result *BuildResult) error {
	for _, doc := range docs {
		if doc.Docname == homeDocname {
			return nil
		}
	}

	title := s.cfg.Site.Title
	if title == "" {
		title = "Home"
	}

	archives := listingGroup{Heading: "Archives", Anchor: "archives", Items: []listingItem{
		{Title: index.ChronologicalTitle, Href: s.deps.Articles.PageURL(domain.ByDateTarget)},
		{Title: index.CategoricalTitle, Href: s.deps.Articles.PageURL(domain.ByCategoryTarget)},
	}}

	pages := listingGroup{Heading: "Pages", Anchor: "pages"}
	for _, doc := range docs {
		meta := env.MetadataFor(doc.Docname)
		if meta != nil && meta[domain.MetaOrphan] == true {
			continue
		}
		pages.Items = append(pages.Items, listingItem{
			Title: pageTitle(doc),
			Href:  s.deps.Articles.PageURL(doc.Docname),
		})
	}

	data := listingData{Title: title, Anchor: "home", Groups: []listingGroup{archives}}
	if len(pages.Items) > 0 {
		data.Groups = append(data.Groups, pages)
	}

	body, err := renderListing(data)
	if err != nil {
		return err
	}

	page := domain.PageContext{
		Docname:    homeDocname,
		Title:      title,
		Body:       body,
		FileSuffix: s.cfg.Builder.Suffix(),
		RSSLink:    s.deps.Feed.FeedURL(),
	}
	result.Pages++
	if dryRun {
		return nil
	}
	return s.writePage(ctx, page, outdir)
}
