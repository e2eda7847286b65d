package builder

import (
	"bytes"
	"fmt"
	"html/template"
	"path"
	"strings"

	"github.com/goliatone/go-blog/internal/domain"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/util"
)

const pageLayout = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{ .Title }}</title>
{{- if .RSSLink }}
    <link rel="alternate" type="application/atom+xml" href="{{ .RSSLink }}">
{{- end }}
  </head>
  <body>
    <main>
{{ .Body }}
    </main>
  </body>
</html>
`

const listingLayout = `<h1 id="{{ .Anchor }}">{{ .Title }}</h1>
{{- range .Groups }}
<section>
  <h2 id="{{ .Anchor }}">{{ .Heading }}</h2>
  <ul>
  {{- range .Items }}
    <li><a href="{{ .Href }}">{{ .Title }}</a>{{ if .Description }} <p>{{ .Description }}</p>{{ end }}</li>
  {{- end }}
  </ul>
</section>
{{- end }}
`

var (
	pageTemplate    = template.Must(template.New("page").Parse(pageLayout))
	listingTemplate = template.Must(template.New("listing").Parse(listingLayout))
)

type pageData struct {
	Title   string
	RSSLink string
	Body    template.HTML
}

type listingData struct {
	Title  string
	Anchor string
	Groups []listingGroup
}

type listingGroup struct {
	Heading string
	Anchor  string
	Items   []listingItem
}

type listingItem struct {
	Title       string
	Href        string
	Description string
}

// renderPage wraps an already-rendered body in the page shell. The body is
// module output, not user input, so it passes through unescaped.
func renderPage(page domain.PageContext) ([]byte, error) {
	data := pageData{
		Title:   page.Title,
		RSSLink: page.RSSLink,
		Body:    template.HTML(page.Body),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("builder: render page %s: %w", page.Docname, err)
	}
	return buf.Bytes(), nil
}

// renderListing produces the body of a grouped index page.
func renderListing(data listingData) (string, error) {
	var buf bytes.Buffer
	if err := listingTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("builder: render listing %s: %w", data.Anchor, err)
	}
	return buf.String(), nil
}

// pageTitle resolves the display title: the first heading, then front
// matter, then the docname base.
func pageTitle(doc *markdown.Document) string {
	if title, err := doc.Title(); err == nil {
		return title
	}
	return util.FirstNonEmpty(strings.TrimSpace(doc.Front.Title), path.Base(doc.Docname))
}
