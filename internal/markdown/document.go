package markdown

import (
	"errors"
	"fmt"
	"time"

	"github.com/yuin/goldmark/ast"
)

var (
	// ErrNoTitle indicates a document without a heading to index by.
	ErrNoTitle = errors.New("markdown: document has no title heading")
	// ErrNoSectionID indicates the title heading carries no anchor identifier.
	ErrNoSectionID = errors.New("markdown: document title has no anchor id")
)

// Document is one parsed source file: the goldmark tree plus the metadata
// needed to address it during a build.
type Document struct {
	// Docname is the slash-separated source path without its extension. It is
	// the stable identifier pages, index entries, and feed items key on.
	Docname string
	// Path is the source path relative to the content root.
	Path string
	// Source is the markdown body with any front matter stripped.
	Source []byte
	// Root is the parsed document tree for Source.
	Root ast.Node
	// Front holds the document front matter, when present.
	Front FrontMatter
	// Checksum is a sha256 digest of the original file content.
	Checksum []byte
	// Modified is the source file modification time, when known.
	Modified time.Time
}

// Title returns the text of the first heading in document order.
func (d *Document) Title() (string, error) {
	heading := d.firstHeading()
	if heading == nil {
		return "", fmt.Errorf("%w: %s", ErrNoTitle, d.Docname)
	}
	return string(heading.Text(d.Source)), nil
}

// FirstSectionID returns the anchor identifier of the first heading, the
// target index entries and cross references point at.
func (d *Document) FirstSectionID() (string, error) {
	heading := d.firstHeading()
	if heading == nil {
		return "", fmt.Errorf("%w: %s", ErrNoTitle, d.Docname)
	}
	value, ok := heading.AttributeString("id")
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoSectionID, d.Docname)
	}
	switch id := value.(type) {
	case []byte:
		return string(id), nil
	case string:
		return id, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrNoSectionID, d.Docname)
	}
}

// Article returns the first article marker node in the tree, or nil when the
// document is not an article.
func (d *Document) Article() *ArticleNode {
	var found *ArticleNode
	_ = ast.Walk(d.Root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if article, ok := n.(*ArticleNode); ok {
			found = article
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}

// FirstParagraphText returns the plain text of the first paragraph, used to
// derive descriptions when front matter supplies none. Returns "" when the
// document has no paragraph.
func (d *Document) FirstParagraphText() string {
	var text string
	_ = ast.Walk(d.Root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if paragraph, ok := n.(*ast.Paragraph); ok {
			text = string(paragraph.Text(d.Source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return text
}

func (d *Document) firstHeading() *ast.Heading {
	if d.Root == nil {
		return nil
	}
	var heading *ast.Heading
	_ = ast.Walk(d.Root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			heading = h
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return heading
}
