package markdown

import (
	"errors"
	"testing"

	"github.com/yuin/goldmark/ast"
)

func TestDocumentTitle(t *testing.T) {
	doc := parseTestDocument(t, "# Launch Week\n\nBody.\n")

	title, err := doc.Title()
	if err != nil {
		t.Fatalf("Title: %v", err)
	}
	if title != "Launch Week" {
		t.Fatalf("expected title Launch Week, got %q", title)
	}
}

func TestDocumentTitleMissing(t *testing.T) {
	doc := parseTestDocument(t, "No heading here.\n")

	if _, err := doc.Title(); !errors.Is(err, ErrNoTitle) {
		t.Fatalf("expected ErrNoTitle, got %v", err)
	}
}

func TestDocumentFirstSectionID(t *testing.T) {
	doc := parseTestDocument(t, "# Launch Week\n\n## Details\n")

	id, err := doc.FirstSectionID()
	if err != nil {
		t.Fatalf("FirstSectionID: %v", err)
	}
	if id != "launch-week" {
		t.Fatalf("expected launch-week, got %q", id)
	}
}

func TestDocumentFirstSectionIDMissing(t *testing.T) {
	root := ast.NewDocument()
	root.AppendChild(root, ast.NewHeading(1))
	doc := &Document{Docname: "bare", Root: root}

	if _, err := doc.FirstSectionID(); !errors.Is(err, ErrNoSectionID) {
		t.Fatalf("expected ErrNoSectionID, got %v", err)
	}
}

func TestDocumentFirstParagraphText(t *testing.T) {
	doc := parseTestDocument(t, "# Title\n\nFirst paragraph.\n\nSecond paragraph.\n")

	if got := doc.FirstParagraphText(); got != "First paragraph." {
		t.Fatalf("expected first paragraph text, got %q", got)
	}
}

func TestDocumentArticleNilForPlainDocument(t *testing.T) {
	doc := parseTestDocument(t, "# Title\n\nJust prose.\n")

	if doc.Article() != nil {
		t.Fatalf("expected no marker in a plain document")
	}
}

func TestDocumentArticleReturnsFirstMarker(t *testing.T) {
	source := "# Title\n\n:::article 2021-01-01\n\nFirst.\n:::\n\n:::post 2021-02-02\n\nSecond.\n:::\n"
	doc := parseTestDocument(t, source)

	article := doc.Article()
	if article == nil {
		t.Fatalf("expected a marker")
	}
	if article.Date != "2021-01-01" {
		t.Fatalf("expected the first marker, got date %q", article.Date)
	}
}
