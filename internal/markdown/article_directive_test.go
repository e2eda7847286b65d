package markdown

import (
	"context"
	"strings"
	"testing"
	"time"
)

func parseTestDocument(tb testing.TB, source string) *Document {
	tb.Helper()

	svc := newTestService(tb, nil)
	doc, err := svc.Parse(context.Background(), "post.md", []byte(source), time.Time{})
	if err != nil {
		tb.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestArticleDirectiveCapturesOptions(t *testing.T) {
	doc := parseTestDocument(t, articleSource)

	article := doc.Article()
	if article == nil {
		t.Fatalf("expected an article marker")
	}

	if article.Marker != "article" {
		t.Fatalf("expected marker article, got %q", article.Marker)
	}
	if article.Date != "2020-01-15 10:30" {
		t.Fatalf("expected raw date argument, got %q", article.Date)
	}
	if len(article.Authors) != 2 || article.Authors[0] != "ana" || article.Authors[1] != "bob" {
		t.Fatalf("authors mismatch: %#v", article.Authors)
	}
	if len(article.Categories) != 2 || article.Categories[0] != "news" {
		t.Fatalf("categories mismatch: %#v", article.Categories)
	}
	if len(article.Tags) != 2 || article.Tags[1] != "web" {
		t.Fatalf("tags mismatch: %#v", article.Tags)
	}
	if article.Image == nil || *article.Image != 2 {
		t.Fatalf("image mismatch: %#v", article.Image)
	}
	if !article.NoIndex {
		t.Fatalf("expected noindex to be set")
	}
}

func TestArticleDirectiveMarkerAliases(t *testing.T) {
	for _, marker := range []string{"article", "post", "blogpost"} {
		doc := parseTestDocument(t, "# Title\n\n:::"+marker+" 2021-06-01\n\nBody.\n:::\n")

		article := doc.Article()
		if article == nil {
			t.Fatalf("expected %s marker to be recognised", marker)
		}
		if article.Marker != marker {
			t.Fatalf("expected marker %q, got %q", marker, article.Marker)
		}
		if article.Date != "2021-06-01" {
			t.Fatalf("expected date for %s, got %q", marker, article.Date)
		}
	}
}

func TestArticleDirectiveIgnoresNonNumericImage(t *testing.T) {
	doc := parseTestDocument(t, "# Title\n\n:::article 2021-06-01\n:image: cover\n\nBody.\n:::\n")

	article := doc.Article()
	if article == nil {
		t.Fatalf("expected an article marker")
	}
	if article.Image != nil {
		t.Fatalf("expected non-numeric image value to be dropped, got %d", *article.Image)
	}
}

func TestArticleDirectiveUnknownOptionBecomesContent(t *testing.T) {
	svc := newTestService(t, nil)
	doc, err := svc.Parse(context.Background(), "post.md", []byte("# Title\n\n:::article 2021-06-01\n:sidebar: off\n\nBody.\n:::\n"), time.Time{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	html, err := svc.Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(string(html), ":sidebar: off") {
		t.Fatalf("expected unknown option line to stay in the body: %s", html)
	}
}

func TestArticleDirectiveLeavesNoRenderTrace(t *testing.T) {
	svc := newTestService(t, nil)
	doc, err := svc.Parse(context.Background(), "post.md", []byte(articleSource), time.Time{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	html, err := svc.Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := string(html)
	if strings.Contains(out, ":::") {
		t.Fatalf("directive fence leaked into output: %s", out)
	}
	if strings.Contains(out, ":author:") {
		t.Fatalf("option lines leaked into output: %s", out)
	}
	if !strings.Contains(out, "We shipped the first public build.") {
		t.Fatalf("nested content missing from output: %s", out)
	}
	if !strings.Contains(out, "Thanks for reading.") {
		t.Fatalf("trailing content missing from output: %s", out)
	}
}

func TestArticleDirectiveRequiresThreeColons(t *testing.T) {
	doc := parseTestDocument(t, "# Title\n\n::article 2021-06-01\n")

	if doc.Article() != nil {
		t.Fatalf("expected short fence to be ignored")
	}
}
