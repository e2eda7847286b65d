package index_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-blog/internal/index"
)

func entry(docname string) index.Entry {
	return index.Entry{Title: docname, Docname: docname, Target: docname}
}

func at(tb testing.TB, value string) time.Time {
	tb.Helper()

	when, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		tb.Fatalf("parse time %q: %v", value, err)
	}
	return when
}

func TestChronologicalGroupsNewestMonthFirst(t *testing.T) {
	idx := index.NewChronological()
	idx.Add(entry("jan-early"), at(t, "2020-01-02 08:00"))
	idx.Add(entry("march"), at(t, "2020-03-10 12:00"))
	idx.Add(entry("jan-late"), at(t, "2020-01-20 09:30"))
	idx.Add(entry("dec"), at(t, "2019-12-31 23:59"))

	groups := idx.Generate()
	if len(groups) != 3 {
		t.Fatalf("expected 3 month groups, got %d", len(groups))
	}

	wantKeys := []string{"2020-03", "2020-01", "2019-12"}
	for i, group := range groups {
		if group.Key != wantKeys[i] {
			t.Fatalf("expected group %q at %d, got %q", wantKeys[i], i, group.Key)
		}
	}

	january := groups[1]
	if january.Entries[0].Docname != "jan-late" || january.Entries[1].Docname != "jan-early" {
		t.Fatalf("expected newest first within a month: %#v", january.Entries)
	}
}

func TestChronologicalKeepsInsertionOrderForEqualTimestamps(t *testing.T) {
	idx := index.NewChronological()
	when := at(t, "2020-01-15 10:30")
	idx.Add(entry("first"), when)
	idx.Add(entry("second"), when)

	groups := idx.Generate()
	if len(groups) != 1 {
		t.Fatalf("expected a single group, got %d", len(groups))
	}
	if groups[0].Entries[0].Docname != "first" || groups[0].Entries[1].Docname != "second" {
		t.Fatalf("equal timestamps should keep insertion order: %#v", groups[0].Entries)
	}
}

func TestChronologicalRecentFlattensNewestFirst(t *testing.T) {
	idx := index.NewChronological()
	idx.Add(entry("a"), at(t, "2020-01-02 08:00"))
	idx.Add(entry("b"), at(t, "2020-03-10 12:00"))
	idx.Add(entry("c"), at(t, "2020-01-20 09:30"))
	idx.Add(entry("d"), at(t, "2019-12-31 23:59"))

	recent := idx.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(recent))
	}
	want := []string{"b", "c", "a"}
	for i, got := range recent {
		if got.Docname != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, got.Docname)
		}
	}
}

func TestChronologicalRecentClampsToTotal(t *testing.T) {
	idx := index.NewChronological()
	idx.Add(entry("only"), at(t, "2020-01-02 08:00"))

	if got := len(idx.Recent(25)); got != 1 {
		t.Fatalf("expected the window to clamp to 1, got %d", got)
	}
	if idx.Recent(0) != nil {
		t.Fatalf("expected nil for a zero limit")
	}
}

func TestCategoricalGroupsSortedByName(t *testing.T) {
	idx := index.NewCategorical()
	idx.Add("tools", entry("t1"), at(t, "2020-01-02 08:00"))
	idx.Add("announcements", entry("a1"), at(t, "2020-02-01 08:00"))
	idx.Add("tools", entry("t2"), at(t, "2020-03-01 08:00"))

	groups := idx.Generate()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key != "announcements" || groups[1].Key != "tools" {
		t.Fatalf("expected name order: %#v", groups)
	}

	tools := groups[1]
	if tools.Entries[0].Docname != "t2" || tools.Entries[1].Docname != "t1" {
		t.Fatalf("expected newest first within a category: %#v", tools.Entries)
	}
}

func TestCategoricalRecentLimitsOneBucket(t *testing.T) {
	idx := index.NewCategorical()
	idx.Add("news", entry("n1"), at(t, "2020-01-02 08:00"))
	idx.Add("news", entry("n2"), at(t, "2020-02-01 08:00"))
	idx.Add("other", entry("o1"), at(t, "2020-03-01 08:00"))

	recent := idx.Recent("news", 1)
	if len(recent) != 1 || recent[0].Docname != "n2" {
		t.Fatalf("expected the newest news entry: %#v", recent)
	}
	if got := idx.Recent("missing", 5); got != nil {
		t.Fatalf("expected nil for an unknown category: %#v", got)
	}
}

func TestCategorySlug(t *testing.T) {
	if got := index.CategorySlug("Release Notes"); got != "release-notes" {
		t.Fatalf("expected release-notes, got %q", got)
	}
	if got := index.CategorySlug(""); got != "" {
		t.Fatalf("expected empty slug for empty category, got %q", got)
	}
}
