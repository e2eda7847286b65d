package markdown

import "testing"

func TestParseFrontMatter(t *testing.T) {
	source := []byte(`---
title: Launch Notes
updated: 2020-01-16 09:00
summary: Everything shipped this week.
author: ana
draft: true
series: launches
---
# Launch Week
`)

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if meta.Title != "Launch Notes" {
		t.Fatalf("title mismatch: %q", meta.Title)
	}
	if meta.Updated != "2020-01-16 09:00" {
		t.Fatalf("updated mismatch: %q", meta.Updated)
	}
	if meta.Summary != "Everything shipped this week." {
		t.Fatalf("summary mismatch: %q", meta.Summary)
	}
	if meta.Author != "ana" {
		t.Fatalf("author mismatch: %q", meta.Author)
	}
	if !meta.Draft {
		t.Fatalf("expected draft to be true")
	}
	if meta.Custom["series"] != "launches" {
		t.Fatalf("custom field missing: %#v", meta.Custom)
	}
	if string(body) != "# Launch Week\n" {
		t.Fatalf("body mismatch: %q", body)
	}
}

func TestParseFrontMatterAbsent(t *testing.T) {
	source := []byte("# No Metadata\n")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if meta.Title != "" || meta.Draft {
		t.Fatalf("expected zero front matter, got %#v", meta)
	}
	if string(body) != string(source) {
		t.Fatalf("body should match input: %q", body)
	}
}
