package markdown

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"
)

func TestLoaderReadDirectorySortsByPath(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{Recursive: true}, map[string]string{
		"posts/b.md": "# B\n",
		"posts/a.md": "# A\n",
		"about.md":   "# About\n",
		"notes.txt":  "ignored\n",
	})

	results, err := loader.ReadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("ReadDirectory: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 files, got %d", len(results))
	}
	want := []string{"about.md", "posts/a.md", "posts/b.md"}
	for i, result := range results {
		if result.Path != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, result.Path)
		}
	}
}

func TestLoaderNonRecursiveStopsAtRoot(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{Recursive: false}, map[string]string{
		"index.md":      "# Index\n",
		"posts/post.md": "# Post\n",
	})

	results, err := loader.ReadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("ReadDirectory: %v", err)
	}

	if len(results) != 1 || results[0].Path != "index.md" {
		t.Fatalf("expected only root files: %#v", results)
	}
}

func TestLoaderPatternFilters(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{Pattern: "*.markdown", Recursive: true}, map[string]string{
		"one.markdown": "# One\n",
		"two.md":       "# Two\n",
	})

	results, err := loader.ReadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("ReadDirectory: %v", err)
	}

	if len(results) != 1 || results[0].Path != "one.markdown" {
		t.Fatalf("expected pattern to filter files: %#v", results)
	}
}

func TestLoaderReadFileMissing(t *testing.T) {
	loader := newTestLoader(t, LoaderConfig{}, nil)

	if _, err := loader.ReadFile(context.Background(), "absent.md"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func newTestLoader(tb testing.TB, cfg LoaderConfig, files map[string]string) *Loader {
	tb.Helper()

	mapfs := fstest.MapFS{}
	for path, content := range files {
		mapfs[path] = &fstest.MapFile{
			Data:    []byte(content),
			ModTime: time.Date(2020, 1, 15, 10, 30, 0, 0, time.UTC),
		}
	}
	return NewLoader(mapfs, cfg)
}
