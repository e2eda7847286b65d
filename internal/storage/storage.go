// Package storage writes build artifacts. The OS writer backs real builds;
// the memory writer backs tests.
package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrPathRequired indicates a write without a target path.
var ErrPathRequired = errors.New("storage: write requires a path")

// Writer abstracts artifact output for the builder and the feed assembler.
type Writer interface {
	EnsureDir(ctx context.Context, dir string) error
	WriteFile(ctx context.Context, path string, content []byte) error
	RemoveAll(ctx context.Context, dir string) error
}

// NewOSWriter returns a Writer backed by the local filesystem.
func NewOSWriter() Writer {
	return osWriter{}
}

type osWriter struct{}

func (osWriter) EnsureDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (osWriter) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		return ErrPathRequired
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, content, 0o644)
}

func (osWriter) RemoveAll(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	return os.RemoveAll(dir)
}

// MemoryWriter collects artifacts in memory.
type MemoryWriter struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]struct{}
}

// NewMemoryWriter returns an empty in-memory writer.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{
		files: map[string][]byte{},
		dirs:  map[string]struct{}{},
	}
}

func (w *MemoryWriter) EnsureDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	w.mu.Lock()
	w.dirs[filepath.ToSlash(dir)] = struct{}{}
	w.mu.Unlock()
	return nil
}

func (w *MemoryWriter) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		return ErrPathRequired
	}
	w.mu.Lock()
	w.files[filepath.ToSlash(path)] = append([]byte(nil), content...)
	w.mu.Unlock()
	return nil
}

func (w *MemoryWriter) RemoveAll(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	prefix := filepath.ToSlash(dir)
	w.mu.Lock()
	defer w.mu.Unlock()
	for path := range w.files {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			delete(w.files, path)
		}
	}
	for path := range w.dirs {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			delete(w.dirs, path)
		}
	}
	return nil
}

// File returns the content written to path.
func (w *MemoryWriter) File(path string) ([]byte, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	content, ok := w.files[filepath.ToSlash(path)]
	return content, ok
}

// Files lists the written paths in sorted order.
func (w *MemoryWriter) Files() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// HasDir reports whether EnsureDir recorded the directory.
func (w *MemoryWriter) HasDir(dir string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.dirs[filepath.ToSlash(dir)]
	return ok
}
