package markdown

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// Config controls how the markdown service discovers and parses files.
type Config struct {
	ContentDir string
	Pattern    string
	Recursive  bool
	Parser     ParseOptions
}

// Service turns markdown sources into parsed documents and renders their
// trees to HTML. The underlying goldmark engine is stateless, so a single
// service instance can be shared freely.
type Service struct {
	cfg    Config
	engine goldmark.Markdown
	loader *Loader
}

// NewService constructs a markdown service rooted at the configured content
// directory.
func NewService(cfg Config) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.ContentDir)
	if err != nil {
		return nil, err
	}
	return NewServiceWithFS(cfg, filesystem), nil
}

// NewServiceWithFS constructs a markdown service over the provided
// filesystem. Used directly by tests and embedded hosts.
func NewServiceWithFS(cfg Config, filesystem fs.FS) *Service {
	loader := NewLoader(filesystem, LoaderConfig{
		BasePath:  cfg.ContentDir,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	return &Service{
		cfg:    cfg,
		engine: newEngine(cfg.Parser),
		loader: loader,
	}
}

// Parse converts raw source bytes into a Document: front matter split off,
// the body parsed into a goldmark tree, and the docname derived from path.
func (s *Service) Parse(ctx context.Context, path string, source []byte, modified time.Time) (*Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	front, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("markdown parse %s: %w", path, err)
	}

	root := s.engine.Parser().Parse(text.NewReader(body))
	sum := sha256.Sum256(source)

	rel := filepath.ToSlash(path)
	return &Document{
		Docname:  docnameFor(rel),
		Path:     rel,
		Source:   body,
		Root:     root,
		Front:    front,
		Checksum: sum[:],
		Modified: modified,
	}, nil
}

// LoadFile reads and parses a single document relative to the content root.
func (s *Service) LoadFile(ctx context.Context, path string) (*Document, error) {
	result, err := s.loader.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.Parse(ctx, result.Path, result.Source, result.Modified)
}

// LoadTree reads and parses every document under the content root, ordered
// by docname.
func (s *Service) LoadTree(ctx context.Context) ([]*Document, error) {
	results, err := s.loader.ReadDirectory(ctx, ".")
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, 0, len(results))
	for _, result := range results {
		doc, err := s.Parse(ctx, result.Path, result.Source, result.Modified)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Render converts the document tree into HTML.
func (s *Service) Render(ctx context.Context, doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("markdown service: document is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := s.engine.Renderer().Render(&buf, doc.Source, doc.Root); err != nil {
		return nil, fmt.Errorf("markdown render document %s: %w", doc.Docname, err)
	}
	return buf.Bytes(), nil
}

// docnameFor strips the file extension from a slash-separated source path.
func docnameFor(path string) string {
	if ext := filepath.Ext(path); ext != "" {
		return strings.TrimSuffix(path, ext)
	}
	return path
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("markdown service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
