package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter models metadata extracted from document front matter. The date
// fields stay raw strings; the aggregator parses them with the configured
// timezone alongside directive dates.
type FrontMatter struct {
	Title   string         `yaml:"title"`
	Updated string         `yaml:"updated"`
	Summary string         `yaml:"summary"`
	Author  string         `yaml:"author"`
	Draft   bool           `yaml:"draft"`
	Custom  map[string]any `yaml:",inline"`
}

// ParseFrontMatter extracts metadata and the markdown body from the provided
// source bytes. Sources without front matter return a zero FrontMatter and
// the input unchanged.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}
	return meta, body, nil
}
