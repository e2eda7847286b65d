package index

import (
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
)

// Identity of the category index: reference target name and display title.
const (
	CategoricalName  = "bycategory"
	CategoricalTitle = "By Category"
)

// Categorical groups entries by their category tags. Tags are kept verbatim
// as bucket keys; anchors use the slugged form.
type Categorical struct {
	buckets map[string][]dated
	size    int
}

// NewCategorical returns an empty categorical index.
func NewCategorical() *Categorical {
	return &Categorical{buckets: map[string][]dated{}}
}

// Add files the entry under the verbatim category tag.
func (c *Categorical) Add(category string, entry Entry, published time.Time) {
	c.buckets[category] = insertByRecency(c.buckets[category], entry, published)
	c.size++
}

// Len reports the number of indexed entries across all categories.
func (c *Categorical) Len() int {
	return c.size
}

// Categories returns the known category tags in display order.
func (c *Categorical) Categories() []string {
	keys := make([]string, 0, len(c.buckets))
	for key := range c.buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Generate returns one group per category, sorted by category name. Entries
// within a group are ordered newest first.
func (c *Categorical) Generate() []Group {
	keys := c.Categories()
	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, Group{Key: key, Slug: CategorySlug(key), Entries: flatten(c.buckets[key])})
	}
	return groups
}

// Recent returns up to limit entries for one category, newest first.
func (c *Categorical) Recent(category string, limit int) []Entry {
	bucket := c.buckets[category]
	if limit <= 0 || len(bucket) == 0 {
		return nil
	}
	if limit > len(bucket) {
		limit = len(bucket)
	}
	return flatten(bucket[:limit])
}

// CategorySlug returns the anchor-safe form of a category tag. Tags that
// cannot be normalized fall back to their trimmed form.
func CategorySlug(category string) string {
	candidate := strings.TrimSpace(category)
	if candidate == "" {
		return ""
	}
	normalized, err := slug.Normalize(candidate)
	if err != nil || normalized == "" {
		return candidate
	}
	return normalized
}
