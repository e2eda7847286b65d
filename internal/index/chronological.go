package index

import (
	"sort"
	"time"
)

// Identity of the date index: reference target name and display title.
const (
	ChronologicalName  = "bydate"
	ChronologicalTitle = "By Date"
)

const monthKeyLayout = "2006-01"

type dated struct {
	entry Entry
	when  time.Time
}

// insertByRecency keeps a bucket ordered newest first. Equal timestamps keep
// insertion order.
func insertByRecency(bucket []dated, entry Entry, published time.Time) []dated {
	pos := sort.Search(len(bucket), func(i int) bool {
		return bucket[i].when.Before(published)
	})
	bucket = append(bucket, dated{})
	copy(bucket[pos+1:], bucket[pos:])
	bucket[pos] = dated{entry: entry, when: published}
	return bucket
}

func flatten(bucket []dated) []Entry {
	entries := make([]Entry, 0, len(bucket))
	for _, item := range bucket {
		entries = append(entries, item.entry)
	}
	return entries
}

// Chronological groups entries by publication month.
type Chronological struct {
	buckets map[string][]dated
	size    int
}

// NewChronological returns an empty chronological index.
func NewChronological() *Chronological {
	return &Chronological{buckets: map[string][]dated{}}
}

// Add files the entry under its publication month.
func (c *Chronological) Add(entry Entry, published time.Time) {
	key := published.Format(monthKeyLayout)
	c.buckets[key] = insertByRecency(c.buckets[key], entry, published)
	c.size++
}

// Len reports the number of indexed entries.
func (c *Chronological) Len() int {
	return c.size
}

// Generate returns the month groups newest first. Entries within a group are
// ordered newest first as well.
func (c *Chronological) Generate() []Group {
	keys := make([]string, 0, len(c.buckets))
	for key := range c.buckets {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, Group{Key: key, Slug: key, Entries: flatten(c.buckets[key])})
	}
	return groups
}

// Recent returns up to limit entries, newest first across all months.
func (c *Chronological) Recent(limit int) []Entry {
	if limit <= 0 {
		return nil
	}
	out := make([]Entry, 0, limit)
	for _, group := range c.Generate() {
		for _, entry := range group.Entries {
			out = append(out, entry)
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}
