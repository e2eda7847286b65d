package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ErrTimezoneUnknown indicates the configured timezone cannot be resolved.
var ErrTimezoneUnknown = errors.New("blog config: site timezone is not a recognized location")

// ErrBaseURLInvalid indicates the configured base URL cannot be parsed as an absolute URL.
var ErrBaseURLInvalid = errors.New("blog config: site base url is not a valid absolute url")

// ErrBaseURLRequired ensures feed output always has a URL space to link into.
var ErrBaseURLRequired = errors.New("blog config: site base url is required when a feed filename is configured")
var ErrRecentLimitInvalid = errors.New("blog config: feed recent limit must be zero or positive")
var ErrContentDirRequired = errors.New("blog config: markdown content directory is required")
var ErrOutputDirRequired = errors.New("blog config: builder output directory is required")
var ErrFileSuffixInvalid = errors.New("blog config: builder file suffix must start with a dot")
var ErrLoggingProviderUnknown = errors.New("blog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")

// Config aggregates site, feed, and pipeline settings for the blog module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Site     SiteConfig
	Feed     FeedConfig
	Markdown MarkdownConfig
	Builder  BuilderConfig
	Logging  LoggingConfig
}

// SiteConfig captures the global site identity read by feed and index output.
type SiteConfig struct {
	Title       string
	Description string
	BaseURL     string
	Copyright   string
	Timezone    string
}

// FeedConfig controls Atom feed assembly. An empty Filename disables feed
// output entirely; builds still succeed.
type FeedConfig struct {
	Author      string
	Filename    string
	RecentLimit int
}

// MarkdownConfig captures filesystem and parser behaviour for document ingestion.
type MarkdownConfig struct {
	ContentDir string
	Pattern    string
	Recursive  bool
	Parser     MarkdownParserConfig
}

// MarkdownParserConfig mirrors the parse options accepted by the markdown engine.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// BuilderConfig captures behaviour for the reference build pipeline.
type BuilderConfig struct {
	OutputDir  string
	FileSuffix string
	IndexPages bool
	CleanBuild bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a single-site blog build.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Timezone: "UTC",
		},
		Feed: FeedConfig{
			Filename:    "recent.atom",
			RecentLimit: 25,
		},
		Markdown: MarkdownConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
			Parser:     MarkdownParserConfig{},
		},
		Builder: BuilderConfig{
			OutputDir:  "dist",
			FileSuffix: ".html",
			IndexPages: true,
			CleanBuild: false,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if tz := strings.TrimSpace(cfg.Site.Timezone); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("%w: %s", ErrTimezoneUnknown, tz)
		}
	}
	if base := strings.TrimSpace(cfg.Site.BaseURL); base != "" {
		parsed, err := url.Parse(base)
		if err != nil || !parsed.IsAbs() || parsed.Host == "" {
			return fmt.Errorf("%w: %s", ErrBaseURLInvalid, base)
		}
	} else if strings.TrimSpace(cfg.Feed.Filename) != "" {
		return ErrBaseURLRequired
	}
	if cfg.Feed.RecentLimit < 0 {
		return ErrRecentLimitInvalid
	}
	if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
		return ErrContentDirRequired
	}
	if strings.TrimSpace(cfg.Builder.OutputDir) == "" {
		return ErrOutputDirRequired
	}
	if suffix := strings.TrimSpace(cfg.Builder.FileSuffix); suffix != "" && !strings.HasPrefix(suffix, ".") {
		return fmt.Errorf("%w: %s", ErrFileSuffixInvalid, suffix)
	}
	if provider := normalizeProvider(cfg.Logging.Provider); provider != "" {
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// Location resolves the configured timezone, falling back to UTC when unset.
func (c SiteConfig) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTimezoneUnknown, tz)
	}
	return loc, nil
}

// NormalizedBaseURL returns the base URL without a trailing slash so callers
// can join path segments with a single separator.
func (c SiteConfig) NormalizedBaseURL() string {
	return strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
}

// Suffix returns the configured page file suffix, defaulting to ".html".
func (c BuilderConfig) Suffix() string {
	if suffix := strings.TrimSpace(c.FileSuffix); suffix != "" {
		return suffix
	}
	return ".html"
}

// Limit returns the configured recent-entry limit, defaulting to 25.
func (c FeedConfig) Limit() int {
	if c.RecentLimit > 0 {
		return c.RecentLimit
	}
	return 25
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
