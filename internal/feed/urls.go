package feed

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	siteGroup = "site"
	routeFeed = "feed"
	routePage = "page"
)

// urlSpace resolves site-absolute URLs for single-segment build artifacts
// through go-urlkit. Values carrying a path separator bypass it: page
// addresses follow the fixed base + "/" + name formula and must not be
// escaped per segment.
type urlSpace struct {
	manager *urlkit.RouteManager
	base    string

	mu    sync.RWMutex
	group *urlkit.Group
}

func newURLSpace(base string) *urlSpace {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    siteGroup,
				BaseURL: base,
				Paths: map[string]string{
					routeFeed: "/:filename",
					routePage: "/:name",
				},
			},
		},
	})
	return &urlSpace{manager: manager, base: base}
}

// FeedURL returns the absolute address of the feed file.
func (u *urlSpace) FeedURL(filename string) string {
	if !strings.Contains(filename, "/") {
		if url, err := u.build(routeFeed, "filename", filename); err == nil {
			return url
		}
	}
	return u.base + "/" + filename
}

// PageURL returns the absolute address of a root-level page name.
func (u *urlSpace) PageURL(name string) string {
	if !strings.Contains(name, "/") {
		if url, err := u.build(routePage, "name", name); err == nil {
			return url
		}
	}
	return u.base + "/" + name
}

func (u *urlSpace) build(route, param, value string) (out string, err error) {
	group, err := u.siteGroup()
	if err != nil {
		return "", err
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("feed: urlkit builder panic: %v", rec)
		}
	}()
	builder := group.Builder(route)
	builder.WithParam(param, value)
	return builder.Build()
}

func (u *urlSpace) siteGroup() (group *urlkit.Group, err error) {
	u.mu.RLock()
	group = u.group
	u.mu.RUnlock()
	if group != nil {
		return group, nil
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("feed: route group %q not found", siteGroup)
		}
	}()
	group = u.manager.Group(siteGroup)
	u.mu.Lock()
	u.group = group
	u.mu.Unlock()
	return group, nil
}
