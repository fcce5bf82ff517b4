package tui

import (
	"errors"
	"fmt"
	"strings"
)

// Route is a page path.
type Route string

const (
	RouteHome        Route = "/"
	RouteAllProjects Route = "/all-projects"
)

// ErrUnknownRoute is returned by ParseRoute for paths with no page.
var ErrUnknownRoute = errors.New("tui: unknown route")

// Routes returns every known route.
func Routes() []Route {
	return []Route{RouteHome, RouteAllProjects}
}

// ParseRoute normalises a path and checks it names a page. Case, surrounding
// spaces, a missing leading slash and a trailing slash are tolerated.
func ParseRoute(path string) (Route, error) {
	p := strings.ToLower(strings.TrimSpace(path))
	if p == "" {
		return RouteHome, nil
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}

	for _, r := range Routes() {
		if Route(p) == r {
			return r, nil
		}
	}
	return RouteHome, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
}

// ResolveRoute is ParseRoute for in-app navigation: unknown paths fall back
// to the home page.
func ResolveRoute(path string) Route {
	r, err := ParseRoute(path)
	if err != nil {
		return RouteHome
	}
	return r
}
