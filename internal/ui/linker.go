package ui

import (
	"net/url"
	"path"
	"strings"
)

// Linker turns a State into the URL that renders it. Components never
// change state themselves; they link to the state a click should lead to.
type Linker interface {
	Href(s State) string
}

// QueryLinker addresses states with query parameters on a single path,
// the way the HTTP server reads them.
type QueryLinker struct {
	Path string
}

func (l QueryLinker) Href(s State) string {
	p := l.Path
	if p == "" {
		p = "/"
	}
	if q := s.Query().Encode(); q != "" {
		return p + "?" + q
	}
	return p
}

// PathLinker addresses states as directories under Base, the layout the
// static export writes: /, /dark/, /private/, /dark/private/. Base is a
// path prefix or an absolute URL such as https://example.com/folio.
type PathLinker struct {
	Base string
}

func (l PathLinker) Href(s State) string {
	origin, prefix := splitBase(l.Base)
	base := "/" + strings.Trim(prefix, "/")
	dir := StateDir(s)
	if dir == "" {
		if base == "/" {
			return origin + "/"
		}
		return origin + base + "/"
	}
	return origin + path.Join(base, dir) + "/"
}

// splitBase separates the scheme and host of an absolute base URL from its
// path. A plain path has no origin.
func splitBase(raw string) (origin, prefix string) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", raw
	}
	if u.Scheme == "" {
		return "//" + u.Host, u.Path
	}
	return u.Scheme + "://" + u.Host, u.Path
}

// StateDir is the directory, relative to the export root, that holds the
// rendering of s. The initial state lives at the root.
func StateDir(s State) string {
	var parts []string
	if s.Dark {
		parts = append(parts, "dark")
	}
	if s.Popup {
		parts = append(parts, "private")
	}
	return strings.Join(parts, "/")
}
