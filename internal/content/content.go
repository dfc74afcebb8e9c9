// internal/content/content.go
// Package content reads markdown source files, parses their front matter,
// and renders them to HTML. It knows nothing about themes or output layout;
// it produces Documents for the builder to place.
package content

import (
	"html/template"
	"time"
)

// Kind distinguishes dated articles from standalone pages.
type Kind int

const (
	KindArticle Kind = iota
	KindPage
)

func (k Kind) String() string {
	if k == KindPage {
		return "page"
	}
	return "article"
}

// Document is one rendered source file. Articles carry a date and taxonomy
// fields; pages leave them at their zero values.
type Document struct {
	Kind   Kind
	Source string // path relative to the content root
	Slug   string
	Title  string
	Lang   string

	Date     time.Time
	Modified time.Time
	Category string
	Tags     []string
	Authors  []string

	Draft   bool
	Summary string // plain text, for listings and feeds
	HTML    template.HTML

	// Params carries any front matter keys beyond the known set, for
	// themes that want them.
	Params map[string]any
}

// Translation reports whether the document is written in a language other
// than the site default.
func (d *Document) Translation(defaultLang string) bool {
	return d.Lang != "" && d.Lang != defaultLang
}

// OutputName is the site-root-relative path the document renders to.
// Articles sit at the root, translations next to them with a language
// suffix, pages under pages/.
func (d *Document) OutputName(defaultLang string) string {
	if d.Kind == KindPage {
		return "pages/" + d.Slug + ".html"
	}
	if d.Translation(defaultLang) {
		return d.Slug + "-" + d.Lang + ".html"
	}
	return d.Slug + ".html"
}

// Options carries the per-site settings content loading depends on.
type Options struct {
	DefaultAuthor string
	DefaultLang   string
	Location      *time.Location
	SummaryWords  int

	// Unsafe skips HTML sanitization of the rendered markdown.
	Unsafe bool
}
