// internal/config/config.go
// Package config loads and validates the site configuration from site.yaml.
//
// The configuration is a flat record: it is loaded once at the start of a
// generation run, passed around by value and never mutated. Loading is
// side-effect free, so loading the same file twice yields identical values.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Link is one blogroll or social entry. Order in the file is the order
// templates render.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// FeedPath is a feed output path template relative to the output directory.
// The empty string and the literal "disabled" both mean the feed kind is not
// generated. Per-category, per-author and per-language templates carry a
// single %s placeholder.
type FeedPath string

// Enabled reports whether this feed kind should be generated.
func (p FeedPath) Enabled() bool {
	s := strings.TrimSpace(string(p))
	return s != "" && !strings.EqualFold(s, "disabled") && !strings.EqualFold(s, "none")
}

// Resolve substitutes arg into the template's %s placeholder. For templates
// without a placeholder it returns the path unchanged.
func (p FeedPath) Resolve(arg string) string {
	if !strings.Contains(string(p), "%s") {
		return string(p)
	}
	return fmt.Sprintf(string(p), arg)
}

// Feeds maps each syndication feed kind to its path template. Kinds left out
// of the configuration are disabled and the corresponding artifact is skipped.
type Feeds struct {
	AllAtom          FeedPath `yaml:"allAtom"`
	AllRSS           FeedPath `yaml:"allRSS"`
	CategoryAtom     FeedPath `yaml:"categoryAtom"`
	AuthorAtom       FeedPath `yaml:"authorAtom"`
	AuthorRSS        FeedPath `yaml:"authorRSS"`
	TranslationsAtom FeedPath `yaml:"translationsAtom"`
}

// Any reports whether at least one feed kind is enabled.
func (f Feeds) Any() bool {
	return f.AllAtom.Enabled() || f.AllRSS.Enabled() || f.CategoryAtom.Enabled() ||
		f.AuthorAtom.Enabled() || f.AuthorRSS.Enabled() || f.TranslationsAtom.Enabled()
}

// Analytics holds the Matomo/Piwik identifiers. They are not interpreted,
// only handed to templates.
type Analytics struct {
	PiwikURL    string `yaml:"piwikURL"`
	PiwikSiteID string `yaml:"piwikSiteID"`
}

// Comments holds the Disqus forum shortname, handed to templates untouched.
type Comments struct {
	DisqusSite string `yaml:"disqusSite"`
}

// Config is the site configuration record.
type Config struct {
	Author      string
	Title       string
	SiteURL     string
	Description string

	ContentDir string
	OutputDir  string
	Theme      string

	Timezone    string
	DefaultLang string

	Feeds  Feeds
	Links  []Link
	Social []Link

	Pagination   int
	RelativeURLs bool
	StaticPaths  []string
	SummaryWords int
	Sitemap      bool

	Analytics Analytics
	Comments  Comments
}

// Location resolves the configured timezone. Validation guarantees the zone
// loads; on a config that bypassed validation it falls back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BaseURL returns the site URL without a trailing slash, the form joined
// with relative paths when emitting absolute links.
func (c Config) BaseURL() string {
	return strings.TrimRight(c.SiteURL, "/")
}
