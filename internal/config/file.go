// internal/config/file.go
package config

// fileConfig mirrors the site.yaml schema. Pointer fields distinguish a key
// that is absent (keep the default) from one set to its zero value: a bare
// `pagination: 0` must fail validation instead of silently becoming 10, and
// `staticPaths: []` must override the default rather than vanish.
type fileConfig struct {
	Author      string `yaml:"author"`
	Title       string `yaml:"title"`
	SiteURL     string `yaml:"url"`
	Description string `yaml:"description"`

	ContentDir string `yaml:"content"`
	OutputDir  string `yaml:"output"`
	Theme      string `yaml:"theme"`

	Timezone    string `yaml:"timezone"`
	DefaultLang string `yaml:"lang"`

	Feeds  *Feeds `yaml:"feeds"`
	Links  []Link `yaml:"links"`
	Social []Link `yaml:"social"`

	Pagination   *int      `yaml:"pagination"`
	RelativeURLs *bool     `yaml:"relativeURLs"`
	StaticPaths  *[]string `yaml:"staticPaths"`
	SummaryWords *int      `yaml:"summaryWords"`
	Sitemap      *bool     `yaml:"sitemap"`

	Analytics Analytics `yaml:"analytics"`
	Comments  Comments  `yaml:"comments"`
}

// merge lays the file values over cfg. String fields override when non-empty;
// pointer fields override whenever the key was present.
func merge(cfg *Config, file fileConfig) {
	if file.Author != "" {
		cfg.Author = file.Author
	}
	if file.Title != "" {
		cfg.Title = file.Title
	}
	if file.SiteURL != "" {
		cfg.SiteURL = file.SiteURL
	}
	if file.Description != "" {
		cfg.Description = file.Description
	}
	if file.ContentDir != "" {
		cfg.ContentDir = file.ContentDir
	}
	if file.OutputDir != "" {
		cfg.OutputDir = file.OutputDir
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.Timezone != "" {
		cfg.Timezone = file.Timezone
	}
	if file.DefaultLang != "" {
		cfg.DefaultLang = file.DefaultLang
	}
	if file.Feeds != nil {
		// An explicit feeds section replaces the default set wholesale, so
		// kinds the file does not mention stay disabled.
		cfg.Feeds = *file.Feeds
	}
	if file.Links != nil {
		cfg.Links = file.Links
	}
	if file.Social != nil {
		cfg.Social = file.Social
	}
	if file.Pagination != nil {
		cfg.Pagination = *file.Pagination
	}
	if file.RelativeURLs != nil {
		cfg.RelativeURLs = *file.RelativeURLs
	}
	if file.StaticPaths != nil {
		cfg.StaticPaths = *file.StaticPaths
	}
	if file.SummaryWords != nil {
		cfg.SummaryWords = *file.SummaryWords
	}
	if file.Sitemap != nil {
		cfg.Sitemap = *file.Sitemap
	}
	if file.Analytics.PiwikURL != "" {
		cfg.Analytics.PiwikURL = file.Analytics.PiwikURL
	}
	if file.Analytics.PiwikSiteID != "" {
		cfg.Analytics.PiwikSiteID = file.Analytics.PiwikSiteID
	}
	if file.Comments.DisqusSite != "" {
		cfg.Comments.DisqusSite = file.Comments.DisqusSite
	}
}
