// internal/config/validation.go
package config

import (
	"fmt"

	"gazette/internal/validate"
)

// Validate checks the assembled configuration against the contract every
// build relies on: required identity fields present, URL and timezone
// loadable, pagination positive, blogroll entries well formed and enabled
// feed templates carrying the right placeholder arity. All failures are
// reported together.
func Validate(cfg Config) error {
	v := validate.New()

	v.NonEmpty("author", cfg.Author)
	v.NonEmpty("title", cfg.Title)
	v.URL("url", cfg.SiteURL)
	v.NonEmpty("content", cfg.ContentDir)
	v.NonEmpty("output", cfg.OutputDir)
	v.NonEmpty("theme", cfg.Theme)
	v.Timezone("timezone", cfg.Timezone)
	v.LanguageTag("lang", cfg.DefaultLang)
	v.Positive("pagination", cfg.Pagination)
	v.Positive("summaryWords", cfg.SummaryWords)

	validateFeed(v, "feeds.allAtom", cfg.Feeds.AllAtom, 0)
	validateFeed(v, "feeds.allRSS", cfg.Feeds.AllRSS, 0)
	validateFeed(v, "feeds.categoryAtom", cfg.Feeds.CategoryAtom, 1)
	validateFeed(v, "feeds.authorAtom", cfg.Feeds.AuthorAtom, 1)
	validateFeed(v, "feeds.authorRSS", cfg.Feeds.AuthorRSS, 1)
	validateFeed(v, "feeds.translationsAtom", cfg.Feeds.TranslationsAtom, 1)

	validateLinks(v, "links", cfg.Links)
	validateLinks(v, "social", cfg.Social)

	for i, p := range cfg.StaticPaths {
		v.RelativePath(fmt.Sprintf("staticPaths[%d]", i), p)
	}

	return v.Err()
}

func validateFeed(v *validate.Validator, field string, p FeedPath, placeholders int) {
	if !p.Enabled() {
		return
	}
	v.PathTemplate(field, string(p), placeholders)
}

func validateLinks(v *validate.Validator, field string, links []Link) {
	for i, l := range links {
		v.NonEmpty(fmt.Sprintf("%s[%d].label", field, i), l.Label)
		v.URL(fmt.Sprintf("%s[%d].url", field, i), l.URL)
	}
}
