// internal/builder/sitemap.go
package builder

import (
	"encoding/xml"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"

	"gazette/internal/content"
	"gazette/internal/site"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// writeSitemap lists every page of the built site with absolute URLs.
// Drafts stay unlisted.
func (b *Builder) writeSitemap(s *site.Site) error {
	base := b.cfg.BaseURL()
	urls := []sitemapURL{{Loc: base + "/"}}

	add := func(rel string, lastMod time.Time) {
		u := sitemapURL{Loc: base + "/" + rel}
		if !lastMod.IsZero() {
			u.LastMod = lastMod.Format("2006-01-02")
		}
		urls = append(urls, u)
	}

	articleMod := func(doc *content.Document) time.Time {
		if !doc.Modified.IsZero() {
			return doc.Modified
		}
		return doc.Date
	}

	for _, doc := range s.Articles {
		add(doc.OutputName(b.cfg.DefaultLang), articleMod(doc))
	}
	for _, list := range s.Translations {
		for _, doc := range list {
			add(doc.OutputName(b.cfg.DefaultLang), articleMod(doc))
		}
	}
	for _, doc := range s.Pages {
		add(doc.OutputName(b.cfg.DefaultLang), articleMod(doc))
	}
	for _, g := range s.Categories {
		add("category/"+g.Slug+".html", time.Time{})
	}
	for _, g := range s.Tags {
		add("tag/"+g.Slug+".html", time.Time{})
	}
	for _, g := range s.Authors {
		add("author/"+g.Slug+".html", time.Time{})
	}
	add("archives.html", time.Time{})

	doc := sitemapURLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9", URLs: urls}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return renameio.WriteFile(
		filepath.Join(b.outDir(), "sitemap.xml"),
		[]byte(xml.Header+string(body)), 0o644)
}
