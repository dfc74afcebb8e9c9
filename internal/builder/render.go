// internal/builder/render.go
package builder

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/renameio/v2"

	"gazette/internal/config"
	"gazette/internal/content"
	"gazette/internal/site"
	"gazette/internal/urlutil"
)

// PageData is the context every theme template receives. Fields beyond the
// shared ones are filled per page kind; templates only touch the ones their
// kind defines.
type PageData struct {
	Site  config.Config
	Base  string // how this page spells the site root in links
	Title string

	// Article pages.
	Article      *content.Document
	Translations []*content.Document

	// Standalone pages.
	Page *content.Document

	// Listing pages.
	Articles []*content.Document
	Window   site.Window
	PrevURL  string // site-root-relative, empty on the first window
	NextURL  string

	// Taxonomy pages.
	Group  *site.Group
	Groups []*site.Group

	// FeedURL is the site-root-relative path of the main Atom feed, empty
	// when disabled.
	FeedURL string
}

// writePage renders one output page and writes it atomically. outRel is the
// slash-separated path under the output directory.
func (b *Builder) writePage(t *Templates, kind, outRel string, data *PageData) error {
	data.Site = b.cfg
	data.Base = urlutil.Prefix(b.cfg.BaseURL(), b.cfg.RelativeURLs, outRel)
	if b.cfg.Feeds.AllAtom.Enabled() {
		data.FeedURL = b.cfg.Feeds.AllAtom.Resolve("")
	}

	var buf bytes.Buffer
	if err := t.Render(kind, &buf, data); err != nil {
		return fmt.Errorf("render %s: %w", outRel, err)
	}

	path := filepath.Join(b.outDir(), filepath.FromSlash(outRel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outRel, err)
	}
	b.rendered.Add(1)
	return nil
}

// windowRel names paginated listing files the way readers expect them:
// index.html, index2.html, index3.html.
func windowRel(base string, number int) string {
	if number <= 1 {
		return base + ".html"
	}
	return base + strconv.Itoa(number) + ".html"
}

func (b *Builder) renderArticle(t *Templates, s *site.Site, doc *content.Document, outRel string) error {
	return b.writePage(t, "article", outRel, &PageData{
		Title:        doc.Title,
		Article:      doc,
		Translations: b.translationLinks(s, doc),
	})
}

// translationLinks lists the other language versions of an article: for the
// original these are its translations, for a translation the original plus
// its siblings.
func (b *Builder) translationLinks(s *site.Site, doc *content.Document) []*content.Document {
	all := s.TranslationsOf(doc)
	if !doc.Translation(b.cfg.DefaultLang) {
		return all
	}
	var links []*content.Document
	if orig := s.Article(doc.Slug); orig != nil {
		links = append(links, orig)
	}
	for _, t := range all {
		if t != doc {
			links = append(links, t)
		}
	}
	return links
}

func (b *Builder) renderStandalone(t *Templates, doc *content.Document, outRel string) error {
	return b.writePage(t, "page", outRel, &PageData{
		Title: doc.Title,
		Page:  doc,
	})
}

// renderWindows writes one paginated listing: the index or one taxonomy
// term.
func (b *Builder) renderWindows(t *Templates, kind, base, title string, articles []*content.Document, group *site.Group) error {
	for _, w := range site.Paginate(articles, b.cfg.Pagination) {
		data := &PageData{
			Title:    title,
			Articles: w.Items,
			Window:   w,
			Group:    group,
		}
		if w.HasPrev() {
			data.PrevURL = windowRel(base, w.Number-1)
		}
		if w.HasNext() {
			data.NextURL = windowRel(base, w.Number+1)
		}
		if err := b.writePage(t, kind, windowRel(base, w.Number), data); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) renderOverview(t *Templates, kind, title string, groups []*site.Group) error {
	return b.writePage(t, kind, kind+".html", &PageData{
		Title:  title,
		Groups: groups,
	})
}

func (b *Builder) renderArchives(t *Templates, s *site.Site) error {
	return b.writePage(t, "archives", "archives.html", &PageData{
		Title:    "Archives",
		Articles: s.Articles,
	})
}
