// internal/feeds/feeds.go
// Package feeds writes the Atom and RSS 2.0 documents for a built site.
// Feed entry links are always absolute URLs regardless of the relativeURLs
// setting, since feed readers fetch from arbitrary contexts.
package feeds

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"gazette/internal/config"
	"gazette/internal/content"
	"gazette/internal/log"
	"gazette/internal/site"
)

// window caps how many entries one feed document carries.
const window = 15

// Writer renders the feed set configured for a site.
type Writer struct {
	cfg config.Config
	log zerolog.Logger
}

func NewWriter(cfg config.Config) *Writer {
	return &Writer{cfg: cfg, log: log.WithComponent("feeds")}
}

// WriteAll renders every enabled feed kind into outDir.
func (w *Writer) WriteAll(s *site.Site, outDir string) error {
	kinds := w.cfg.Feeds

	if kinds.AllAtom.Enabled() {
		if err := w.writeAtom(outDir, kinds.AllAtom.Resolve(""), w.cfg.Title, s.Articles); err != nil {
			return err
		}
	}
	if kinds.AllRSS.Enabled() {
		if err := w.writeRSS(outDir, kinds.AllRSS.Resolve(""), w.cfg.Title, s.Articles); err != nil {
			return err
		}
	}

	if kinds.CategoryAtom.Enabled() {
		for _, g := range s.Categories {
			rel := kinds.CategoryAtom.Resolve(g.Slug)
			if err := w.writeAtom(outDir, rel, w.cfg.Title+" - "+g.Name, g.Articles); err != nil {
				return err
			}
		}
	}

	if kinds.AuthorAtom.Enabled() {
		for _, g := range s.Authors {
			rel := kinds.AuthorAtom.Resolve(g.Slug)
			if err := w.writeAtom(outDir, rel, w.cfg.Title+" - "+g.Name, g.Articles); err != nil {
				return err
			}
		}
	}
	if kinds.AuthorRSS.Enabled() {
		for _, g := range s.Authors {
			rel := kinds.AuthorRSS.Resolve(g.Slug)
			if err := w.writeRSS(outDir, rel, w.cfg.Title+" - "+g.Name, g.Articles); err != nil {
				return err
			}
		}
	}

	if kinds.TranslationsAtom.Enabled() {
		for lang, articles := range translationsByLang(s) {
			rel := kinds.TranslationsAtom.Resolve(lang)
			if err := w.writeAtom(outDir, rel, w.cfg.Title+" - "+lang, articles); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Writer) writeAtom(outDir, rel, title string, articles []*content.Document) error {
	doc := w.buildAtom(title, w.cfg.BaseURL()+"/"+rel, clip(articles))
	return w.write(outDir, rel, doc, len(doc.Entries))
}

func (w *Writer) writeRSS(outDir, rel, title string, articles []*content.Document) error {
	doc := w.buildRSS(title, clip(articles))
	return w.write(outDir, rel, doc, len(doc.Channel.Items))
}

func (w *Writer) write(outDir, rel string, doc any, entries int) error {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal feed %s: %w", rel, err)
	}

	path := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := renameio.WriteFile(path, []byte(xml.Header+string(body)), 0o644); err != nil {
		return fmt.Errorf("write feed %s: %w", rel, err)
	}
	w.log.Debug().Str("feed", rel).Int("entries", entries).Msg("feed written")
	return nil
}

func (w *Writer) articleURL(a *content.Document) string {
	return w.cfg.BaseURL() + "/" + a.OutputName(w.cfg.DefaultLang)
}

func clip(articles []*content.Document) []*content.Document {
	if len(articles) > window {
		return articles[:window]
	}
	return articles
}

// translationsByLang regroups the per-slug translation sets into per-language
// article lists, newest first.
func translationsByLang(s *site.Site) map[string][]*content.Document {
	byLang := make(map[string][]*content.Document)
	for _, list := range s.Translations {
		for _, d := range list {
			byLang[d.Lang] = append(byLang[d.Lang], d)
		}
	}
	for _, list := range byLang {
		sort.Slice(list, func(i, j int) bool {
			if !list[i].Date.Equal(list[j].Date) {
				return list[i].Date.After(list[j].Date)
			}
			return list[i].Slug < list[j].Slug
		})
	}
	return byLang
}
