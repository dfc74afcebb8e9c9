// internal/builder/builder.go
// Package builder turns a site directory into a rendered tree: it loads
// content, assembles the site model, executes the theme templates, and
// writes pages, feeds, and static files into the output directory.
package builder

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"gazette/internal/cache"
	"gazette/internal/config"
	"gazette/internal/content"
	"gazette/internal/feeds"
	"gazette/internal/log"
	"gazette/internal/site"
)

// CacheDirName is the per-site cache directory, next to site.yaml.
const CacheDirName = ".gazette-cache"

// Options control one build run.
type Options struct {
	// Drafts includes draft articles in listings and feeds instead of
	// tucking them under drafts/.
	Drafts bool

	// Unsafe skips HTML sanitization of rendered markdown.
	Unsafe bool

	// IgnoreCache forces a full re-parse of every source file. Parsed
	// results still land in the cache for the next build.
	IgnoreCache bool

	// Clean empties the output directory before building.
	Clean bool
}

// Stats summarizes what one build did.
type Stats struct {
	Documents int
	Rendered  int
	Static    int
	CacheHits int
	Failed    int
	Elapsed   time.Duration
}

// Builder renders one site. It is cheap to construct and a new one is made
// for every build, so a changed configuration is picked up by the next run.
type Builder struct {
	root string
	cfg  config.Config
	opts Options
	log  zerolog.Logger

	rendered  atomic.Int64
	static    atomic.Int64
	cacheHits int
	failed    int
}

// New prepares a build of the site rooted at root, which is the directory
// holding site.yaml.
func New(root string, cfg config.Config, opts Options) *Builder {
	return &Builder{
		root: root,
		cfg:  cfg,
		opts: opts,
		log:  log.WithComponent("builder"),
	}
}

// resolve turns a configured path into an absolute one, leaving already
// absolute paths alone.
func (b *Builder) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(b.root, p)
}

func (b *Builder) contentDir() string { return b.resolve(b.cfg.ContentDir) }
func (b *Builder) outDir() string     { return b.resolve(b.cfg.OutputDir) }
func (b *Builder) themeDir() string {
	return filepath.Join(b.root, "themes", b.cfg.Theme)
}

// Build runs the full pipeline and reports what it produced.
func (b *Builder) Build(ctx context.Context) (Stats, error) {
	start := time.Now()

	templates, err := LoadTemplates(b.themeDir())
	if err != nil {
		return Stats{}, err
	}

	if err := os.MkdirAll(b.outDir(), 0o755); err != nil {
		return Stats{}, err
	}
	if b.opts.Clean {
		if err := b.cleanOutput(); err != nil {
			return Stats{}, err
		}
	}

	docs, err := b.loadDocuments(ctx)
	if err != nil {
		return Stats{}, err
	}
	s := site.Build(b.cfg, docs, b.opts.Drafts)

	if err := b.renderAll(ctx, templates, s); err != nil {
		return Stats{}, err
	}
	if b.cfg.Feeds.Any() {
		if err := feeds.NewWriter(b.cfg).WriteAll(s, b.outDir()); err != nil {
			return Stats{}, err
		}
	}
	if b.cfg.Sitemap {
		if err := b.writeSitemap(s); err != nil {
			return Stats{}, err
		}
	}
	if err := b.copyStatic(); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Documents: len(docs),
		Rendered:  int(b.rendered.Load()),
		Static:    int(b.static.Load()),
		CacheHits: b.cacheHits,
		Failed:    b.failed,
		Elapsed:   time.Since(start),
	}
	b.log.Info().
		Int("documents", stats.Documents).
		Int("rendered", stats.Rendered).
		Int("static", stats.Static).
		Int("cacheHits", stats.CacheHits).
		Int("failed", stats.Failed).
		Dur("elapsed", stats.Elapsed).
		Msg("site built")
	return stats, nil
}

// cleanOutput empties the output directory without removing the directory
// itself, so a server rooted there keeps working across rebuilds.
func (b *Builder) cleanOutput() error {
	out := b.outDir()
	if filepath.Clean(out) == filepath.Clean(b.root) {
		return fmt.Errorf("output directory %s is the site root, refusing to clean it", out)
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(out, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// sourceExts are the file extensions picked up by the content walk. Raw
// HTML sources carry the same front matter as markdown ones but skip the
// markdown renderer.
var sourceExts = map[string]bool{
	".md": true, ".markdown": true, ".mkd": true, ".mdown": true, ".html": true,
}

func (b *Builder) contentOptions() content.Options {
	return content.Options{
		DefaultAuthor: b.cfg.Author,
		DefaultLang:   b.cfg.DefaultLang,
		Location:      b.cfg.Location(),
		SummaryWords:  b.cfg.SummaryWords,
		Unsafe:        b.opts.Unsafe,
	}
}

// loadDocuments walks the content tree and renders every markdown source,
// going through the content cache. An ignore-cache build skips the lookups
// but still refreshes and prunes the stored entries, so the next build
// starts warm. A file that fails to parse is logged and skipped so one bad
// article does not take the whole site down.
func (b *Builder) loadDocuments(ctx context.Context) ([]*content.Document, error) {
	opts := b.contentOptions()

	store, err := cache.Open(filepath.Join(b.root, CacheDirName), cache.Fingerprint(opts))
	if err != nil {
		b.log.Warn().Err(err).Msg("content cache unavailable, rebuilding everything")
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var docs []*content.Document
	live := make(map[string]bool)

	// Static paths are copied verbatim, so anything inside them is not
	// content even when it has a markdown extension.
	static := make(map[string]bool, len(b.cfg.StaticPaths))
	for _, p := range b.cfg.StaticPaths {
		static[path.Clean(filepath.ToSlash(p))] = true
	}

	root := b.contentDir()
	err = filepath.WalkDir(root, func(fpath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, fpath)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if static[rel] {
				return filepath.SkipDir
			}
			return nil
		}
		if !sourceExts[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}
		live[rel] = true

		doc, err := b.loadOne(store, fpath, rel, opts)
		if err != nil {
			b.failed++
			b.log.Error().Err(err).Str("source", rel).Msg("skipping unreadable source file")
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if store != nil {
		store.Prune(live)
	}
	return docs, nil
}

func (b *Builder) loadOne(store *cache.Cache, path, rel string, opts content.Options) (*content.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	size, mtime := info.Size(), info.ModTime().Unix()

	if store != nil && !b.opts.IgnoreCache {
		if doc, ok := store.Lookup(rel, size, mtime); ok {
			b.cacheHits++
			return doc, nil
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("not valid UTF-8")
	}

	sum := cache.Sum(raw)
	if store != nil && !b.opts.IgnoreCache {
		if doc, ok := store.LookupSum(rel, sum, size, mtime); ok {
			b.cacheHits++
			return doc, nil
		}
	}

	doc, err := content.Parse(raw, rel, opts)
	if err != nil {
		return nil, err
	}
	if store != nil {
		store.Put(rel, sum, size, mtime, doc)
	}
	return doc, nil
}

// renderAll writes every HTML page of the site. Pages are independent, so
// they render on a bounded worker group.
func (b *Builder) renderAll(ctx context.Context, t *Templates, s *site.Site) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, doc := range s.Articles {
		g.Go(func() error {
			return b.renderArticle(t, s, doc, doc.OutputName(b.cfg.DefaultLang))
		})
	}
	for _, list := range s.Translations {
		for _, doc := range list {
			g.Go(func() error {
				return b.renderArticle(t, s, doc, doc.OutputName(b.cfg.DefaultLang))
			})
		}
	}
	// Drafts not included in listings still render, under drafts/, so they
	// can be previewed and shared.
	for _, doc := range s.Drafts {
		g.Go(func() error {
			outRel := "drafts/" + doc.OutputName(b.cfg.DefaultLang)
			if doc.Kind == content.KindPage {
				return b.renderStandalone(t, doc, outRel)
			}
			return b.renderArticle(t, s, doc, outRel)
		})
	}
	for _, doc := range s.Pages {
		g.Go(func() error {
			return b.renderStandalone(t, doc, doc.OutputName(b.cfg.DefaultLang))
		})
	}

	g.Go(func() error {
		return b.renderWindows(t, "index", "index", b.cfg.Title, s.Articles, nil)
	})
	for _, group := range s.Categories {
		g.Go(func() error {
			return b.renderWindows(t, "category", "category/"+group.Slug, group.Name, group.Articles, group)
		})
	}
	for _, group := range s.Tags {
		g.Go(func() error {
			return b.renderWindows(t, "tag", "tag/"+group.Slug, group.Name, group.Articles, group)
		})
	}
	for _, group := range s.Authors {
		g.Go(func() error {
			return b.renderWindows(t, "author", "author/"+group.Slug, group.Name, group.Articles, group)
		})
	}

	g.Go(func() error { return b.renderArchives(t, s) })
	g.Go(func() error { return b.renderOverview(t, "categories", "Categories", s.Categories) })
	g.Go(func() error { return b.renderOverview(t, "tags", "Tags", s.Tags) })
	g.Go(func() error { return b.renderOverview(t, "authors", "Authors", s.Authors) })

	return g.Wait()
}
