// internal/site/site.go
// Package site assembles loaded documents into the collections the builder
// renders: sorted article lists, taxonomy groups, and translation sets.
package site

import (
	"sort"
	"strings"

	"gazette/internal/config"
	"gazette/internal/content"
)

// Site is the fully assembled model of one build.
type Site struct {
	Config config.Config

	// Articles holds published articles in the site default language,
	// newest first.
	Articles []*content.Document
	Drafts   []*content.Document
	Pages    []*content.Document

	Categories []*Group
	Tags       []*Group
	Authors    []*Group

	// Translations maps an article slug to its versions in other
	// languages. Translations stay out of the main listings; per-language
	// feeds pick them up when enabled.
	Translations map[string][]*content.Document

	bySlug map[string]*content.Document
}

// Group is one taxonomy term (a category, tag, or author) with the articles
// filed under it, in site order.
type Group struct {
	Name     string
	Slug     string
	Articles []*content.Document
}

// Build assembles documents into a Site. When drafts is true, drafts join
// their regular collections; otherwise every draft, pages and translations
// included, is kept aside so the builder can still render them unlisted.
func Build(cfg config.Config, docs []*content.Document, drafts bool) *Site {
	s := &Site{
		Config:       cfg,
		Translations: make(map[string][]*content.Document),
	}

	for _, doc := range docs {
		switch {
		case doc.Draft && !drafts:
			s.Drafts = append(s.Drafts, doc)
		case doc.Kind == content.KindPage:
			s.Pages = append(s.Pages, doc)
		case doc.Translation(cfg.DefaultLang):
			s.Translations[doc.Slug] = append(s.Translations[doc.Slug], doc)
		default:
			s.Articles = append(s.Articles, doc)
		}
	}

	sortByDate(s.Articles)
	sortByDate(s.Drafts)
	sort.Slice(s.Pages, func(i, j int) bool { return s.Pages[i].Slug < s.Pages[j].Slug })
	for _, list := range s.Translations {
		sort.Slice(list, func(i, j int) bool { return list[i].Lang < list[j].Lang })
	}

	s.Categories = groupBy(s.Articles, func(d *content.Document) []string {
		return []string{d.Category}
	})
	s.Tags = groupBy(s.Articles, func(d *content.Document) []string { return d.Tags })
	s.Authors = groupBy(s.Articles, func(d *content.Document) []string { return d.Authors })

	s.bySlug = make(map[string]*content.Document, len(s.Articles))
	for _, doc := range s.Articles {
		s.bySlug[doc.Slug] = doc
	}
	return s
}

// Article returns the published default-language article with the given
// slug, or nil.
func (s *Site) Article(slug string) *content.Document {
	return s.bySlug[slug]
}

// TranslationsOf returns the other-language versions of an article, if any.
func (s *Site) TranslationsOf(doc *content.Document) []*content.Document {
	return s.Translations[doc.Slug]
}

// sortByDate orders newest first; equal dates fall back to the slug so the
// order is deterministic.
func sortByDate(docs []*content.Document) {
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].Date.Equal(docs[j].Date) {
			return docs[i].Date.After(docs[j].Date)
		}
		return docs[i].Slug < docs[j].Slug
	})
}

func groupBy(docs []*content.Document, keys func(*content.Document) []string) []*Group {
	byName := make(map[string]*Group)
	for _, doc := range docs {
		for _, name := range keys(doc) {
			if name == "" {
				continue
			}
			g, ok := byName[name]
			if !ok {
				g = &Group{Name: name, Slug: content.Slugify(name)}
				byName[name] = g
			}
			g.Articles = append(g.Articles, doc)
		}
	}

	groups := make([]*Group, 0, len(byName))
	for _, g := range byName {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Name) < strings.ToLower(groups[j].Name)
	})
	return groups
}
