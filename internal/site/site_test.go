package site

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gazette/internal/config"
	"gazette/internal/content"
)

func article(slug string, day int, mutate ...func(*content.Document)) *content.Document {
	d := &content.Document{
		Kind:     content.KindArticle,
		Slug:     slug,
		Title:    slug,
		Lang:     "en",
		Date:     time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC),
		Category: "misc",
	}
	for _, m := range mutate {
		m(d)
	}
	return d
}

func testConfig() config.Config {
	return config.Config{DefaultLang: "en", Pagination: 10}
}

func TestBuildPartitionsAndSorts(t *testing.T) {
	docs := []*content.Document{
		article("older", 1),
		article("newest", 20),
		article("about", 5, func(d *content.Document) { d.Kind = content.KindPage }),
		article("hidden", 8, func(d *content.Document) { d.Draft = true }),
		article("newest", 20, func(d *content.Document) { d.Lang = "ru" }),
	}

	s := Build(testConfig(), docs, false)

	require.Len(t, s.Articles, 2)
	assert.Equal(t, "newest", s.Articles[0].Slug, "newest article first")
	assert.Equal(t, "older", s.Articles[1].Slug)

	require.Len(t, s.Pages, 1)
	require.Len(t, s.Drafts, 1)
	assert.Equal(t, "hidden", s.Drafts[0].Slug)

	trs := s.TranslationsOf(s.Articles[0])
	require.Len(t, trs, 1)
	assert.Equal(t, "ru", trs[0].Lang)
}

func TestBuildDraftsIncluded(t *testing.T) {
	docs := []*content.Document{
		article("live", 2),
		article("wip", 9, func(d *content.Document) { d.Draft = true }),
	}

	s := Build(testConfig(), docs, true)
	require.Len(t, s.Articles, 2)
	assert.Empty(t, s.Drafts)
	assert.Equal(t, "wip", s.Articles[0].Slug)
}

func TestBuildDraftKinds(t *testing.T) {
	docs := []*content.Document{
		article("post", 4),
		article("post", 4, func(d *content.Document) {
			d.Lang = "de"
			d.Draft = true
		}),
		article("roadmap", 6, func(d *content.Document) {
			d.Kind = content.KindPage
			d.Draft = true
		}),
	}

	s := Build(testConfig(), docs, false)
	require.Len(t, s.Drafts, 2, "draft pages and translations are unpublished too")
	assert.Empty(t, s.Pages)
	assert.Empty(t, s.Translations)
	require.Len(t, s.Articles, 1)
	assert.Empty(t, s.TranslationsOf(s.Articles[0]))

	s = Build(testConfig(), docs, true)
	assert.Empty(t, s.Drafts)
	require.Len(t, s.Pages, 1)
	require.Len(t, s.Articles, 1)
	assert.Len(t, s.TranslationsOf(s.Articles[0]), 1)
}

func TestBuildSameDateTiebreak(t *testing.T) {
	s := Build(testConfig(), []*content.Document{
		article("zebra", 3),
		article("aardvark", 3),
	}, false)
	assert.Equal(t, "aardvark", s.Articles[0].Slug)
	assert.Equal(t, "zebra", s.Articles[1].Slug)
}

func TestBuildGroups(t *testing.T) {
	docs := []*content.Document{
		article("a", 3, func(d *content.Document) {
			d.Category = "Networking"
			d.Tags = []string{"bgp", "ospf"}
			d.Authors = []string{"Jane Doe"}
		}),
		article("b", 2, func(d *content.Document) {
			d.Category = "misc"
			d.Tags = []string{"bgp"}
			d.Authors = []string{"Jane Doe"}
		}),
	}

	s := Build(testConfig(), docs, false)

	require.Len(t, s.Categories, 2)
	assert.Equal(t, "misc", s.Categories[0].Name, "groups are ordered case-insensitively by name")
	assert.Equal(t, "Networking", s.Categories[1].Name)
	assert.Equal(t, "networking", s.Categories[1].Slug)

	require.Len(t, s.Tags, 2)
	assert.Equal(t, "bgp", s.Tags[0].Name)
	require.Len(t, s.Tags[0].Articles, 2)
	assert.Equal(t, "a", s.Tags[0].Articles[0].Slug, "group keeps site order")

	require.Len(t, s.Authors, 1)
	assert.Equal(t, "jane-doe", s.Authors[0].Slug)
}

func TestPaginate(t *testing.T) {
	var docs []*content.Document
	for day := 1; day <= 7; day++ {
		docs = append(docs, article("d", day))
	}

	windows := Paginate(docs, 3)
	require.Len(t, windows, 3)
	assert.Equal(t, 3, windows[0].Total)
	assert.Len(t, windows[0].Items, 3)
	assert.Len(t, windows[2].Items, 1)
	assert.False(t, windows[0].HasPrev())
	assert.True(t, windows[0].HasNext())
	assert.True(t, windows[2].HasPrev())
	assert.False(t, windows[2].HasNext())

	single := Paginate(nil, 10)
	require.Len(t, single, 1)
	assert.Empty(t, single[0].Items)
	assert.Equal(t, 1, single[0].Total)

	all := Paginate(docs, 0)
	require.Len(t, all, 1)
	assert.Len(t, all[0].Items, 7)
}
