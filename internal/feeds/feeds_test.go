package feeds

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gazette/internal/config"
	"gazette/internal/content"
	"gazette/internal/site"
)

func testSite(t *testing.T, n int) *site.Site {
	t.Helper()
	var docs []*content.Document
	for i := 1; i <= n; i++ {
		docs = append(docs, &content.Document{
			Kind:     content.KindArticle,
			Slug:     fmt.Sprintf("post-%02d", i),
			Title:    fmt.Sprintf("Post %d", i),
			Lang:     "en",
			Date:     time.Date(2024, 1, i, 10, 0, 0, 0, time.UTC),
			Category: "networking",
			Tags:     []string{"bgp"},
			Authors:  []string{"Jane Doe"},
			Summary:  "A short summary.",
			HTML:     template.HTML("<p>Full <em>body</em>.</p>"),
		})
	}
	cfg := config.Config{
		Author:      "Jane Doe",
		Title:       "Test Blog",
		SiteURL:     "https://blog.example.org",
		Description: "A test blog",
		DefaultLang: "en",
		Feeds: config.Feeds{
			AllAtom:      "feeds/atom.xml",
			AllRSS:       "feeds/rss.xml",
			CategoryAtom: "feeds/%s.atom.xml",
		},
	}
	return site.Build(cfg, docs, false)
}

func parseFeed(t *testing.T, path string) *gofeed.Feed {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	feed, err := gofeed.NewParser().ParseString(string(raw))
	require.NoError(t, err)
	return feed
}

func TestWriteAllAtom(t *testing.T) {
	s := testSite(t, 3)
	out := t.TempDir()
	require.NoError(t, NewWriter(s.Config).WriteAll(s, out))

	feed := parseFeed(t, filepath.Join(out, "feeds", "atom.xml"))
	assert.Equal(t, "Test Blog", feed.Title)
	require.Len(t, feed.Items, 3)

	// Newest first, with absolute entry links.
	assert.Equal(t, "Post 3", feed.Items[0].Title)
	assert.Equal(t, "https://blog.example.org/post-03.html", feed.Items[0].Link)
	require.NotNil(t, feed.Items[0].PublishedParsed)
	assert.Equal(t, 3, feed.Items[0].PublishedParsed.Day())
	assert.Contains(t, feed.Items[0].Categories, "networking")
	assert.Contains(t, feed.Items[0].Categories, "bgp")
	require.NotEmpty(t, feed.Items[0].Authors)
	assert.Equal(t, "Jane Doe", feed.Items[0].Authors[0].Name)
}

func TestWriteAllRSS(t *testing.T) {
	s := testSite(t, 2)
	out := t.TempDir()
	require.NoError(t, NewWriter(s.Config).WriteAll(s, out))

	feed := parseFeed(t, filepath.Join(out, "feeds", "rss.xml"))
	assert.Equal(t, "Test Blog", feed.Title)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "A short summary.", feed.Items[0].Description)
	assert.Equal(t, "https://blog.example.org/post-02.html", feed.Items[0].GUID)
	require.NotNil(t, feed.Items[0].PublishedParsed)
}

func TestCategoryFeedPath(t *testing.T) {
	s := testSite(t, 1)
	out := t.TempDir()
	require.NoError(t, NewWriter(s.Config).WriteAll(s, out))

	feed := parseFeed(t, filepath.Join(out, "feeds", "networking.atom.xml"))
	assert.Equal(t, "Test Blog - networking", feed.Title)
	require.Len(t, feed.Items, 1)
}

func TestFeedWindow(t *testing.T) {
	s := testSite(t, window+5)
	out := t.TempDir()
	require.NoError(t, NewWriter(s.Config).WriteAll(s, out))

	feed := parseFeed(t, filepath.Join(out, "feeds", "atom.xml"))
	assert.Len(t, feed.Items, window)
}

func TestDisabledFeedsWriteNothing(t *testing.T) {
	s := testSite(t, 1)
	s.Config.Feeds = config.Feeds{AllAtom: "disabled"}

	out := t.TempDir()
	require.NoError(t, NewWriter(s.Config).WriteAll(s, out))

	_, err := os.Stat(filepath.Join(out, "feeds"))
	assert.True(t, os.IsNotExist(err), "no feed directory should be created")
}

func TestTranslationFeed(t *testing.T) {
	docs := []*content.Document{
		{
			Kind: content.KindArticle, Slug: "hello", Title: "Hello", Lang: "en",
			Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Category: "misc",
			Authors: []string{"Jane Doe"},
		},
		{
			Kind: content.KindArticle, Slug: "hello", Title: "Privet", Lang: "ru",
			Date: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), Category: "misc",
			Authors: []string{"Jane Doe"},
		},
	}
	cfg := config.Config{
		Author: "Jane Doe", Title: "Test Blog", SiteURL: "https://blog.example.org",
		DefaultLang: "en",
		Feeds:       config.Feeds{TranslationsAtom: "feeds/all-%s.atom.xml"},
	}
	s := site.Build(cfg, docs, false)

	out := t.TempDir()
	require.NoError(t, NewWriter(cfg).WriteAll(s, out))

	feed := parseFeed(t, filepath.Join(out, "feeds", "all-ru.atom.xml"))
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "Privet", feed.Items[0].Title)
	assert.Equal(t, "https://blog.example.org/hello-ru.html", feed.Items[0].Link)
}
