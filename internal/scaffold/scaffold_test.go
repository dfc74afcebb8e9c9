package scaffold

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gazette/internal/config"
	"gazette/internal/content"
)

func TestSite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Site(dir))

	// The scaffolded configuration must load and validate as-is.
	cfg, err := config.Load(filepath.Join(dir, "site.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.Theme)
	assert.Equal(t, []string{"images"}, cfg.StaticPaths)

	// The sample post parses and is published.
	raw, err := os.ReadFile(filepath.Join(dir, "content", "welcome.md"))
	require.NoError(t, err)
	doc, err := content.Parse(raw, "welcome.md", content.Options{
		DefaultLang: "en", Location: time.UTC, SummaryWords: 50,
	})
	require.NoError(t, err)
	assert.False(t, doc.Draft)
	assert.Equal(t, "misc", doc.Category)

	for _, path := range []string{
		"content/pages/about.md",
		"archetypes/default.md",
		"archetypes/page.md",
		"themes/plain/static/style.css",
		"themes/plain/templates/layout.html",
		"themes/plain/templates/article.html",
		"themes/plain/templates/listing.html",
	} {
		_, err := os.Stat(filepath.Join(dir, path))
		assert.NoError(t, err, path)
	}
}

func TestContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Site(dir))
	cfg, err := config.Load(filepath.Join(dir, "site.yaml"))
	require.NoError(t, err)

	rel, err := Content(dir, cfg, "article", "My First Post")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("content", "my-first-post.md"), rel)

	raw, err := os.ReadFile(filepath.Join(dir, rel))
	require.NoError(t, err)
	doc, err := content.Parse(raw, "my-first-post.md", content.Options{
		DefaultLang: "en", Location: time.UTC, SummaryWords: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, "My First Post", doc.Title)
	assert.True(t, doc.Draft, "new articles start as drafts")

	// Creating the same article twice is refused.
	_, err = Content(dir, cfg, "article", "My First Post")
	assert.Error(t, err)

	rel, err = Content(dir, cfg, "page", "Contact")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("content", "pages", "contact.md"), rel)

	_, err = Content(dir, cfg, "essay", "Nope")
	assert.Error(t, err)

	// The caller's configuration decides where content lands.
	cfg.ContentDir = "posts"
	rel, err = Content(dir, cfg, "article", "Elsewhere")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("posts", "elsewhere.md"), rel)
	assert.FileExists(t, filepath.Join(dir, rel))
}
