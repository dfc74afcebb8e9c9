package cache

import (
	"html/template"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gazette/internal/content"
)

func testDoc() *content.Document {
	return &content.Document{
		Kind:     content.KindArticle,
		Source:   "post.md",
		Slug:     "post",
		Title:    "Post",
		Lang:     "en",
		Date:     time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		Category: "misc",
		Tags:     []string{"go"},
		Authors:  []string{"Jane"},
		Summary:  "short",
		HTML:     template.HTML("<p>hi</p>"),
	}
}

func TestPutLookup(t *testing.T) {
	c, err := Open(t.TempDir(), "fp1")
	require.NoError(t, err)
	defer c.Close()

	doc := testDoc()
	raw := []byte("# hi")
	c.Put("post.md", Sum(raw), int64(len(raw)), 1000, doc)

	got, ok := c.Lookup("post.md", int64(len(raw)), 1000)
	require.True(t, ok)
	assert.Equal(t, doc.Slug, got.Slug)
	assert.Equal(t, doc.HTML, got.HTML)
	assert.True(t, doc.Date.Equal(got.Date))

	// Different stat info misses.
	_, ok = c.Lookup("post.md", int64(len(raw)), 2000)
	assert.False(t, ok)
	_, ok = c.Lookup("other.md", int64(len(raw)), 1000)
	assert.False(t, ok)
}

func TestLookupSumRefreshesStat(t *testing.T) {
	c, err := Open(t.TempDir(), "fp1")
	require.NoError(t, err)
	defer c.Close()

	raw := []byte("body")
	c.Put("post.md", Sum(raw), int64(len(raw)), 1000, testDoc())

	// Touched but unchanged: hash hit, stat columns updated.
	got, ok := c.LookupSum("post.md", Sum(raw), int64(len(raw)), 5000)
	require.True(t, ok)
	assert.Equal(t, "post", got.Slug)

	_, ok = c.Lookup("post.md", int64(len(raw)), 5000)
	assert.True(t, ok, "stat lookup works after refresh")

	// Changed content misses.
	_, ok = c.LookupSum("post.md", Sum([]byte("edited")), 6, 6000)
	assert.False(t, ok)
}

func TestFingerprintInvalidates(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(dir, "fp1")
	require.NoError(t, err)
	c.Put("post.md", "sum", 4, 1000, testDoc())
	require.NoError(t, c.Close())

	// Same fingerprint keeps entries across opens.
	c, err = Open(dir, "fp1")
	require.NoError(t, err)
	_, ok := c.Lookup("post.md", 4, 1000)
	assert.True(t, ok)
	require.NoError(t, c.Close())

	// A different fingerprint drops them.
	c, err = Open(dir, "fp2")
	require.NoError(t, err)
	defer c.Close()
	_, ok = c.Lookup("post.md", 4, 1000)
	assert.False(t, ok)
}

func TestPrune(t *testing.T) {
	c, err := Open(t.TempDir(), "fp1")
	require.NoError(t, err)
	defer c.Close()

	c.Put("keep.md", "s1", 1, 1, testDoc())
	c.Put("gone.md", "s2", 2, 2, testDoc())

	c.Prune(map[string]bool{"keep.md": true})

	_, ok := c.Lookup("keep.md", 1, 1)
	assert.True(t, ok)
	_, ok = c.Lookup("gone.md", 2, 2)
	assert.False(t, ok)
}

func TestOpenCorruptDatabase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("not a database"), 0o644))

	_, err := Open(dir, "fp1")
	assert.Error(t, err)
}

func TestFingerprintVaries(t *testing.T) {
	base := content.Options{DefaultAuthor: "a", DefaultLang: "en", SummaryWords: 50}
	unsafe := base
	unsafe.Unsafe = true

	assert.Equal(t, Fingerprint(base), Fingerprint(base))
	assert.NotEqual(t, Fingerprint(base), Fingerprint(unsafe))
}
