package content

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Vienna")
	require.NoError(t, err)
	return Options{
		DefaultAuthor: "Site Author",
		DefaultLang:   "en",
		Location:      loc,
		SummaryWords:  50,
	}
}

func TestParseArticle(t *testing.T) {
	doc, err := Parse([]byte(`---
title: Routing loops for fun
date: 2024-03-01 09:30
category: networking
tags: [bgp, " ospf ", ""]
---
First paragraph of the body.
`), "routing-loops.md", testOptions(t))
	require.NoError(t, err)

	assert.Equal(t, KindArticle, doc.Kind)
	assert.Equal(t, "routing-loops-for-fun", doc.Slug)
	assert.Equal(t, "networking", doc.Category)
	assert.Equal(t, []string{"bgp", "ospf"}, doc.Tags)
	assert.Equal(t, []string{"Site Author"}, doc.Authors)
	assert.Equal(t, "en", doc.Lang)
	assert.False(t, doc.Draft)
	assert.Contains(t, string(doc.HTML), "<p>First paragraph of the body.</p>")

	// Naive dates are read in the site timezone.
	assert.Equal(t, "Europe/Vienna", doc.Date.Location().String())
	assert.Equal(t, 9, doc.Date.Hour())
}

func TestParseRequiredFields(t *testing.T) {
	opts := testOptions(t)

	_, err := Parse([]byte("---\ndate: 2024-01-01\n---\nbody\n"), "a.md", opts)
	assert.ErrorIs(t, err, errNoTitle)

	_, err = Parse([]byte("---\ntitle: No date\n---\nbody\n"), "a.md", opts)
	assert.Error(t, err, "articles need a date")

	// Pages do not.
	doc, err := Parse([]byte("---\ntitle: About\n---\nbody\n"), "pages/about.md", opts)
	require.NoError(t, err)
	assert.Equal(t, KindPage, doc.Kind)
	assert.True(t, doc.Date.IsZero())
	assert.Empty(t, doc.Category)
}

func TestParseDefaults(t *testing.T) {
	opts := testOptions(t)

	doc, err := Parse([]byte("---\ntitle: Rootless\ndate: 2024-01-01\n---\nbody\n"), "rootless.md", opts)
	require.NoError(t, err)
	assert.Equal(t, "misc", doc.Category, "root-level articles fall back to misc")

	doc, err = Parse([]byte("---\ntitle: Nested\ndate: 2024-01-01\n---\nbody\n"), "hardware/nested.md", opts)
	require.NoError(t, err)
	assert.Equal(t, "hardware", doc.Category, "first folder becomes the category")

	doc, err = Parse([]byte(`---
title: Explicit
date: 2024-01-01
category: typing
slug: custom-slug
author: Guest Writer
lang: RU
status: Draft
---
body
`), "hardware/explicit.md", opts)
	require.NoError(t, err)
	assert.Equal(t, "typing", doc.Category)
	assert.Equal(t, "custom-slug", doc.Slug)
	assert.Equal(t, []string{"Guest Writer"}, doc.Authors)
	assert.Equal(t, "ru", doc.Lang)
	assert.True(t, doc.Draft)
}

func TestParseDates(t *testing.T) {
	opts := testOptions(t)
	for _, value := range []string{"2024-03-01", "2024-03-01 09:30", "2024-03-01 09:30:15", "2024-03-01T09:30:00+02:00"} {
		src := "---\ntitle: T\ndate: \"" + value + "\"\n---\nbody\n"
		doc, err := Parse([]byte(src), "t.md", opts)
		require.NoError(t, err, "date %q", value)
		assert.Equal(t, 2024, doc.Date.Year())
	}

	_, err := Parse([]byte("---\ntitle: T\ndate: yesterday-ish\n---\nbody\n"), "t.md", opts)
	assert.Error(t, err)
}

func TestParseParams(t *testing.T) {
	doc, err := Parse([]byte(`---
title: With extras
date: 2024-01-01
cover: images/cover.png
featured: true
---
body
`), "extras.md", testOptions(t))
	require.NoError(t, err)
	assert.Equal(t, "images/cover.png", doc.Params["cover"])
	assert.Equal(t, true, doc.Params["featured"])
}

func TestUnclosedFrontMatter(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: looks like front matter but never closes\n"), "odd.md", testOptions(t))
	// The whole file is body, so there is no title.
	assert.ErrorIs(t, err, errNoTitle)
	assert.Nil(t, doc)
}

func TestFrontMatterAfterBOM(t *testing.T) {
	// Editors on some platforms prepend a UTF-8 byte order mark.
	doc, err := Parse([]byte("\ufeff---\ntitle: Marked\ndate: 2024-01-01\n---\nbody\n"), "marked.md", testOptions(t))
	require.NoError(t, err)
	assert.Equal(t, "Marked", doc.Title)
	assert.Contains(t, string(doc.HTML), "<p>body</p>")
}

func TestSummary(t *testing.T) {
	opts := testOptions(t)
	opts.SummaryWords = 5

	doc, err := Parse([]byte("---\ntitle: Long\ndate: 2024-01-01\n---\none two three four five six seven\n"), "long.md", opts)
	require.NoError(t, err)
	assert.Equal(t, "one two three four five…", doc.Summary)

	doc, err = Parse([]byte("---\ntitle: Short\ndate: 2024-01-01\nsummary: Hand-written summary.\n---\nbody text here\n"), "short.md", opts)
	require.NoError(t, err)
	assert.Equal(t, "Hand-written summary.", doc.Summary)
}

func TestSummaryStripsMarkup(t *testing.T) {
	got := summarize("<p>Some <strong>bold</strong> &amp; linked <a href=\"x\">text</a></p>", 50)
	assert.Equal(t, "Some bold & linked text", got)
}

func TestRenderMarkdownLinks(t *testing.T) {
	html, err := renderMarkdown([]byte(strings.Join([]string{
		"[a](other-post.md)",
		"[b]({filename}notes/Deep_Dive.md)",
		"[c]({filename}pages/About Me.md)",
		"![d]({static}images/pic.png)",
		"[e](https://example.org/raw.md)",
	}, "\n\n")), false)
	require.NoError(t, err)

	assert.Contains(t, html, `href="other-post.html"`)
	assert.Contains(t, html, `href="/deep-dive.html"`)
	assert.Contains(t, html, `href="/pages/about-me.html"`)
	assert.Contains(t, html, `src="/images/pic.png"`)
	assert.Contains(t, html, `href="https://example.org/raw.md"`, "external links stay untouched")
}

func TestRenderMarkdownSanitize(t *testing.T) {
	src := []byte("hello <script>alert(1)</script> world\n")

	safe, err := renderMarkdown(src, false)
	require.NoError(t, err)
	assert.NotContains(t, safe, "<script>")

	raw, err := renderMarkdown(src, true)
	require.NoError(t, err)
	assert.Contains(t, raw, "<script>")
}

func TestRenderMarkdownGFM(t *testing.T) {
	html, err := renderMarkdown([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n\n~~gone~~\n"), false)
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<del>gone</del>")
}

func TestParseHTMLSource(t *testing.T) {
	opts := testOptions(t)

	doc, err := Parse([]byte(`---
title: Raw HTML post
date: 2024-05-01
---
<p># not markdown</p>
<script>alert(1)</script>
`), "raw-html-post.html", opts)
	require.NoError(t, err)

	html := string(doc.HTML)
	assert.Contains(t, html, "<p># not markdown</p>", "html sources keep their body as written")
	assert.NotContains(t, html, "<script>", "sanitization applies to html sources too")
	assert.Equal(t, "raw-html-post", doc.Slug)

	unsafe := opts
	unsafe.Unsafe = true
	doc, err = Parse([]byte("---\ntitle: Raw\ndate: 2024-05-01\n---\n<script>x</script>\n"), "raw.html", unsafe)
	require.NoError(t, err)
	assert.Contains(t, string(doc.HTML), "<script>")
}
