// internal/content/load.go
package content

import (
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"
)

// pagesDir is the subdirectory of the content root whose files become
// standalone pages instead of dated articles.
const pagesDir = "pages"

var errNoTitle = errors.New("missing title in front matter")

// Load reads and renders one source file. rel is the slash-separated path
// of the file relative to the content root; it decides the document kind
// and the default category.
func Load(path, rel string, opts Options) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw, rel, opts)
}

// Parse renders one source file from bytes already in hand.
func Parse(raw []byte, rel string, opts Options) (*Document, error) {
	meta, body, err := splitFrontMatter(raw)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(meta.Title) == "" {
		return nil, errNoTitle
	}

	var rendered string
	if strings.HasSuffix(strings.ToLower(rel), ".html") {
		rendered = renderHTML(body, opts.Unsafe)
	} else {
		rendered, err = renderMarkdown(body, opts.Unsafe)
		if err != nil {
			return nil, err
		}
	}

	doc := &Document{
		Kind:   kindOf(rel),
		Source: rel,
		Title:  meta.Title,
		Lang:   strings.ToLower(strings.TrimSpace(meta.Lang)),
		Draft:  meta.Draft || strings.EqualFold(meta.Status, "draft"),
		HTML:   template.HTML(rendered),
		Params: meta.Params,
	}
	if doc.Lang == "" {
		doc.Lang = opts.DefaultLang
	}

	doc.Slug = strings.TrimSpace(meta.Slug)
	if doc.Slug == "" {
		doc.Slug = Slugify(meta.Title)
	}
	if doc.Slug == "" {
		return nil, fmt.Errorf("title %q produces an empty slug", meta.Title)
	}

	if meta.Date != "" {
		doc.Date, err = parseDate(meta.Date, opts.Location)
		if err != nil {
			return nil, err
		}
	} else if doc.Kind == KindArticle {
		return nil, errors.New("missing date in front matter")
	}
	if meta.Modified != "" {
		doc.Modified, err = parseDate(meta.Modified, opts.Location)
		if err != nil {
			return nil, err
		}
	}

	if doc.Kind == KindArticle {
		doc.Category = strings.TrimSpace(meta.Category)
		if doc.Category == "" {
			doc.Category = folderCategory(rel)
		}
		doc.Tags = cleanList(meta.Tags)
		doc.Authors = cleanList(meta.Authors)
		if len(doc.Authors) == 0 && strings.TrimSpace(meta.Author) != "" {
			doc.Authors = []string{strings.TrimSpace(meta.Author)}
		}
		if len(doc.Authors) == 0 && opts.DefaultAuthor != "" {
			doc.Authors = []string{opts.DefaultAuthor}
		}
	}

	doc.Summary = strings.TrimSpace(meta.Summary)
	if doc.Summary == "" {
		doc.Summary = summarize(rendered, opts.SummaryWords)
	}
	return doc, nil
}

func kindOf(rel string) Kind {
	if first, _, found := strings.Cut(rel, "/"); found && first == pagesDir {
		return KindPage
	}
	return KindArticle
}

// folderCategory derives the category from the first directory of the
// source path. Files at the content root fall back to "misc".
func folderCategory(rel string) string {
	if first, _, found := strings.Cut(rel, "/"); found && first != "" {
		return first
	}
	return "misc"
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// dateFormats are tried in order. Formats without a zone are interpreted
// in the site timezone.
var dateFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateFormats {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
