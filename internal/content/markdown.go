// internal/content/markdown.go
package content

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	gmutil "github.com/yuin/goldmark/util"
)

var (
	markdownRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				gmutil.Prioritized(linkRewriter{}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts a markdown body to HTML. Raw HTML in the source
// passes through goldmark and is then stripped by bluemonday unless unsafe
// is set.
func renderMarkdown(body []byte, unsafe bool) (string, error) {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	if unsafe {
		return buf.String(), nil
	}
	return string(htmlSanitizer.SanitizeBytes(buf.Bytes())), nil
}

// renderHTML handles raw HTML sources: the body is used as written, subject
// to the same sanitization contract as rendered markdown.
func renderHTML(body []byte, unsafe bool) string {
	if unsafe {
		return string(body)
	}
	return string(htmlSanitizer.SanitizeBytes(body))
}

// linkRewriter walks the AST and fixes up link and image destinations so
// that sources can reference each other the way they sit on disk:
//
//	{static}images/pic.png   -> /images/pic.png
//	{filename}other.md       -> /other.html (slug derived from the file name)
//	{filename}pages/about.md -> /pages/about.html
//	plain relative *.md      -> same path with .html
type linkRewriter struct{}

func (linkRewriter) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			node.Destination = rewriteDestination(node.Destination)
		case *ast.Image:
			node.Destination = rewriteDestination(node.Destination)
		}
		return ast.WalkContinue, nil
	})
}

func rewriteDestination(dest []byte) []byte {
	s := string(dest)
	switch {
	case strings.HasPrefix(s, "{static}"):
		return []byte("/" + strings.TrimLeft(strings.TrimPrefix(s, "{static}"), "/"))
	case strings.HasPrefix(s, "{filename}"):
		target := strings.TrimLeft(strings.TrimPrefix(s, "{filename}"), "/")
		name := Slugify(strings.TrimSuffix(path.Base(target), ".md")) + ".html"
		// Pages keep their pages/ prefix in the output tree; articles
		// flatten to the site root regardless of source directory.
		if first, _, found := strings.Cut(target, "/"); found && first == pagesDir {
			return []byte("/" + pagesDir + "/" + name)
		}
		return []byte("/" + name)
	case strings.HasSuffix(s, ".md") && !strings.Contains(s, "://"):
		return []byte(strings.TrimSuffix(s, ".md") + ".html")
	}
	return dest
}
