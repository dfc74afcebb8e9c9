// internal/scaffold/scaffold.go
// Package scaffold creates new sites and new content files.
package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"gazette/internal/config"
	"gazette/internal/content"
)

// archetypeData is what archetype templates and the scaffold samples can
// reference.
type archetypeData struct {
	Title  string
	Author string
	Date   string
	Slug   string
}

// Site scaffolds a complete site skeleton in dir: configuration, sample
// content, archetypes, and the plain theme.
func Site(dir string) error {
	mkdir := func(path string) error { return os.MkdirAll(filepath.Join(dir, path), 0o755) }
	writeFile := func(path, content string) error {
		return os.WriteFile(filepath.Join(dir, path), []byte(content), 0o644)
	}

	dirs := []string{
		"content/pages",
		"content/images",
		"archetypes",
		"themes/plain/templates",
		"themes/plain/static",
	}
	for _, d := range dirs {
		if err := mkdir(d); err != nil {
			return fmt.Errorf("create directory %s: %w", d, err)
		}
	}

	welcome, err := execute(welcomeContent, archetypeData{
		Title:  "Welcome to your new blog",
		Author: "Your Name",
		Date:   time.Now().Format("2006-01-02 15:04"),
	})
	if err != nil {
		return err
	}

	files := map[string]string{
		"site.yaml":              siteYamlContent,
		"content/welcome.md":     welcome,
		"content/pages/about.md": aboutContent,
		"archetypes/default.md":  articleArchetype,
		"archetypes/page.md":     pageArchetype,

		"themes/plain/static/style.css":          styleCSSContent,
		"themes/plain/templates/layout.html":     layoutTemplate,
		"themes/plain/templates/header.html":     headerTemplate,
		"themes/plain/templates/footer.html":     footerTemplate,
		"themes/plain/templates/listing.html":    listingTemplate,
		"themes/plain/templates/index.html":      indexTemplate,
		"themes/plain/templates/article.html":    articleTemplate,
		"themes/plain/templates/page.html":       pageTemplate,
		"themes/plain/templates/category.html":   categoryTemplate,
		"themes/plain/templates/tag.html":        tagTemplate,
		"themes/plain/templates/author.html":     authorTemplate,
		"themes/plain/templates/archives.html":   archivesTemplate,
		"themes/plain/templates/categories.html": categoriesTemplate,
		"themes/plain/templates/tags.html":       tagsTemplate,
		"themes/plain/templates/authors.html":    authorsTemplate,
	}
	for path, body := range files {
		if err := writeFile(path, body); err != nil {
			return fmt.Errorf("write file %s: %w", path, err)
		}
	}
	return nil
}

// Content creates a new article or page under the site rooted at root,
// filling in the matching archetype. The caller passes the loaded site
// configuration, so whatever config file the CLI was pointed at is
// honored. It returns the path of the created file.
func Content(root string, cfg config.Config, kind, title string) (string, error) {
	slug := content.Slugify(title)
	if slug == "" {
		return "", fmt.Errorf("title %q produces an empty slug", title)
	}

	var archetype, dest string
	switch kind {
	case "article":
		archetype = "default.md"
		dest = filepath.Join(cfg.ContentDir, slug+".md")
	case "page":
		archetype = "page.md"
		dest = filepath.Join(cfg.ContentDir, "pages", slug+".md")
	default:
		return "", fmt.Errorf("unknown content kind %q", kind)
	}

	destPath := filepath.Join(root, dest)
	if _, err := os.Stat(destPath); err == nil {
		return "", fmt.Errorf("%s already exists", dest)
	}

	raw, err := os.ReadFile(filepath.Join(root, "archetypes", archetype))
	if err != nil {
		return "", fmt.Errorf("read archetype: %w", err)
	}
	body, err := execute(string(raw), archetypeData{
		Title:  title,
		Author: cfg.Author,
		Date:   time.Now().In(cfg.Location()).Format("2006-01-02 15:04"),
		Slug:   slug,
	})
	if err != nil {
		return "", fmt.Errorf("fill archetype %s: %w", archetype, err)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(destPath, []byte(body), 0o644); err != nil {
		return "", err
	}
	return dest, nil
}

func execute(tmpl string, data archetypeData) (string, error) {
	t, err := template.New("archetype").Parse(tmpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
