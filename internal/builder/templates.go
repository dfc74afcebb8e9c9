// internal/builder/templates.go
package builder

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"gazette/internal/content"
)

// partials every theme must provide alongside its page templates.
var partialFiles = []string{"layout.html", "header.html", "footer.html", "listing.html"}

// pageKinds are the page templates a theme must define. Each file defines
// a "content" template that layout.html embeds.
var pageKinds = []string{
	"index", "article", "page",
	"category", "tag", "author",
	"archives", "categories", "tags", "authors",
}

// Templates holds one parsed template tree per page kind.
type Templates struct {
	byKind map[string]*template.Template
}

// LoadTemplates parses the theme's template set from its templates
// directory. The layout file defines "main"; every page kind supplies the
// "content" block rendered inside it.
func LoadTemplates(themeDir string) (*Templates, error) {
	templatesDir := filepath.Join(themeDir, "templates")
	if _, err := os.Stat(templatesDir); err != nil {
		return nil, fmt.Errorf("theme has no templates directory at %s: %w", templatesDir, err)
	}

	partials := make([]string, len(partialFiles))
	for i, name := range partialFiles {
		partials[i] = filepath.Join(templatesDir, name)
	}
	funcs := template.FuncMap{"slugify": content.Slugify}

	t := &Templates{byKind: make(map[string]*template.Template, len(pageKinds))}
	for _, kind := range pageKinds {
		files := append([]string{filepath.Join(templatesDir, kind+".html")}, partials...)
		tmpl, err := template.New(kind + ".html").Funcs(funcs).ParseFiles(files...)
		if err != nil {
			return nil, fmt.Errorf("parse theme template %s: %w", kind, err)
		}
		t.byKind[kind] = tmpl
	}
	return t, nil
}

// Render executes the template for kind into w.
func (t *Templates) Render(kind string, w io.Writer, data *PageData) error {
	tmpl, ok := t.byKind[kind]
	if !ok {
		return fmt.Errorf("no template for page kind %q", kind)
	}
	return tmpl.ExecuteTemplate(w, "main", data)
}
