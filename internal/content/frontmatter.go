// internal/content/frontmatter.go
package content

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Meta holds the raw front matter of a source file. Unknown keys land in
// Params so themes can reach them.
type Meta struct {
	Title    string   `yaml:"title"`
	Date     string   `yaml:"date"`
	Modified string   `yaml:"modified"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
	Author   string   `yaml:"author"`
	Authors  []string `yaml:"authors"`
	Slug     string   `yaml:"slug"`
	Lang     string   `yaml:"lang"`
	Summary  string   `yaml:"summary"`
	Draft    bool     `yaml:"draft"`
	Status   string   `yaml:"status"`

	Params map[string]any `yaml:",inline"`
}

var frontMatterFence = []byte("---")

// splitFrontMatter separates the YAML front matter block from the markdown
// body. A file without a leading fence is all body.
func splitFrontMatter(raw []byte) (Meta, []byte, error) {
	meta := Meta{}
	if !bytes.HasPrefix(bytes.TrimLeft(raw, "\ufeff\n\r "), frontMatterFence) {
		return meta, raw, nil
	}

	parts := bytes.SplitN(raw, frontMatterFence, 3)
	if len(parts) < 3 {
		// An opening fence with no closing one: treat the whole file
		// as body rather than silently eating it as YAML.
		return meta, raw, nil
	}
	if err := yaml.Unmarshal(parts[1], &meta); err != nil {
		return Meta{}, nil, fmt.Errorf("parse front matter: %w", err)
	}
	return meta, parts[2], nil
}
