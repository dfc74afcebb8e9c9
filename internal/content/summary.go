// internal/content/summary.go
package content

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textOnly strips every tag; bluemonday escapes what remains, so the
// entities are decoded back afterwards.
var textOnly = bluemonday.StrictPolicy()

// summarize produces a plain-text summary of rendered HTML, truncated to
// at most maxWords words. Truncation is marked with an ellipsis.
func summarize(renderedHTML string, maxWords int) string {
	plain := html.UnescapeString(textOnly.Sanitize(renderedHTML))
	words := strings.Fields(plain)
	if maxWords <= 0 || len(words) <= maxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxWords], " ") + "…"
}
