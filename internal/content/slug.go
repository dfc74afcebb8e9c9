// internal/content/slug.go
package content

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// foldMarks decomposes accented characters and drops the combining
	// marks, so "café" folds to "cafe" before slugging.
	foldMarks  = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify turns an arbitrary title into a URL-safe slug: lowercase ASCII
// letters and digits with single hyphens between words.
func Slugify(s string) string {
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(strings.TrimSpace(folded))
	folded = nonSlugRun.ReplaceAllString(folded, "-")
	return strings.Trim(folded, "-")
}
