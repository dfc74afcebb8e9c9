// internal/urlutil/urlutil.go
// Package urlutil computes the link prefixes templates use to address the
// site root from any output page.
package urlutil

import (
	"path"
	"strings"
)

// Prefix returns how the site root is spelled from the page at relPath.
// Normally that is the absolute site URL. With relative URLs enabled it is
// a dot-relative path, so the built tree can be browsed from any mount
// point or straight off the filesystem:
//
//	index.html          -> "."
//	category/linux.html -> ".."
//	page/2/index.html   -> "../.."
func Prefix(baseURL string, relative bool, relPath string) string {
	if !relative {
		return baseURL
	}
	dir := path.Dir(relPath)
	if dir == "." || dir == "/" {
		return "."
	}
	depth := strings.Count(dir, "/") + 1
	return strings.TrimSuffix(strings.Repeat("../", depth), "/")
}
