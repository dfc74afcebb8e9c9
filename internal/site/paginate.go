// internal/site/paginate.go
package site

import "gazette/internal/content"

// Window is one page of a paginated listing.
type Window struct {
	Number int // 1-based
	Total  int
	Items  []*content.Document
}

// HasPrev reports whether an earlier window exists.
func (w Window) HasPrev() bool { return w.Number > 1 }

// HasNext reports whether a later window exists.
func (w Window) HasNext() bool { return w.Number < w.Total }

// Paginate splits items into windows of at most size entries. An empty list
// still yields one empty window, so listing pages always exist. A size of
// zero or less disables pagination and returns everything in one window.
func Paginate(items []*content.Document, size int) []Window {
	if size <= 0 || len(items) <= size {
		return []Window{{Number: 1, Total: 1, Items: items}}
	}

	total := (len(items) + size - 1) / size
	windows := make([]Window, 0, total)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		windows = append(windows, Window{
			Number: len(windows) + 1,
			Total:  total,
			Items:  items[i:end],
		})
	}
	return windows
}
