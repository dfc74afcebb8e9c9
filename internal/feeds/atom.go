// internal/feeds/atom.go
package feeds

import (
	"encoding/xml"
	"time"

	"gazette/internal/content"
)

const atomNS = "http://www.w3.org/2005/Atom"

type atomFeed struct {
	XMLName  xml.Name    `xml:"feed"`
	Xmlns    string      `xml:"xmlns,attr"`
	Title    string      `xml:"title"`
	Subtitle string      `xml:"subtitle,omitempty"`
	ID       string      `xml:"id"`
	Updated  string      `xml:"updated"`
	Links    []atomLink  `xml:"link"`
	Author   *atomPerson `xml:"author,omitempty"`
	Entries  []atomEntry `xml:"entry"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
	Type string `xml:"type,attr,omitempty"`
}

type atomPerson struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

type atomText struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type atomEntry struct {
	Title      string         `xml:"title"`
	ID         string         `xml:"id"`
	Published  string         `xml:"published"`
	Updated    string         `xml:"updated"`
	Links      []atomLink     `xml:"link"`
	Authors    []atomPerson   `xml:"author"`
	Categories []atomCategory `xml:"category"`
	Summary    *atomText      `xml:"summary,omitempty"`
	Content    *atomText      `xml:"content,omitempty"`
}

// buildAtom assembles an RFC 4287 feed document. selfURL is the absolute
// URL the feed will be served from; entry links are always absolute, even
// when the site itself is built with relative URLs.
func (w *Writer) buildAtom(title, selfURL string, articles []*content.Document) atomFeed {
	feed := atomFeed{
		Xmlns:    atomNS,
		Title:    title,
		Subtitle: w.cfg.Description,
		ID:       w.cfg.BaseURL() + "/",
		Updated:  time.Now().UTC().Format(time.RFC3339),
		Links: []atomLink{
			{Href: selfURL, Rel: "self", Type: "application/atom+xml"},
			{Href: w.cfg.BaseURL() + "/", Rel: "alternate", Type: "text/html"},
		},
		Author: &atomPerson{Name: w.cfg.Author},
	}

	for _, a := range articles {
		updated := a.Date
		if !a.Modified.IsZero() {
			updated = a.Modified
		}
		url := w.articleURL(a)
		entry := atomEntry{
			Title:     a.Title,
			ID:        url,
			Published: a.Date.Format(time.RFC3339),
			Updated:   updated.Format(time.RFC3339),
			Links:     []atomLink{{Href: url, Rel: "alternate", Type: "text/html"}},
			Summary:   &atomText{Type: "text", Value: a.Summary},
			Content:   &atomText{Type: "html", Value: string(a.HTML)},
		}
		for _, name := range a.Authors {
			entry.Authors = append(entry.Authors, atomPerson{Name: name})
		}
		if a.Category != "" {
			entry.Categories = append(entry.Categories, atomCategory{Term: a.Category})
		}
		for _, tag := range a.Tags {
			entry.Categories = append(entry.Categories, atomCategory{Term: tag})
		}
		feed.Entries = append(feed.Entries, entry)
	}

	if len(articles) > 0 {
		feed.Updated = feed.Entries[0].Updated
	}
	return feed
}
