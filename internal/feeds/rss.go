// internal/feeds/rss.go
package feeds

import (
	"encoding/xml"
	"time"

	"gazette/internal/content"
)

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate"`
	GUID        string   `xml:"guid"`
}

func (w *Writer) buildRSS(title string, articles []*content.Document) rssFeed {
	channel := rssChannel{
		Title:       title,
		Link:        w.cfg.BaseURL() + "/",
		Description: w.cfg.Description,
		Language:    w.cfg.DefaultLang,
	}
	if len(articles) > 0 {
		channel.LastBuildDate = articles[0].Date.Format(time.RFC1123Z)
	}

	for _, a := range articles {
		url := w.articleURL(a)
		item := rssItem{
			Title:       a.Title,
			Link:        url,
			Description: a.Summary,
			PubDate:     a.Date.Format(time.RFC1123Z),
			GUID:        url,
		}
		if len(a.Authors) > 0 {
			item.Author = a.Authors[0]
		}
		if a.Category != "" {
			item.Categories = append(item.Categories, a.Category)
		}
		item.Categories = append(item.Categories, a.Tags...)
		channel.Items = append(channel.Items, item)
	}
	return rssFeed{Version: "2.0", Channel: channel}
}
