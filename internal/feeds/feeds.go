// Package feeds renders the job list as RSS 2.0, Atom, and JSON Feed 1.1.
// All three share one Site descriptor and emit jobs newest-first.
package feeds

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"bordful/internal/domain"
	"bordful/internal/normalize"
)

type Site struct {
	Name        string
	URL         string
	Description string
}

func (s Site) jobURL(j domain.Job) string {
	return fmt.Sprintf("%s/jobs/%s", s.URL, j.Slug)
}

func newestFirst(in []domain.Job) []domain.Job {
	out := make([]domain.Job, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, k int) bool {
		return out[i].PostedDate.After(out[k].PostedDate)
	})
	return out
}

// RSS 2.0

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description,omitempty"`
}

func RSS(site Site, jobs []domain.Job) ([]byte, error) {
	ch := rssChannel{
		Title:       site.Name,
		Link:        site.URL,
		Description: site.Description,
	}
	for _, j := range newestFirst(jobs) {
		ch.Items = append(ch.Items, rssItem{
			Title:       normalize.DisplayRange(j),
			Link:        site.jobURL(j),
			GUID:        site.jobURL(j),
			PubDate:     j.PostedDate.UTC().Format(time.RFC1123Z),
			Description: j.Description,
		})
	}
	b, err := xml.MarshalIndent(rssFeed{Version: "2.0", Channel: ch}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render rss: %w", err)
	}
	return append([]byte(xml.Header), b...), nil
}

// Atom

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	XMLNS   string      `xml:"xmlns,attr"`
	Title   string      `xml:"title"`
	Link    atomLink    `xml:"link"`
	ID      string      `xml:"id"`
	Updated string      `xml:"updated"`
	Entries []atomEntry `xml:"entry"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
}

type atomEntry struct {
	Title   string   `xml:"title"`
	Link    atomLink `xml:"link"`
	ID      string   `xml:"id"`
	Updated string   `xml:"updated"`
	Summary string   `xml:"summary,omitempty"`
}

func Atom(site Site, jobs []domain.Job, now time.Time) ([]byte, error) {
	f := atomFeed{
		XMLNS:   "http://www.w3.org/2005/Atom",
		Title:   site.Name,
		Link:    atomLink{Href: site.URL},
		ID:      site.URL + "/",
		Updated: now.UTC().Format(time.RFC3339),
	}
	for _, j := range newestFirst(jobs) {
		f.Entries = append(f.Entries, atomEntry{
			Title:   normalize.DisplayRange(j),
			Link:    atomLink{Href: site.jobURL(j)},
			ID:      site.jobURL(j),
			Updated: j.PostedDate.UTC().Format(time.RFC3339),
			Summary: j.Description,
		})
	}
	b, err := xml.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render atom: %w", err)
	}
	return append([]byte(xml.Header), b...), nil
}

// JSON Feed 1.1 (https://jsonfeed.org/version/1.1)

type jsonFeed struct {
	Version     string         `json:"version"`
	Title       string         `json:"title"`
	HomePageURL string         `json:"home_page_url"`
	FeedURL     string         `json:"feed_url"`
	Description string         `json:"description,omitempty"`
	Items       []jsonFeedItem `json:"items"`
}

type jsonFeedItem struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Title         string `json:"title"`
	ContentText   string `json:"content_text,omitempty"`
	DatePublished string `json:"date_published"`
}

func JSONFeed(site Site, jobs []domain.Job) ([]byte, error) {
	f := jsonFeed{
		Version:     "https://jsonfeed.org/version/1.1",
		Title:       site.Name,
		HomePageURL: site.URL,
		FeedURL:     site.URL + "/feed.json",
		Description: site.Description,
		Items:       []jsonFeedItem{},
	}
	for _, j := range newestFirst(jobs) {
		f.Items = append(f.Items, jsonFeedItem{
			ID:            site.jobURL(j),
			URL:           site.jobURL(j),
			Title:         normalize.DisplayRange(j),
			ContentText:   j.Description,
			DatePublished: j.PostedDate.UTC().Format(time.RFC3339),
		})
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render json feed: %w", err)
	}
	return b, nil
}
