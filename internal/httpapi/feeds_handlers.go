package httpapi

import (
	"net/http"
	"time"

	"bordful/internal/cache"
	"bordful/internal/feeds"
)

type FeedsHandler struct {
	Cache *cache.Cache
	Site  feeds.Site
}

func (h FeedsHandler) RSS(w http.ResponseWriter, r *http.Request) {
	b, err := feeds.RSS(h.Site, h.Cache.Jobs())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "feed_error", "could not render feed")
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write(b)
}

func (h FeedsHandler) Atom(w http.ResponseWriter, r *http.Request) {
	b, err := feeds.Atom(h.Site, h.Cache.Jobs(), time.Now())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "feed_error", "could not render feed")
		return
	}
	w.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
	_, _ = w.Write(b)
}

func (h FeedsHandler) JSONFeed(w http.ResponseWriter, r *http.Request) {
	b, err := feeds.JSONFeed(h.Site, h.Cache.Jobs())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "feed_error", "could not render feed")
		return
	}
	w.Header().Set("Content-Type", "application/feed+json; charset=utf-8")
	_, _ = w.Write(b)
}
