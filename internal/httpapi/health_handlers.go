package httpapi

import (
	"net/http"

	"bordful/internal/cache"
)

type HealthHandler struct {
	Cache *cache.Cache
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"jobs":       len(h.Cache.Jobs()),
		"fetched_at": h.Cache.FetchedAt(),
	})
}
