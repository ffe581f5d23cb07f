package httpapi

import (
	"net/http"
	"strings"

	"bordful/internal/cache"
	"bordful/internal/domain"
	"bordful/internal/jobs"
)

type JobsHandler struct {
	Cache *cache.Cache
	// PerPage is the configured listing page size, applied when the URL
	// carries no per_page parameter. Zero falls back to the pipeline default.
	PerPage int
}

type jobsListResponse struct {
	Jobs       []domain.Job     `json:"jobs"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalPages int              `json:"total_pages"`
	Facets     jobs.FacetCounts `json:"facets"`
	Query      string           `json:"query"`
}

// List runs the filter/sort/paginate pipeline over the cached snapshot. The
// canonical query string is echoed back so the frontend can sync its URL bar.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := jobs.ParseQuery(r.URL.Query())
	canonical := q.Encode().Encode()
	if h.PerPage > 0 && !r.URL.Query().Has("per_page") {
		// configured page size is a default, so it stays out of the
		// canonical query string
		q.PerPage = h.PerPage
	}
	all := h.Cache.Jobs()

	page, total := jobs.Run(all, q)

	// Facet badges count the list the filter sidebar sees: narrowed by
	// search only, never by the other filter dimensions, so a selected
	// filter does not zero out its neighbours' counts.
	facetBase := all
	if q.Filters.Search != "" {
		facetBase = jobs.FilterState{Search: q.Filters.Search}.Apply(all)
	}
	facets := jobs.Facets(facetBase)

	perPage := q.PerPage
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}

	if page == nil {
		page = []domain.Job{}
	}
	writeJSON(w, http.StatusOK, jobsListResponse{
		Jobs:       page,
		Total:      total,
		Page:       q.Page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Facets:     facets,
		Query:      canonical,
	})
}

// GetBySlug serves /api/jobs/{slug}; slugs and raw ids both resolve.
func (h JobsHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/api/jobs/")
	if key == "" || strings.Contains(key, "/") {
		WriteError(w, r, http.StatusNotFound, "not_found", "job not found")
		return
	}
	j, ok := h.Cache.Find(key)
	if !ok {
		WriteError(w, r, http.StatusNotFound, "not_found", "job not found")
		return
	}
	writeJSON(w, http.StatusOK, j)
}
