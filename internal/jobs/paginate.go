package jobs

import "bordful/internal/domain"

// Paginate slices out one page. A page beyond the available range yields an
// empty slice rather than an error; the pipeline does not re-clamp page —
// that belongs to the pagination control in the UI.
func Paginate(in []domain.Job, page, perPage int) []domain.Job {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		return []domain.Job{}
	}
	start := (page - 1) * perPage
	if start >= len(in) {
		return []domain.Job{}
	}
	end := start + perPage
	if end > len(in) {
		end = len(in)
	}
	return in[start:end]
}

// Run is the full pipeline: filter, sort, paginate. It also reports the
// pre-pagination total so the UI can draw page controls.
func Run(in []domain.Job, q Query) (page []domain.Job, total int) {
	filtered := q.Filters.Apply(in)
	sorted := Sort(filtered, q.Sort)
	return Paginate(sorted, q.Page, q.PerPage), len(sorted)
}
