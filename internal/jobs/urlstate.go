package jobs

import (
	"net/url"
	"strconv"
	"strings"

	"bordful/internal/domain"
)

// DefaultPerPage matches the listing UI's page size.
const DefaultPerPage = 10

// Query is the complete user-controlled listing state: filters plus sort key
// and pagination. The URL query string is its only persistence.
type Query struct {
	Filters FilterState
	Sort    SortKey
	Page    int
	PerPage int
}

// DefaultQuery is the state an unparameterized URL decodes to.
func DefaultQuery() Query {
	return Query{Sort: SortNewest, Page: 1, PerPage: DefaultPerPage}
}

// ParseQuery reconstructs a Query from URL parameters. Absent parameters mean
// default values; malformed ones fall back to defaults rather than failing.
func ParseQuery(v url.Values) Query {
	q := DefaultQuery()

	q.Filters.Search = strings.TrimSpace(v.Get("q"))
	q.Filters.Types = splitList(v.Get("types"))
	for _, r := range splitList(v.Get("roles")) {
		q.Filters.Roles = append(q.Filters.Roles, domain.CareerLevel(r))
	}
	q.Filters.Remote = v.Get("remote") == "true"
	q.Filters.SalaryRanges = splitList(v.Get("salary"))
	q.Filters.Visa = v.Get("visa") == "true"
	q.Filters.Languages = splitList(v.Get("languages"))

	q.Sort = ParseSortKey(v.Get("sort"))
	if n, err := strconv.Atoi(v.Get("page")); err == nil && n >= 1 {
		q.Page = n
	}
	if n, err := strconv.Atoi(v.Get("per_page")); err == nil && n >= 1 {
		q.PerPage = n
	}
	return q
}

// Encode writes the query back to URL parameters. Default values are always
// omitted so URLs stay canonical and shareable.
func (q Query) Encode() url.Values {
	v := url.Values{}
	if q.Filters.Search != "" {
		v.Set("q", q.Filters.Search)
	}
	if len(q.Filters.Types) > 0 {
		v.Set("types", strings.Join(q.Filters.Types, ","))
	}
	if len(q.Filters.Roles) > 0 {
		roles := make([]string, len(q.Filters.Roles))
		for i, r := range q.Filters.Roles {
			roles[i] = string(r)
		}
		v.Set("roles", strings.Join(roles, ","))
	}
	if q.Filters.Remote {
		v.Set("remote", "true")
	}
	if len(q.Filters.SalaryRanges) > 0 {
		v.Set("salary", strings.Join(q.Filters.SalaryRanges, ","))
	}
	if q.Filters.Visa {
		v.Set("visa", "true")
	}
	if len(q.Filters.Languages) > 0 {
		v.Set("languages", strings.Join(q.Filters.Languages, ","))
	}
	if q.Sort != SortNewest {
		v.Set("sort", string(q.Sort))
	}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage != DefaultPerPage {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return v
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
