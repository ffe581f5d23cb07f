package jobs

import (
	"sort"

	"bordful/internal/domain"
	"bordful/internal/normalize"
)

type SortKey string

const (
	SortNewest SortKey = "newest"
	SortOldest SortKey = "oldest"
	SortSalary SortKey = "salary"
)

// Sort orders jobs by the chosen key and returns a new slice. Featured jobs
// always sort ahead of non-featured jobs; the key only orders within each
// group. Ties keep their input order, so identical inputs produce identical
// output orderings.
func Sort(in []domain.Job, key SortKey) []domain.Job {
	out := make([]domain.Job, len(in))
	copy(out, in)

	less := lessFor(key)
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Featured != out[b].Featured {
			return out[a].Featured
		}
		return less(out[a], out[b])
	})
	return out
}

func lessFor(key SortKey) func(a, b domain.Job) bool {
	switch key {
	case SortOldest:
		return func(a, b domain.Job) bool {
			return a.PostedDate.Before(b.PostedDate)
		}
	case SortSalary:
		// jobs without salary sort as 0, lowest but not excluded
		return func(a, b domain.Job) bool {
			return salaryRank(a) > salaryRank(b)
		}
	default: // newest
		return func(a, b domain.Job) bool {
			return a.PostedDate.After(b.PostedDate)
		}
	}
}

func salaryRank(j domain.Job) float64 {
	v := normalize.AnnualizedUSD(j.Salary)
	if v == normalize.NoSalarySentinel {
		return 0
	}
	return v
}

// ParseSortKey maps a raw URL value onto a sort key, defaulting to newest.
func ParseSortKey(raw string) SortKey {
	switch raw {
	case string(SortOldest):
		return SortOldest
	case string(SortSalary):
		return SortSalary
	default:
		return SortNewest
	}
}
