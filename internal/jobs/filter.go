// Package jobs is the listing pipeline: given the full active job list and a
// user-controlled query, it deterministically produces the visible page plus
// facet counts. No input combination is an error; the worst case is an empty
// result set.
package jobs

import (
	"strings"

	"bordful/internal/domain"
	"bordful/internal/normalize"
)

// Salary bucket labels, matched verbatim from the URL. Unknown labels simply
// match zero jobs.
const (
	BucketUnder50K  = "< $50K"
	Bucket50to100K  = "$50K - $100K"
	Bucket100to200K = "$100K - $200K"
	BucketOver200K  = "> $200K"
)

// FilterState is the user's filter selection, reconstructed from the URL on
// every request. An empty slice or false means "no filter on this dimension".
type FilterState struct {
	Search       string
	Types        []string
	Roles        []domain.CareerLevel
	Remote       bool
	SalaryRanges []string
	Visa         bool
	Languages    []string
}

// Empty reports whether no dimension is filtered.
func (f FilterState) Empty() bool {
	return f.Search == "" && len(f.Types) == 0 && len(f.Roles) == 0 &&
		!f.Remote && len(f.SalaryRanges) == 0 && !f.Visa && len(f.Languages) == 0
}

// Apply runs the filter stages in their defined order and returns the
// surviving jobs in input order. The input slice is never mutated.
func (f FilterState) Apply(in []domain.Job) []domain.Job {
	out := make([]domain.Job, 0, len(in))
	for _, j := range in {
		if f.matches(j) {
			out = append(out, j)
		}
	}
	return out
}

func (f FilterState) matches(j domain.Job) bool {
	if f.Search != "" && !matchesSearch(j, f.Search) {
		return false
	}
	if len(f.Types) > 0 && !containsFold(f.Types, j.Type) {
		return false
	}
	if len(f.Roles) > 0 && !anyRole(j.CareerLevel, f.Roles) {
		return false
	}
	if f.Remote && j.WorkplaceType != domain.WorkplaceRemote {
		return false
	}
	if f.Visa && j.VisaSponsorship != domain.VisaYes {
		return false
	}
	if len(f.SalaryRanges) > 0 && !inAnyBucket(j, f.SalaryRanges) {
		return false
	}
	if len(f.Languages) > 0 && !anyLanguage(j.Languages, f.Languages) {
		return false
	}
	return true
}

func matchesSearch(j domain.Job, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{j.Title, j.Company, j.WorkplaceCity, j.WorkplaceCountry} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func anyRole(have []domain.CareerLevel, want []domain.CareerLevel) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func anyLanguage(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

// inAnyBucket annualizes the salary and tests it against each selected
// bucket. Jobs with no salary data are excluded whenever any bucket is
// selected.
func inAnyBucket(j domain.Job, buckets []string) bool {
	annual := normalize.AnnualizedUSD(j.Salary)
	if annual == normalize.NoSalarySentinel {
		return false
	}
	for _, b := range buckets {
		if inBucket(annual, b) {
			return true
		}
	}
	return false
}

func inBucket(annual float64, label string) bool {
	switch label {
	case BucketUnder50K:
		return annual < 50_000
	case Bucket50to100K:
		return annual >= 50_000 && annual <= 100_000
	case Bucket100to200K:
		return annual > 100_000 && annual <= 200_000
	case BucketOver200K:
		return annual > 200_000
	default:
		return false
	}
}
