package jobs

import (
	"bordful/internal/domain"
	"bordful/internal/normalize"
)

// FacetCounts are the sidebar badge numbers. They are computed over the jobs
// list handed to the filter UI, not recomputed per filter combination —
// counts answer "how many jobs carry this value" within the current context
// (e.g. a country page counts only that country's jobs).
type FacetCounts struct {
	Types     map[string]int `json:"types"`
	Roles     map[string]int `json:"roles"`
	Salary    map[string]int `json:"salary"`
	Languages map[string]int `json:"languages"`
	Remote    int            `json:"remote"`
	Visa      int            `json:"visa"`
}

// Facets counts every facet dimension in one pass.
func Facets(in []domain.Job) FacetCounts {
	fc := FacetCounts{
		Types:     map[string]int{},
		Roles:     map[string]int{},
		Salary:    map[string]int{},
		Languages: map[string]int{},
	}
	buckets := []string{BucketUnder50K, Bucket50to100K, Bucket100to200K, BucketOver200K}

	for _, j := range in {
		fc.Types[j.Type]++
		for _, r := range j.CareerLevel {
			fc.Roles[string(r)]++
		}
		for _, l := range j.Languages {
			fc.Languages[l]++
		}
		if j.WorkplaceType == domain.WorkplaceRemote {
			fc.Remote++
		}
		if j.VisaSponsorship == domain.VisaYes {
			fc.Visa++
		}
		if annual := normalize.AnnualizedUSD(j.Salary); annual != normalize.NoSalarySentinel {
			for _, b := range buckets {
				if inBucket(annual, b) {
					fc.Salary[b]++
					break
				}
			}
		}
	}
	return fc
}
