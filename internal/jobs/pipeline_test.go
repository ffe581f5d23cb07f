package jobs_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bordful/internal/domain"
	"bordful/internal/jobs"
)

func fp(v float64) *float64 { return &v }

func day(n int) time.Time {
	return time.Date(2026, 1, n, 0, 0, 0, 0, time.UTC)
}

func yearly(min, max float64) *domain.Salary {
	return &domain.Salary{Min: fp(min), Max: fp(max), Currency: "USD", Unit: domain.UnitYear}
}

func sampleJobs() []domain.Job {
	return []domain.Job{
		{
			ID: "1", Title: "Senior Go Engineer", Company: "Acme", Type: "Full-time",
			PostedDate: day(1), Salary: yearly(120000, 150000),
			CareerLevel:   []domain.CareerLevel{domain.LevelSenior},
			WorkplaceType: domain.WorkplaceRemote, VisaSponsorship: domain.VisaYes,
			Languages: []string{"en"},
		},
		{
			ID: "2", Title: "Junior Designer", Company: "Pixels GmbH", Type: "Part-time",
			PostedDate: day(5), Salary: yearly(30000, 45000),
			CareerLevel:   []domain.CareerLevel{domain.LevelJunior},
			WorkplaceType: domain.WorkplaceOnsite, WorkplaceCity: "Berlin",
			Languages: []string{"de", "en"},
		},
		{
			ID: "3", Title: "Staff Platform Engineer", Company: "Initech", Type: "Full-time",
			PostedDate: day(3), Featured: true, Salary: yearly(180000, 220000),
			CareerLevel:   []domain.CareerLevel{domain.LevelStaff},
			WorkplaceType: domain.WorkplaceRemote,
			Languages:     []string{"en"},
		},
		{
			ID: "4", Title: "Contract QA", Company: "Acme", Type: "Contract",
			PostedDate:  day(2), // no salary
			CareerLevel: []domain.CareerLevel{domain.LevelNotSpecified},
		},
	}
}

func ids(in []domain.Job) []string {
	out := make([]string, len(in))
	for i, j := range in {
		out[i] = j.ID
	}
	return out
}

// ── Filtering ──

func TestFilter_Search(t *testing.T) {
	f := jobs.FilterState{Search: "acme"}
	assert.Equal(t, []string{"1", "4"}, ids(f.Apply(sampleJobs())))

	// city matches too
	f = jobs.FilterState{Search: "berlin"}
	assert.Equal(t, []string{"2"}, ids(f.Apply(sampleJobs())))

	f = jobs.FilterState{Search: "no such thing"}
	assert.Empty(t, f.Apply(sampleJobs()))
}

func TestFilter_TypesAndRoles(t *testing.T) {
	f := jobs.FilterState{Types: []string{"full-time"}} // case-insensitive
	assert.Equal(t, []string{"1", "3"}, ids(f.Apply(sampleJobs())))

	f = jobs.FilterState{Roles: []domain.CareerLevel{domain.LevelJunior, domain.LevelStaff}}
	assert.Equal(t, []string{"2", "3"}, ids(f.Apply(sampleJobs())))
}

func TestFilter_RemoteAndVisa(t *testing.T) {
	f := jobs.FilterState{Remote: true}
	assert.Equal(t, []string{"1", "3"}, ids(f.Apply(sampleJobs())))

	f = jobs.FilterState{Visa: true}
	assert.Equal(t, []string{"1"}, ids(f.Apply(sampleJobs())))
}

func TestFilter_SalaryBuckets(t *testing.T) {
	f := jobs.FilterState{SalaryRanges: []string{jobs.BucketUnder50K}}
	assert.Equal(t, []string{"2"}, ids(f.Apply(sampleJobs())))

	f = jobs.FilterState{SalaryRanges: []string{jobs.Bucket100to200K, jobs.BucketOver200K}}
	assert.Equal(t, []string{"1", "3"}, ids(f.Apply(sampleJobs())))

	// a salary filter always excludes jobs with no salary data
	f = jobs.FilterState{SalaryRanges: []string{jobs.BucketUnder50K, jobs.Bucket50to100K, jobs.Bucket100to200K, jobs.BucketOver200K}}
	assert.NotContains(t, ids(f.Apply(sampleJobs())), "4")

	// unknown labels match nothing
	f = jobs.FilterState{SalaryRanges: []string{"$1M+"}}
	assert.Empty(t, f.Apply(sampleJobs()))
}

func TestFilter_BucketBoundaries(t *testing.T) {
	mk := func(v float64) domain.Job {
		return domain.Job{ID: "x", Salary: yearly(v, v)}
	}
	cases := []struct {
		annual float64
		bucket string
		want   bool
	}{
		{49999, jobs.BucketUnder50K, true},
		{50000, jobs.BucketUnder50K, false},
		{50000, jobs.Bucket50to100K, true},
		{100000, jobs.Bucket50to100K, true},
		{100000, jobs.Bucket100to200K, false},
		{100001, jobs.Bucket100to200K, true},
		{200000, jobs.Bucket100to200K, true},
		{200000, jobs.BucketOver200K, false},
		{200001, jobs.BucketOver200K, true},
	}
	for _, tc := range cases {
		f := jobs.FilterState{SalaryRanges: []string{tc.bucket}}
		got := len(f.Apply([]domain.Job{mk(tc.annual)})) == 1
		assert.Equal(t, tc.want, got, "annual=%v bucket=%q", tc.annual, tc.bucket)
	}
}

func TestFilter_Languages(t *testing.T) {
	f := jobs.FilterState{Languages: []string{"de"}}
	assert.Equal(t, []string{"2"}, ids(f.Apply(sampleJobs())))
}

func TestFilter_EmptyMatchesEverything(t *testing.T) {
	var f jobs.FilterState
	require.True(t, f.Empty())
	assert.Len(t, f.Apply(sampleJobs()), len(sampleJobs()))
}

func TestFilter_Idempotent(t *testing.T) {
	f := jobs.FilterState{Types: []string{"Full-time"}, Remote: true}
	once := f.Apply(sampleJobs())
	twice := f.Apply(once)
	assert.Equal(t, ids(once), ids(twice))
}

// ── Sorting ──

func TestSort_FeaturedAlwaysFirst(t *testing.T) {
	// job 3 is featured but not the newest
	got := jobs.Sort(sampleJobs(), jobs.SortNewest)
	assert.Equal(t, []string{"3", "2", "4", "1"}, ids(got))

	got = jobs.Sort(sampleJobs(), jobs.SortOldest)
	assert.Equal(t, []string{"3", "1", "4", "2"}, ids(got))
}

func TestSort_Salary(t *testing.T) {
	got := jobs.Sort(sampleJobs(), jobs.SortSalary)
	// featured 3 first, then by annualized max desc; no-salary job ranks 0
	assert.Equal(t, []string{"3", "1", "2", "4"}, ids(got))
}

func TestSort_StableAndNonMutating(t *testing.T) {
	in := sampleJobs()
	before := ids(in)
	_ = jobs.Sort(in, jobs.SortSalary)
	assert.Equal(t, before, ids(in))

	// ties keep input order
	a := domain.Job{ID: "a", PostedDate: day(1)}
	b := domain.Job{ID: "b", PostedDate: day(1)}
	assert.Equal(t, []string{"a", "b"}, ids(jobs.Sort([]domain.Job{a, b}, jobs.SortNewest)))
	assert.Equal(t, []string{"b", "a"}, ids(jobs.Sort([]domain.Job{b, a}, jobs.SortNewest)))
}

// ── Pagination ──

func TestPaginate(t *testing.T) {
	in := make([]domain.Job, 12)
	for i := range in {
		in[i].ID = string(rune('a' + i))
	}

	page := jobs.Paginate(in, 1, 10)
	assert.Len(t, page, 10)

	page = jobs.Paginate(in, 2, 10)
	require.Len(t, page, 2)
	assert.Equal(t, in[10].ID, page[0].ID)

	// out of range pages are empty, not an error
	assert.Empty(t, jobs.Paginate(in, 3, 10))
	assert.Empty(t, jobs.Paginate(in, 100, 10))

	// nonsense values normalize
	assert.Len(t, jobs.Paginate(in, 0, 10), 10)
	assert.Len(t, jobs.Paginate(in, -5, 10), 10)
	assert.Empty(t, jobs.Paginate(in, 1, 0))
	assert.Empty(t, jobs.Paginate(nil, 1, 10))
}

func TestRun_TotalCountsAllMatches(t *testing.T) {
	q := jobs.DefaultQuery()
	q.PerPage = 2

	page, total := jobs.Run(sampleJobs(), q)
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{"3", "2"}, ids(page))

	q.Page = 2
	page, total = jobs.Run(sampleJobs(), q)
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{"4", "1"}, ids(page))
}

// ── URL state ──

func TestParseQuery_Defaults(t *testing.T) {
	q := jobs.ParseQuery(url.Values{})
	assert.Equal(t, jobs.DefaultQuery(), q)
	assert.True(t, q.Filters.Empty())
}

func TestParseQuery_MalformedValuesFallBack(t *testing.T) {
	q := jobs.ParseQuery(url.Values{
		"page":     {"zero"},
		"per_page": {"-3"},
		"sort":     {"sideways"},
		"remote":   {"yes"}, // only the literal "true" counts
	})
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, jobs.DefaultPerPage, q.PerPage)
	assert.Equal(t, jobs.SortNewest, q.Sort)
	assert.False(t, q.Filters.Remote)
}

func TestQueryEncode_OmitsDefaults(t *testing.T) {
	assert.Empty(t, jobs.DefaultQuery().Encode())

	q := jobs.DefaultQuery()
	q.Filters.Search = "go"
	q.Sort = jobs.SortSalary
	q.Page = 3
	v := q.Encode()
	assert.Equal(t, "go", v.Get("q"))
	assert.Equal(t, "salary", v.Get("sort"))
	assert.Equal(t, "3", v.Get("page"))
	assert.False(t, v.Has("per_page"))
	assert.False(t, v.Has("remote"))
}

func TestQueryRoundTrip(t *testing.T) {
	q := jobs.Query{
		Filters: jobs.FilterState{
			Search:       "engineer",
			Types:        []string{"Full-time", "Contract"},
			Roles:        []domain.CareerLevel{domain.LevelSenior, domain.LevelStaff},
			Remote:       true,
			SalaryRanges: []string{jobs.Bucket100to200K},
			Visa:         true,
			Languages:    []string{"en", "de"},
		},
		Sort:    jobs.SortOldest,
		Page:    4,
		PerPage: 25,
	}
	assert.Equal(t, q, jobs.ParseQuery(q.Encode()))

	// and the all-defaults round trip
	assert.Equal(t, jobs.DefaultQuery(), jobs.ParseQuery(jobs.DefaultQuery().Encode()))
}

// ── Facets ──

func TestFacets(t *testing.T) {
	fc := jobs.Facets(sampleJobs())

	assert.Equal(t, 2, fc.Types["Full-time"])
	assert.Equal(t, 1, fc.Types["Part-time"])
	assert.Equal(t, 1, fc.Roles[string(domain.LevelSenior)])
	assert.Equal(t, 3, fc.Languages["en"])
	assert.Equal(t, 2, fc.Remote)
	assert.Equal(t, 1, fc.Visa)

	// each salaried job lands in exactly one bucket; job 4 has none
	assert.Equal(t, 1, fc.Salary[jobs.BucketUnder50K])
	assert.Equal(t, 1, fc.Salary[jobs.Bucket100to200K])
	assert.Equal(t, 1, fc.Salary[jobs.BucketOver200K])
	total := 0
	for _, n := range fc.Salary {
		total += n
	}
	assert.Equal(t, 3, total)
}
