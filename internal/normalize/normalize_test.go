package normalize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bordful/internal/domain"
	"bordful/internal/normalize"
	"bordful/internal/source"
)

func TestCareerLevels(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []domain.CareerLevel
	}{
		{"spaced multi-word names", []string{"Entry Level", "Senior"}, []domain.CareerLevel{domain.LevelEntryLevel, domain.LevelSenior}},
		{"case and duplicates collapse", []string{"senior", "Senior", "SENIOR"}, []domain.CareerLevel{domain.LevelSenior}},
		{"unknown values drop", []string{"Wizard", "Lead"}, []domain.CareerLevel{domain.LevelLead}},
		{"nothing resolvable yields sentinel", []string{"Wizard"}, []domain.CareerLevel{domain.LevelNotSpecified}},
		{"nil input yields sentinel", nil, []domain.CareerLevel{domain.LevelNotSpecified}},
		{"empty strings ignored", []string{"", "  "}, []domain.CareerLevel{domain.LevelNotSpecified}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalize.CareerLevels(tc.in))
		})
	}
}

func TestWorkplaceType_CaseSensitive(t *testing.T) {
	assert.Equal(t, domain.WorkplaceRemote, normalize.WorkplaceType("Remote"))
	assert.Equal(t, domain.WorkplaceHybrid, normalize.WorkplaceType("Hybrid"))
	assert.Equal(t, domain.WorkplaceOnsite, normalize.WorkplaceType("On-site"))

	// only exact literals count
	assert.Equal(t, domain.WorkplaceNotSpecified, normalize.WorkplaceType("remote"))
	assert.Equal(t, domain.WorkplaceNotSpecified, normalize.WorkplaceType("Onsite"))
	assert.Equal(t, domain.WorkplaceNotSpecified, normalize.WorkplaceType(""))
}

func TestRemoteRegion(t *testing.T) {
	r := normalize.RemoteRegion("Worldwide")
	require.NotNil(t, r)
	assert.Equal(t, domain.RegionWorldwide, *r)

	r = normalize.RemoteRegion("  Europe Only  ")
	require.NotNil(t, r)
	assert.Equal(t, domain.RegionEuropeOnly, *r)

	assert.Nil(t, normalize.RemoteRegion("Mars"))
	assert.Nil(t, normalize.RemoteRegion(""))
}

func TestLanguages(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"code suffix wins", []string{"French (fr)"}, []string{"fr"}},
		{"bare code", []string{"en"}, []string{"en"}},
		{"full name lookup", []string{"German"}, []string{"de"}},
		{"unresolvable dropped silently", []string{"xx", "Klingon"}, nil},
		{"mixed with dedupe", []string{"English", "en", "German"}, []string{"en", "de"}},
		{"suffix, junk and name together", []string{"French (fr)", "xx", "German"}, []string{"fr", "de"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalize.Languages(tc.in))
		})
	}
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "EUR", normalize.Currency("EUR (Euro)"))
	assert.Equal(t, "GBP", normalize.Currency("gbp"))
	assert.Equal(t, "EUR", normalize.Currency("Euro"))
	// anything unresolvable defaults to USD
	assert.Equal(t, "USD", normalize.Currency("XYZ"))
	assert.Equal(t, "USD", normalize.Currency(""))
	assert.Equal(t, "USD", normalize.Currency("Galactic Credits"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "senior-gopher-acme-inc", normalize.Slug("Senior Gopher", "Acme, Inc.", "rec1"))
	// unusable title+company falls back to the record id
	assert.Equal(t, "rec1", normalize.Slug("???", "!!!", "rec1"))
}

func TestNormalizer_Job(t *testing.T) {
	n := normalize.Normalizer{Types: []string{"Full-time", "Part-time"}}

	rec := source.RawRecord{
		"id":               "rec42",
		"title":            "Backend Engineer",
		"company":          "Acme",
		"type":             "full-time",
		"status":           "Active",
		"apply_url":        "https://acme.example/apply",
		"posted_date":      "2026-03-01",
		"career_level":     []any{"Senior", "Staff"},
		"visa_sponsorship": "Yes",
		"featured":         true,
		"workplace_type":   "Remote",
		"remote_region":    "Worldwide",
		"languages":        []any{"English", "German"},
		"salary_min":       float64(90000),
		"salary_max":       float64(120000),
		"salary_currency":  "USD",
		"salary_unit":      "year",
	}

	j, ok := n.Job(rec)
	require.True(t, ok)
	assert.Equal(t, "rec42", j.ID)
	assert.Equal(t, "backend-engineer-acme", j.Slug)
	assert.Equal(t, "Full-time", j.Type) // folded onto the configured value
	assert.Equal(t, domain.StatusActive, j.Status)
	assert.Equal(t, []domain.CareerLevel{domain.LevelSenior, domain.LevelStaff}, j.CareerLevel)
	assert.Equal(t, domain.VisaYes, j.VisaSponsorship)
	assert.True(t, j.Featured)
	assert.Equal(t, domain.WorkplaceRemote, j.WorkplaceType)
	require.NotNil(t, j.RemoteRegion)
	assert.Equal(t, domain.RegionWorldwide, *j.RemoteRegion)
	assert.Equal(t, []string{"en", "de"}, j.Languages)
	require.NotNil(t, j.Salary)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), j.PostedDate)
}

func TestNormalizer_Job_RejectsUnusableRecords(t *testing.T) {
	var n normalize.Normalizer

	_, ok := n.Job(source.RawRecord{"title": "No ID"})
	assert.False(t, ok)

	_, ok = n.Job(source.RawRecord{"id": "rec1"})
	assert.False(t, ok)
}

func TestNormalizer_Job_ActiveNeedsApplyURL(t *testing.T) {
	var n normalize.Normalizer

	j, ok := n.Job(source.RawRecord{"id": "r1", "title": "T", "status": "active"})
	require.True(t, ok)
	assert.Equal(t, domain.StatusInactive, j.Status)

	j, ok = n.Job(source.RawRecord{"id": "r1", "title": "T", "status": "active", "apply_url": "https://x"})
	require.True(t, ok)
	assert.Equal(t, domain.StatusActive, j.Status)
}

func TestNormalizer_Job_NoSalaryFields(t *testing.T) {
	var n normalize.Normalizer
	j, ok := n.Job(source.RawRecord{"id": "r1", "title": "T"})
	require.True(t, ok)
	assert.Nil(t, j.Salary)
}

func TestNormalizer_Job_UnparseableDateStaysZero(t *testing.T) {
	var n normalize.Normalizer
	j, ok := n.Job(source.RawRecord{"id": "r1", "title": "T", "posted_date": "next Tuesday"})
	require.True(t, ok)
	assert.True(t, j.PostedDate.IsZero())
}
