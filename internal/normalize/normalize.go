// Package normalize converts raw source records into canonical domain.Job
// values. Its contract: never fail on a single malformed field. Every
// sub-normalizer has a defined fallback, so source-specific representations
// ("Entry Level" vs "EntryLevel", "EUR (Euro)" vs "Euro") never leak past
// this boundary.
package normalize

import (
	"regexp"
	"strings"
	"time"

	"bordful/internal/catalog"
	"bordful/internal/domain"
	"bordful/internal/source"
)

// Normalizer carries the configuration-driven parts of normalization. The
// zero value is usable; Types defaults to a single "Full-time" fallback.
type Normalizer struct {
	// Types is the closed set of employment types, first entry is the
	// fallback for raw values that match none of them.
	Types []string
}

var careerLevels = func() map[string]domain.CareerLevel {
	all := []domain.CareerLevel{
		domain.LevelInternship, domain.LevelEntryLevel, domain.LevelAssociate,
		domain.LevelJunior, domain.LevelMidLevel, domain.LevelSenior,
		domain.LevelStaff, domain.LevelPrincipal, domain.LevelLead,
		domain.LevelManager, domain.LevelSeniorManager, domain.LevelDirector,
		domain.LevelSeniorDirector, domain.LevelVP, domain.LevelSVP,
		domain.LevelEVP, domain.LevelCLevel, domain.LevelFounder,
		domain.LevelNotSpecified,
	}
	m := make(map[string]domain.CareerLevel, len(all))
	for _, l := range all {
		m[strings.ToLower(string(l))] = l
	}
	return m
}()

var remoteRegions = map[string]domain.RemoteRegion{
	string(domain.RegionWorldwide):    domain.RegionWorldwide,
	string(domain.RegionAmericasOnly): domain.RegionAmericasOnly,
	string(domain.RegionEuropeOnly):   domain.RegionEuropeOnly,
	string(domain.RegionEMEAOnly):     domain.RegionEMEAOnly,
	string(domain.RegionAPACOnly):     domain.RegionAPACOnly,
	string(domain.RegionUSOnly):       domain.RegionUSOnly,
	string(domain.RegionUKEUOnly):     domain.RegionUKEUOnly,
}

// CareerLevels maps raw level strings onto the closed enum. Whitespace inside
// multi-word names is stripped before matching ("Entry Level" -> "EntryLevel").
// Unknown values are dropped; an input that yields nothing (including an
// empty or nil slice) produces the NotSpecified sentinel, never an empty
// result.
func CareerLevels(raw []string) []domain.CareerLevel {
	var out []domain.CareerLevel
	seen := map[domain.CareerLevel]bool{}
	for _, v := range raw {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(v), " ", ""))
		if key == "" {
			continue
		}
		lvl, ok := careerLevels[key]
		if !ok {
			continue
		}
		if seen[lvl] {
			continue
		}
		seen[lvl] = true
		out = append(out, lvl)
	}
	if len(out) == 0 {
		return []domain.CareerLevel{domain.LevelNotSpecified}
	}
	return out
}

// WorkplaceType accepts only the three literal values, case-sensitively.
// Everything else, including empty input, is "Not specified". A remote region
// being present does not force the type to Remote.
func WorkplaceType(raw string) domain.WorkplaceType {
	switch raw {
	case string(domain.WorkplaceOnsite):
		return domain.WorkplaceOnsite
	case string(domain.WorkplaceHybrid):
		return domain.WorkplaceHybrid
	case string(domain.WorkplaceRemote):
		return domain.WorkplaceRemote
	default:
		return domain.WorkplaceNotSpecified
	}
}

// RemoteRegion validates against the fixed region list; anything else is nil.
func RemoteRegion(raw string) *domain.RemoteRegion {
	if r, ok := remoteRegions[strings.TrimSpace(raw)]; ok {
		return &r
	}
	return nil
}

var trailingLangCode = regexp.MustCompile(`\(([A-Za-z]{2})\)\s*$`)

// Languages resolves each raw element to an ISO 639-1 code by, in order:
// a trailing "(xx)" suffix, the bare two-letter string itself, and a
// full-name lookup. Elements that resolve via none of these are dropped
// silently.
func Languages(raw []string) []string {
	var out []string
	seen := map[string]bool{}
	add := func(code string) {
		code = strings.ToLower(code)
		if !seen[code] {
			seen[code] = true
			out = append(out, code)
		}
	}
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if m := trailingLangCode.FindStringSubmatch(v); m != nil && catalog.IsLanguageCode(m[1]) {
			add(m[1])
			continue
		}
		if len(v) == 2 && catalog.IsLanguageCode(v) {
			add(v)
			continue
		}
		if code, ok := catalog.LanguageCodeByName(v); ok {
			add(code)
		}
	}
	return out
}

var leadingCurrencyCode = regexp.MustCompile(`^([A-Za-z]{3})\s*\(`)

// Currency resolves a raw currency value to a 3-letter code by, in order: a
// leading code followed by a parenthetical name ("EUR (Euro)"), the bare
// code, and a full-name lookup. Unresolvable values default to USD.
func Currency(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return catalog.DefaultCurrency
	}
	if m := leadingCurrencyCode.FindStringSubmatch(raw); m != nil {
		if c, ok := catalog.CurrencyByCode(m[1]); ok {
			return c.Code
		}
	}
	if len(raw) == 3 {
		if c, ok := catalog.CurrencyByCode(raw); ok {
			return c.Code
		}
	}
	if c, ok := catalog.CurrencyByName(raw); ok {
		return c.Code
	}
	return catalog.DefaultCurrency
}

func salaryUnit(raw string) domain.SalaryUnit {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "hour", "hourly":
		return domain.UnitHour
	case "day", "daily":
		return domain.UnitDay
	case "week", "weekly":
		return domain.UnitWeek
	case "month", "monthly":
		return domain.UnitMonth
	case "project", "fixed":
		return domain.UnitProject
	default:
		return domain.UnitYear
	}
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a URL-safe identifier from title and company, falling back to
// the record id when both are unusable.
func Slug(title, company, id string) string {
	s := strings.ToLower(title + " " + company)
	s = nonSlug.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return id
	}
	return s
}

// postedDateLayouts covers the date shapes the backends produce. Unparseable
// dates stay zero; they sort last but never fail normalization.
var postedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func postedDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range postedDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func visa(raw string) domain.VisaSponsorship {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		return domain.VisaYes
	case "no":
		return domain.VisaNo
	default:
		return domain.VisaNotSpecified
	}
}

func (n Normalizer) jobType(raw string) string {
	fallback := "Full-time"
	if len(n.Types) > 0 {
		fallback = n.Types[0]
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	if len(n.Types) == 0 {
		return raw
	}
	for _, t := range n.Types {
		if strings.EqualFold(t, raw) {
			return t
		}
	}
	return fallback
}

// Job converts one raw record into a canonical Job. It returns false only
// when the record is unusable as a listing (no id or no title); malformed
// individual fields always normalize to their fallback instead.
func (n Normalizer) Job(rec source.RawRecord) (domain.Job, bool) {
	id := rec.Str("id")
	title := rec.Str("title")
	if id == "" || title == "" {
		return domain.Job{}, false
	}

	j := domain.Job{
		ID:               id,
		Title:            title,
		Company:          rec.Str("company"),
		Type:             n.jobType(rec.Str("type")),
		Description:      CleanMarkdown(rec.Str("description")),
		ApplyURL:         rec.Str("apply_url"),
		PostedDate:       postedDate(rec.Str("posted_date")),
		CareerLevel:      CareerLevels(rec.StrSlice("career_level")),
		VisaSponsorship:  visa(rec.Str("visa_sponsorship")),
		Featured:         rec.Bool("featured"),
		WorkplaceType:    WorkplaceType(rec.Str("workplace_type")),
		RemoteRegion:     RemoteRegion(rec.Str("remote_region")),
		WorkplaceCity:    rec.Str("workplace_city"),
		WorkplaceCountry: rec.Str("workplace_country"),
		Languages:        Languages(rec.StrSlice("languages")),
	}
	j.Slug = Slug(j.Title, j.Company, j.ID)

	if strings.EqualFold(rec.Str("status"), string(domain.StatusActive)) {
		j.Status = domain.StatusActive
	} else {
		j.Status = domain.StatusInactive
	}
	// an active listing without an apply URL is not servable
	if j.Status == domain.StatusActive && j.ApplyURL == "" {
		j.Status = domain.StatusInactive
	}

	min, max := rec.Float("salary_min"), rec.Float("salary_max")
	if min != nil || max != nil {
		j.Salary = &domain.Salary{
			Min:      min,
			Max:      max,
			Currency: Currency(rec.Str("salary_currency")),
			Unit:     salaryUnit(rec.Str("salary_unit")),
		}
	}

	return j, true
}
