package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims list fields, fills defaults and collects
// errors/warnings. It returns a normalized copy.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Jobs.Types = trimList(out.Jobs.Types)
	if len(out.Jobs.Types) == 0 {
		out.Jobs.Types = []string{"Full-time", "Part-time", "Contract", "Contract-to-Hire"}
	}
	if out.Jobs.PerPage <= 0 {
		out.Jobs.PerPage = 10
	}
	if out.Jobs.Revalidate == "" {
		out.Jobs.Revalidate = "@every 5m"
	}

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	switch strings.ToLower(strings.TrimSpace(out.Source.Provider)) {
	case "airtable":
		if strings.TrimSpace(out.Source.Airtable.BaseID) == "" {
			res.addErr("source.airtable.base_id is required when provider=airtable")
		}
		if strings.TrimSpace(out.Source.Airtable.Table) == "" {
			res.addErr("source.airtable.table is required when provider=airtable")
		}
	case "postgres":
		if strings.TrimSpace(out.Source.Postgres.DSN) == "" {
			res.addErr("source.postgres.dsn is required when provider=postgres (or set BORDFUL_POSTGRES_DSN)")
		}
	case "sqlite":
		if strings.TrimSpace(out.Source.SQLite.Path) == "" {
			res.addWarn("source.sqlite.path is empty; defaulting to bordful.db in the data dir")
		}
	case "":
		res.addErr("source.provider is required (airtable, postgres or sqlite)")
	default:
		res.addErr("source.provider %q is unknown (want airtable, postgres or sqlite)", out.Source.Provider)
	}

	if out.Jobs.PerPage > 200 {
		res.addWarn("jobs.per_page is very high (%d); listing responses will be large", out.Jobs.PerPage)
	}

	if out.Subscribe.Enabled {
		if strings.TrimSpace(out.Subscribe.ProviderURL) == "" {
			res.addErr("subscribe.provider_url is required when subscribe.enabled=true")
		}
		if out.Subscribe.RatePerMinute <= 0 {
			out.Subscribe.RatePerMinute = 5
		}
		if out.Subscribe.RateBurst <= 0 {
			out.Subscribe.RateBurst = 3
		}
		if out.Subscribe.DedupeTTLMin <= 0 {
			out.Subscribe.DedupeTTLMin = 24 * 60
		}
	}

	return out, res
}
