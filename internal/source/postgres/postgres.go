// Package postgres reads job rows from a Postgres database. Rows come back
// as RawRecords so the normalizer owns every fallback decision, same as the
// other backends.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"bordful/internal/source"
)

type Store struct {
	db *sql.DB
}

// Open connects and pings. A bad DSN or unreachable server fails here, not
// on first fetch.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Name() string { return "postgres" }

const listQuery = `
SELECT id, title, company, type,
       salary_min, salary_max, salary_currency, salary_unit,
       description, apply_url, posted_date, status,
       career_level, visa_sponsorship, featured,
       workplace_type, remote_region, workplace_city, workplace_country,
       languages
FROM jobs;`

func (s *Store) GetJobs(ctx context.Context) ([]source.RawRecord, error) {
	rows, err := s.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("postgres list jobs: %w", err)
	}
	defer rows.Close()

	var out []source.RawRecord
	for rows.Next() {
		var (
			id, title, company, jobType          string
			salaryMin, salaryMax                 sql.NullFloat64
			currency, unit, description          sql.NullString
			applyURL, status                     sql.NullString
			postedDate                           sql.NullTime
			careerLevel, visa                    sql.NullString
			featured                             sql.NullBool
			workplaceType, remoteRegion          sql.NullString
			workplaceCity, workplaceCountry      sql.NullString
			languages                            sql.NullString
		)
		if err := rows.Scan(
			&id, &title, &company, &jobType,
			&salaryMin, &salaryMax, &currency, &unit,
			&description, &applyURL, &postedDate, &status,
			&careerLevel, &visa, &featured,
			&workplaceType, &remoteRegion, &workplaceCity, &workplaceCountry,
			&languages,
		); err != nil {
			return nil, fmt.Errorf("postgres scan job row: %w", err)
		}

		rec := source.RawRecord{
			"id":      id,
			"title":   title,
			"company": company,
			"type":    jobType,
		}
		putString(rec, "salary_currency", currency)
		putString(rec, "salary_unit", unit)
		putString(rec, "description", description)
		putString(rec, "apply_url", applyURL)
		putString(rec, "status", status)
		putString(rec, "visa_sponsorship", visa)
		putString(rec, "workplace_type", workplaceType)
		putString(rec, "remote_region", remoteRegion)
		putString(rec, "workplace_city", workplaceCity)
		putString(rec, "workplace_country", workplaceCountry)
		if salaryMin.Valid {
			rec["salary_min"] = salaryMin.Float64
		}
		if salaryMax.Valid {
			rec["salary_max"] = salaryMax.Float64
		}
		if postedDate.Valid {
			rec["posted_date"] = postedDate.Time.Format(time.RFC3339)
		}
		if featured.Valid {
			rec["featured"] = featured.Bool
		}
		// career_level and languages are stored comma-separated
		putList(rec, "career_level", careerLevel)
		putList(rec, "languages", languages)

		out = append(out, rec)
	}
	return out, rows.Err()
}

func putString(rec source.RawRecord, key string, v sql.NullString) {
	if v.Valid && v.String != "" {
		rec[key] = v.String
	}
}

func putList(rec source.RawRecord, key string, v sql.NullString) {
	if !v.Valid || v.String == "" {
		return
	}
	rec[key] = splitCSV(v.String)
}

func splitCSV(s string) []any {
	var out []any
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
