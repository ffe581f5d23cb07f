// Package sqlite is the local/dev job backend: a single-file database with
// the same record shape as the Postgres source, plus a seed helper so a
// fresh checkout has something to render.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"bordful/internal/source"
)

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	// modernc sqlite DSN: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite wants a single writer
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Name() string { return "sqlite" }

func (s *Store) migrate() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  type TEXT NOT NULL DEFAULT '',
  salary_min REAL,
  salary_max REAL,
  salary_currency TEXT NOT NULL DEFAULT '',
  salary_unit TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  apply_url TEXT NOT NULL DEFAULT '',
  posted_date TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'active',
  career_level TEXT NOT NULL DEFAULT '',
  visa_sponsorship TEXT NOT NULL DEFAULT '',
  featured INTEGER NOT NULL DEFAULT 0,
  workplace_type TEXT NOT NULL DEFAULT '',
  remote_region TEXT NOT NULL DEFAULT '',
  workplace_city TEXT NOT NULL DEFAULT '',
  workplace_country TEXT NOT NULL DEFAULT '',
  languages TEXT NOT NULL DEFAULT ''
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_posted_date ON jobs(posted_date);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

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
		return nil, fmt.Errorf("sqlite list jobs: %w", err)
	}
	defer rows.Close()

	var out []source.RawRecord
	for rows.Next() {
		var (
			id, title, company, jobType     string
			salaryMin, salaryMax            sql.NullFloat64
			currency, unit, description     string
			applyURL, postedDate, status    string
			careerLevel, visa               string
			featured                        int
			workplaceType, remoteRegion     string
			workplaceCity, workplaceCountry string
			languages                       string
		)
		if err := rows.Scan(
			&id, &title, &company, &jobType,
			&salaryMin, &salaryMax, &currency, &unit,
			&description, &applyURL, &postedDate, &status,
			&careerLevel, &visa, &featured,
			&workplaceType, &remoteRegion, &workplaceCity, &workplaceCountry,
			&languages,
		); err != nil {
			return nil, fmt.Errorf("sqlite scan job row: %w", err)
		}

		rec := source.RawRecord{
			"id":                id,
			"title":             title,
			"company":           company,
			"type":              jobType,
			"salary_currency":   currency,
			"salary_unit":       unit,
			"description":       description,
			"apply_url":         applyURL,
			"posted_date":       postedDate,
			"status":            status,
			"visa_sponsorship":  visa,
			"featured":          featured != 0,
			"workplace_type":    workplaceType,
			"remote_region":     remoteRegion,
			"workplace_city":    workplaceCity,
			"workplace_country": workplaceCountry,
			"career_level":      splitCSV(careerLevel),
			"languages":         splitCSV(languages),
		}
		if salaryMin.Valid {
			rec["salary_min"] = salaryMin.Float64
		}
		if salaryMax.Valid {
			rec["salary_max"] = salaryMax.Float64
		}
		out = append(out, rec)
	}
	return out, rows.Err()
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

// Seed inserts a sample listing when the table is empty, so local dev has
// something to render.
func (s *Store) Seed(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs;`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO jobs(id, title, company, type, salary_min, salary_max, salary_currency, salary_unit,
                 apply_url, posted_date, status, career_level, workplace_type, languages, featured)
VALUES('seed-1', 'Platform Engineer', 'SeedCo', 'Full-time', 120000, 160000, 'USD', 'year',
       'https://example.com/apply', ?, 'active', 'Senior', 'Remote', 'en', 1);`,
		time.Now().UTC().Format(time.RFC3339))
	return err
}
