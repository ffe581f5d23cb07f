// Package source defines the raw-record boundary between job backends
// (Airtable, Postgres, sqlite) and the normalizer. Backends return loosely
// typed RawRecords; all "what if this field is absent or wrong-shaped"
// decisions live in the accessor helpers and the normalizer, not in the
// backends.
package source

import (
	"context"
	"strconv"
	"strings"
)

// RawRecord is one job row/record as the backend produced it: a dictionary of
// loosely typed fields keyed by canonical field names (title, company, type,
// salary_min, ...).
type RawRecord map[string]any

// Source is a job backend. GetJobs returns every record it knows about,
// active or not; filtering by status happens after normalization. It fails
// only on source-level problems (connectivity, credentials), never on a
// malformed individual record.
type Source interface {
	Name() string
	GetJobs(ctx context.Context) ([]RawRecord, error)
}

// Str returns the field as a trimmed string, or "" when absent or not
// string-shaped.
func (r RawRecord) Str(key string) string {
	switch v := r[key].(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return ""
	}
}

// StrSlice returns the field as a slice of non-empty trimmed strings. A bare
// string becomes a one-element slice so single-value and multi-value source
// fields look the same downstream.
func (r RawRecord) StrSlice(key string) []string {
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	switch v := r[key].(type) {
	case string:
		add(v)
	case []string:
		for _, s := range v {
			add(s)
		}
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok {
				add(s)
			}
		}
	}
	return out
}

// Float returns the field as a float64 pointer, nil when absent or
// unparseable. Numeric JSON fields arrive as float64; Postgres rows may
// surface int64 or numeric strings.
func (r RawRecord) Float(key string) *float64 {
	switch v := r[key].(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return &f
		}
	}
	return nil
}

// Bool returns the field as a bool, tolerating checkbox-style string values.
// Anything unrecognized is false.
func (r RawRecord) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1", "checked":
			return true
		}
	case float64:
		return v != 0
	case int64:
		return v != 0
	}
	return false
}
