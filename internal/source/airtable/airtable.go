// Package airtable fetches job records from an Airtable base over its REST
// API, following offset pagination until the view is exhausted.
package airtable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"bordful/internal/source"
)

type Config struct {
	BaseID string
	Table  string
	View   string
	Token  string
}

type Client struct {
	cfg     Config
	hc      *http.Client
	baseURL string
}

func New(cfg Config) *Client {
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		baseURL: "https://api.airtable.com/v0",
	}
}

// NewWithBaseURL exists for tests against a local httptest server.
func NewWithBaseURL(cfg Config, baseURL string) *Client {
	c := New(cfg)
	c.baseURL = baseURL
	return c
}

func (c *Client) Name() string { return "airtable" }

type listResponse struct {
	Records []struct {
		ID     string         `json:"id"`
		Fields map[string]any `json:"fields"`
	} `json:"records"`
	Offset string `json:"offset"`
}

// GetJobs walks the configured table/view page by page. Credential and
// connectivity problems surface as errors; the caller logs them and serves
// an empty list.
func (c *Client) GetJobs(ctx context.Context) ([]source.RawRecord, error) {
	if c.cfg.Token == "" {
		return nil, errors.New("airtable: token is not configured")
	}
	if c.cfg.BaseID == "" || c.cfg.Table == "" {
		return nil, errors.New("airtable: base id and table are required")
	}

	var out []source.RawRecord
	offset := ""
	for {
		page, next, err := c.fetchPage(ctx, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if next == "" {
			return out, nil
		}
		offset = next
	}
}

func (c *Client) fetchPage(ctx context.Context, offset string) ([]source.RawRecord, string, error) {
	u := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(c.cfg.BaseID), url.PathEscape(c.cfg.Table))
	q := url.Values{}
	if c.cfg.View != "" {
		q.Set("view", c.cfg.View)
	}
	if offset != "" {
		q.Set("offset", offset)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("airtable list records: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return nil, "", fmt.Errorf("airtable auth failed (status %d): check the token", res.StatusCode)
	}
	if res.StatusCode >= 400 {
		return nil, "", fmt.Errorf("airtable status %d", res.StatusCode)
	}

	var lr listResponse
	if err := json.NewDecoder(res.Body).Decode(&lr); err != nil {
		return nil, "", fmt.Errorf("airtable decode response: %w", err)
	}

	recs := make([]source.RawRecord, 0, len(lr.Records))
	for _, r := range lr.Records {
		rec := source.RawRecord{"id": r.ID}
		for k, v := range r.Fields {
			rec[fieldKey(k)] = v
		}
		recs = append(recs, rec)
	}
	return recs, lr.Offset, nil
}

// fieldKey maps Airtable column labels onto the canonical record keys the
// normalizer expects. Unknown columns pass through lowercased.
func fieldKey(label string) string {
	switch label {
	case "Title":
		return "title"
	case "Company":
		return "company"
	case "Type":
		return "type"
	case "Salary Min":
		return "salary_min"
	case "Salary Max":
		return "salary_max"
	case "Salary Currency":
		return "salary_currency"
	case "Salary Unit":
		return "salary_unit"
	case "Description":
		return "description"
	case "Apply URL":
		return "apply_url"
	case "Posted Date":
		return "posted_date"
	case "Status":
		return "status"
	case "Career Level":
		return "career_level"
	case "Visa Sponsorship":
		return "visa_sponsorship"
	case "Featured":
		return "featured"
	case "Workplace Type":
		return "workplace_type"
	case "Remote Region":
		return "remote_region"
	case "Workplace City":
		return "workplace_city"
	case "Workplace Country":
		return "workplace_country"
	case "Languages":
		return "languages"
	default:
		return toSnake(label)
	}
}

func toSnake(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '_')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
