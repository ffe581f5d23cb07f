package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type AirtableSource struct {
	BaseID string `yaml:"base_id" json:"base_id"`
	Table  string `yaml:"table" json:"table"`
	View   string `yaml:"view" json:"view"`
}

type PostgresSource struct {
	DSN string `yaml:"dsn" json:"dsn"`
}

type SQLiteSource struct {
	Path string `yaml:"path" json:"path"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Site struct {
		Name        string `yaml:"name" json:"name"`
		URL         string `yaml:"url" json:"url"`
		Description string `yaml:"description" json:"description"`
	} `yaml:"site" json:"site"`

	Source struct {
		// Provider selects the backend: airtable | postgres | sqlite
		Provider string         `yaml:"provider" json:"provider"`
		Airtable AirtableSource `yaml:"airtable" json:"airtable"`
		Postgres PostgresSource `yaml:"postgres" json:"postgres"`
		SQLite   SQLiteSource   `yaml:"sqlite" json:"sqlite"`
	} `yaml:"source" json:"source"`

	Jobs struct {
		PerPage int `yaml:"per_page" json:"per_page"`
		// Revalidate is a cron spec for the cache refresh, e.g. "@every 5m"
		Revalidate string   `yaml:"revalidate" json:"revalidate"`
		Types      []string `yaml:"types" json:"types"`
	} `yaml:"jobs" json:"jobs"`

	Subscribe struct {
		Enabled       bool   `yaml:"enabled" json:"enabled"`
		ProviderURL   string `yaml:"provider_url" json:"provider_url"`
		RatePerMinute int    `yaml:"rate_per_minute" json:"rate_per_minute"`
		RateBurst     int    `yaml:"rate_burst" json:"rate_burst"`
		DedupeTTLMin  int    `yaml:"dedupe_ttl_minutes" json:"dedupe_ttl_minutes"`
		// RedisURL switches duplicate suppression from the in-memory store
		// to redis when set.
		RedisURL string `yaml:"redis_url" json:"redis_url"`
	} `yaml:"subscribe" json:"subscribe"`

	Logging struct {
		Level  string `yaml:"level" json:"level"`
		Format string `yaml:"format" json:"format"`
	} `yaml:"logging" json:"logging"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
