package config

import "os"

// OverlayEnv applies deployment secrets from the environment on top of the
// file config, so DSNs and tokens never have to live in config.yml.
func OverlayEnv(cfg *Config) {
	if v := os.Getenv("BORDFUL_POSTGRES_DSN"); v != "" {
		cfg.Source.Postgres.DSN = v
	}
	if v := os.Getenv("BORDFUL_AIRTABLE_BASE_ID"); v != "" {
		cfg.Source.Airtable.BaseID = v
	}
	if v := os.Getenv("BORDFUL_SUBSCRIBE_PROVIDER_URL"); v != "" {
		cfg.Subscribe.ProviderURL = v
	}
	if v := os.Getenv("BORDFUL_REDIS_URL"); v != "" {
		cfg.Subscribe.RedisURL = v
	}
}
