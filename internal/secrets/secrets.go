// Package secrets stores API tokens in the OS keychain, with an env var
// fallback for headless deployments.
package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService groups the engine's secrets in the OS keychain.
	KeyringService = "bordful"

	AccountAirtable  = "airtable_token"
	AccountSubscribe = "subscribe_api_key"
)

// envFor maps keyring accounts to their env var fallbacks.
var envFor = map[string]string{
	AccountAirtable:  "AIRTABLE_API_KEY",
	AccountSubscribe: "SUBSCRIBE_API_KEY",
}

// Get returns the secret for account: keychain first, env fallback second.
func Get(account string) (string, error) {
	if strings.TrimSpace(account) == "" {
		return "", errors.New("secret account name is empty")
	}
	if v, err := keyring.Get(KeyringService, account); err == nil && strings.TrimSpace(v) != "" {
		return v, nil
	}
	if env := envFor[account]; env != "" {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v, nil
		}
	}
	return "", errors.New("secret " + account + " not found (set it in the keychain or via env)")
}

func Set(account, value string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("secret account name is empty")
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("secret value is empty")
	}
	return keyring.Set(KeyringService, account, value)
}

func Delete(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("secret account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}
