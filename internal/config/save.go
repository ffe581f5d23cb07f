package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validate is the hard gate used before persisting a config.
func Validate(cfg Config) error {
	_, vr := NormalizeAndValidate(cfg)
	if vr.OK() {
		return nil
	}
	return errors.New("config validation failed:\n- " + strings.Join(vr.Errors, "\n- "))
}

// SaveAtomic validates and writes cfg via tmp+rename, keeping the previous
// file as a .bak.
func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
