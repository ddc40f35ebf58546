package folio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with optional sections: a section left out of
// the file falls back to the matching section of Default().
type fileConfig struct {
	Site    *SiteConfig   `yaml:"site"`
	Locale  *LocaleConfig `yaml:"locale"`
	Logo    *LogoConfig   `yaml:"logo"`
	Socials *[]SocialLink `yaml:"socials"`
}

// Load reads the YAML config at path and applies FOLIO_* environment
// overrides. An empty path loads Default() plus the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("folio: read config: %w", err)
		}
		if cfg, err = parseConfig(bytes.NewReader(data)); err != nil {
			return Config{}, fmt.Errorf("folio: parse %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return Config{}, fmt.Errorf("folio: environment: %w", err)
	}
	return cfg, nil
}

// LoadRegistry loads path and builds a Registry from it.
func LoadRegistry(path string) (*Registry, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

func parseConfig(r io.Reader) (Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	cfg := Default()
	if fc.Site != nil {
		cfg.Site = *fc.Site
	}
	if fc.Locale != nil {
		cfg.Locale = *fc.Locale
	}
	if fc.Logo != nil {
		cfg.Logo = *fc.Logo
	}
	if fc.Socials != nil {
		cfg.Socials = *fc.Socials
	}
	return cfg, nil
}

// applyEnv overlays FOLIO_* variables onto cfg. Unset variables leave the
// field alone; malformed numbers or booleans are errors.
func applyEnv(cfg *Config, getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	str("FOLIO_WEBSITE", &cfg.Site.Website)
	str("FOLIO_AUTHOR", &cfg.Site.Author)
	str("FOLIO_DESC", &cfg.Site.Desc)
	str("FOLIO_TITLE", &cfg.Site.Title)
	str("FOLIO_OG_IMAGE", &cfg.Site.OGImage)

	if v := getenv("FOLIO_LIGHT_AND_DARK_MODE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FOLIO_LIGHT_AND_DARK_MODE: %w", err)
		}
		cfg.Site.LightAndDarkMode = b
	}
	if v := getenv("FOLIO_POST_PER_PAGE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FOLIO_POST_PER_PAGE: %w", err)
		}
		cfg.Site.PostPerPage = n
	}
	if v := getenv("FOLIO_SCHEDULED_POST_MARGIN"); v != "" {
		ms, err := parseMillis(v)
		if err != nil {
			return fmt.Errorf("FOLIO_SCHEDULED_POST_MARGIN: %w", err)
		}
		cfg.Site.ScheduledPostMargin = ms
	}
	if v, ok := lookupSet(getenv, "FOLIO_LANG"); ok {
		cfg.Locale.Lang = strings.TrimSpace(v)
	}
	if v, ok := lookupSet(getenv, "FOLIO_LANG_TAG"); ok {
		var tags []string
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		cfg.Locale.LangTag = tags
	}
	return nil
}

// lookupSet treats a variable as set when it is non-empty. "-" explicitly
// clears the value back to its empty sentinel.
func lookupSet(getenv func(string) string, key string) (string, bool) {
	v := getenv(key)
	if v == "" {
		return "", false
	}
	if v == "-" {
		return "", true
	}
	return v, true
}

// parseMillis accepts a plain millisecond count or a Go duration ("15m").
func parseMillis(v string) (int64, error) {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("want milliseconds or a duration, got %q", v)
	}
	return d.Milliseconds(), nil
}

// WriteConfig writes cfg as YAML to path, replacing any existing file
// atomically.
func WriteConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("folio: create config dir: %w", err)
	}
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("folio: create pending config: %w", err)
	}
	defer func() { _ = pending.Cleanup() }()

	enc := yaml.NewEncoder(pending)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("folio: encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("folio: encode config: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("folio: replace config: %w", err)
	}
	return nil
}
