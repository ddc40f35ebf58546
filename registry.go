package folio

import (
	"fmt"
)

// Registry is the validated, read-only site configuration. Build it once
// with New and share the pointer; every accessor returns a copy, so readers
// need no locking.
type Registry struct {
	cfg      Config
	warnings []string
}

// New validates cfg and returns the registry. Link titles are resolved
// against the site title here, so consumers read final strings.
func New(cfg Config) (*Registry, error) {
	cfg = cfg.clone()
	warnings, err := validateConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("folio: invalid config: %w", err)
	}
	for i := range cfg.Socials {
		cfg.Socials[i].LinkTitle = resolveLinkTitle(cfg.Socials[i], cfg.Site.Title)
	}
	return &Registry{cfg: cfg, warnings: warnings}, nil
}

// MustNew is like New but panics on an invalid config. Use it where a bad
// config must stop the process before anything is served.
func MustNew(cfg Config) *Registry {
	r, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return r
}

// Site returns the site metadata.
func (r *Registry) Site() SiteConfig { return r.cfg.Site }

// Locale returns the locale settings as configured, sentinels included.
func (r *Registry) Locale() LocaleConfig {
	return r.cfg.clone().Locale
}

// Logo returns the logo settings.
func (r *Registry) Logo() LogoConfig { return r.cfg.Logo }

// Socials returns every social link in declared order.
func (r *Registry) Socials() []SocialLink {
	return r.cfg.clone().Socials
}

// ActiveSocials returns the links to render: active ones, declared order.
func (r *Registry) ActiveSocials() []SocialLink {
	return FilterActive(r.cfg.Socials)
}

// Social looks up a link by platform name.
func (r *Registry) Social(name SocialName) (SocialLink, error) {
	for _, l := range r.cfg.Socials {
		if l.Name == name {
			return l, nil
		}
	}
	return SocialLink{}, fmt.Errorf("%w: %s", ErrUnknownSocial, name)
}

// Config returns a deep copy of the full configuration.
func (r *Registry) Config() Config {
	return r.cfg.clone()
}

// Warnings lists non-fatal findings from validation.
func (r *Registry) Warnings() []string {
	return append([]string(nil), r.warnings...)
}

// LangTags returns the effective BCP 47 tags, falling back to the
// process environment when none are configured.
func (r *Registry) LangTags() []string {
	return r.cfg.Locale.EffectiveLangTags(EnvLangTags())
}

// MatchLanguage negotiates an Accept-Language header against LangTags.
func (r *Registry) MatchLanguage(acceptLanguage string) string {
	return matchLanguage(r.LangTags(), acceptLanguage)
}
