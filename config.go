package folio

import "time"

// SiteConfig holds site-wide metadata and feature flags.
type SiteConfig struct {
	Website             string `json:"website" yaml:"website"`
	Author              string `json:"author" yaml:"author"`
	Desc                string `json:"desc" yaml:"desc"`
	Title               string `json:"title" yaml:"title"`
	OGImage             string `json:"ogImage" yaml:"ogImage"` // empty means no override
	LightAndDarkMode    bool   `json:"lightAndDarkMode" yaml:"lightAndDarkMode"`
	PostPerPage         int    `json:"postPerPage" yaml:"postPerPage"`
	ScheduledPostMargin int64  `json:"scheduledPostMargin" yaml:"scheduledPostMargin"` // milliseconds
}

// LocaleConfig selects the HTML lang attribute and the BCP 47 tags used for
// date and number formatting.
type LocaleConfig struct {
	Lang    string   `json:"lang" yaml:"lang"`       // "" means DefaultLang
	LangTag []string `json:"langTag" yaml:"langTag"` // empty means environment default
}

// LogoConfig controls whether and how the site logo is shown.
type LogoConfig struct {
	Enable bool `json:"enable" yaml:"enable"`
	SVG    bool `json:"svg" yaml:"svg"`
	Width  int  `json:"width" yaml:"width"`
	Height int  `json:"height" yaml:"height"`
}

// SocialLink is one entry of the ordered social list.
type SocialLink struct {
	Name      SocialName `json:"name" yaml:"name"`
	Href      string     `json:"href" yaml:"href"`
	LinkTitle string     `json:"linkTitle" yaml:"linkTitle"`
	Active    bool       `json:"active" yaml:"active"`
}

// Config is the plain input to New. It carries no invariants on its own;
// a Registry is the validated form.
type Config struct {
	Site    SiteConfig   `json:"site" yaml:"site"`
	Locale  LocaleConfig `json:"locale" yaml:"locale"`
	Logo    LogoConfig   `json:"logo" yaml:"logo"`
	Socials []SocialLink `json:"socials" yaml:"socials"`
}

// clone returns a deep copy so callers can't reach shared slices.
func (c Config) clone() Config {
	out := c
	if c.Locale.LangTag != nil {
		out.Locale.LangTag = append([]string(nil), c.Locale.LangTag...)
	}
	if c.Socials != nil {
		out.Socials = append([]SocialLink(nil), c.Socials...)
	}
	return out
}

// ServerConfig holds options for the registry API server.
type ServerConfig struct {
	Addr       string // Listen address (default ":3000")
	ConfigPath string // YAML config path; empty means defaults + environment
	AssetsDir  string // Static asset dir checked against LogoConfig; empty skips the check
	Watch      bool   // Reload ConfigPath on change

	ReloadDebounce time.Duration // default 500ms
	CacheMaxAge    time.Duration // Cache-Control max-age for API responses (default 5min)

	RateLimit  int           // API requests per IP per RateWindow (default 120, negative disables)
	RateWindow time.Duration // default 1min
}

func (c *ServerConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ReloadDebounce == 0 {
		c.ReloadDebounce = 500 * time.Millisecond
	}
	if c.CacheMaxAge == 0 {
		c.CacheMaxAge = 5 * time.Minute
	}
	if c.RateLimit == 0 {
		c.RateLimit = 120
	}
	if c.RateWindow == 0 {
		c.RateWindow = time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithHolder serves from an existing Holder instead of loading ConfigPath.
func WithHolder(h *Holder) Option {
	return func(a *App) {
		a.Holder = h
	}
}
