package folio

import (
	"fmt"
	"strings"

	"github.com/eringen/folio/internal/validate"
)

var websiteSchemes = []string{"http", "https"}

// validateConfig checks every integrity rule and reports all failures in a
// single *validate.ValidationError. Warnings never block construction.
func validateConfig(cfg Config) (warnings []string, err error) {
	v := validate.New()

	s := cfg.Site
	v.URL("site.website", s.Website, websiteSchemes)
	v.Required("site.author", s.Author)
	v.Required("site.title", s.Title)
	v.Positive("site.postPerPage", s.PostPerPage)
	v.NonNegative("site.scheduledPostMargin", s.ScheduledPostMargin)

	// Whitespace-only counts as the empty sentinel, as in EffectiveLang.
	if strings.TrimSpace(cfg.Locale.Lang) != "" {
		w, err := checkTag(cfg.Locale.Lang)
		if err != nil {
			v.AddError("locale.lang", fmt.Sprintf("invalid language code: %v", err), cfg.Locale.Lang)
		} else if w != "" {
			warnings = append(warnings, "locale.lang: "+w)
		}
	}
	for i, tag := range cfg.Locale.LangTag {
		field := fmt.Sprintf("locale.langTag[%d]", i)
		w, err := checkTag(tag)
		if err != nil {
			v.AddError(field, fmt.Sprintf("invalid BCP 47 tag: %v", err), tag)
		} else if w != "" {
			warnings = append(warnings, field+": "+w)
		}
	}

	v.Positive("logo.width", cfg.Logo.Width)
	v.Positive("logo.height", cfg.Logo.Height)

	seen := make(map[SocialName]int, len(cfg.Socials))
	for i, l := range cfg.Socials {
		field := fmt.Sprintf("socials[%d]", i)
		switch {
		case !l.Name.Known():
			v.AddError(field+".name", fmt.Sprintf("unknown platform %q", l.Name), l.Name)
		default:
			if first, dup := seen[l.Name]; dup {
				v.AddError(field+".name",
					fmt.Sprintf("duplicate name %q (first at socials[%d])", l.Name, first), l.Name)
			} else {
				seen[l.Name] = i
			}
		}

		if !v.Required(field+".href", l.Href) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(l.Href), "mailto:") {
			v.Mailto(field+".href", l.Href)
		} else {
			v.URL(field+".href", l.Href, websiteSchemes)
			if l.Name.isMail() {
				warnings = append(warnings, field+".href: Mail link without mailto: scheme")
			}
		}
	}

	return warnings, v.Err()
}
