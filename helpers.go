package folio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// OGImageURL resolves SiteConfig.OGImage against the website. It returns ""
// when no override is configured.
func (r *Registry) OGImageURL() string {
	og := strings.TrimSpace(r.cfg.Site.OGImage)
	if og == "" {
		return ""
	}
	ref, err := url.Parse(og)
	if err != nil {
		return og
	}
	if ref.IsAbs() {
		return og
	}
	base, err := url.Parse(r.cfg.Site.Website)
	if err != nil {
		return og
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(ref).String()
}

// WebsiteJSONLD returns a Schema.org WebSite block. Active social hrefs
// (mailto excluded) become the author's sameAs list.
func (r *Registry) WebsiteJSONLD() string {
	s := r.cfg.Site
	data := map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "WebSite",
		"name":       s.Title,
		"url":        BuildURL(s.Website),
		"inLanguage": r.cfg.Locale.EffectiveLang(),
	}
	if s.Desc != "" {
		data["description"] = s.Desc
	}
	if img := r.OGImageURL(); img != "" {
		data["image"] = img
	}
	author := map[string]interface{}{
		"@type": "Person",
		"name":  s.Author,
	}
	var sameAs []string
	for _, l := range r.ActiveSocials() {
		if strings.HasPrefix(strings.ToLower(l.Href), "mailto:") {
			continue
		}
		sameAs = append(sameAs, l.Href)
	}
	if len(sameAs) > 0 {
		author["sameAs"] = sameAs
	}
	data["author"] = author
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
