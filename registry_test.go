package folio

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/eringen/folio/internal/validate"
)

func mustRegistry(t *testing.T, cfg Config) *Registry {
	t.Helper()
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

// validationFields returns the failing fields of err, failing the test if
// err is not a validation error.
func validationFields(t *testing.T, err error) *validate.ValidationError {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var verr *validate.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validate.ValidationError, got %T: %v", err, err)
	}
	return verr
}

func socialNames(links []SocialLink) []SocialName {
	out := make([]SocialName, len(links))
	for i, l := range links {
		out[i] = l.Name
	}
	return out
}

func TestDefaultRegistry(t *testing.T) {
	r := mustRegistry(t, Default())

	if r.Site().Title != "Dreamers Lab" {
		t.Errorf("title = %q", r.Site().Title)
	}
	want := []SocialName{Github, LinkedIn, Twitter, YouTube, Mail}
	if diff := cmp.Diff(want, socialNames(r.ActiveSocials())); diff != "" {
		t.Errorf("active socials mismatch (-want +got):\n%s", diff)
	}
}

func TestLinkTitlesResolved(t *testing.T) {
	r := mustRegistry(t, Default())

	gh, err := r.Social(Github)
	if err != nil {
		t.Fatalf("Social(Github): %v", err)
	}
	if gh.LinkTitle != "Dreamers Lab on Github" {
		t.Errorf("Github title = %q", gh.LinkTitle)
	}
	mail, _ := r.Social(Mail)
	if mail.LinkTitle != "Send an email to Dreamers Lab" {
		t.Errorf("Mail title = %q", mail.LinkTitle)
	}
}

func TestLinkTitleDefaultsWhenEmpty(t *testing.T) {
	cfg := Default()
	for i := range cfg.Socials {
		cfg.Socials[i].LinkTitle = ""
	}
	r := mustRegistry(t, cfg)

	tw, _ := r.Social(Twitter)
	if tw.LinkTitle != "Dreamers Lab on Twitter" {
		t.Errorf("Twitter title = %q", tw.LinkTitle)
	}
	mail, _ := r.Social(Mail)
	if mail.LinkTitle != "Send an email to Dreamers Lab" {
		t.Errorf("Mail title = %q", mail.LinkTitle)
	}
}

func TestPostPerPage(t *testing.T) {
	tests := []struct {
		n  int
		ok bool
	}{
		{20, true},
		{1, true},
		{0, false},
		{-5, false},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Site.PostPerPage = tt.n
		_, err := New(cfg)
		if tt.ok && err != nil {
			t.Errorf("postPerPage %d rejected: %v", tt.n, err)
		}
		if !tt.ok {
			if verr := validationFields(t, err); !verr.Has("site.postPerPage") {
				t.Errorf("postPerPage %d: fields %v", tt.n, verr.Fields())
			}
		}
	}
}

func TestScheduledPostMargin(t *testing.T) {
	cfg := Default()
	cfg.Site.ScheduledPostMargin = 15 * 60 * 1000
	if _, err := New(cfg); err != nil {
		t.Fatalf("900000 rejected: %v", err)
	}

	cfg.Site.ScheduledPostMargin = 0
	if _, err := New(cfg); err != nil {
		t.Fatalf("0 rejected: %v", err)
	}

	cfg.Site.ScheduledPostMargin = -1
	_, err := New(cfg)
	if verr := validationFields(t, err); !verr.Has("site.scheduledPostMargin") {
		t.Errorf("fields %v", verr.Fields())
	}
}

func TestRequiredFields(t *testing.T) {
	cfg := Default()
	cfg.Site.Website = ""
	cfg.Site.Author = " "
	cfg.Site.Title = ""

	_, err := New(cfg)
	verr := validationFields(t, err)
	for _, f := range []string{"site.website", "site.author", "site.title"} {
		if !verr.Has(f) {
			t.Errorf("expected %s in %v", f, verr.Fields())
		}
	}
}

func TestMalformedWebsite(t *testing.T) {
	cfg := Default()
	cfg.Site.Website = "zainulhassan815.github.io"
	_, err := New(cfg)
	if verr := validationFields(t, err); !verr.Has("site.website") {
		t.Errorf("fields %v", verr.Fields())
	}
}

func TestLogoDimensions(t *testing.T) {
	cfg := Default()
	cfg.Logo.Width = 0
	cfg.Logo.Height = -46
	_, err := New(cfg)
	verr := validationFields(t, err)
	if !verr.Has("logo.width") || !verr.Has("logo.height") {
		t.Errorf("fields %v", verr.Fields())
	}
}

func TestDuplicateSocialName(t *testing.T) {
	cfg := Default()
	cfg.Socials = append(cfg.Socials, SocialLink{
		Name:   Github,
		Href:   "https://github.com/someone-else",
		Active: false,
	})
	_, err := New(cfg)
	verr := validationFields(t, err)
	if !verr.Has("socials[5].name") {
		t.Errorf("fields %v", verr.Fields())
	}
}

func TestUnknownSocialName(t *testing.T) {
	cfg := Default()
	cfg.Socials[0].Name = "MySpace"
	_, err := New(cfg)
	if verr := validationFields(t, err); !verr.Has("socials[0].name") {
		t.Errorf("fields %v", verr.Fields())
	}
}

func TestSocialHref(t *testing.T) {
	cfg := Default()
	cfg.Socials[1].Href = ""
	cfg.Socials[4].Href = "mailto:"
	_, err := New(cfg)
	verr := validationFields(t, err)
	if !verr.Has("socials[1].href") || !verr.Has("socials[4].href") {
		t.Errorf("fields %v", verr.Fields())
	}
}

func TestAllErrorsReportedTogether(t *testing.T) {
	cfg := Default()
	cfg.Site.Title = ""
	cfg.Site.PostPerPage = 0
	cfg.Socials[2].Name = Github

	_, err := New(cfg)
	verr := validationFields(t, err)
	want := []string{"site.title", "site.postPerPage", "socials[2].name"}
	if diff := cmp.Diff(want, verr.Fields()); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestActiveSocialsPreservesOrder(t *testing.T) {
	cfg := Default()
	cfg.Socials[1].Active = false // LinkedIn
	cfg.Socials[3].Active = false // YouTube
	r := mustRegistry(t, cfg)

	active := r.ActiveSocials()
	want := []SocialName{Github, Twitter, Mail}
	if diff := cmp.Diff(want, socialNames(active)); diff != "" {
		t.Errorf("active mismatch (-want +got):\n%s", diff)
	}
	if len(active) > len(r.Socials()) {
		t.Errorf("active (%d) longer than all (%d)", len(active), len(r.Socials()))
	}
	if got := len(r.Socials()); got != 5 {
		t.Errorf("Socials() len = %d, want 5", got)
	}
}

func TestRegistryIsolatedFromInputAndCallers(t *testing.T) {
	cfg := Default()
	r := mustRegistry(t, cfg)

	cfg.Socials[0].Href = "https://example.com/changed"
	cfg.Locale.LangTag[0] = "fr-FR"

	got := r.Socials()
	got[0].Active = false
	loc := r.Locale()
	loc.LangTag[0] = "de-DE"

	if h := r.Socials()[0].Href; h != "https://github.com/zainulhassan815" {
		t.Errorf("registry saw input mutation: %q", h)
	}
	if !r.Socials()[0].Active {
		t.Error("registry saw caller mutation of Socials()")
	}
	if tag := r.Locale().LangTag[0]; tag != "en-EN" {
		t.Errorf("registry saw mutation of LangTag: %q", tag)
	}
}

func TestSocialLookupUnknown(t *testing.T) {
	r := mustRegistry(t, Default())
	_, err := r.Social(Facebook)
	if !errors.Is(err, ErrUnknownSocial) {
		t.Fatalf("expected ErrUnknownSocial, got %v", err)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	cfg := Default()
	cfg.Site.PostPerPage = 0
	MustNew(cfg)
}

func TestConcurrentReads(t *testing.T) {
	r := mustRegistry(t, Default())
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if len(r.ActiveSocials()) != 5 {
					t.Error("unexpected active count")
					return
				}
				_ = r.Config()
				_ = r.WebsiteJSONLD()
			}
		}()
	}
	wg.Wait()
}

func TestParseSocialName(t *testing.T) {
	tests := []struct {
		in   string
		want SocialName
		ok   bool
	}{
		{"github", Github, true},
		{"LINKEDIN", LinkedIn, true},
		{" YouTube ", YouTube, true},
		{"myspace", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseSocialName(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSocialName(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
