package folio

import (
	"errors"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLang is the HTML lang used when LocaleConfig.Lang is empty.
const DefaultLang = "en"

// EffectiveLang returns Lang, or DefaultLang when Lang is empty.
func (l LocaleConfig) EffectiveLang() string {
	if strings.TrimSpace(l.Lang) == "" {
		return DefaultLang
	}
	return l.Lang
}

// EffectiveLangTags returns LangTag, or env when LangTag is empty. Pass
// EnvLangTags() for the process environment.
func (l LocaleConfig) EffectiveLangTags(env []string) []string {
	if len(l.LangTag) == 0 {
		return append([]string(nil), env...)
	}
	return append([]string(nil), l.LangTag...)
}

// EnvLangTags derives BCP 47 tags from the POSIX locale variables
// (LC_ALL, LC_MESSAGES, LANG, in that order of precedence).
func EnvLangTags() []string {
	return envLangTags(os.Getenv)
}

func envLangTags(getenv func(string) string) []string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := getenv(key)
		if v == "" {
			continue
		}
		if tag, ok := posixToBCP47(v); ok {
			return []string{tag}
		}
	}
	return []string{DefaultLang}
}

// posixToBCP47 converts "en_US.UTF-8@euro" to "en-US".
func posixToBCP47(v string) (string, bool) {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return "", false
	}
	return tag.String(), true
}

// checkTag parses s as a BCP 47 tag. A syntax error is fatal; a well-formed
// tag with unknown subtags (e.g. region "EN") is reported as a warning only,
// since browsers accept it.
func checkTag(s string) (warning string, err error) {
	_, err = language.Parse(s)
	if err == nil {
		return "", nil
	}
	var ve language.ValueError
	if errors.As(err, &ve) {
		return "unknown subtag " + ve.Subtag() + " in " + s, nil
	}
	return "", err
}

// matchLanguage picks the entry of supported that best serves the
// Accept-Language header. The first entry wins when nothing matches.
func matchLanguage(supported []string, acceptLanguage string) string {
	if len(supported) == 0 {
		return DefaultLang
	}
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		// Parse keeps the valid part of tags with unknown subtags.
		tags[i], _ = language.Parse(s)
	}
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return supported[0]
	}
	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}
