package folio

import (
	"errors"
	"strings"
)

// SocialName identifies a platform in a SocialLink. Only the names below are
// accepted.
type SocialName string

const (
	Github    SocialName = "Github"
	Facebook  SocialName = "Facebook"
	Instagram SocialName = "Instagram"
	LinkedIn  SocialName = "LinkedIn"
	Mail      SocialName = "Mail"
	Twitter   SocialName = "Twitter"
	Twitch    SocialName = "Twitch"
	YouTube   SocialName = "YouTube"
	WhatsApp  SocialName = "WhatsApp"
	Snapchat  SocialName = "Snapchat"
	Pinterest SocialName = "Pinterest"
	TikTok    SocialName = "TikTok"
	CodePen   SocialName = "CodePen"
	Discord   SocialName = "Discord"
	GitLab    SocialName = "GitLab"
	Reddit    SocialName = "Reddit"
	Skype     SocialName = "Skype"
	Steam     SocialName = "Steam"
	Telegram  SocialName = "Telegram"
	Mastodon  SocialName = "Mastodon"
)

// SocialNames lists every accepted platform name.
var SocialNames = []SocialName{
	Github, Facebook, Instagram, LinkedIn, Mail, Twitter, Twitch, YouTube,
	WhatsApp, Snapchat, Pinterest, TikTok, CodePen, Discord, GitLab, Reddit,
	Skype, Steam, Telegram, Mastodon,
}

// ErrUnknownSocial is returned by Registry.Social for a name that is not
// configured.
var ErrUnknownSocial = errors.New("folio: unknown social link")

// titlePlaceholder in LinkTitle is replaced with SiteConfig.Title.
const titlePlaceholder = "{title}"

// Known reports whether n is one of SocialNames.
func (n SocialName) Known() bool {
	for _, k := range SocialNames {
		if n == k {
			return true
		}
	}
	return false
}

// ParseSocialName matches s case-insensitively against SocialNames.
func ParseSocialName(s string) (SocialName, bool) {
	s = strings.TrimSpace(s)
	for _, k := range SocialNames {
		if strings.EqualFold(s, string(k)) {
			return k, true
		}
	}
	return "", false
}

// isMail reports whether the link is expected to use a mailto: href.
func (n SocialName) isMail() bool {
	return n == Mail
}

// resolveLinkTitle fills in the tooltip for s against the site title.
func resolveLinkTitle(s SocialLink, siteTitle string) string {
	lt := strings.TrimSpace(s.LinkTitle)
	if lt == "" {
		if s.Name.isMail() {
			return "Send an email to " + siteTitle
		}
		return siteTitle + " on " + string(s.Name)
	}
	return strings.ReplaceAll(lt, titlePlaceholder, siteTitle)
}

// FilterActive returns the active links in declared order.
func FilterActive(links []SocialLink) []SocialLink {
	out := make([]SocialLink, 0, len(links))
	for _, l := range links {
		if l.Active {
			out = append(out, l)
		}
	}
	return out
}
