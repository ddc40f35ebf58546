package folio

// Default returns the site's shipped configuration. Each call returns a
// fresh value.
func Default() Config {
	return Config{
		Site: SiteConfig{
			Website:             "https://zainulhassan815.github.io",
			Author:              "Zain Ul Hassan",
			Desc:                "Personal portfolio and blog site",
			Title:               "Dreamers Lab",
			OGImage:             "",
			LightAndDarkMode:    true,
			PostPerPage:         20,
			ScheduledPostMargin: 15 * 60 * 1000, // 15 minutes
		},
		Locale: LocaleConfig{
			Lang:    "en",
			LangTag: []string{"en-EN"},
		},
		Logo: LogoConfig{
			Enable: false,
			SVG:    true,
			Width:  216,
			Height: 46,
		},
		Socials: []SocialLink{
			{
				Name:      Github,
				Href:      "https://github.com/zainulhassan815",
				LinkTitle: "{title} on Github",
				Active:    true,
			},
			{
				Name:      LinkedIn,
				Href:      "https://www.linkedin.com/in/zain-ul-hassan-1986321a0",
				LinkTitle: "{title} on LinkedIn",
				Active:    true,
			},
			{
				Name:      Twitter,
				Href:      "https://twitter.com/zainulhassan815",
				LinkTitle: "{title} on Twitter",
				Active:    true,
			},
			{
				Name:      YouTube,
				Href:      "https://www.youtube.com/@DreamersLab",
				LinkTitle: "{title} on YouTube",
				Active:    true,
			},
			{
				Name:      Mail,
				Href:      "mailto:dreamerslabdev@gmail.com",
				LinkTitle: "Send an email to {title}",
				Active:    true,
			},
		},
	}
}
