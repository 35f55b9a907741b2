package views

import "github.com/hsdev/portfolio/theme"

// SiteConfig holds site-wide settings shown in the chrome and head.
type SiteConfig struct {
	Name        string // brand text in the nav bar
	URL         string // canonical base URL
	Description string // default meta description
	Author      string // bio footer
	Bio         string // bio footer text after the author name
}

// PageMeta carries per-page head metadata.
type PageMeta struct {
	Title       string
	Description string
	Path        string // canonical path, joined onto SiteConfig.URL
}

// Chrome is everything the layout shell needs besides the page body.
type Chrome struct {
	Site         SiteConfig
	Theme        *theme.State
	Accent       string // toggle "on" colour
	CSRFToken    string
	ToggleAction string // form action of the theme toggle
	AssetVersion string // content hash appended to embedded asset URLs
}

// DarkMode reports the current theme flag; a nil State is light.
func (c Chrome) DarkMode() bool {
	return c.Theme != nil && c.Theme.Value()
}
