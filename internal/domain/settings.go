package domain

const DefaultLogoSize = 120

// SiteSettings is the single global cosmetic record. It is written only by
// the admin panel; the core treats it as read-only. Absent fields leave the
// corresponding surface aspect untouched.
type SiteSettings struct {
	BG          *string `json:"bg,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	LogoSize    int     `json:"logoSize,omitempty"`
	SidebarText *string `json:"sidebarText,omitempty"`
}

// LogoHeight returns the configured logo height in pixels, defaulting when
// the record omits or zeroes it.
func (s SiteSettings) LogoHeight() int {
	if s.LogoSize <= 0 {
		return DefaultLogoSize
	}
	return s.LogoSize
}

type UpdateSettingsInput struct {
	BG          *string `json:"bg,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	LogoSize    *int    `json:"logoSize,omitempty"`
	SidebarText *string `json:"sidebarText,omitempty"`
}
