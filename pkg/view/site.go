package view

// SiteInfo is the header/footer identity block shared by every page.
type SiteInfo struct {
	Name        string
	Description string
	Email       string
	Instagram   string
	Pinterest   string
	Navigation  []NavLink
}

type NavLink struct {
	Name string
	Href string
}

func Site() SiteInfo {
	return SiteInfo{
		Name:        "Aurora Scarves",
		Description: "Artfully printed scarves with gallery-grade motifs, ethically made and delivered worldwide.",
		Email:       "hello@aurorascarves.com",
		Instagram:   "https://instagram.com/aurora.scarves",
		Pinterest:   "https://pinterest.com/aurora.scarves",
		Navigation: []NavLink{
			{Name: "Collection", Href: "/#collection"},
			{Name: "Story", Href: "/#story"},
			{Name: "Studio", Href: "/#studio"},
			{Name: "FAQ", Href: "/#faq"},
		},
	}
}
