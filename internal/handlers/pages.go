package handlers

import "lfarma.app/storefront-web/internal/nav"

// PageData is the shared view model for pages using the base layout.
type PageData struct {
	Title     string
	Lang      string
	SEO       SEOData
	Analytics Analytics

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Per-page payload
	Storefront any
}

// SEOData carries head metadata for the layout.
type SEOData struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          struct {
		Title       string
		Description string
		Image       string
		Type        string
		URL         string
		SiteName    string
	}
	Twitter struct {
		Card  string
		Site  string
		Image string
	}
}
