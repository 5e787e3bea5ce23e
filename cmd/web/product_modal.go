package main

import (
	"html/template"

	"lfarma.app/storefront-web/internal/catalog"
	"lfarma.app/storefront-web/internal/format"
)

// ProductModalView backs the product detail dialog.
type ProductModalView struct {
	Lang         string
	ID           string
	Name         string
	Brand        string
	Category     string
	Presentation string
	Price        string
	Image        template.URL
	Fallback     template.URL
	Description  template.HTML
}

func (a *app) buildProductModalView(lang string, p catalog.Product) ProductModalView {
	desc := p.Description
	if desc == "" {
		desc = a.tr(lang, "modal.default_description", "Producto de calidad garantizada")
	}
	return ProductModalView{
		Lang:         lang,
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.DisplayBrand(),
		Category:     p.DisplayCategory(),
		Presentation: p.DisplayPresentation(),
		Price:        format.FmtPrice(p.Price, lang),
		Image:        template.URL(catalog.ResolveImage(p)),
		Fallback:     template.URL(catalog.PlaceholderImage(p.Name)),
		Description:  renderMarkdown(desc),
	}
}
