package main

import (
	"html/template"

	"lfarma.app/storefront-web/internal/cart"
	"lfarma.app/storefront-web/internal/catalog"
	"lfarma.app/storefront-web/internal/format"
)

// CartPanelView is the sliding cart panel plus the header badge. The same
// view backs the full-panel fragment and the out-of-band update bundle sent
// after every mutation.
type CartPanelView struct {
	Lang      string
	Rows      []CartRow
	Subtotal  string
	Count     int
	Empty     bool
	EmptyCopy string
	Toast     *ToastView
}

// CartRow is one line of the panel. Image fields are template.URL because
// placeholders are data URIs.
type CartRow struct {
	ID        string
	Name      string
	Price     string
	Quantity  int
	LineTotal string
	Image     template.URL
	Fallback  template.URL
}

func (a *app) buildCartPanelView(lang string, c cart.Cart) CartPanelView {
	view := CartPanelView{
		Lang:     lang,
		Count:    c.Count(),
		Subtotal: format.FmtPrice(c.Subtotal(), lang),
	}
	if c.Empty() {
		view.Empty = true
		view.EmptyCopy = a.tr(lang, "cart.empty", "Tu carrito está vacío")
		return view
	}
	view.Rows = make([]CartRow, 0, len(c.Lines))
	for _, l := range c.Lines {
		img := l.Image
		if img == "" {
			img = catalog.PlaceholderImage(l.Name)
		}
		view.Rows = append(view.Rows, CartRow{
			ID:        l.ID,
			Name:      l.Name,
			Price:     format.FmtPrice(l.Price, lang),
			Quantity:  l.Quantity,
			LineTotal: format.FmtPrice(l.Price*float64(l.Quantity), lang),
			Image:     template.URL(img),
			Fallback:  template.URL(catalog.PlaceholderImage(l.Name)),
		})
	}
	return view
}
